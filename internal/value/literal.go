package value

import (
	"fmt"
	"strings"
	"unicode"
)

// Literal renders v in table cell syntax, so that evaluating the result gives
// back an equal value. The pipe character is always escaped, which keeps the
// output safe to place between column delimiters.
func Literal(v Value) string {
	var b strings.Builder
	writeLiteral(&b, v)
	return b.String()
}

func writeLiteral(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil, Undefined:
		b.WriteString("undefined")
	case Null:
		b.WriteString("null")
	case Bool, Number:
		b.WriteString(ToString(v))
	case String:
		writeQuoted(b, string(v))
	case *List:
		b.WriteByte('[')
		for i, item := range v.Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLiteral(b, item)
		}
		b.WriteByte(']')
	case *Object:
		b.WriteByte('{')
		i := 0
		for k, item := range v.All() {
			if i > 0 {
				b.WriteString(", ")
			}
			i++
			if IsIdentifier(k) {
				b.WriteString(k)
			} else {
				writeQuoted(b, k)
			}
			b.WriteString(": ")
			writeLiteral(b, item)
		}
		b.WriteByte('}')
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '|':
			b.WriteString(`\x7c`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
}

// IsIdentifier reports whether s can be written as a bare identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !IsIdentStart(r) && (i == 0 || !IsIdentPart(r)) {
			return false
		}
	}
	return true
}

func IsIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func IsIdentPart(r rune) bool {
	return IsIdentStart(r) || unicode.IsDigit(r)
}
