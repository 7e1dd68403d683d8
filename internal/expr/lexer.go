package expr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer tokenizes cell and placeholder expressions. Numbers carry no sign;
// "-" is the unary operator.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|0[oO][0-7]+|0[bB][01]+|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`},
	{Name: "String", Pattern: `'(?:\\(?s:.)|[^'\\\r\n])*'|"(?:\\(?s:.)|[^"\\\r\n])*"`},
	{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{Nd}_$]*`},
	{Name: "Punct", Pattern: `[{}\[\]().,:+\-!]`},
})

// parseNumber decodes a Number token: decimal (1, .5, 1., 1.5e-3) or prefixed
// integer (0x1f, 0o17, 0b101). Out of range decimals round to Infinity.
func parseNumber(text string) (float64, error) {
	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				return 0, err
			}
			return float64(n), nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}

// unquote decodes a String token including its quotes. Besides the usual
// single character escapes it understands \xHH, \uHHHH (with surrogate
// pairs), \u{H...} and line continuations; any other escaped character
// stands for itself.
func unquote(text string) (string, error) {
	s := text[1 : len(text)-1]
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		i++
		ch := s[i]
		i++
		switch ch {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			if i < len(s) && s[i] >= '0' && s[i] <= '9' {
				return "", errorString("Octal escape sequences are not allowed")
			}
			b.WriteByte(0)
		case '\n':
			// line continuation
		case '\r':
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case 'x':
			r, err := hexRune(s, i, 2)
			if err != nil {
				return "", errorString("Invalid hexadecimal escape sequence")
			}
			b.WriteRune(r)
			i += 2
		case 'u':
			r, n, err := unicodeEscape(s, i)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			i--
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return b.String(), nil
}

type errorString string

func (e errorString) Error() string { return string(e) }

func hexRune(s string, at, n int) (rune, error) {
	if at+n > len(s) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(s[at:at+n], 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// unicodeEscape decodes the part of a \u escape that starts at s[at] and
// returns the rune with the number of bytes read.
func unicodeEscape(s string, at int) (rune, int, error) {
	if at < len(s) && s[at] == '{' {
		end := strings.IndexByte(s[at:], '}')
		if end < 2 {
			return 0, 0, errorString("Invalid Unicode escape sequence")
		}
		v, err := strconv.ParseUint(s[at+1:at+end], 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, 0, errorString("Undefined Unicode code-point")
		}
		return rune(v), end + 1, nil
	}

	r, err := hexRune(s, at, 4)
	if err != nil {
		return 0, 0, errorString("Invalid Unicode escape sequence")
	}
	// A high surrogate may pair with a following \uDC00-\uDFFF.
	if r >= 0xD800 && r <= 0xDBFF && strings.HasPrefix(s[at+4:], `\u`) {
		lo, err := hexRune(s, at+6, 4)
		if err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
			return (r-0xD800)<<10 + (lo - 0xDC00) + 0x10000, 10, nil
		}
	}
	return r, 4, nil
}
