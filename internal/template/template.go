package template

import (
	"strings"

	"github.com/chriserin/xt/internal/expr"
	"github.com/chriserin/xt/internal/value"
)

// Compile renders tmpl, replacing each ${expr} placeholder with the string
// form of expr evaluated against context.
//
// Text outside placeholders is copied unchanged except for two escapes: "\${"
// produces a literal "${" and "\\" a single backslash. Any other backslash is
// kept as written. Any evaluation error aborts the whole render.
func Compile(tmpl string, context *value.Object) (string, error) {
	var buf strings.Builder
	buf.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		ch := tmpl[i]
		if ch == '\\' {
			switch {
			case strings.HasPrefix(tmpl[i+1:], "${"):
				buf.WriteString("${")
				i += 3
				continue
			case strings.HasPrefix(tmpl[i+1:], `\`):
				buf.WriteByte('\\')
				i += 2
				continue
			}
		}
		if ch != '$' || i+1 >= len(tmpl) || tmpl[i+1] != '{' {
			buf.WriteByte(ch)
			i++
			continue
		}

		end := findClosingBrace(tmpl, i+2)
		if end == -1 {
			return "", &expr.SyntaxError{Pos: i, Msg: "Unterminated template placeholder"}
		}

		v, err := expr.Eval(tmpl[i+2:end], context)
		if err != nil {
			return "", err
		}
		buf.WriteString(value.ToString(v))

		i = end + 1
	}

	return buf.String(), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(tmpl string, context *value.Object) string {
	s, err := Compile(tmpl, context)
	if err != nil {
		panic("template: " + err.Error())
	}
	return s
}

// findClosingBrace returns the index of the "}" that closes a placeholder
// whose body starts at start. Braces inside nested object literals and quoted
// strings do not count.
func findClosingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '\'', '"':
			end := skipString(text, i)
			if end == -1 {
				return -1
			}
			i = end
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// skipString returns the index of the quote closing the string opened at i.
func skipString(text string, i int) int {
	quote := text[i]
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return -1
}
