package expr

import "fmt"

// ReferenceError reports an identifier that is neither in the binding scope
// nor a global constant.
type ReferenceError struct {
	Name string
}

func (e *ReferenceError) Error() string {
	return e.Name + " is not defined"
}

// SyntaxError reports source text that is not a single valid expression.
type SyntaxError struct {
	Pos int // byte offset in the source
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// TypeError reports an operation that is invalid for the value it was
// applied to, such as reading a property of undefined.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return e.Msg
}
