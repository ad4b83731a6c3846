package eval

import "fmt"

// Represents an evaluation error: unbound variable, wrong arity, wrong
// operand type, division by zero, unknown operator, or a malformed
// special form. Any Error aborts the whole top-level expression; state
// committed by earlier successful calls is untouched.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	return "eval error: " + e.Message
}

func errf(s string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(s, args...)}
}
