package parser

import "fmt"

// Represents a parsing error. Pos is the byte offset into the source
// at which parsing could not continue.
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

func (p *parser) error(s string, args ...interface{}) *Error {
	return &Error{
		Pos:     p.pos,
		Message: fmt.Sprintf(s, args...),
	}
}
