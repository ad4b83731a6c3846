package parser

import (
	"bytes"
	"strconv"
)

func (e Integer) String() string { return strconv.FormatInt(int64(e), 10) }
func (e Symbol) String() string  { return string(e) }

func (e List) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for i, x := range e {
		if i != 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(x.String())
	}
	buf.WriteString(")")
	return buf.String()
}
