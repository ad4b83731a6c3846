package parser

// An SExpr is either an atom (Integer or Symbol) or a List. The
// interface is closed: only the three types below implement sexpr(),
// so a node can never be two variants at once, and type switches over
// SExpr are exhaustive.
type SExpr interface {
	String() string
	sexpr()
}

type Integer int64

// A Symbol holds the symbol's text. Symbols produced by Parse
// reference the source string; symbols produced by ParseInterned are
// canonical copies owned by a symbol.Table. Either way two symbols
// with the same text compare equal.
type Symbol string

type List []SExpr

func (Integer) sexpr() {}
func (Symbol) sexpr()  {}
func (List) sexpr()    {}

// IsAtom reports whether e is an Integer or a Symbol.
func IsAtom(e SExpr) bool {
	switch e.(type) {
	case Integer, Symbol:
		return true
	}
	return false
}
