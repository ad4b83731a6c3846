package eval

import "minilisp/parser"

// A Lambda is a user-defined function: its parameter names and a
// single body expression.
type Lambda struct {
	Params []string
	Body   parser.SExpr
}

// A FuncStore maps function names to Lambdas. It is shared by every
// environment in a session: defun mutates it, and the definitions
// persist across top-level calls until Clear. Redefining a name drops
// the old entry and appends the new one, so lookup scans newest-first
// and the latest definition always wins.
type FuncStore struct {
	funcs []namedLambda
}

type namedLambda struct {
	name string
	fn   *Lambda
}

func newFuncStore() *FuncStore {
	return &FuncStore{}
}

// Define stores fn under name, replacing any previous definition.
func (s *FuncStore) Define(name string, fn *Lambda) {
	for i := range s.funcs {
		if s.funcs[i].name == name {
			s.funcs = append(s.funcs[:i], s.funcs[i+1:]...)
			break
		}
	}
	s.funcs = append(s.funcs, namedLambda{name, fn})
}

// Lookup returns the latest definition stored under name.
func (s *FuncStore) Lookup(name string) (*Lambda, bool) {
	for i := len(s.funcs) - 1; i >= 0; i-- {
		if s.funcs[i].name == name {
			return s.funcs[i].fn, true
		}
	}
	return nil, false
}

// Len returns the number of live definitions.
func (s *FuncStore) Len() int { return len(s.funcs) }

// Clear drops every definition.
func (s *FuncStore) Clear() { s.funcs = nil }
