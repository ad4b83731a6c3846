package eval

import "minilisp/parser"

// An Environment is one call frame's variable bindings plus a pointer
// to the frame that was visible at the caller. Lookup scans the
// current frame newest-binding-first and then walks outward, so a
// binding added later shadows an earlier one with the same name.
//
// A function call never copies the caller's bindings: the callee frame
// chains to the caller's, which gives the same visibility as a copy of
// the caller's entire binding set (dynamic scoping) because no
// operation in the language mutates an existing binding.
type Environment struct {
	bindings []binding
	outer    *Environment
}

type binding struct {
	name  string
	value parser.SExpr
}

func newEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer}
}

// Bind adds a binding to the current frame.
func (e *Environment) Bind(name string, value parser.SExpr) {
	e.bindings = append(e.bindings, binding{name, value})
}

// Lookup returns the value bound to name in the innermost frame that
// binds it, most recent binding first.
func (e *Environment) Lookup(name string) (parser.SExpr, bool) {
	for env := e; env != nil; env = env.outer {
		for i := len(env.bindings) - 1; i >= 0; i-- {
			if env.bindings[i].name == name {
				return env.bindings[i].value, true
			}
		}
	}
	return nil, false
}
