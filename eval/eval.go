package eval

// Implements the pure evaluator variant: no variable bindings, no
// function store, no session state. Two calls with the same input
// always produce the same result. The stateful variant lives in
// ctx.go.

import "minilisp/parser"

// Eval evaluates expr with no environment. Integers evaluate to
// themselves; a bare symbol is always an unbound variable; quote is
// the only special form; every other list is an application of one of
// the builtins, with operands evaluated eagerly left to right.
func Eval(expr parser.SExpr) (parser.SExpr, error) {
	switch expr := expr.(type) {
	case parser.Integer:
		return expr, nil
	case parser.Symbol:
		return nil, errf("unbound variable %q", string(expr))
	case parser.List:
		if len(expr) == 0 {
			return nil, errf("cannot eval empty list")
		}
		op, ok := expr[0].(parser.Symbol)
		if !ok {
			return nil, errf("operator must be a symbol, got %s", expr[0])
		}
		if op == "quote" {
			if len(expr) != 2 {
				return nil, errf("'quote' requires exactly one argument")
			}
			return expr[1], nil
		}
		args := make(parser.List, 0, len(expr)-1)
		for _, sub := range expr[1:] {
			v, err := Eval(sub)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return applyOp(op, args)
	}
	// a nil SExpr; unreachable for parser output
	return nil, errf("invalid expression")
}
