package eval

// Implements the builtin operations. Builtins are fixed: they are not
// stored in the function store and (for the comparisons) cannot be
// shadowed by user definitions.

import "minilisp/parser"

// asInt extracts the integer from an already-evaluated operand.
func asInt(e parser.SExpr) (int64, error) {
	n, ok := e.(parser.Integer)
	if !ok {
		return 0, errf("expected a number, got %s", e)
	}
	return int64(n), nil
}

// applyOp dispatches the arithmetic and list builtins. All operands
// are already evaluated.
func applyOp(op parser.Symbol, args parser.List) (parser.SExpr, error) {
	switch op {
	case "+":
		var sum int64
		for _, arg := range args {
			n, err := asInt(arg)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return parser.Integer(sum), nil
	case "*":
		product := int64(1)
		for _, arg := range args {
			n, err := asInt(arg)
			if err != nil {
				return nil, err
			}
			product *= n
		}
		return parser.Integer(product), nil
	case "-":
		if len(args) == 0 {
			return nil, errf("'-' requires at least one argument")
		}
		result, err := asInt(args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			n, err := asInt(arg)
			if err != nil {
				return nil, err
			}
			result -= n
		}
		return parser.Integer(result), nil
	case "/":
		if len(args) != 2 {
			return nil, errf("'/' requires exactly two arguments")
		}
		a, err := asInt(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt(args[1])
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, errf("division by zero")
		}
		// Go's / truncates toward zero
		return parser.Integer(a / b), nil
	case "car":
		list, err := listArg(op, args)
		if err != nil {
			return nil, err
		}
		return list[0], nil
	case "cdr":
		list, err := listArg(op, args)
		if err != nil {
			return nil, err
		}
		return list[1:], nil
	}
	return nil, errf("unknown operator %q", string(op))
}

// listArg checks the shared car/cdr contract: exactly one operand,
// which must be a non-empty list.
func listArg(op parser.Symbol, args parser.List) (parser.List, error) {
	if len(args) != 1 {
		return nil, errf("%q requires one argument", string(op))
	}
	list, ok := args[0].(parser.List)
	if !ok {
		return nil, errf("%q argument must be a list, got %s", string(op), args[0])
	}
	if len(list) == 0 {
		return nil, errf("%q on empty list", string(op))
	}
	return list, nil
}

func isCompareOp(op parser.Symbol) bool {
	switch op {
	case "<", ">", "=", "<=", ">=":
		return true
	}
	return false
}

// applyCompare dispatches the comparison builtins: exactly two integer
// operands, result is 1 (true) or 0 (false).
func applyCompare(op parser.Symbol, args parser.List) (parser.SExpr, error) {
	if len(args) != 2 {
		return nil, errf("%q requires exactly two arguments", string(op))
	}
	a, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	var rv bool
	switch op {
	case "<":
		rv = a < b
	case ">":
		rv = a > b
	case "=":
		rv = a == b
	case "<=":
		rv = a <= b
	case ">=":
		rv = a >= b
	}
	if rv {
		return parser.Integer(1), nil
	}
	return parser.Integer(0), nil
}
