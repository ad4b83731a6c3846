package eval

// Implements the stateful evaluator variant and the session entry
// points consumed by a host (REPL, embedding boundary, ...).

import (
	"minilisp/parser"
	"minilisp/symbol"
)

// maxDepth caps nested evaluation steps within one top-level call.
// Recursion in evaluated code recurses through eval, so without a cap
// a runaway user function would exhaust the host stack instead of
// returning an error.
const maxDepth = 4096

// A Context is one interpreter session. It owns the symbol table, the
// function store shared by every call in the session, and the ambient
// top-level environment. Independent Contexts share nothing. A Context
// is not safe for concurrent use: the model is a single evaluator
// goroutine per session.
type Context struct {
	symbols *symbol.Table
	funcs   *FuncStore
	env     *Environment
}

func NewContext() *Context {
	return &Context{
		symbols: symbol.NewTable(),
		funcs:   newFuncStore(),
		env:     newEnvironment(nil),
	}
}

// Evaluate parses one expression from src and evaluates it against
// the session state. It either fully succeeds and returns the result
// value, or fully fails and returns an error; in the failure case the
// only session state affected is whatever a defun executed by an
// earlier successful call already committed. Numeric and non-numeric
// results stay distinct: type-switch on the returned SExpr.
func (ctx *Context) Evaluate(src string) (parser.SExpr, error) {
	expr, err := parser.ParseInterned(src, ctx.symbols)
	if err != nil {
		return nil, err
	}
	return ctx.eval(expr, ctx.env, 0)
}

// EvaluateInt is the restricted adapter for hosts that can only carry
// an integer across their boundary: it errors on a non-numeric result
// (such as the name returned by defun) instead of coercing it.
func (ctx *Context) EvaluateInt(src string) (int64, error) {
	rv, err := ctx.Evaluate(src)
	if err != nil {
		return 0, err
	}
	n, ok := rv.(parser.Integer)
	if !ok {
		return 0, errf("final result must be a number, got %s", rv)
	}
	return int64(n), nil
}

// Reset clears the accumulated function definitions and the symbol
// table, giving an isolated session without restarting the process.
// It must not be called while an evaluation is in flight.
func (ctx *Context) Reset() {
	ctx.funcs.Clear()
	ctx.symbols.Clear()
	ctx.env = newEnvironment(nil)
}

// NumFunctions returns the number of live function definitions.
func (ctx *Context) NumFunctions() int { return ctx.funcs.Len() }

// NumSymbols returns the number of interned symbols.
func (ctx *Context) NumSymbols() int { return ctx.symbols.Len() }

func (ctx *Context) eval(expr parser.SExpr, env *Environment, depth int) (parser.SExpr, error) {
	if depth > maxDepth {
		return nil, errf("recursion too deep (limit %d)", maxDepth)
	}
	switch expr := expr.(type) {
	case parser.Integer:
		return expr, nil
	case parser.Symbol:
		// variables and functions are separate namespaces: no
		// fallback to the function store here
		v, ok := env.Lookup(string(expr))
		if !ok {
			return nil, errf("unbound variable %q", string(expr))
		}
		return v, nil
	case parser.List:
		if len(expr) == 0 {
			return nil, errf("cannot eval empty list")
		}
		op, ok := expr[0].(parser.Symbol)
		if !ok {
			return nil, errf("operator must be a symbol, got %s", expr[0])
		}
		switch op {
		case "quote":
			if len(expr) != 2 {
				return nil, errf("'quote' requires exactly one argument")
			}
			return expr[1], nil
		case "if":
			return ctx.evalIf(expr, env, depth)
		case "defun":
			return ctx.evalDefun(expr)
		}
		args := make(parser.List, 0, len(expr)-1)
		for _, sub := range expr[1:] {
			v, err := ctx.eval(sub, env, depth+1)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		// comparisons are checked before user functions, so a defun
		// of the same name never shadows them
		if isCompareOp(op) {
			return applyCompare(op, args)
		}
		if fn, ok := ctx.funcs.Lookup(string(op)); ok {
			return ctx.apply(op, fn, args, env, depth)
		}
		return applyOp(op, args)
	}
	return nil, errf("invalid expression")
}

func (ctx *Context) evalIf(expr parser.List, env *Environment, depth int) (parser.SExpr, error) {
	if len(expr) != 4 {
		return nil, errf("'if' requires exactly three arguments")
	}
	cond, err := ctx.eval(expr[1], env, depth+1)
	if err != nil {
		return nil, err
	}
	n, err := asInt(cond)
	if err != nil {
		return nil, err
	}
	// 0 is false, any other integer is true; the untaken branch is
	// never evaluated
	if n != 0 {
		return ctx.eval(expr[2], env, depth+1)
	}
	return ctx.eval(expr[3], env, depth+1)
}

func (ctx *Context) evalDefun(expr parser.List) (parser.SExpr, error) {
	if len(expr) != 4 {
		return nil, errf("'defun' requires exactly three arguments")
	}
	name, ok := expr[1].(parser.Symbol)
	if !ok {
		return nil, errf("function name must be a symbol, got %s", expr[1])
	}
	params, ok := expr[2].(parser.List)
	if !ok {
		return nil, errf("parameter list must be a list, got %s", expr[2])
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		sym, ok := p.(parser.Symbol)
		if !ok {
			return nil, errf("parameter must be a symbol, got %s", p)
		}
		names = append(names, string(sym))
	}
	ctx.funcs.Define(string(name), &Lambda{Params: names, Body: expr[3]})
	return name, nil
}

func (ctx *Context) apply(name parser.Symbol, fn *Lambda, args parser.List, caller *Environment, depth int) (parser.SExpr, error) {
	if len(args) != len(fn.Params) {
		return nil, errf("%q takes %d argument(s), got %d",
			string(name), len(fn.Params), len(args))
	}
	// the callee frame chains to the caller's, so the body sees every
	// binding the caller had in scope at call time (dynamic scoping),
	// with the parameters shadowing same-named caller bindings
	env := newEnvironment(caller)
	for i, p := range fn.Params {
		env.Bind(p, args[i])
	}
	return ctx.eval(fn.Body, env, depth+1)
}
