// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hmcheck

import (
	"errors"
	"fmt"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/types"
)

// inferer computes the types of expressions within a local environment. Names which are not bound
// locally are looked up in the global tables of the run.
type inferer struct {
	run *checkRun
	env Env
}

var _ ast.ExprVisitor = (*inferer)(nil)

func (r *checkRun) inferer(env Env) *inferer { return &inferer{run: r, env: env} }

func (in *inferer) infer(e ast.Expr) (types.Type, error) { return e.Accept(in) }

// Constraint violations are reported as-is; other failures are replaced with msg.
func describe(err error, msg string) error {
	var ce *types.ConstraintError
	if errors.As(err, &ce) {
		return err
	}
	return errors.New(msg)
}

func (in *inferer) lookup(name string) (*types.Scheme, bool) {
	if s, ok := in.env.Lookup(name); ok {
		return s, true
	}
	return in.run.lookupGlobal(name)
}

// Peel n parameter types from the front of a curried function type.
func (r *checkRun) peel(t types.Type, n int) (params []types.Type, rest types.Type, ok bool) {
	rest = t
	for i := 0; i < n; i++ {
		fn, isCon := r.ctx.Prune(rest).(*types.Con)
		if !isCon || !types.IsFunc(fn) {
			return params, rest, false
		}
		params = append(params, fn.Args[0])
		rest = fn.Args[1]
	}
	return params, rest, true
}

func (in *inferer) VisitLiteral(e *ast.Literal) (types.Type, error) { return e.Kind.Type(), nil }

func (in *inferer) VisitSymbol(e *ast.Symbol) (types.Type, error) {
	s, ok := in.lookup(e.Name)
	if !ok {
		return nil, errors.New("Unbound variable: " + e.Name)
	}
	return in.run.ctx.Instantiate(s), nil
}

func (in *inferer) VisitArithmetic(e *ast.Arithmetic) (types.Type, error) {
	l, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(l, types.Number); err != nil {
		return nil, describe(err, "Left operand of "+e.Op+" must be a number")
	}
	if err := in.run.unify(r, types.Number); err != nil {
		return nil, describe(err, "Right operand of "+e.Op+" must be a number")
	}
	return types.Number, nil
}

func (in *inferer) VisitArithmeticUnary(e *ast.ArithmeticUnary) (types.Type, error) {
	t, err := in.infer(e.Operand)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(t, types.Number); err != nil {
		return nil, describe(err, "Operand of "+e.Op+" must be a number")
	}
	return types.Number, nil
}

func (in *inferer) VisitComparison(e *ast.Comparison) (types.Type, error) {
	l, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(l, r); err != nil {
		return nil, describe(err, "Comparison operands must have the same type")
	}
	return types.Boolean, nil
}

func (in *inferer) VisitStringOp(e *ast.StringOp) (types.Type, error) {
	l, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	for _, t := range [...]types.Type{l, r} {
		if err := in.run.unify(t, types.String); err != nil {
			return nil, describe(err, "String operation requires string operands")
		}
	}
	return types.String, nil
}

func (in *inferer) VisitLogical(e *ast.Logical) (types.Type, error) {
	l, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(l, types.Boolean); err != nil {
		return nil, describe(err, "Left side of "+e.Op+" must be a boolean")
	}
	if err := in.run.unify(r, types.Boolean); err != nil {
		return nil, describe(err, "Right side of "+e.Op+" must be a boolean")
	}
	return types.Boolean, nil
}

func (in *inferer) VisitLogicalUnary(e *ast.LogicalUnary) (types.Type, error) {
	t, err := in.infer(e.Operand)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(t, types.Boolean); err != nil {
		return nil, describe(err, "Operand of "+e.Op+" must be a boolean")
	}
	return types.Boolean, nil
}

func (in *inferer) VisitIf(e *ast.If) (types.Type, error) {
	cond, err := in.infer(e.Cond)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(cond, types.Boolean); err != nil {
		return nil, errors.New("Condition must be a boolean")
	}
	then, err := in.infer(e.Then)
	if err != nil {
		return nil, err
	}
	els, err := in.infer(e.Else)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(then, els); err != nil {
		return nil, fmt.Errorf("Branch types don't match: %s vs %s", in.run.show(then), in.run.show(els))
	}
	return in.run.ctx.Resolve(then), nil
}

func (in *inferer) VisitLambda(e *ast.Lambda) (types.Type, error) {
	b := in.run.newPatternBinder(in.env)
	params := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		params[i] = in.run.ctx.FreshVar()
		if err := b.bind(p, params[i]); err != nil {
			return nil, err
		}
	}
	body, err := in.run.inferer(b.env).infer(e.Body)
	if err != nil {
		return nil, err
	}
	return in.run.ctx.Resolve(types.Curried(params, body)), nil
}

func (in *inferer) VisitApplication(e *ast.Application) (types.Type, error) {
	fn, err := in.infer(e.Func)
	if err != nil {
		return nil, err
	}
	arg, err := in.infer(e.Arg)
	if err != nil {
		return nil, err
	}
	ret := in.run.ctx.FreshVar()
	if err := in.run.unify(fn, types.Func(arg, ret)); err != nil {
		kind := "function"
		if c, ok := in.run.ctx.Prune(fn).(*types.Con); ok && !types.IsFunc(c) {
			kind = "non-function"
		}
		return nil, fmt.Errorf("Cannot apply %s to %s of type %s", in.run.show(arg), kind, in.run.show(fn))
	}
	return in.run.ctx.Resolve(ret), nil
}

func (in *inferer) VisitComposition(e *ast.Composition) (types.Type, error) {
	f, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	g, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	a, b, c := in.run.ctx.FreshVar(), in.run.ctx.FreshVar(), in.run.ctx.FreshVar()
	if err := in.run.unify(f, types.Func(b, c)); err != nil {
		return nil, errors.New("Left operand of composition must be a function")
	}
	if err := in.run.unify(g, types.Func(a, b)); err != nil {
		return nil, errors.New("Right operand of composition must be a function")
	}
	return in.run.ctx.Resolve(types.Func(a, c)), nil
}

func (in *inferer) VisitInfixApplication(e *ast.InfixApplication) (types.Type, error) {
	s, ok := in.lookup(e.Op)
	if !ok {
		return nil, errors.New("Unknown operator: " + e.Op)
	}
	op := in.run.ctx.Instantiate(s)
	if _, isVar := in.run.ctx.Prune(op).(*types.Var); isVar {
		skeleton := types.Curried([]types.Type{in.run.ctx.FreshVar(), in.run.ctx.FreshVar()}, in.run.ctx.FreshVar())
		if err := in.run.unify(op, skeleton); err != nil {
			return nil, errors.New("Operator " + e.Op + " has invalid type")
		}
	}
	params, ret, ok := in.run.peel(op, 2)
	if !ok {
		return nil, errors.New("Operator " + e.Op + " has invalid type")
	}
	l, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(l, params[0]); err != nil {
		return nil, fmt.Errorf("Type mismatch in infix application: left operand of `%s`: %v", e.Op, err)
	}
	r, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	if err := in.run.unify(r, params[1]); err != nil {
		return nil, fmt.Errorf("Type mismatch in infix application: right operand of `%s`: %v", e.Op, err)
	}
	return in.run.ctx.Resolve(ret), nil
}

func (in *inferer) VisitDataExpr(e *ast.DataExpr) (types.Type, error) {
	s, ok := in.run.signatures[e.Constructor]
	if _, isCtor := in.run.constructors[e.Constructor]; !ok || !isCtor {
		return nil, errors.New("Unknown constructor: " + e.Constructor)
	}
	t := in.run.ctx.Instantiate(s)
	for i, field := range e.Fields {
		params, rest, ok := in.run.peel(t, 1)
		if !ok {
			return nil, errors.New("Too many arguments to constructor " + e.Constructor)
		}
		ft, err := in.infer(field)
		if err != nil {
			return nil, err
		}
		if err := in.run.unify(ft, params[0]); err != nil {
			return nil, fmt.Errorf("Argument %d type mismatch for constructor %s: %v", i+1, e.Constructor, err)
		}
		t = rest
	}
	t = in.run.ctx.Resolve(t)
	if missing := types.Arity(t); missing > 0 {
		return nil, fmt.Errorf("Too few arguments to constructor %s: expected %d but got %d", e.Constructor, len(e.Fields)+missing, len(e.Fields))
	}
	return t, nil
}

func (in *inferer) VisitTuple(e *ast.Tuple) (types.Type, error) {
	elems := make([]types.Type, len(e.Elems))
	for i, elem := range e.Elems {
		t, err := in.infer(elem)
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	return in.run.ctx.Resolve(types.Tuple(elems...)), nil
}

func (in *inferer) VisitCons(e *ast.Cons) (types.Type, error) {
	head, err := in.infer(e.Head)
	if err != nil {
		return nil, err
	}
	tail, err := in.infer(e.Tail)
	if err != nil {
		return nil, err
	}
	elem := in.run.ctx.FreshVar()
	list := types.List(elem)
	if err := in.run.unify(tail, list); err != nil {
		return nil, errors.New("Tail of cons must be a list: " + in.run.show(tail))
	}
	if err := in.run.unify(head, elem); err != nil {
		return nil, fmt.Errorf("Head type doesn't match list element type: expected %s but found %s", in.run.show(elem), in.run.show(head))
	}
	return in.run.ctx.Resolve(list), nil
}

func (in *inferer) VisitList(e *ast.List) (types.Type, error) {
	if len(e.Elems) == 0 {
		return types.List(in.run.ctx.FreshVar()), nil
	}
	first, err := in.infer(e.Elems[0])
	if err != nil {
		return nil, err
	}
	for _, elem := range e.Elems[1:] {
		t, err := in.infer(elem)
		if err != nil {
			return nil, err
		}
		if err := in.run.unify(first, t); err != nil {
			return nil, fmt.Errorf("List elements must have the same type: expected %s but found %s", in.run.show(first), in.run.show(t))
		}
	}
	return in.run.ctx.Resolve(types.List(first)), nil
}

func (in *inferer) VisitOtherwise(e *ast.Otherwise) (types.Type, error) { return types.Boolean, nil }

// Local bindings are monomorphic, and each binding is visible to the bindings which follow it.
func (in *inferer) VisitLetIn(e *ast.LetIn) (types.Type, error) {
	env := in.env
	for _, b := range e.Bindings {
		t, err := in.run.inferer(env).infer(b.Value)
		if err != nil {
			return nil, err
		}
		env = env.Extend(b.Name, types.Mono(t))
	}
	return in.run.inferer(env).infer(e.Body)
}

func (in *inferer) VisitCase(e *ast.Case) (types.Type, error) {
	if len(e.Alternatives) == 0 {
		return nil, errors.New("Case expression without alternatives")
	}
	scrutinee, err := in.infer(e.Scrutinee)
	if err != nil {
		return nil, err
	}
	var result types.Type
	for _, alt := range e.Alternatives {
		b := in.run.newPatternBinder(in.env)
		if err := b.bind(alt.Pattern, scrutinee); err != nil {
			return nil, err
		}
		t, err := in.run.inferer(b.env).infer(alt.Body)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = t
			continue
		}
		if err := in.run.unify(result, t); err != nil {
			return nil, fmt.Errorf("Case alternative types don't match: expected %s but found %s", in.run.show(result), in.run.show(t))
		}
	}
	return in.run.ctx.Resolve(result), nil
}
