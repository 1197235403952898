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
	"context"
	"errors"
	"log/slog"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/types"
)

// Check every function against its declared signature, inferring a signature for functions which
// have none. Functions are visited in declaration order.
func (r *checkRun) typeCheck(prog ast.Program) {
	var funcs []*ast.Function
	for _, d := range prog {
		fn, ok := d.(*ast.Function)
		if !ok {
			continue
		}
		funcs = append(funcs, fn)
		if _, ok := r.signatures[fn.Name]; ok {
			continue
		}
		if _, ok := r.pending[fn.Name]; !ok {
			r.pending[fn.Name] = r.ctx.FreshVar()
		}
	}
	for _, fn := range funcs {
		r.checkFunction(fn)
	}
}

func (r *checkRun) checkFunction(fn *ast.Function) {
	defer func() {
		if p := recover(); p != nil {
			r.diags.Addf("Internal error checking '%s': %v", fn.Name, p)
		}
	}()

	scheme, ok := r.signatures[fn.Name]
	if !ok {
		r.diags.Addf("Function '%s' is defined but has no signature", fn.Name)
		if len(fn.Equations) == 0 {
			return
		}
		inferred, err := r.inferFunction(fn)
		if err != nil {
			r.diags.Addf("Type error inferring '%s': %v", fn.Name, err)
			return
		}
		scheme = inferred
		r.signatures[fn.Name] = scheme
		r.inferred[fn.Name] = true
		r.log.Debug("inferred signature", "name", fn.Name, "type", types.SchemeString(scheme))
	}

	arity := types.Arity(r.ctx.Resolve(scheme.Body))
	for _, eq := range fn.Equations {
		if len(eq.Patterns) != arity {
			r.diags.Addf("Arity mismatch in function '%s'", fn.Name)
			continue
		}
		if r.log.Enabled(context.Background(), slog.LevelDebug) {
			r.log.Debug("checking equation", "equation", ast.EquationString(fn.Name, eq))
		}
		for _, err := range r.checkEquation(eq, scheme) {
			r.diags.Addf("Type error in '%s': %v", fn.Name, err)
		}
	}
}

// Infer the type of a function from its first equation. The placeholder variable of the function is
// unified with the result before generalizing, so recursive uses constrain the inferred type.
func (r *checkRun) inferFunction(fn *ast.Function) (*types.Scheme, error) {
	eq := fn.Equations[0]
	b := r.newPatternBinder(NewEnv())
	params := make([]types.Type, len(eq.Patterns))
	for i, p := range eq.Patterns {
		params[i] = r.ctx.FreshVar()
		if err := b.bind(p, params[i]); err != nil {
			return nil, err
		}
	}
	in := r.inferer(b.env)

	var ret types.Type
	switch body := eq.Body.(type) {
	case *ast.UnguardedBody:
		t, err := in.infer(body.Expr)
		if err != nil {
			return nil, err
		}
		ret = t
	case ast.Guards:
		// Failing clauses are reported when the equation is checked against the inferred signature.
		ret = r.ctx.FreshVar()
		for _, g := range body {
			txn := r.ctx.NewUnifyTxn()
			if err := r.checkGuard(in, g, ret); err != nil {
				r.ctx.Rollback(txn)
			}
		}
	default:
		return nil, errors.New("Missing equation body")
	}

	t := types.Curried(params, ret)
	if tv, ok := r.pending[fn.Name]; ok {
		if err := r.unify(tv, t); err != nil {
			return nil, err
		}
		delete(r.pending, fn.Name)
	}
	return r.ctx.Generalize(r.globalSchemes(), t), nil
}

// Check one equation against a fresh instance of the function's scheme. An unguarded body stops at
// the first error; each failing guard clause is rolled back and reported separately.
func (r *checkRun) checkEquation(eq *ast.Equation, scheme *types.Scheme) []error {
	params, ret, _ := r.peel(r.ctx.Instantiate(scheme), len(eq.Patterns))
	b := r.newPatternBinder(NewEnv())
	for i, p := range eq.Patterns {
		if err := b.bind(p, params[i]); err != nil {
			return []error{err}
		}
	}
	in := r.inferer(b.env)

	switch body := eq.Body.(type) {
	case *ast.UnguardedBody:
		t, err := in.infer(body.Expr)
		if err != nil {
			return []error{err}
		}
		if err := r.unify(t, ret); err != nil {
			return []error{err}
		}
		return nil
	case ast.Guards:
		var errs []error
		for _, g := range body {
			txn := r.ctx.NewUnifyTxn()
			if err := r.checkGuard(in, g, ret); err != nil {
				r.ctx.Rollback(txn)
				errs = append(errs, err)
			}
		}
		return errs
	}
	return []error{errors.New("Missing equation body")}
}

func (r *checkRun) checkGuard(in *inferer, g *ast.GuardedBody, ret types.Type) error {
	if _, ok := g.Condition.(*ast.Otherwise); !ok {
		cond, err := in.infer(g.Condition)
		if err != nil {
			return err
		}
		if err := r.unify(cond, types.Boolean); err != nil {
			return err
		}
	}
	t, err := in.infer(g.Body)
	if err != nil {
		return err
	}
	return r.unify(t, ret)
}
