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

// Higher-order list operators take a function of one argument on the left and a list on the right.
// The element type of the list is the parameter type of the function. The output of the function is
// either free (Collect) or boolean (every predicate).
func (in *inferer) VisitListBinary(e *ast.ListBinary) (types.Type, error) {
	switch e.Op {
	case ast.Collect, ast.Select, ast.Detect, ast.AnySatisfy, ast.AllSatisfy:
	default:
		return nil, errors.New("Unknown list operator: " + e.Op)
	}
	fn, err := in.infer(e.Left)
	if err != nil {
		return nil, err
	}
	list, err := in.infer(e.Right)
	if err != nil {
		return nil, err
	}
	ctx := in.run.ctx
	if resolved := ctx.Resolve(fn); types.Arity(resolved) != 1 {
		if _, isVar := resolved.(*types.Var); !isVar {
			return nil, errors.New(e.Op + "'s left operand expects to have only one argument")
		}
	}

	elem := ctx.FreshVar()
	if err := in.run.unify(list, types.List(elem)); err != nil {
		return nil, errors.New(e.Op + "'s right operand must be a list")
	}
	var out types.Type = types.Boolean
	if e.Op == ast.Collect {
		out = ctx.FreshVar()
	}
	expected := types.Func(elem, out)
	if err := in.run.unify(fn, expected); err != nil {
		return nil, fmt.Errorf("%s's left operand must be a function of type %s", e.Op, in.run.show(expected))
	}

	switch e.Op {
	case ast.Collect:
		return ctx.Resolve(types.List(out)), nil
	case ast.Select:
		return ctx.Resolve(types.List(elem)), nil
	case ast.Detect:
		return ctx.Resolve(elem), nil
	default:
		return types.Boolean, nil
	}
}

func (in *inferer) VisitListUnary(e *ast.ListUnary) (types.Type, error) {
	operand, err := in.infer(e.Operand)
	if err != nil {
		return nil, err
	}
	ctx := in.run.ctx
	switch e.Op {
	case ast.DetectMax, ast.DetectMin:
		elem := ctx.FreshVar("Ord")
		if err := in.run.unify(operand, types.List(elem)); err != nil {
			return nil, describe(err, e.Op+" expects operand to be a list of an Ord type")
		}
		return ctx.Resolve(elem), nil
	case ast.Size:
		if err := in.run.unify(operand, types.List(ctx.FreshVar())); err != nil {
			return nil, errors.New(e.Op + " expects operand to be a list")
		}
		return types.Number, nil
	}
	return nil, errors.New("Unknown list operator: " + e.Op)
}
