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

package typeutil

import (
	"github.com/wdamron/hmcheck/types"
)

// Unify computes the most general substitution which makes a and b equal, and adds it to the
// accumulated substitution. The returned substitution contains only the bindings added by this call.
//
// Unification is atomic: on failure, the solver state is left unchanged.
func (ctx *Context) Unify(a, b types.Type) (types.Subst, error) {
	txn := ctx.NewUnifyTxn()
	if err := ctx.unify(a, b); err != nil {
		ctx.Rollback(txn)
		return nil, err
	}
	return ctx.substSince(txn.bound), nil
}

// CanUnify reports whether a and b unify, without modifying the solver state.
func (ctx *Context) CanUnify(a, b types.Type) bool {
	txn := ctx.NewUnifyTxn()
	err := ctx.unify(a, b)
	ctx.Rollback(txn)
	return err == nil
}

// UnifyVar binds v to t, after the occurs check and after checking every constraint of v against t.
func (ctx *Context) UnifyVar(v *types.Var, t types.Type) (types.Subst, error) {
	txn := ctx.NewUnifyTxn()
	var err error
	if _, bound := ctx.binding(v.ID); bound {
		err = ctx.unify(v, t)
	} else {
		err = ctx.unifyVar(v, ctx.Prune(t))
	}
	if err != nil {
		ctx.Rollback(txn)
		return nil, err
	}
	return ctx.substSince(txn.bound), nil
}

// CheckConstraint requires t to be an instance of the type-class. Unresolved variables accumulate
// the constraint, to be checked once they are bound.
func (ctx *Context) CheckConstraint(class string, t types.Type) error {
	txn := ctx.NewUnifyTxn()
	if err := ctx.checkConstraint(class, t); err != nil {
		ctx.Rollback(txn)
		return err
	}
	return nil
}

func (ctx *Context) unify(a, b types.Type) error {
	a, b = ctx.Prune(a), ctx.Prune(b)
	if a == b {
		return nil
	}
	if av, ok := a.(*types.Var); ok {
		return ctx.unifyVar(av, b)
	}
	if bv, ok := b.(*types.Var); ok {
		return ctx.unifyVar(bv, a)
	}
	ac, bc := a.(*types.Con), b.(*types.Con)
	if ac.Name != bc.Name || len(ac.Args) != len(bc.Args) {
		return &types.MismatchError{A: ctx.Resolve(a), B: ctx.Resolve(b)}
	}
	// Bindings from earlier arguments are visible to later arguments through Prune/Resolve:
	for i := range ac.Args {
		if err := ctx.unify(ac.Args[i], bc.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

// v must be unbound and t must be pruned.
func (ctx *Context) unifyVar(v *types.Var, t types.Type) error {
	tv, isVar := t.(*types.Var)
	if isVar && tv.ID == v.ID {
		return nil
	}
	if !isVar {
		if resolved := ctx.Resolve(t); types.Occurs(v.ID, resolved) {
			return &types.OccursError{Var: v, Type: resolved}
		}
	}
	vcs := ctx.Constraints(v.ID)
	for _, c := range vcs {
		if err := ctx.checkConstraint(c, t); err != nil {
			return err
		}
	}
	if isVar {
		ctx.mergeConstraints(tv.ID, vcs)
		ctx.mergeConstraints(v.ID, ctx.Constraints(tv.ID))
	}
	ctx.bind(v.ID, t)
	return nil
}

func (ctx *Context) checkConstraint(class string, t types.Type) error {
	switch t := ctx.Prune(t).(type) {
	case *types.Var:
		ctx.AddConstraint(t.ID, class)
	case *types.Con:
		if !types.HasInstance(class, t.Name) {
			return &types.ConstraintError{Class: class, Type: ctx.Resolve(t)}
		}
		if types.IsStructural(class) {
			for _, arg := range t.Args {
				if err := ctx.checkConstraint(class, arg); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
