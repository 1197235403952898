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
	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/slices"

	"github.com/wdamron/hmcheck/types"
)

// Context is the solver state of one checking run: the variable counter, the accumulated
// substitution and the type-class constraints of unresolved variables.
//
// The substitution and constraints are persistent maps, so a transaction is a snapshot of both
// and rolling back is constant-time. A Context must not be used concurrently.
type Context struct {
	VarTracker VarTracker

	subst       *immutable.Map // var id -> types.Type
	constraints *immutable.Map // var id -> sorted []string, never mutated once stored
	bound       []int          // var ids in binding order
}

func NewContext() *Context {
	ctx := &Context{}
	ctx.Reset()
	return ctx
}

// Reset discards all bindings and constraints and restarts variable ids from zero.
func (ctx *Context) Reset() {
	ctx.VarTracker.Reset()
	ctx.subst = immutable.NewMap(nil)
	ctx.constraints = immutable.NewMap(nil)
	ctx.bound = ctx.bound[:0]
}

// Create an unbound type-variable with a unique id, carrying the given type-class constraints.
func (ctx *Context) FreshVar(constraints ...string) *types.Var {
	tv := ctx.VarTracker.New()
	for _, c := range constraints {
		ctx.AddConstraint(tv.ID, c)
	}
	return tv
}

// Create an unbound type-variable with a unique id and a display name.
func (ctx *Context) FreshNamedVar(name string, constraints ...string) *types.Var {
	tv := ctx.VarTracker.NewNamed(name)
	for _, c := range constraints {
		ctx.AddConstraint(tv.ID, c)
	}
	return tv
}

// Constraints returns the sorted type-class constraints accumulated for a variable.
// The returned slice must not be modified.
func (ctx *Context) Constraints(id int) []string {
	cs, ok := ctx.constraints.Get(id)
	if !ok {
		return nil
	}
	return cs.([]string)
}

// AddConstraint adds a type-class constraint to an unresolved variable.
func (ctx *Context) AddConstraint(id int, class string) {
	cs := ctx.Constraints(id)
	if slices.Contains(cs, class) {
		return
	}
	next := make([]string, len(cs), len(cs)+1)
	copy(next, cs)
	next = append(next, class)
	slices.Sort(next)
	ctx.constraints = ctx.constraints.Set(id, next)
}

func (ctx *Context) mergeConstraints(id int, from []string) {
	if len(from) == 0 {
		return
	}
	cs := set.From(ctx.Constraints(id))
	if !cs.InsertSlice(from) {
		return
	}
	merged := cs.Slice()
	slices.Sort(merged)
	ctx.constraints = ctx.constraints.Set(id, merged)
}

func (ctx *Context) binding(id int) (types.Type, bool) {
	t, ok := ctx.subst.Get(id)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

func (ctx *Context) bind(id int, t types.Type) {
	ctx.subst = ctx.subst.Set(id, t)
	ctx.bound = append(ctx.bound, id)
}

// Prune follows variable bindings at the top level of t.
func (ctx *Context) Prune(t types.Type) types.Type {
	for {
		tv, ok := t.(*types.Var)
		if !ok {
			return t
		}
		next, ok := ctx.binding(tv.ID)
		if !ok {
			return t
		}
		t = next
	}
}

// Resolve applies the accumulated substitution to t, following chained bindings.
func (ctx *Context) Resolve(t types.Type) types.Type {
	if ctx.subst.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case *types.Var:
		if next, ok := ctx.binding(t.ID); ok {
			return ctx.Resolve(next)
		}
		return t
	case *types.Con:
		var args []types.Type
		for i, arg := range t.Args {
			u := ctx.Resolve(arg)
			if u != arg && args == nil {
				args = make([]types.Type, len(t.Args))
				copy(args, t.Args[:i])
			}
			if args != nil {
				args[i] = u
			}
		}
		if args == nil {
			return t
		}
		return &types.Con{Name: t.Name, Args: args}
	}
	return t
}

// Subst returns the accumulated substitution, with every binding fully resolved.
func (ctx *Context) Subst() types.Subst {
	return ctx.substSince(0)
}

func (ctx *Context) substSince(n int) types.Subst {
	s := make(types.Subst, len(ctx.bound)-n)
	for _, id := range ctx.bound[n:] {
		t, _ := ctx.binding(id)
		s[id] = ctx.Resolve(t)
	}
	return s
}

type UnifyTxn struct {
	subst       *immutable.Map
	constraints *immutable.Map
	bound       int
}

// NewUnifyTxn snapshots the solver state.
func (ctx *Context) NewUnifyTxn() UnifyTxn {
	return UnifyTxn{ctx.subst, ctx.constraints, len(ctx.bound)}
}

// Rollback restores the solver state of the transaction. Allocated variable ids are not reused.
func (ctx *Context) Rollback(txn UnifyTxn) {
	ctx.subst, ctx.constraints, ctx.bound = txn.subst, txn.constraints, ctx.bound[:txn.bound]
}
