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
	"iter"

	set "github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hmcheck/types"
)

// FreeTypeVars returns the unresolved variables of t, each mapped to its accumulated constraints.
func (ctx *Context) FreeTypeVars(t types.Type) map[int][]string {
	ids := types.FreeVars(ctx.Resolve(t))
	free := make(map[int][]string, len(ids))
	for _, id := range ids {
		free[id] = ctx.Constraints(id)
	}
	return free
}

// Generalize quantifies the variables of t which are not free in the environment. The constraints of
// quantified variables are carried into the scheme.
//
// Quantifiers are ordered by first occurrence within t.
func (ctx *Context) Generalize(env iter.Seq[*types.Scheme], t types.Type) *types.Scheme {
	t = ctx.Resolve(t)
	envFree := set.New[int](0)
	if env != nil {
		for s := range env {
			for _, id := range types.FreeVars(ctx.Resolve(s.Body)) {
				if !s.Quantifies(id) {
					envFree.Insert(id)
				}
			}
		}
	}
	scheme := &types.Scheme{Body: t}
	for _, id := range types.FreeVars(t) {
		if envFree.Contains(id) {
			continue
		}
		scheme.Quantifiers = append(scheme.Quantifiers, id)
		if cs := ctx.Constraints(id); len(cs) > 0 {
			if scheme.Constraints == nil {
				scheme.Constraints = make(map[int][]string)
			}
			scheme.Constraints[id] = cs
		}
	}
	return scheme
}
