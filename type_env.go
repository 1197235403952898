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
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/hmcheck/types"
)

var emptyScope = immutable.NewSortedMap(nil)

// Env is a persistent mapping from locally-bound identifiers (pattern and lambda variables) to
// their schemes. Extending an environment never modifies it, so copying an Env is free.
//
// Lookups which miss the local environment fall back to the global signature table.
type Env struct {
	m *immutable.SortedMap
}

func NewEnv() Env { return Env{emptyScope} }

func (e Env) scope() *immutable.SortedMap {
	if e.m == nil {
		return emptyScope
	}
	return e.m
}

// Lookup the scheme bound to a name.
func (e Env) Lookup(name string) (*types.Scheme, bool) {
	s, ok := e.scope().Get(name)
	if !ok {
		return nil, false
	}
	return s.(*types.Scheme), true
}

// Extend returns an environment in which name is bound to s, shadowing any existing binding.
func (e Env) Extend(name string, s *types.Scheme) Env {
	return Env{e.scope().Set(name, s)}
}

// Get the number of bindings.
func (e Env) Len() int { return e.scope().Len() }

// Iterate over bindings, sorted by name.
func (e Env) All() iter.Seq2[string, *types.Scheme] {
	return func(yield func(string, *types.Scheme) bool) {
		it := e.scope().Iterator()
		for !it.Done() {
			k, v := it.Next()
			if !yield(k.(string), v.(*types.Scheme)) {
				return
			}
		}
	}
}

// Iterate over bound schemes, sorted by name.
func (e Env) Schemes() iter.Seq[*types.Scheme] {
	return func(yield func(*types.Scheme) bool) {
		for _, s := range e.All() {
			if !yield(s) {
				return
			}
		}
	}
}
