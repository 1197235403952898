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

// hmcheck provides type checking for a small Haskell-like functional language.
//
// The checker implements Hindley-Milner inference (Algorithm W with Robinson unification) extended
// with type-class constraints drawn from a fixed table of built-in classes. Programs are consumed as
// finished ASTs (see package ast); the checker returns an ordered list of diagnostics.
//
//
// Supported Features:
//
//   * Let-polymorphism for top-level functions with declared or inferred signatures
//   * Type-class constraints (Eq, Ord, Num, Show, ...) checked when variables are bound
//   * Algebraic data types with type parameters, positional and named fields
//   * Transparent type aliases, with detection of cyclic aliases
//   * Guarded equations, lambdas, case analysis and monomorphic local bindings
//   * Typing rules for built-in higher-order list operators (map, filter, find, any, all, ...)
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Principal type-schemes for functional programs (Damas, Milner 1982): https://doi.org/10.1145/582153.582176
package hmcheck

import (
	"io"
	"log/slog"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/types"
)

// TypeChecker checks programs. Each call to Check or Analyze starts from empty global tables and a
// fresh variable counter, so a TypeChecker may be reused sequentially. A TypeChecker must not be
// used concurrently; independent TypeCheckers share no state.
type TypeChecker struct {
	log *slog.Logger
}

// Option configures a TypeChecker.
type Option func(*TypeChecker)

// WithLogger sets the logger which receives debug records for declarations, functions and
// diagnostics. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(tc *TypeChecker) {
		if l != nil {
			tc.log = l
		}
	}
}

// Create a new type checker.
func New(opts ...Option) *TypeChecker {
	tc := &TypeChecker{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Signature is the final type of a top-level function, declared or inferred.
type Signature struct {
	Name     string
	Scheme   *types.Scheme
	Inferred bool
}

func (s Signature) String() string { return s.Name + " :: " + types.SchemeString(s.Scheme) }

// Analysis is the outcome of checking a program.
type Analysis struct {
	// Diagnostics in declaration/traversal order
	Diagnostics []string
	// Signatures of functions, in declaration order. Functions whose type could not be inferred are omitted.
	Signatures []Signature
}

// Check type-checks a program and returns its diagnostics. An empty result means the program is well-typed.
func (tc *TypeChecker) Check(prog ast.Program) []string {
	return tc.Analyze(prog).Diagnostics
}

// Analyze type-checks a program and returns its diagnostics together with the signatures of its functions.
func (tc *TypeChecker) Analyze(prog ast.Program) *Analysis {
	run := newCheckRun(tc.log)
	run.buildGlobalEnvironment(prog)
	run.typeCheck(prog)
	return &Analysis{Diagnostics: run.diags.List(), Signatures: run.functionSignatures(prog)}
}
