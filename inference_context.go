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
	"fmt"
	"iter"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/internal/typeutil"
	"github.com/wdamron/hmcheck/types"
)

// checkRun holds the state of one checking run: the global tables and the solver. It is created
// fresh for every call to Check, and nothing persists between runs.
type checkRun struct {
	ctx *typeutil.Context

	// Function signatures, data constructors and field accessors
	signatures map[string]*types.Scheme
	// Declared data types, applied to their type parameters
	records map[string]*types.Con
	// Type alias declarations, and their resolved expansions
	aliasDecls map[string]*ast.TypeAlias
	aliases    map[string]*aliasType
	// Positional field names of each data constructor ("" for unnamed fields)
	constructors map[string][]string
	// Record type declaring each named field
	fieldOwners map[string]string
	// Signature-less functions awaiting inference, bound to a placeholder variable
	pending map[string]*types.Var
	// Names of functions whose signature was inferred
	inferred map[string]bool

	// Index of each top-level declaration, and of the declaration being registered
	declPos map[ast.Decl]int
	decl    int
	// Diagnostics of global declarations, reported in declaration order once registration is done
	declDiags []declDiagnostic

	diags *Diagnostics
	log   *slog.Logger
}

type declDiagnostic struct {
	decl int
	msg  string
}

func newCheckRun(log *slog.Logger) *checkRun {
	return &checkRun{
		ctx:          typeutil.NewContext(),
		signatures:   make(map[string]*types.Scheme),
		records:      make(map[string]*types.Con),
		aliasDecls:   make(map[string]*ast.TypeAlias),
		aliases:      make(map[string]*aliasType),
		constructors: make(map[string][]string),
		fieldOwners:  make(map[string]string),
		pending:      make(map[string]*types.Var),
		inferred:     make(map[string]bool),
		declPos:      make(map[ast.Decl]int),
		diags:        &Diagnostics{log: log},
		log:          log,
	}
}

// Lookup a global name: signatures first, then placeholders of functions awaiting inference.
func (r *checkRun) lookupGlobal(name string) (*types.Scheme, bool) {
	if s, ok := r.signatures[name]; ok {
		return s, true
	}
	if tv, ok := r.pending[name]; ok {
		return types.Mono(tv), true
	}
	return nil, false
}

// Iterate over all global schemes, including placeholders of functions awaiting inference.
func (r *checkRun) globalSchemes() iter.Seq[*types.Scheme] {
	return func(yield func(*types.Scheme) bool) {
		for _, s := range r.signatures {
			if !yield(s) {
				return
			}
		}
		for _, tv := range r.pending {
			if !yield(types.Mono(tv)) {
				return
			}
		}
	}
}

// Report a problem with the declaration being registered.
func (r *checkRun) declf(format string, args ...interface{}) {
	r.declDiags = append(r.declDiags, declDiagnostic{decl: r.decl, msg: fmt.Sprintf(format, args...)})
}

func (r *checkRun) flushDeclDiagnostics() {
	slices.SortStableFunc(r.declDiags, func(a, b declDiagnostic) int { return a.decl - b.decl })
	for _, d := range r.declDiags {
		r.diags.Add(d.msg)
	}
	r.declDiags = nil
}

func (r *checkRun) unify(a, b types.Type) error {
	_, err := r.ctx.Unify(a, b)
	return err
}

func (r *checkRun) show(t types.Type) string { return types.TypeString(r.ctx.Resolve(t)) }

func (r *checkRun) functionSignatures(prog ast.Program) []Signature {
	var sigs []Signature
	seen := make(map[string]bool)
	for _, d := range prog {
		fn, ok := d.(*ast.Function)
		if !ok || seen[fn.Name] {
			continue
		}
		seen[fn.Name] = true
		s, ok := r.signatures[fn.Name]
		if !ok {
			continue
		}
		resolved := &types.Scheme{Quantifiers: s.Quantifiers, Body: r.ctx.Resolve(s.Body), Constraints: s.Constraints}
		sigs = append(sigs, Signature{Name: fn.Name, Scheme: resolved, Inferred: r.inferred[fn.Name]})
	}
	return sigs
}

// Diagnostics collects human-readable messages in the order they are reported.
type Diagnostics struct {
	list []string
	log  *slog.Logger
}

// Add a diagnostic message.
func (d *Diagnostics) Add(msg string) {
	d.list = append(d.list, msg)
	if d.log != nil {
		d.log.Debug("diagnostic", "message", msg)
	}
}

// Add a formatted diagnostic message.
func (d *Diagnostics) Addf(format string, args ...interface{}) { d.Add(fmt.Sprintf(format, args...)) }

// Get the number of diagnostics.
func (d *Diagnostics) Len() int { return len(d.list) }

// List returns a copy of the diagnostics.
func (d *Diagnostics) List() []string {
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}
