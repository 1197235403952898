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

	set "github.com/hashicorp/go-set/v3"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/types"
)

// patternBinder binds the variables of patterns into an environment. A binder is shared by every
// pattern of one parameter list (or one case alternative), so a name may be bound at most once.
type patternBinder struct {
	run   *checkRun
	env   Env
	bound *set.Set[string]
}

var _ ast.PatternVisitor = (*patternBinder)(nil)

func (r *checkRun) newPatternBinder(env Env) *patternBinder {
	return &patternBinder{run: r, env: env, bound: set.New[string](0)}
}

// Bind the variables of p, which must match values of type t.
func (b *patternBinder) bind(p ast.Pattern, t types.Type) error { return p.Accept(b, t) }

func (b *patternBinder) bindName(name string, t types.Type) error {
	if b.bound.Contains(name) {
		return fmt.Errorf("Duplicate variable name '%s'", name)
	}
	b.bound.Insert(name)
	b.env = b.env.Extend(name, types.Mono(t))
	return nil
}

func (b *patternBinder) VisitLiteralPattern(p *ast.LiteralPattern, expected types.Type) error {
	lt := p.Value.Kind.Type()
	if err := b.run.unify(lt, expected); err != nil {
		return fmt.Errorf("Literal pattern type mismatch: expected %s but found %s", b.run.show(expected), types.TypeString(lt))
	}
	return nil
}

func (b *patternBinder) VisitVarPattern(p *ast.VarPattern, expected types.Type) error {
	return b.bindName(p.Name, expected)
}

func (b *patternBinder) VisitWildcardPattern(p *ast.WildcardPattern, expected types.Type) error {
	return nil
}

func (b *patternBinder) VisitAsPattern(p *ast.AsPattern, expected types.Type) error {
	if err := b.bind(p.Pattern, expected); err != nil {
		return err
	}
	return b.bindName(p.Name, expected)
}

func (b *patternBinder) VisitConsPattern(p *ast.ConsPattern, expected types.Type) error {
	elem := b.run.ctx.FreshVar()
	if err := b.run.unify(expected, types.List(elem)); err != nil {
		return errors.New("Cons pattern expects a list but found " + b.run.show(expected))
	}
	if err := b.bind(p.Head, elem); err != nil {
		return err
	}
	return b.bind(p.Tail, types.List(elem))
}

func (b *patternBinder) VisitListPattern(p *ast.ListPattern, expected types.Type) error {
	var elem types.Type
	switch t := b.run.ctx.Prune(expected).(type) {
	case *types.Var:
		elem = b.run.ctx.FreshVar()
		if err := b.run.unify(t, types.List(elem)); err != nil {
			return fmt.Errorf("Pattern type mismatch: %v", err)
		}
	default:
		if !types.IsList(t) {
			return errors.New("Pattern expects a list but found non-list type: " + b.run.show(t))
		}
		elem = types.Elem(t)
	}
	for _, sub := range p.Elems {
		if err := b.bind(sub, elem); err != nil {
			return err
		}
	}
	return nil
}

func (b *patternBinder) VisitTuplePattern(p *ast.TuplePattern, expected types.Type) error {
	var elems []types.Type
	switch t := b.run.ctx.Prune(expected).(type) {
	case *types.Var:
		elems = make([]types.Type, len(p.Elems))
		for i := range elems {
			elems[i] = b.run.ctx.FreshVar()
		}
		if err := b.run.unify(t, types.Tuple(elems...)); err != nil {
			return fmt.Errorf("Pattern type mismatch: %v", err)
		}
	case *types.Con:
		if !types.IsTuple(t) {
			return errors.New("Pattern expects a tuple but found non-tuple type: " + b.run.show(t))
		}
		if len(t.Args) != len(p.Elems) {
			return fmt.Errorf("Tuple arity mismatch: expected %d but found %d", len(t.Args), len(p.Elems))
		}
		elems = t.Args
	}
	for i, sub := range p.Elems {
		if err := b.bind(sub, elems[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *patternBinder) VisitConstructorPattern(p *ast.ConstructorPattern, expected types.Type) error {
	return b.bindConstructor(p.Constructor, p.Args, expected)
}

func (b *patternBinder) VisitApplicationPattern(p *ast.ApplicationPattern, expected types.Type) error {
	return b.bindConstructor(p.Constructor, p.Args, expected)
}

// Instantiate the constructor and match its result type with expected, returning the field types.
func (b *patternBinder) matchConstructor(name string, expected types.Type) ([]string, []types.Type, error) {
	fields, ok := b.run.constructors[name]
	if !ok {
		return nil, nil, errors.New("Unknown constructor: " + name)
	}
	t := b.run.ctx.Instantiate(b.run.signatures[name])
	params, ret, _ := b.run.peel(t, len(fields))
	if err := b.run.unify(ret, expected); err != nil {
		return nil, nil, fmt.Errorf("Pattern type mismatch: %v", err)
	}
	return fields, params, nil
}

func (b *patternBinder) bindConstructor(name string, args []ast.Pattern, expected types.Type) error {
	if fields, ok := b.run.constructors[name]; ok && len(fields) != len(args) {
		return fmt.Errorf("Constructor %s expects %d arguments but got %d", name, len(fields), len(args))
	}
	_, params, err := b.matchConstructor(name, expected)
	if err != nil {
		return err
	}
	for i, sub := range args {
		if err := b.bind(sub, params[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *patternBinder) VisitRecordPattern(p *ast.RecordPattern, expected types.Type) error {
	fields, params, err := b.matchConstructor(p.Constructor, expected)
	if err != nil {
		return err
	}
	for _, fp := range p.Fields {
		index := -1
		for i, name := range fields {
			if name == fp.Field {
				index = i
				break
			}
		}
		if index < 0 {
			return fmt.Errorf("Constructor %s has no field '%s'", p.Constructor, fp.Field)
		}
		if err := b.bind(fp.Pattern, params[index]); err != nil {
			return err
		}
	}
	return nil
}
