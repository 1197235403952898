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
	"unicode"
	"unicode/utf8"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/internal/util"
	"github.com/wdamron/hmcheck/types"
)

// Built-in names of primitive types
var primitiveTypes = map[string]types.Type{
	"Int":     types.Number,
	"Integer": types.Number,
	"Float":   types.Number,
	"Double":  types.Number,
	"String":  types.String,
	"Char":    types.Char,
	"Bool":    types.Boolean,
	"Boolean": types.Boolean,
}

// Resolved expansion of a type alias. Named variables in the body are replaced with variables of the
// same name in the scope of each use.
type aliasType struct {
	body        types.Type
	constraints map[int][]string
}

// Register data types and type aliases, then constructors with their field accessors, then signatures.
// Diagnostics are reported in declaration order, whatever the pass which finds them.
func (r *checkRun) buildGlobalEnvironment(prog ast.Program) {
	var (
		records []*ast.Record
		aliases []*ast.TypeAlias
		sigs    []*ast.TypeSignature
	)
	for i, d := range prog {
		r.declPos[d] = i
		switch d := d.(type) {
		case *ast.Record:
			records = append(records, d)
		case *ast.TypeAlias:
			aliases = append(aliases, d)
		case *ast.TypeSignature:
			sigs = append(sigs, d)
		}
	}

	scopes := make(map[*ast.Record]map[string]*types.Var, len(records))
	for _, rec := range records {
		r.decl = r.declPos[rec]
		if r.typeDeclared(rec.Name) {
			r.declf("Multiple declaration of '%s'.", rec.Name)
			continue
		}
		scope := make(map[string]*types.Var, len(rec.Params))
		params := make([]types.Type, 0, len(rec.Params))
		for _, p := range rec.Params {
			if _, ok := scope[p]; !ok {
				scope[p] = r.ctx.FreshNamedVar(p)
			}
			params = append(params, scope[p])
		}
		r.records[rec.Name] = types.NewCon(rec.Name, params...)
		scopes[rec] = scope
		r.log.Debug("registered data type", "name", rec.Name, "params", len(params))
	}

	r.registerAliases(aliases)

	for _, rec := range records {
		if scope, ok := scopes[rec]; ok {
			r.decl = r.declPos[rec]
			r.registerConstructors(rec, scope)
		}
	}

	for _, sig := range sigs {
		r.decl = r.declPos[sig]
		r.registerSignature(sig)
	}

	r.flushDeclDiagnostics()
}

func (r *checkRun) typeDeclared(name string) bool {
	if _, ok := r.records[name]; ok {
		return true
	}
	_, ok := r.aliasDecls[name]
	return ok
}

// Register aliases, rejecting duplicates and every alias which participates in a cycle. Expansions
// are resolved lazily, so aliases may refer to aliases declared later.
func (r *checkRun) registerAliases(aliases []*ast.TypeAlias) {
	var decls []*ast.TypeAlias
	index := make(map[string]int, len(aliases))
	for _, a := range aliases {
		r.decl = r.declPos[a]
		if r.typeDeclared(a.Name) {
			r.declf("Multiple declaration of '%s'.", a.Name)
			continue
		}
		index[a.Name] = len(decls)
		decls = append(decls, a)
		r.aliasDecls[a.Name] = a
	}
	if len(decls) == 0 {
		return
	}

	g := util.NewGraph(len(decls))
	for i, a := range decls {
		refs := &typeRefs{}
		a.Value.Accept(refs)
		for _, name := range refs.names {
			if j, ok := index[name]; ok {
				g.AddEdge(i, j)
			}
		}
	}
	cyclic := g.Cyclic()
	for i, a := range decls {
		if cyclic[i] {
			r.decl = r.declPos[a]
			r.declf("Cyclic type alias '%s'", a.Name)
			delete(r.aliasDecls, a.Name)
		}
	}
	for i, a := range decls {
		if !cyclic[i] {
			exp, _ := r.alias(a.Name)
			r.log.Debug("registered type alias", "name", a.Name, "type", types.TypeString(exp.body))
		}
	}
}

// Get the expansion of an alias, resolving it on first use.
func (r *checkRun) alias(name string) (*aliasType, bool) {
	if a, ok := r.aliases[name]; ok {
		return a, true
	}
	decl, ok := r.aliasDecls[name]
	if !ok {
		return nil, false
	}
	// Problems found in the alias belong to it, even when it is first used by another declaration.
	outer := r.decl
	r.decl = r.declPos[decl]
	defer func() { r.decl = outer }()
	res := r.newTypeResolver(name, nil)
	a := &aliasType{body: decl.Value.Accept(res), constraints: res.constraints}
	for _, p := range res.problems {
		r.declf("%s", p)
	}
	r.aliases[name] = a
	return a, true
}

func (r *checkRun) registerConstructors(rec *ast.Record, scope map[string]*types.Var) {
	recordType := r.records[rec.Name]
	for _, ctor := range rec.Constructors {
		if _, ok := r.signatures[ctor.Name]; ok {
			r.declf("Constructor '%s' is already defined", ctor.Name)
			continue
		}
		res := r.newTypeResolver(ctor.Name, scope)
		fields := make([]types.Type, len(ctor.Fields))
		names := make([]string, len(ctor.Fields))
		for i, f := range ctor.Fields {
			fields[i] = f.Value.Accept(res)
			names[i] = f.Name
		}
		for _, p := range res.problems {
			r.declf("%s", p)
		}
		r.signatures[ctor.Name] = r.ctx.Generalize(nil, types.Curried(fields, recordType))
		r.constructors[ctor.Name] = names
		r.log.Debug("registered constructor", "name", ctor.Name, "type", types.SchemeString(r.signatures[ctor.Name]))

		for i, name := range names {
			if name == "" {
				continue
			}
			if owner, ok := r.fieldOwners[name]; ok && owner == rec.Name {
				continue
			}
			if _, ok := r.signatures[name]; ok {
				r.declf("Multiple declaration of '%s'.", name)
				continue
			}
			r.signatures[name] = r.ctx.Generalize(nil, types.Func(recordType, fields[i]))
			r.fieldOwners[name] = rec.Name
		}
	}
}

func (r *checkRun) registerSignature(sig *ast.TypeSignature) {
	if _, ok := r.signatures[sig.Name]; ok {
		_, isField := r.fieldOwners[sig.Name]
		_, isCtor := r.constructors[sig.Name]
		if isField || isCtor {
			r.declf("Multiple declaration of '%s'.", sig.Name)
		} else {
			r.declf("Function '%s' has multiple type signatures", sig.Name)
		}
		return
	}
	res := r.newTypeResolver(sig.Name, nil)
	t := sig.Body.Accept(res)
	for _, p := range res.problems {
		r.declf("%s", p)
	}
	scheme := &types.Scheme{Quantifiers: res.order, Body: t}
	if len(res.constraints) > 0 {
		scheme.Constraints = res.constraints
	}
	r.signatures[sig.Name] = scheme
	r.log.Debug("registered signature", "name", sig.Name, "type", types.SchemeString(scheme))
}

// typeResolver converts type syntax to types. Type variables are scoped to one declaration: every
// occurrence of the same name resolves to the same variable.
type typeResolver struct {
	run *checkRun
	// Declaration name used in diagnostics
	owner string
	scope map[string]*types.Var
	// Variable ids in order of first occurrence
	order       []int
	constraints map[int][]string
	problems    []string
}

func (r *checkRun) newTypeResolver(owner string, scope map[string]*types.Var) *typeResolver {
	res := &typeResolver{run: r, owner: owner, scope: make(map[string]*types.Var, len(scope))}
	for name, tv := range scope {
		res.scope[name] = tv
	}
	return res
}

func (res *typeResolver) scopeVar(name string) *types.Var {
	if tv, ok := res.scope[name]; ok {
		return tv
	}
	tv := res.run.ctx.FreshNamedVar(name)
	res.scope[name] = tv
	res.order = append(res.order, tv.ID)
	return tv
}

func (res *typeResolver) addConstraint(id int, class string) {
	if res.constraints == nil {
		res.constraints = make(map[int][]string)
	}
	for _, c := range res.constraints[id] {
		if c == class {
			return
		}
	}
	res.constraints[id] = append(res.constraints[id], class)
}

// Copy an alias body into the current scope, carrying constraints over to the scoped variables.
func (res *typeResolver) expand(a *aliasType) types.Type {
	var copyType func(t types.Type) types.Type
	copyType = func(t types.Type) types.Type {
		switch t := t.(type) {
		case *types.Var:
			if t.Name == "" {
				return t
			}
			tv := res.scopeVar(t.Name)
			for _, c := range a.constraints[t.ID] {
				res.addConstraint(tv.ID, c)
			}
			return tv
		case *types.Con:
			if len(t.Args) == 0 {
				return t
			}
			args := make([]types.Type, len(t.Args))
			for i, arg := range t.Args {
				args[i] = copyType(arg)
			}
			return &types.Con{Name: t.Name, Args: args}
		}
		return t
	}
	return copyType(a.body)
}

func isTypeVarName(name string) bool {
	c, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(c)
}

func (res *typeResolver) VisitSimpleType(t *ast.SimpleType) types.Type {
	if isTypeVarName(t.Value) {
		return res.scopeVar(t.Value)
	}
	if prim, ok := primitiveTypes[t.Value]; ok {
		return prim
	}
	if a, ok := res.run.alias(t.Value); ok {
		return res.expand(a)
	}
	return types.NewCon(t.Value)
}

func (res *typeResolver) VisitParameterizedType(t *ast.ParameterizedType) types.Type {
	for _, c := range t.Constraints {
		if !types.IsTypeClass(c.Class) {
			res.problems = append(res.problems, fmt.Sprintf("Unknown type class '%s' in signature of '%s'", c.Class, res.owner))
			continue
		}
		for _, p := range c.Params {
			tv, ok := p.Accept(res).(*types.Var)
			if !ok {
				res.problems = append(res.problems, fmt.Sprintf("Constraint '%s' must apply to a type variable in signature of '%s'", c.Class, res.owner))
				continue
			}
			res.addConstraint(tv.ID, c.Class)
		}
	}
	params := make([]types.Type, len(t.Inputs))
	for i, in := range t.Inputs {
		params[i] = in.Accept(res)
	}
	return types.Curried(params, t.Return.Accept(res))
}

func (res *typeResolver) VisitTupleType(t *ast.TupleType) types.Type {
	elems := make([]types.Type, len(t.Values))
	for i, v := range t.Values {
		elems[i] = v.Accept(res)
	}
	return types.Tuple(elems...)
}

func (res *typeResolver) VisitListType(t *ast.ListType) types.Type {
	return types.List(t.Value.Accept(res))
}

func (res *typeResolver) VisitTypeApplication(t *ast.TypeApplication) types.Type {
	if len(t.Args) == 0 {
		return res.VisitSimpleType(&ast.SimpleType{Value: t.Constructor})
	}
	args := make([]types.Type, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.Accept(res)
	}
	return types.NewCon(t.Constructor, args...)
}

// typeRefs collects the names of type constructors referenced by type syntax.
type typeRefs struct {
	names []string
}

func (v *typeRefs) VisitSimpleType(t *ast.SimpleType) types.Type {
	if !isTypeVarName(t.Value) {
		v.names = append(v.names, t.Value)
	}
	return nil
}

func (v *typeRefs) VisitParameterizedType(t *ast.ParameterizedType) types.Type {
	for _, in := range t.Inputs {
		in.Accept(v)
	}
	t.Return.Accept(v)
	return nil
}

func (v *typeRefs) VisitTupleType(t *ast.TupleType) types.Type {
	for _, e := range t.Values {
		e.Accept(v)
	}
	return nil
}

func (v *typeRefs) VisitListType(t *ast.ListType) types.Type {
	t.Value.Accept(v)
	return nil
}

func (v *typeRefs) VisitTypeApplication(t *ast.TypeApplication) types.Type {
	v.names = append(v.names, t.Constructor)
	for _, arg := range t.Args {
		arg.Accept(v)
	}
	return nil
}
