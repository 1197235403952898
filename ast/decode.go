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

package ast

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Documents describe a program as a sequence of declarations, each a mapping tagged by `kind`:
//
//	- kind: signature
//	  name: inc
//	  type: {function: [Int], returns: Int}
//	- kind: function
//	  name: inc
//	  equations:
//	    - patterns: [n]
//	      body: {kind: arithmetic, op: Plus, left: n, right: 1}
//
// Within expressions a bare number or boolean is a literal and a bare string is a symbol;
// within patterns a bare string is a variable (or `_`); within types a bare string is a named type.
// JSON documents are accepted as well.

// Decode reads a program document.
func Decode(r io.Reader) (Program, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Program{}, nil
		}
		return nil, err
	}
	return decodeProgram(&doc)
}

// DecodeString reads a program document from a string.
func DecodeString(s string) (Program, error) { return Decode(strings.NewReader(s)) }

type rawNode struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Op          string `yaml:"op"`
	Constructor string `yaml:"constructor"`

	Value     yaml.Node `yaml:"value"`
	Type      yaml.Node `yaml:"type"`
	Left      yaml.Node `yaml:"left"`
	Right     yaml.Node `yaml:"right"`
	Operand   yaml.Node `yaml:"operand"`
	Cond      yaml.Node `yaml:"cond"`
	Then      yaml.Node `yaml:"then"`
	Else      yaml.Node `yaml:"else"`
	Body      yaml.Node `yaml:"body"`
	Func      yaml.Node `yaml:"func"`
	Arg       yaml.Node `yaml:"arg"`
	Head      yaml.Node `yaml:"head"`
	Tail      yaml.Node `yaml:"tail"`
	Pattern   yaml.Node `yaml:"pattern"`
	Scrutinee yaml.Node `yaml:"scrutinee"`

	Args         []yaml.Node      `yaml:"args"`
	Elems        []yaml.Node      `yaml:"elems"`
	Params       []yaml.Node      `yaml:"params"`
	Fields       []yaml.Node      `yaml:"fields"`
	Equations    []rawEquation    `yaml:"equations"`
	Constructors []rawConstructor `yaml:"constructors"`
	Bindings     []struct {
		Name  string    `yaml:"name"`
		Value yaml.Node `yaml:"value"`
	} `yaml:"bindings"`
	Alternatives []struct {
		Pattern yaml.Node `yaml:"pattern"`
		Body    yaml.Node `yaml:"body"`
	} `yaml:"alternatives"`
}

type rawEquation struct {
	Patterns []yaml.Node `yaml:"patterns"`
	Body     yaml.Node   `yaml:"body"`
	Guards   []struct {
		When yaml.Node `yaml:"when"`
		Then yaml.Node `yaml:"then"`
	} `yaml:"guards"`
}

type rawConstructor struct {
	Name   string      `yaml:"name"`
	Fields []yaml.Node `yaml:"fields"`
}

type rawType struct {
	List        yaml.Node    `yaml:"list"`
	Tuple       []yaml.Node  `yaml:"tuple"`
	Apply       string       `yaml:"apply"`
	Args        []yaml.Node  `yaml:"args"`
	Function    *[]yaml.Node `yaml:"function"`
	Returns     yaml.Node    `yaml:"returns"`
	Constraints []struct {
		Class  string      `yaml:"class"`
		Params []yaml.Node `yaml:"params"`
	} `yaml:"constraints"`
}

func errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

func present(n *yaml.Node) bool { return n.Kind != 0 }

func decodeRaw(n *yaml.Node) (*rawNode, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "expected a mapping")
	}
	var raw rawNode
	if err := n.Decode(&raw); err != nil {
		return nil, err
	}
	if raw.Kind == "" {
		return nil, errorf(n, "missing kind")
	}
	return &raw, nil
}

func decodeProgram(doc *yaml.Node) (Program, error) {
	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "expected a sequence of declarations")
	}
	prog := make(Program, 0, len(n.Content))
	for _, item := range n.Content {
		d, err := decodeDecl(item)
		if err != nil {
			return nil, err
		}
		prog = append(prog, d)
	}
	return prog, nil
}

func decodeDecl(n *yaml.Node) (Decl, error) {
	raw, err := decodeRaw(n)
	if err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, errorf(n, "%s declaration without a name", raw.Kind)
	}
	switch raw.Kind {
	case "function":
		fn := &Function{Name: raw.Name}
		for _, req := range raw.Equations {
			eq, err := decodeEquation(n, req)
			if err != nil {
				return nil, err
			}
			fn.Equations = append(fn.Equations, eq)
		}
		if len(fn.Equations) == 0 {
			return nil, errorf(n, "function %s has no equations", raw.Name)
		}
		return fn, nil

	case "signature":
		t, err := decodeType(&raw.Type)
		if err != nil {
			return nil, err
		}
		return &TypeSignature{Name: raw.Name, Body: t}, nil

	case "alias":
		t, err := decodeType(&raw.Type)
		if err != nil {
			return nil, err
		}
		return &TypeAlias{Name: raw.Name, Value: t}, nil

	case "data":
		rec := &Record{Name: raw.Name}
		for i := range raw.Params {
			if raw.Params[i].Kind != yaml.ScalarNode {
				return nil, errorf(&raw.Params[i], "expected a type parameter name")
			}
			rec.Params = append(rec.Params, raw.Params[i].Value)
		}
		for _, rc := range raw.Constructors {
			c := &Constructor{Name: rc.Name}
			for i := range rc.Fields {
				f, err := decodeField(&rc.Fields[i])
				if err != nil {
					return nil, err
				}
				c.Fields = append(c.Fields, f)
			}
			rec.Constructors = append(rec.Constructors, c)
		}
		return rec, nil
	}
	return nil, errorf(n, "unknown declaration kind %q", raw.Kind)
}

func decodeField(n *yaml.Node) (*Field, error) {
	if n.Kind == yaml.MappingNode {
		var named struct {
			Name string    `yaml:"name"`
			Type yaml.Node `yaml:"type"`
		}
		if err := n.Decode(&named); err == nil && named.Name != "" && present(&named.Type) {
			t, err := decodeType(&named.Type)
			if err != nil {
				return nil, err
			}
			return &Field{Name: named.Name, Value: t}, nil
		}
	}
	t, err := decodeType(n)
	if err != nil {
		return nil, err
	}
	return &Field{Value: t}, nil
}

func decodeEquation(fn *yaml.Node, req rawEquation) (*Equation, error) {
	eq := &Equation{}
	for i := range req.Patterns {
		p, err := decodePattern(&req.Patterns[i])
		if err != nil {
			return nil, err
		}
		eq.Patterns = append(eq.Patterns, p)
	}
	switch {
	case len(req.Guards) > 0:
		guards := make(Guards, 0, len(req.Guards))
		for i := range req.Guards {
			cond, err := decodeExpr(&req.Guards[i].When)
			if err != nil {
				return nil, err
			}
			body, err := decodeExpr(&req.Guards[i].Then)
			if err != nil {
				return nil, err
			}
			guards = append(guards, &GuardedBody{Condition: cond, Body: body})
		}
		eq.Body = guards
	case present(&req.Body):
		body, err := decodeExpr(&req.Body)
		if err != nil {
			return nil, err
		}
		eq.Body = &UnguardedBody{Expr: body}
	default:
		return nil, errorf(fn, "equation without a body")
	}
	return eq, nil
}

func decodeType(n *yaml.Node) (TypeExpr, error) {
	switch n.Kind {
	case 0:
		return nil, errors.New("missing type")
	case yaml.ScalarNode:
		return &SimpleType{Value: n.Value}, nil
	case yaml.SequenceNode:
		return nil, errorf(n, "expected a type, found a sequence")
	}
	var raw rawType
	if err := n.Decode(&raw); err != nil {
		return nil, err
	}
	switch {
	case present(&raw.List):
		elem, err := decodeType(&raw.List)
		if err != nil {
			return nil, err
		}
		return &ListType{Value: elem}, nil

	case raw.Tuple != nil:
		values, err := decodeTypes(raw.Tuple)
		if err != nil {
			return nil, err
		}
		return &TupleType{Values: values}, nil

	case raw.Apply != "":
		args, err := decodeTypes(raw.Args)
		if err != nil {
			return nil, err
		}
		return &TypeApplication{Constructor: raw.Apply, Args: args}, nil

	case present(&raw.Returns):
		var inputs []TypeExpr
		if raw.Function != nil {
			var err error
			if inputs, err = decodeTypes(*raw.Function); err != nil {
				return nil, err
			}
		}
		ret, err := decodeType(&raw.Returns)
		if err != nil {
			return nil, err
		}
		pt := &ParameterizedType{Inputs: inputs, Return: ret}
		for _, c := range raw.Constraints {
			params, err := decodeTypes(c.Params)
			if err != nil {
				return nil, err
			}
			pt.Constraints = append(pt.Constraints, &Constraint{Class: c.Class, Params: params})
		}
		return pt, nil
	}
	return nil, errorf(n, "unknown type syntax")
}

func decodeTypes(ns []yaml.Node) ([]TypeExpr, error) {
	ts := make([]TypeExpr, 0, len(ns))
	for i := range ns {
		t, err := decodeType(&ns[i])
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func decodeExprs(ns []yaml.Node) ([]Expr, error) {
	es := make([]Expr, 0, len(ns))
	for i := range ns {
		e, err := decodeExpr(&ns[i])
		if err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	return es, nil
}

func decodePatterns(ns []yaml.Node) ([]Pattern, error) {
	ps := make([]Pattern, 0, len(ns))
	for i := range ns {
		p, err := decodePattern(&ns[i])
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func scalarLiteral(n *yaml.Node) (*Literal, bool) {
	switch n.ShortTag() {
	case "!!int", "!!float":
		return &Literal{Kind: NumberLiteral, Value: n.Value}, true
	case "!!bool":
		value := "False"
		if strings.EqualFold(n.Value, "true") {
			value = "True"
		}
		return &Literal{Kind: BooleanLiteral, Value: value}, true
	}
	return nil, false
}

func literalKind(kind string) (LiteralKind, bool) {
	switch kind {
	case "number":
		return NumberLiteral, true
	case "string":
		return StringLiteral, true
	case "char":
		return CharLiteral, true
	case "boolean":
		return BooleanLiteral, true
	}
	return 0, false
}

// decodes operands in field order; all must be present
func operands(n *yaml.Node, fields ...*yaml.Node) ([]Expr, error) {
	es := make([]Expr, len(fields))
	for i, f := range fields {
		if !present(f) {
			return nil, errorf(n, "missing operand")
		}
		e, err := decodeExpr(f)
		if err != nil {
			return nil, err
		}
		es[i] = e
	}
	return es, nil
}

func decodeExpr(n *yaml.Node) (Expr, error) {
	if n.Kind == yaml.ScalarNode {
		if lit, ok := scalarLiteral(n); ok {
			return lit, nil
		}
		return &Symbol{Name: n.Value}, nil
	}
	raw, err := decodeRaw(n)
	if err != nil {
		return nil, err
	}
	if kind, ok := literalKind(raw.Kind); ok {
		return &Literal{Kind: kind, Value: raw.Value.Value}, nil
	}
	switch raw.Kind {
	case "symbol":
		return &Symbol{Name: raw.Name}, nil

	case "arithmetic", "comparison", "string-op", "logical", "composition", "infix", "cons", "list-binary":
		var es []Expr
		if raw.Kind == "cons" {
			es, err = operands(n, &raw.Head, &raw.Tail)
		} else {
			es, err = operands(n, &raw.Left, &raw.Right)
		}
		if err != nil {
			return nil, err
		}
		switch raw.Kind {
		case "arithmetic":
			return &Arithmetic{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		case "comparison":
			return &Comparison{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		case "string-op":
			return &StringOp{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		case "logical":
			return &Logical{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		case "composition":
			return &Composition{Left: es[0], Right: es[1]}, nil
		case "infix":
			return &InfixApplication{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		case "cons":
			return &Cons{Head: es[0], Tail: es[1]}, nil
		default:
			return &ListBinary{Op: raw.Op, Left: es[0], Right: es[1]}, nil
		}

	case "arithmetic-unary", "logical-unary", "list-unary":
		es, err := operands(n, &raw.Operand)
		if err != nil {
			return nil, err
		}
		switch raw.Kind {
		case "arithmetic-unary":
			return &ArithmeticUnary{Op: raw.Op, Operand: es[0]}, nil
		case "logical-unary":
			return &LogicalUnary{Op: raw.Op, Operand: es[0]}, nil
		default:
			return &ListUnary{Op: raw.Op, Operand: es[0]}, nil
		}

	case "if":
		es, err := operands(n, &raw.Cond, &raw.Then, &raw.Else)
		if err != nil {
			return nil, err
		}
		return &If{Cond: es[0], Then: es[1], Else: es[2]}, nil

	case "lambda":
		params, err := decodePatterns(raw.Params)
		if err != nil {
			return nil, err
		}
		body, err := operands(n, &raw.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{Params: params, Body: body[0]}, nil

	case "application":
		// `args` is shorthand for a left-nested chain of applications
		args, err := decodeExprs(raw.Args)
		if err != nil {
			return nil, err
		}
		if present(&raw.Arg) {
			arg, err := decodeExpr(&raw.Arg)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if len(args) == 0 {
			return nil, errorf(n, "application without arguments")
		}
		fn, err := operands(n, &raw.Func)
		if err != nil {
			return nil, err
		}
		e := fn[0]
		for _, arg := range args {
			e = &Application{Func: e, Arg: arg}
		}
		return e, nil

	case "data":
		fields, err := decodeExprs(raw.Fields)
		if err != nil {
			return nil, err
		}
		return &DataExpr{Constructor: raw.Constructor, Fields: fields}, nil

	case "tuple", "list":
		elems, err := decodeExprs(raw.Elems)
		if err != nil {
			return nil, err
		}
		if raw.Kind == "tuple" {
			return &Tuple{Elems: elems}, nil
		}
		return &List{Elems: elems}, nil

	case "otherwise":
		return &Otherwise{}, nil

	case "let":
		let := &LetIn{}
		for i := range raw.Bindings {
			value, err := decodeExpr(&raw.Bindings[i].Value)
			if err != nil {
				return nil, err
			}
			let.Bindings = append(let.Bindings, &LetBinding{Name: raw.Bindings[i].Name, Value: value})
		}
		body, err := operands(n, &raw.Body)
		if err != nil {
			return nil, err
		}
		let.Body = body[0]
		return let, nil

	case "case":
		scrutinee, err := operands(n, &raw.Scrutinee)
		if err != nil {
			return nil, err
		}
		c := &Case{Scrutinee: scrutinee[0]}
		for i := range raw.Alternatives {
			p, err := decodePattern(&raw.Alternatives[i].Pattern)
			if err != nil {
				return nil, err
			}
			body, err := decodeExpr(&raw.Alternatives[i].Body)
			if err != nil {
				return nil, err
			}
			c.Alternatives = append(c.Alternatives, &CaseAlternative{Pattern: p, Body: body})
		}
		return c, nil
	}
	return nil, errorf(n, "unknown expression kind %q", raw.Kind)
}

func decodePattern(n *yaml.Node) (Pattern, error) {
	if n.Kind == yaml.ScalarNode {
		if lit, ok := scalarLiteral(n); ok {
			return &LiteralPattern{Value: lit}, nil
		}
		if n.Value == "_" {
			return &WildcardPattern{}, nil
		}
		return &VarPattern{Name: n.Value}, nil
	}
	raw, err := decodeRaw(n)
	if err != nil {
		return nil, err
	}
	if kind, ok := literalKind(raw.Kind); ok {
		return &LiteralPattern{Value: &Literal{Kind: kind, Value: raw.Value.Value}}, nil
	}
	switch raw.Kind {
	case "var":
		return &VarPattern{Name: raw.Name}, nil

	case "wildcard":
		return &WildcardPattern{}, nil

	case "as":
		if !present(&raw.Pattern) {
			return nil, errorf(n, "as-pattern without a pattern")
		}
		p, err := decodePattern(&raw.Pattern)
		if err != nil {
			return nil, err
		}
		return &AsPattern{Name: raw.Name, Pattern: p}, nil

	case "cons":
		if !present(&raw.Head) || !present(&raw.Tail) {
			return nil, errorf(n, "cons pattern requires head and tail")
		}
		head, err := decodePattern(&raw.Head)
		if err != nil {
			return nil, err
		}
		tail, err := decodePattern(&raw.Tail)
		if err != nil {
			return nil, err
		}
		return &ConsPattern{Head: head, Tail: tail}, nil

	case "list", "tuple":
		elems, err := decodePatterns(raw.Elems)
		if err != nil {
			return nil, err
		}
		if raw.Kind == "tuple" {
			return &TuplePattern{Elems: elems}, nil
		}
		return &ListPattern{Elems: elems}, nil

	case "constructor", "application":
		args, err := decodePatterns(raw.Args)
		if err != nil {
			return nil, err
		}
		if raw.Kind == "constructor" {
			return &ConstructorPattern{Constructor: raw.Constructor, Args: args}, nil
		}
		return &ApplicationPattern{Constructor: raw.Constructor, Args: args}, nil

	case "record":
		rp := &RecordPattern{Constructor: raw.Constructor}
		for i := range raw.Fields {
			var fp struct {
				Field   string    `yaml:"field"`
				Pattern yaml.Node `yaml:"pattern"`
			}
			if err := raw.Fields[i].Decode(&fp); err != nil {
				return nil, err
			}
			p, err := decodePattern(&fp.Pattern)
			if err != nil {
				return nil, err
			}
			rp.Fields = append(rp.Fields, &FieldPattern{Field: fp.Field, Pattern: p})
		}
		return rp, nil
	}
	return nil, errorf(n, "unknown pattern kind %q", raw.Kind)
}
