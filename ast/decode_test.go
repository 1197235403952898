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

package ast_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/wdamron/hmcheck/ast"
	. "github.com/wdamron/hmcheck/construct"
)

const maybeProgram = `
- kind: data
  name: Maybe
  params: [a]
  constructors:
    - name: Nothing
    - name: Just
      fields: [a]
- kind: data
  name: Point
  constructors:
    - name: Point
      fields: [{name: px, type: Int}, {name: py, type: Int}]
- kind: signature
  name: fromMaybe
  type: {function: [a, {apply: Maybe, args: [a]}], returns: a}
- kind: function
  name: fromMaybe
  equations:
    - patterns: [d, {kind: constructor, constructor: Nothing}]
      body: d
    - patterns: [_, {kind: application, constructor: Just, args: [x]}]
      body: x
- kind: signature
  name: classify
  type: {function: [Int], returns: String, constraints: [{class: Show, params: [a]}]}
- kind: function
  name: classify
  equations:
    - patterns: [n]
      guards:
        - when: {kind: comparison, op: GreaterThan, left: n, right: 0}
          then: {kind: string, value: positive}
        - when: {kind: otherwise}
          then: {kind: application, func: show, args: [n]}
- kind: alias
  name: Names
  type: {list: String}
- kind: function
  name: pairs
  equations:
    - body:
        kind: lambda
        params: [{kind: tuple, elems: [x, true]}]
        body: {kind: list, elems: [{kind: char, value: a}, {kind: cons, head: x, tail: {kind: list}}]}
`

func TestDecode(t *testing.T) {
	prog, err := ast.DecodeString(maybeProgram)
	if err != nil {
		t.Fatal(err)
	}
	expect := ast.Program{
		Data("Maybe", []string{"a"}, Ctor("Nothing"), Ctor("Just", PosField(TSimple("a")))),
		Data("Point", nil, Ctor("Point", Field("px", TSimple("Int")), Field("py", TSimple("Int")))),
		Signature("fromMaybe", TFunc([]ast.TypeExpr{TSimple("a"), TApply("Maybe", TSimple("a"))}, TSimple("a"))),
		Func("fromMaybe",
			Equation(Params(PVar("d"), PCtor("Nothing")), Sym("d")),
			Equation(Params(PWild(), PApp("Just", PVar("x"))), Sym("x"))),
		Signature("classify", TConstrained([]*ast.Constraint{Constraint("Show", "a")}, []ast.TypeExpr{TSimple("Int")}, TSimple("String"))),
		Func("classify", Guarded(Params(PVar("n")),
			Guard(Compare(ast.GreaterThan, Sym("n"), Num(0)), Str("positive")),
			Guard(Otherwise(), Apply(Sym("show"), Sym("n"))))),
		Alias("Names", TListOf(TSimple("String"))),
		Func("pairs", Equation(nil, Lambda(
			Params(PTuple(PVar("x"), PLit(Bool(true)))),
			List(Char('a'), Cons(Sym("x"), List()))))),
	}
	if diff := cmp.Diff(expect, prog, cmpopts.EquateEmpty()); diff != "" {
		t.Logf("decoded: %s", spew.Sdump(prog))
		t.Fatalf("unexpected program (-expect +decoded):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"- {name: f}":                             "missing kind",
		"- {kind: module, name: f}":               `unknown declaration kind "module"`,
		"- {kind: function, name: f}":             "function f has no equations",
		"- {kind: signature, name: f, type: [a]}": "expected a type, found a sequence",
		"{kind: function}":                        "expected a sequence of declarations",
		"- {kind: function, name: f, equations: [{body: {kind: frob}}]}": `unknown expression kind "frob"`,
		"- {kind: function, name: f, equations: [{patterns: [{kind: frob}], body: 1}]}": `unknown pattern kind "frob"`,
		"- {kind: function, name: f, equations: [{body: {kind: if, cond: x, then: 1}}]}": "missing operand",
	}
	for doc, expect := range cases {
		_, err := ast.DecodeString(doc)
		if err == nil || !strings.Contains(err.Error(), expect) {
			t.Fatalf("%s: expected error containing %q, found %v", doc, expect, err)
		}
	}

	prog, err := ast.DecodeString("")
	if err != nil || len(prog) != 0 {
		t.Fatalf("empty document: %v %v", prog, err)
	}
}
