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

package hmcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hmcheck"
	. "github.com/wdamron/hmcheck/construct"

	"github.com/wdamron/hmcheck/ast"
)

var (
	tInt    = TSimple("Int")
	tString = TSimple("String")
	tBool   = TSimple("Bool")
	tChar   = TSimple("Char")
	tA      = TSimple("a")
	tB      = TSimple("b")
)

func sig(name string, inputs []ast.TypeExpr, ret ast.TypeExpr) *ast.TypeSignature {
	if len(inputs) == 0 {
		return Signature(name, ret)
	}
	return Signature(name, TFunc(inputs, ret))
}

func types(ts ...ast.TypeExpr) []ast.TypeExpr { return ts }

func check(decls ...ast.Decl) []string { return hmcheck.New().Check(ast.Program(decls)) }

// Shared declarations
var (
	idDecls = []ast.Decl{
		sig("id", types(tA), tA),
		Func("id", Equation(Params(PVar("x")), Sym("x"))),
	}
	addDecls = []ast.Decl{
		sig("add", types(tInt, tInt), tInt),
		Func("add", Equation(Params(PVar("x"), PVar("y")), Arith(ast.Plus, Sym("x"), Sym("y")))),
	}
	maybeDecls = []ast.Decl{
		Data("Maybe", []string{"a"}, Ctor("Nothing"), Ctor("Just", PosField(tA))),
	}
	pointDecls = []ast.Decl{
		Data("Point", nil, Ctor("Point", Field("px", tInt), Field("py", tInt))),
	}
)

func with(shared []ast.Decl, decls ...ast.Decl) []ast.Decl {
	return append(append([]ast.Decl{}, shared...), decls...)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name  string
		decls []ast.Decl
		want  []string
	}{
		{
			name: "recursive length",
			decls: []ast.Decl{
				sig("length'", types(TListOf(tA)), tInt),
				Func("length'",
					Equation(Params(PList()), Num(0)),
					Equation(Params(PCons(PWild(), PVar("xs"))), Arith(ast.Plus, Num(1), Apply(Sym("length'"), Sym("xs"))))),
			},
		},
		{
			name: "return type mismatch",
			decls: []ast.Decl{
				sig("toInt", types(tString), tInt),
				Func("toInt", Equation(Params(PVar("s")), Sym("s"))),
			},
			want: []string{"Type error in 'toInt': Cannot unify String with Number"},
		},
		{
			name: "argument type mismatch",
			decls: []ast.Decl{
				sig("first", types(TListOf(tInt)), tInt),
				Func("first", Equation(Params(PCons(PVar("x"), PWild())), Sym("x"))),
				sig("useFirst", nil, tInt),
				Func("useFirst", Equation(nil, Apply(Sym("first"), List(Char('a'), Char('b'))))),
			},
			want: []string{"Type error in 'useFirst': Cannot apply [Char] to function of type [Number] -> Number"},
		},
		{
			name: "polymorphic function used at two types",
			decls: with(idDecls,
				sig("pair", nil, TTupleOf(tInt, tString)),
				Func("pair", Equation(nil, Tuple(Apply(Sym("id"), Num(1)), Apply(Sym("id"), Str("s")))))),
		},
		{
			name: "polymorphic function result misused",
			decls: with(idDecls,
				sig("bad", nil, tInt),
				Func("bad", Equation(nil, Arith(ast.Plus, Num(1), Apply(Sym("id"), Str("s")))))),
			want: []string{"Type error in 'bad': Right operand of Plus must be a number"},
		},
		{
			name: "constrained signature",
			decls: []ast.Decl{
				Signature("double", TConstrained([]*ast.Constraint{Constraint("Num", "a")}, types(tA), tA)),
				Func("double", Equation(Params(PVar("x")), Arith(ast.Plus, Sym("x"), Sym("x")))),
			},
		},
		{
			name: "constraint violation",
			decls: []ast.Decl{
				Signature("f", TConstrained([]*ast.Constraint{Constraint("Num", "a")}, types(tA), tA)),
				Func("f", Equation(Params(PVar("x")), Concat(Sym("x"), Str("2")))),
			},
			want: []string{"Type error in 'f': Type 'String' is not an instance of 'Num'"},
		},
		{
			name: "unknown type class",
			decls: []ast.Decl{
				Signature("f", TConstrained([]*ast.Constraint{Constraint("Frob", "a")}, types(tA), tA)),
				Func("f", Equation(Params(PVar("x")), Sym("x"))),
			},
			want: []string{"Unknown type class 'Frob' in signature of 'f'"},
		},
		{
			name:  "missing signature",
			decls: []ast.Decl{Func("g", Equation(nil, Num(1)))},
			want:  []string{"Function 'g' is defined but has no signature"},
		},
		{
			name: "missing signature and mistyped function",
			decls: []ast.Decl{
				Func("g", Equation(nil, Num(1))),
				sig("toInt", types(tString), tInt),
				Func("toInt", Equation(Params(PVar("s")), Sym("s"))),
			},
			want: []string{
				"Function 'g' is defined but has no signature",
				"Type error in 'toInt': Cannot unify String with Number",
			},
		},
		{
			name:  "inference failure",
			decls: []ast.Decl{Func("invalidAdd", Equation(nil, Arith(ast.Plus, Str("a"), Num(1))))},
			want: []string{
				"Function 'invalidAdd' is defined but has no signature",
				"Type error inferring 'invalidAdd': Left operand of Plus must be a number",
			},
		},
		{
			name:  "list homogeneity",
			decls: []ast.Decl{Func("f", Equation(nil, List(Num(1), Char('a'))))},
			want: []string{
				"Function 'f' is defined but has no signature",
				"Type error inferring 'f': List elements must have the same type: expected Number but found Char",
			},
		},
		{
			name: "higher-order parameter",
			decls: []ast.Decl{
				sig("apply", types(TFunc(types(tA), tB), tA), tB),
				Func("apply", Equation(Params(PVar("f"), PVar("x")), Apply(Sym("f"), Sym("x")))),
			},
		},
		{
			name: "partial application",
			decls: with(addDecls,
				sig("twice", types(TFunc(types(tInt), tInt), tInt), tInt),
				Func("twice", Equation(Params(PVar("f"), PVar("x")), Apply(Sym("f"), Apply(Sym("f"), Sym("x"))))),
				sig("four", nil, tInt),
				Func("four", Equation(nil, Apply(Sym("twice"), Apply(Sym("add"), Num(1)), Num(2))))),
		},
		{
			name: "factorial",
			decls: []ast.Decl{
				sig("factorial", types(tInt), tInt),
				Func("factorial",
					Equation(Params(PLit(Num(0))), Num(1)),
					Equation(Params(PVar("n")), Arith(ast.Multiply, Sym("n"), Apply(Sym("factorial"), Arith(ast.Minus, Sym("n"), Num(1)))))),
			},
		},
		{
			name: "multiplication by a string",
			decls: []ast.Decl{
				sig("badFactorial", types(tInt), tInt),
				Func("badFactorial",
					Equation(Params(PLit(Num(0))), Num(1)),
					Equation(Params(PVar("n")), Arith(ast.Multiply, Sym("n"), Str("n")))),
			},
			want: []string{"Type error in 'badFactorial': Right operand of Multiply must be a number"},
		},
		{
			name: "parameterised data type",
			decls: with(maybeDecls,
				sig("fromMaybe", types(tA, TApply("Maybe", tA)), tA),
				Func("fromMaybe",
					Equation(Params(PVar("d"), PCtor("Nothing")), Sym("d")),
					Equation(Params(PWild(), PApp("Just", PVar("x"))), Sym("x")))),
		},
		{
			name: "constructor applied to the wrong type",
			decls: []ast.Decl{
				Data("Foo", nil, Ctor("Foo", PosField(tString))),
				sig("mk", nil, TSimple("Foo")),
				Func("mk", Equation(nil, Apply(Sym("Foo"), Num(1)))),
			},
			want: []string{"Type error in 'mk': Cannot apply Number to function of type String -> Foo"},
		},
		{
			name: "constructor expression field mismatch",
			decls: []ast.Decl{
				Data("Foo", nil, Ctor("Foo", PosField(tString))),
				sig("mk", nil, TSimple("Foo")),
				Func("mk", Equation(nil, New("Foo", Num(1)))),
			},
			want: []string{"Type error in 'mk': Argument 1 type mismatch for constructor Foo: Cannot unify Number with String"},
		},
		{
			name: "constructor expression arity",
			decls: with(pointDecls,
				sig("origin", nil, TSimple("Point")),
				Func("origin", Equation(nil, New("Point", Num(0))))),
			want: []string{"Type error in 'origin': Too few arguments to constructor Point: expected 2 but got 1"},
		},
		{
			name: "guard clauses are checked separately",
			decls: []ast.Decl{
				sig("classify", types(tInt), tString),
				Func("classify", Guarded(Params(PVar("n")),
					Guard(Compare(ast.GreaterThan, Sym("n"), Num(0)), Str("positive")),
					Guard(Compare(ast.Equal, Sym("n"), Num(0)), Num(0)),
					Guard(Otherwise(), Bool(true)))),
			},
			want: []string{
				"Type error in 'classify': Cannot unify Number with String",
				"Type error in 'classify': Cannot unify Boolean with String",
			},
		},
		{
			name: "arity mismatch",
			decls: []ast.Decl{
				sig("f", types(tInt), tInt),
				Func("f", Equation(Params(PVar("x"), PVar("y")), Sym("x"))),
			},
			want: []string{"Arity mismatch in function 'f'"},
		},
		{
			name: "unbound variable",
			decls: []ast.Decl{
				sig("f", nil, tInt),
				Func("f", Equation(nil, Sym("y"))),
			},
			want: []string{"Type error in 'f': Unbound variable: y"},
		},
		{
			name: "duplicate pattern variable",
			decls: []ast.Decl{
				sig("f", types(tInt, tInt), tInt),
				Func("f", Equation(Params(PVar("x"), PVar("x")), Sym("x"))),
			},
			want: []string{"Type error in 'f': Duplicate variable name 'x'"},
		},
		{
			name: "multiple signatures",
			decls: []ast.Decl{
				sig("f", nil, tInt),
				sig("f", nil, tString),
				Func("f", Equation(nil, Num(1))),
			},
			want: []string{"Function 'f' has multiple type signatures"},
		},
		{
			name: "duplicate declarations",
			decls: []ast.Decl{
				Data("T", nil, Ctor("A")),
				Data("U", nil, Ctor("A")),
				Alias("T", tInt),
			},
			want: []string{
				"Constructor 'A' is already defined",
				"Multiple declaration of 'T'.",
			},
		},
		{
			name: "declaration diagnostics follow declaration order",
			decls: []ast.Decl{
				sig("f", nil, tInt),
				sig("f", nil, tString),
				Data("T", nil, Ctor("A")),
				Data("T", nil, Ctor("B")),
				Alias("L", TListOf(TSimple("L"))),
				Func("f", Equation(nil, Num(1))),
			},
			want: []string{
				"Function 'f' has multiple type signatures",
				"Multiple declaration of 'T'.",
				"Cyclic type alias 'L'",
			},
		},
		{
			name: "signature clashes with constructor",
			decls: []ast.Decl{
				Data("Color", nil, Ctor("Red"), Ctor("Green")),
				sig("Red", nil, tInt),
			},
			want: []string{"Multiple declaration of 'Red'."},
		},
		{
			name: "comparison of data values",
			decls: with(maybeDecls,
				Data("Color", nil, Ctor("Red"), Ctor("Green")),
				sig("isRed", types(TSimple("Color")), tBool),
				Func("isRed", Equation(Params(PVar("c")), Compare(ast.Equal, Sym("c"), Sym("Red")))),
				sig("isNothing", types(TApply("Maybe", tInt)), tBool),
				Func("isNothing", Equation(Params(PVar("m")), Compare(ast.Equal, Sym("m"), Sym("Nothing")))),
				sig("lt", types(TSimple("Color"), TSimple("Color")), tBool),
				Func("lt", Equation(Params(PVar("a"), PVar("b")), Compare(ast.LessThan, Sym("a"), Sym("b")))),
				sig("mixed", types(TSimple("Color"), tInt), tBool),
				Func("mixed", Equation(Params(PVar("c"), PVar("n")), Compare(ast.NotEqual, Sym("c"), Sym("n"))))),
			want: []string{"Type error in 'mixed': Comparison operands must have the same type"},
		},
		{
			name: "type aliases",
			decls: []ast.Decl{
				Alias("Greeting", TSimple("Name")),
				Alias("Name", tString),
				sig("greet", types(TSimple("Name")), TSimple("Greeting")),
				Func("greet", Equation(Params(PVar("n")), Concat(Str("hello "), Sym("n")))),
			},
		},
		{
			name: "cyclic type aliases",
			decls: []ast.Decl{
				Alias("A", TSimple("B")),
				Alias("B", TListOf(TSimple("A"))),
				Alias("Loop", TTupleOf(tInt, TSimple("Loop"))),
				Alias("Fine", tInt),
			},
			want: []string{
				"Cyclic type alias 'A'",
				"Cyclic type alias 'B'",
				"Cyclic type alias 'Loop'",
			},
		},
		{
			name: "field accessors",
			decls: with(pointDecls,
				sig("getX", types(TSimple("Point")), tInt),
				Func("getX", Equation(Params(PVar("p")), Apply(Sym("px"), Sym("p")))),
				sig("label", types(TSimple("Point")), tString),
				Func("label", Equation(Params(PVar("p")), Apply(Sym("py"), Sym("p"))))),
			want: []string{"Type error in 'label': Cannot unify Number with String"},
		},
		{
			name: "field accessor clashes with signature",
			decls: with(pointDecls,
				sig("px", nil, tInt)),
			want: []string{"Multiple declaration of 'px'."},
		},
		{
			name: "record patterns",
			decls: with(pointDecls,
				sig("sumPoint", types(TSimple("Point")), tInt),
				Func("sumPoint", Equation(Params(PRecord("Point", PField("px", PVar("a")), PField("py", PVar("b")))), Arith(ast.Plus, Sym("a"), Sym("b")))),
				sig("depth", types(TSimple("Point")), tInt),
				Func("depth", Equation(Params(PRecord("Point", PField("pz", PVar("z")))), Sym("z")))),
			want: []string{"Type error in 'depth': Constructor Point has no field 'pz'"},
		},
		{
			name: "lambda and composition",
			decls: with(addDecls,
				sig("inc", types(tInt), tInt),
				Func("inc", Equation(Params(PVar("n")), Apply(Lambda(Params(PVar("x")), Arith(ast.Plus, Sym("x"), Num(1))), Sym("n")))),
				sig("incTwice", types(tInt), tInt),
				Func("incTwice", Equation(Params(PVar("n")), Apply(Compose(Apply(Sym("add"), Num(1)), Sym("inc")), Sym("n")))),
				sig("shout", types(tInt), tString),
				Func("shout", Equation(Params(PVar("n")), Apply(Lambda(Params(PVar("s")), Concat(Sym("s"), Str("!"))), Sym("n"))))),
			want: []string{"Type error in 'shout': Cannot apply Number to function of type String -> String"},
		},
		{
			name: "conditionals",
			decls: []ast.Decl{
				sig("f", types(tInt), tInt),
				Func("f", Equation(Params(PVar("n")), If(Sym("n"), Num(1), Num(2)))),
				sig("g", types(tBool), tInt),
				Func("g", Equation(Params(PVar("b")), If(Not(Sym("b")), Num(1), Str("two")))),
			},
			want: []string{
				"Type error in 'f': Condition must be a boolean",
				"Type error in 'g': Branch types don't match: Number vs String",
			},
		},
		{
			name: "case analysis",
			decls: with(maybeDecls,
				sig("describe", types(TApply("Maybe", tInt)), tString),
				Func("describe", Equation(Params(PVar("m")), Case(Sym("m"),
					Alt(PCtor("Nothing"), Str("none")),
					Alt(PApp("Just", PWild()), Str("some"))))),
				sig("unwrap", types(TApply("Maybe", tInt)), tString),
				Func("unwrap", Equation(Params(PVar("m")), Case(Sym("m"),
					Alt(PCtor("Nothing"), Str("none")),
					Alt(PApp("Just", PVar("x")), Sym("x")))))),
			want: []string{"Type error in 'unwrap': Case alternative types don't match: expected String but found Number"},
		},
		{
			name: "local bindings",
			decls: []ast.Decl{
				sig("f", types(tInt), tInt),
				Func("f", Equation(Params(PVar("n")), Let(
					[]*ast.LetBinding{Binding("m", Arith(ast.Plus, Sym("n"), Num(1))), Binding("k", Arith(ast.Multiply, Sym("m"), Num(2)))},
					Sym("k")))),
			},
		},
		{
			name: "list operators",
			decls: with(addDecls,
				sig("incAll", types(TListOf(tInt)), TListOf(tInt)),
				Func("incAll", Equation(Params(PVar("xs")), ListOp(ast.Collect, Apply(Sym("add"), Num(1)), Sym("xs")))),
				sig("positives", types(TListOf(tInt)), TListOf(tInt)),
				Func("positives", Equation(Params(PVar("xs")), ListOp(ast.Select, Lambda(Params(PVar("x")), Compare(ast.GreaterThan, Sym("x"), Num(0))), Sym("xs")))),
				sig("biggest", types(TListOf(tInt)), tInt),
				Func("biggest", Equation(Params(PVar("xs")), ListUnary(ast.DetectMax, Sym("xs")))),
				sig("count", types(TListOf(tString)), tInt),
				Func("count", Equation(Params(PVar("xs")), ListUnary(ast.Size, Sym("xs")))),
				sig("sums", types(TListOf(tInt)), TListOf(tInt)),
				Func("sums", Equation(Params(PVar("xs")), ListOp(ast.Collect, Sym("add"), Sym("xs")))),
				sig("strings", types(TListOf(tInt)), tBool),
				Func("strings", Equation(Params(PVar("xs")), ListOp(ast.AnySatisfy, Lambda(Params(PVar("s")), Compare(ast.Equal, Sym("s"), Str("a"))), Sym("xs"))))),
			want: []string{
				"Type error in 'sums': Collect's left operand expects to have only one argument",
				"Type error in 'strings': AnySatisfy's left operand must be a function of type Number -> Boolean",
			},
		},
		{
			name: "find, all and minimum",
			decls: []ast.Decl{
				sig("firstBig", types(TListOf(tInt)), tInt),
				Func("firstBig", Equation(Params(PVar("xs")), ListOp(ast.Detect, Lambda(Params(PVar("x")), Compare(ast.GreaterThan, Sym("x"), Num(10))), Sym("xs")))),
				sig("findName", types(TListOf(tInt)), tString),
				Func("findName", Equation(Params(PVar("xs")), ListOp(ast.Detect, Lambda(Params(PVar("x")), Compare(ast.GreaterThan, Sym("x"), Num(10))), Sym("xs")))),
				sig("allPositive", types(TListOf(tInt)), tBool),
				Func("allPositive", Equation(Params(PVar("xs")), ListOp(ast.AllSatisfy, Lambda(Params(PVar("x")), Compare(ast.GreaterThan, Sym("x"), Num(0))), Sym("xs")))),
				sig("allWords", types(TListOf(tString)), tBool),
				Func("allWords", Equation(Params(PVar("xs")), ListOp(ast.AllSatisfy, Lambda(Params(PVar("x")), Compare(ast.GreaterThan, Sym("x"), Num(0))), Sym("xs")))),
				sig("smallest", types(TListOf(tChar)), tChar),
				Func("smallest", Equation(Params(PVar("xs")), ListUnary(ast.DetectMin, Sym("xs")))),
				sig("smallestOf", types(tInt), tInt),
				Func("smallestOf", Equation(Params(PVar("n")), ListUnary(ast.DetectMin, Sym("n")))),
				sig("size", types(tInt), tInt),
				Func("size", Equation(Params(PVar("n")), ListUnary(ast.Size, Sym("n")))),
			},
			want: []string{
				"Type error in 'findName': Cannot unify Number with String",
				"Type error in 'allWords': AllSatisfy's left operand must be a function of type String -> Boolean",
				"Type error in 'smallestOf': DetectMin expects operand to be a list of an Ord type",
				"Type error in 'size': Size expects operand to be a list",
			},
		},
		{
			name: "prefix numeric operators",
			decls: []ast.Decl{
				sig("clamp", types(tInt, tInt, tInt), tInt),
				Func("clamp", Equation(Params(PVar("lo"), PVar("hi"), PVar("n")), Arith(ast.Max, Sym("lo"), Arith(ast.Min, Sym("hi"), Sym("n"))))),
				sig("smaller", types(tString), tInt),
				Func("smaller", Equation(Params(PVar("s")), Arith(ast.Min, Sym("s"), Num(1)))),
				sig("larger", types(tString), tInt),
				Func("larger", Equation(Params(PVar("s")), Arith(ast.Max, Num(1), Sym("s")))),
				sig("tidy", types(tInt), tInt),
				Func("tidy", Equation(Params(PVar("n")), Unary(ast.Round, Unary(ast.Absolute, Unary(ast.Ceiling, Unary(ast.Floor, Unary(ast.Sqrt, Sym("n")))))))),
				sig("absText", types(tString), tInt),
				Func("absText", Equation(Params(PVar("s")), Unary(ast.Absolute, Sym("s")))),
				sig("rootChar", types(tChar), tInt),
				Func("rootChar", Equation(Params(PVar("c")), Unary(ast.Sqrt, Sym("c")))),
				sig("roundText", types(tString), tBool),
				Func("roundText", Equation(Params(PVar("s")), Unary(ast.Round, Num(2.5)))),
			},
			want: []string{
				"Type error in 'smaller': Left operand of Min must be a number",
				"Type error in 'larger': Right operand of Max must be a number",
				"Type error in 'absText': Operand of Absolute must be a number",
				"Type error in 'rootChar': Operand of Sqrt must be a number",
				"Type error in 'roundText': Cannot unify Number with Boolean",
			},
		},
		{
			name: "maximum requires an ordered element type",
			decls: with(addDecls,
				sig("best", types(TListOf(TFunc(types(tInt), tInt))), tInt),
				Func("best", Equation(Params(PVar("fs")), Apply(ListUnary(ast.DetectMax, Sym("fs")), Num(1))))),
			want: []string{"Type error in 'best': Type 'Number -> Number' is not an instance of 'Ord'"},
		},
		{
			name: "infix application",
			decls: with(addDecls,
				sig("three", nil, tInt),
				Func("three", Equation(nil, Infix("add", Num(1), Num(2)))),
				sig("oops", nil, tInt),
				Func("oops", Equation(nil, Infix("add", Num(1), Str("2")))),
				sig("nope", nil, tInt),
				Func("nope", Equation(nil, Infix("plus", Num(1), Num(2))))),
			want: []string{
				"Type error in 'oops': Type mismatch in infix application: right operand of `add`: Cannot unify String with Number",
				"Type error in 'nope': Unknown operator: plus",
			},
		},
		{
			name: "tuple patterns",
			decls: []ast.Decl{
				sig("fst'", types(TTupleOf(tA, tB)), tA),
				Func("fst'", Equation(Params(PTuple(PVar("x"), PWild())), Sym("x"))),
				sig("bad", types(TTupleOf(tA, tB)), tA),
				Func("bad", Equation(Params(PTuple(PVar("x"), PWild(), PWild())), Sym("x"))),
			},
			want: []string{"Type error in 'bad': Tuple arity mismatch: expected 2 but found 3"},
		},
		{
			name: "as-patterns and list patterns",
			decls: []ast.Decl{
				sig("dup", types(TListOf(tInt)), TListOf(tInt)),
				Func("dup",
					Equation(Params(PAs("all", PList(PVar("x")))), Cons(Sym("x"), Sym("all"))),
					Equation(Params(PVar("xs")), Sym("xs"))),
				sig("notList", types(tInt), tInt),
				Func("notList", Equation(Params(PList(PVar("x"))), Sym("x"))),
			},
			want: []string{"Type error in 'notList': Pattern expects a list but found non-list type: Number"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := check(tc.decls...)
			if len(tc.want) == 0 {
				assert.Empty(t, diags)
				return
			}
			assert.Equal(t, tc.want, diags)
		})
	}
}

func TestInferredSignatures(t *testing.T) {
	prog := ast.Program{
		Func("ident", Equation(Params(PVar("x")), Sym("x"))),
		Func("double", Equation(Params(PVar("x")), Arith(ast.Plus, Sym("x"), Sym("x")))),
		Func("fact", Equation(Params(PVar("n")), If(Compare(ast.Equal, Sym("n"), Num(0)),
			Num(1),
			Arith(ast.Multiply, Sym("n"), Apply(Sym("fact"), Arith(ast.Minus, Sym("n"), Num(1))))))),
		sig("pair", nil, TTupleOf(tInt, tString)),
		Func("pair", Equation(nil, Tuple(Apply(Sym("ident"), Num(1)), Apply(Sym("ident"), Str("s"))))),
	}
	analysis := hmcheck.New().Analyze(prog)
	assert.Equal(t, []string{
		"Function 'ident' is defined but has no signature",
		"Function 'double' is defined but has no signature",
		"Function 'fact' is defined but has no signature",
	}, analysis.Diagnostics)

	require.Len(t, analysis.Signatures, 4)
	ident := analysis.Signatures[0]
	assert.True(t, ident.Inferred)
	assert.Regexp(t, `^ident :: t\d+ -> t\d+$`, ident.String())
	assert.Equal(t, "double :: Number -> Number", analysis.Signatures[1].String())
	assert.Equal(t, "fact :: Number -> Number", analysis.Signatures[2].String())
	assert.False(t, analysis.Signatures[3].Inferred)
	assert.Equal(t, "pair :: (Number, String)", analysis.Signatures[3].String())
}

func TestConstrainedSignature(t *testing.T) {
	prog := ast.Program{
		Signature("same", TConstrained([]*ast.Constraint{Constraint("Eq", "a")}, types(tA, tA), tBool)),
		Func("same", Equation(Params(PVar("x"), PVar("y")), Compare(ast.Equal, Sym("x"), Sym("y")))),
	}
	analysis := hmcheck.New().Analyze(prog)
	assert.Empty(t, analysis.Diagnostics)
	require.Len(t, analysis.Signatures, 1)
	assert.Equal(t, "same :: Eq a => a -> a -> Boolean", analysis.Signatures[0].String())
}

func TestCheckerIsReusable(t *testing.T) {
	tc := hmcheck.New()
	prog := ast.Program{
		Func("g", Equation(nil, Num(1))),
		sig("toInt", types(tString), tInt),
		Func("toInt", Equation(Params(PVar("s")), Sym("s"))),
	}
	first := tc.Check(prog)
	second := tc.Check(prog)
	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}
