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

	"github.com/wdamron/hmcheck"
	. "github.com/wdamron/hmcheck/construct"

	"github.com/wdamron/hmcheck/ast"
)

func BenchmarkCheckProgram(b *testing.B) {
	prog := ast.Program{
		Data("Maybe", []string{"a"}, Ctor("Nothing"), Ctor("Just", PosField(tA))),
		sig("length'", types(TListOf(tA)), tInt),
		Func("length'",
			Equation(Params(PList()), Num(0)),
			Equation(Params(PCons(PWild(), PVar("xs"))), Arith(ast.Plus, Num(1), Apply(Sym("length'"), Sym("xs"))))),
		sig("fromMaybe", types(tA, TApply("Maybe", tA)), tA),
		Func("fromMaybe",
			Equation(Params(PVar("d"), PCtor("Nothing")), Sym("d")),
			Equation(Params(PWild(), PApp("Just", PVar("x"))), Sym("x"))),
		Func("ident", Equation(Params(PVar("x")), Sym("x"))),
		Func("fact", Equation(Params(PVar("n")), If(Compare(ast.Equal, Sym("n"), Num(0)),
			Num(1),
			Arith(ast.Multiply, Sym("n"), Apply(Sym("fact"), Arith(ast.Minus, Sym("n"), Num(1))))))),
		sig("classify", types(tInt), tString),
		Func("classify", Guarded(Params(PVar("n")),
			Guard(Compare(ast.GreaterThan, Sym("n"), Num(0)), Str("positive")),
			Guard(Otherwise(), Apply(Sym("fromMaybe"), Str("zero"), Apply(Sym("Just"), Str("other")))))),
		sig("sizes", types(TListOf(TListOf(tA))), TListOf(tInt)),
		Func("sizes", Equation(Params(PVar("xss")), ListOp(ast.Collect, Sym("length'"), Sym("xss")))),
	}
	tc := hmcheck.New()
	if diags := tc.Check(prog); len(diags) != 2 {
		b.Fatalf("diagnostics: %v", diags)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tc.Check(prog)
	}
}
