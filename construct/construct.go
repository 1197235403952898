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

// Package construct has shorthand builders for types and syntax trees.
package construct

import (
	"strconv"

	"github.com/wdamron/hmcheck/ast"
	"github.com/wdamron/hmcheck/types"
)

// Types

// Create a new type-variable with the given id.
func TVar(id int) *types.Var {
	return types.NewVar(id)
}

// Type constructor: `Number`, `Maybe a`
func TCon(name string, args ...types.Type) *types.Con {
	return types.NewCon(name, args...)
}

// Curried function type: `a -> b -> c`
func TArrow(params []types.Type, ret types.Type) types.Type {
	return types.Curried(params, ret)
}

// List type: `[a]`
func TList(elem types.Type) *types.Con {
	return types.List(elem)
}

// Tuple type: `(a, b)`
func TTuple(elems ...types.Type) *types.Con {
	return types.Tuple(elems...)
}

// Type syntax:

// Named type or type-variable: `Int`, `a`
func TSimple(name string) *ast.SimpleType {
	return &ast.SimpleType{Value: name}
}

// Function type: `a -> b -> c`
func TFunc(inputs []ast.TypeExpr, ret ast.TypeExpr) *ast.ParameterizedType {
	return &ast.ParameterizedType{Inputs: inputs, Return: ret}
}

// Constrained function type: `Num a => a -> a`
func TConstrained(constraints []*ast.Constraint, inputs []ast.TypeExpr, ret ast.TypeExpr) *ast.ParameterizedType {
	return &ast.ParameterizedType{Inputs: inputs, Return: ret, Constraints: constraints}
}

// Constraint clause: `Num a`
func Constraint(class string, params ...string) *ast.Constraint {
	c := &ast.Constraint{Class: class}
	for _, p := range params {
		c.Params = append(c.Params, TSimple(p))
	}
	return c
}

// List type: `[a]`
func TListOf(elem ast.TypeExpr) *ast.ListType {
	return &ast.ListType{Value: elem}
}

// Tuple type: `(a, b)`
func TTupleOf(elems ...ast.TypeExpr) *ast.TupleType {
	return &ast.TupleType{Values: elems}
}

// Applied type constructor: `Maybe a`
func TApply(constructor string, args ...ast.TypeExpr) *ast.TypeApplication {
	return &ast.TypeApplication{Constructor: constructor, Args: args}
}

// Declarations:

// Type signature: `f :: t`
func Signature(name string, body ast.TypeExpr) *ast.TypeSignature {
	return &ast.TypeSignature{Name: name, Body: body}
}

// Type alias: `type Name = t`
func Alias(name string, value ast.TypeExpr) *ast.TypeAlias {
	return &ast.TypeAlias{Name: name, Value: value}
}

// Data declaration: `data Maybe a = Nothing | Just a`
func Data(name string, params []string, ctors ...*ast.Constructor) *ast.Record {
	return &ast.Record{Name: name, Params: params, Constructors: ctors}
}

// Data constructor
func Ctor(name string, fields ...*ast.Field) *ast.Constructor {
	return &ast.Constructor{Name: name, Fields: fields}
}

// Named field: `x :: Int`
func Field(name string, value ast.TypeExpr) *ast.Field {
	return &ast.Field{Name: name, Value: value}
}

// Positional field
func PosField(value ast.TypeExpr) *ast.Field {
	return &ast.Field{Value: value}
}

// Function declaration with one or more equations
func Func(name string, eqs ...*ast.Equation) *ast.Function {
	return &ast.Function{Name: name, Equations: eqs}
}

// Equation with a single return expression: `f x y = e`
func Equation(patterns []ast.Pattern, body ast.Expr) *ast.Equation {
	return &ast.Equation{Patterns: patterns, Body: &ast.UnguardedBody{Expr: body}}
}

// Guarded equation: `f x | c1 = e1 | c2 = e2`
func Guarded(patterns []ast.Pattern, guards ...*ast.GuardedBody) *ast.Equation {
	return &ast.Equation{Patterns: patterns, Body: ast.Guards(guards)}
}

// Guard clause: `| c = e`
func Guard(cond, body ast.Expr) *ast.GuardedBody {
	return &ast.GuardedBody{Condition: cond, Body: body}
}

// Expressions:

// Number literal
func Num(n float64) *ast.Literal {
	return &ast.Literal{Kind: ast.NumberLiteral, Value: strconv.FormatFloat(n, 'g', -1, 64)}
}

// String literal
func Str(s string) *ast.Literal {
	return &ast.Literal{Kind: ast.StringLiteral, Value: s}
}

// Char literal
func Char(c rune) *ast.Literal {
	return &ast.Literal{Kind: ast.CharLiteral, Value: string(c)}
}

// Boolean literal: `True`, `False`
func Bool(b bool) *ast.Literal {
	if b {
		return &ast.Literal{Kind: ast.BooleanLiteral, Value: "True"}
	}
	return &ast.Literal{Kind: ast.BooleanLiteral, Value: "False"}
}

// Variable, function or constructor reference
func Sym(name string) *ast.Symbol {
	return &ast.Symbol{Name: name}
}

// Curried application: `f x y` is `(f x) y`
func Apply(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Application{Func: f, Arg: arg}
	}
	return f
}

// Arithmetic operation: `a + b`
func Arith(op string, left, right ast.Expr) *ast.Arithmetic {
	return &ast.Arithmetic{Op: op, Left: left, Right: right}
}

// Unary arithmetic operation: `negate a`, `abs a`
func Unary(op string, operand ast.Expr) *ast.ArithmeticUnary {
	return &ast.ArithmeticUnary{Op: op, Operand: operand}
}

// Comparison: `a == b`
func Compare(op string, left, right ast.Expr) *ast.Comparison {
	return &ast.Comparison{Op: op, Left: left, Right: right}
}

// String concatenation: `a ++ b`
func Concat(left, right ast.Expr) *ast.StringOp {
	return &ast.StringOp{Op: ast.Concat, Left: left, Right: right}
}

// Conjunction: `a && b`
func And(left, right ast.Expr) *ast.Logical {
	return &ast.Logical{Op: ast.And, Left: left, Right: right}
}

// Disjunction: `a || b`
func Or(left, right ast.Expr) *ast.Logical {
	return &ast.Logical{Op: ast.Or, Left: left, Right: right}
}

// Negation: `not a`
func Not(operand ast.Expr) *ast.LogicalUnary {
	return &ast.LogicalUnary{Op: ast.Not, Operand: operand}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Lambda: `\x y -> e`
func Lambda(params []ast.Pattern, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: params, Body: body}
}

// Composition: `f . g`
func Compose(f, g ast.Expr) *ast.Composition {
	return &ast.Composition{Left: f, Right: g}
}

// Infix application of a named operator: "a `op` b"
func Infix(op string, left, right ast.Expr) *ast.InfixApplication {
	return &ast.InfixApplication{Op: op, Left: left, Right: right}
}

// Constructor expression: `Point 1 2`
func New(ctor string, fields ...ast.Expr) *ast.DataExpr {
	return &ast.DataExpr{Constructor: ctor, Fields: fields}
}

// Tuple: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Cons: `x : xs`
func Cons(head, tail ast.Expr) *ast.Cons {
	return &ast.Cons{Head: head, Tail: tail}
}

// List literal: `[a, b]`
func List(elems ...ast.Expr) *ast.List {
	return &ast.List{Elems: elems}
}

// Higher-order list operation: `map f xs`
func ListOp(op string, fn, list ast.Expr) *ast.ListBinary {
	return &ast.ListBinary{Op: op, Left: fn, Right: list}
}

// Unary list operation: `length xs`
func ListUnary(op string, list ast.Expr) *ast.ListUnary {
	return &ast.ListUnary{Op: op, Operand: list}
}

// Catch-all guard condition
func Otherwise() *ast.Otherwise {
	return &ast.Otherwise{}
}

// Local bindings: `let a = 1 in e`
func Let(bindings []*ast.LetBinding, body ast.Expr) *ast.LetIn {
	return &ast.LetIn{Bindings: bindings, Body: body}
}

// Paired name and value
func Binding(name string, value ast.Expr) *ast.LetBinding {
	return &ast.LetBinding{Name: name, Value: value}
}

// Case analysis: `case e of p -> a; q -> b`
func Case(scrutinee ast.Expr, alts ...*ast.CaseAlternative) *ast.Case {
	return &ast.Case{Scrutinee: scrutinee, Alternatives: alts}
}

// Case alternative: `p -> e`
func Alt(p ast.Pattern, body ast.Expr) *ast.CaseAlternative {
	return &ast.CaseAlternative{Pattern: p, Body: body}
}

// Patterns:

// Parameter list
func Params(ps ...ast.Pattern) []ast.Pattern { return ps }

// Variable pattern
func PVar(name string) *ast.VarPattern {
	return &ast.VarPattern{Name: name}
}

// Wildcard pattern: `_`
func PWild() *ast.WildcardPattern {
	return &ast.WildcardPattern{}
}

// Literal pattern
func PLit(lit *ast.Literal) *ast.LiteralPattern {
	return &ast.LiteralPattern{Value: lit}
}

// As-pattern: `all@(x:xs)`
func PAs(name string, p ast.Pattern) *ast.AsPattern {
	return &ast.AsPattern{Name: name, Pattern: p}
}

// Cons pattern: `(x:xs)`
func PCons(head, tail ast.Pattern) *ast.ConsPattern {
	return &ast.ConsPattern{Head: head, Tail: tail}
}

// List pattern: `[a, b]`
func PList(elems ...ast.Pattern) *ast.ListPattern {
	return &ast.ListPattern{Elems: elems}
}

// Tuple pattern: `(a, b)`
func PTuple(elems ...ast.Pattern) *ast.TuplePattern {
	return &ast.TuplePattern{Elems: elems}
}

// Constructor pattern: `Nothing`, `(Just x)`
func PCtor(ctor string, args ...ast.Pattern) *ast.ConstructorPattern {
	return &ast.ConstructorPattern{Constructor: ctor, Args: args}
}

// Application pattern: `Just x`
func PApp(ctor string, args ...ast.Pattern) *ast.ApplicationPattern {
	return &ast.ApplicationPattern{Constructor: ctor, Args: args}
}

// Record pattern: `Point { x = a }`
func PRecord(ctor string, fields ...*ast.FieldPattern) *ast.RecordPattern {
	return &ast.RecordPattern{Constructor: ctor, Fields: fields}
}

// Field of a record pattern
func PField(field string, p ast.Pattern) *ast.FieldPattern {
	return &ast.FieldPattern{Field: field, Pattern: p}
}
