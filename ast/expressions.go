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
	"github.com/wdamron/hmcheck/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Accept dispatches to the method of v for the syntax-type of the expression.
	Accept(v ExprVisitor) (types.Type, error)
}

// ExprVisitor has one method per syntax-type of Expr. Adding an expression kind without
// extending every visitor is a compile-time error.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (types.Type, error)
	VisitSymbol(e *Symbol) (types.Type, error)
	VisitArithmetic(e *Arithmetic) (types.Type, error)
	VisitArithmeticUnary(e *ArithmeticUnary) (types.Type, error)
	VisitComparison(e *Comparison) (types.Type, error)
	VisitStringOp(e *StringOp) (types.Type, error)
	VisitLogical(e *Logical) (types.Type, error)
	VisitLogicalUnary(e *LogicalUnary) (types.Type, error)
	VisitIf(e *If) (types.Type, error)
	VisitLambda(e *Lambda) (types.Type, error)
	VisitApplication(e *Application) (types.Type, error)
	VisitComposition(e *Composition) (types.Type, error)
	VisitInfixApplication(e *InfixApplication) (types.Type, error)
	VisitDataExpr(e *DataExpr) (types.Type, error)
	VisitTuple(e *Tuple) (types.Type, error)
	VisitCons(e *Cons) (types.Type, error)
	VisitList(e *List) (types.Type, error)
	VisitListBinary(e *ListBinary) (types.Type, error)
	VisitListUnary(e *ListUnary) (types.Type, error)
	VisitOtherwise(e *Otherwise) (types.Type, error)
	VisitLetIn(e *LetIn) (types.Type, error)
	VisitCase(e *Case) (types.Type, error)
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Symbol)(nil)
	_ Expr = (*Arithmetic)(nil)
	_ Expr = (*ArithmeticUnary)(nil)
	_ Expr = (*Comparison)(nil)
	_ Expr = (*StringOp)(nil)
	_ Expr = (*Logical)(nil)
	_ Expr = (*LogicalUnary)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Application)(nil)
	_ Expr = (*Composition)(nil)
	_ Expr = (*InfixApplication)(nil)
	_ Expr = (*DataExpr)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Cons)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*ListBinary)(nil)
	_ Expr = (*ListUnary)(nil)
	_ Expr = (*Otherwise)(nil)
	_ Expr = (*LetIn)(nil)
	_ Expr = (*Case)(nil)
)

// Primitive kind of a literal
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	CharLiteral
	BooleanLiteral
)

// Type of literals of the kind.
func (k LiteralKind) Type() types.Type {
	switch k {
	case StringLiteral:
		return types.String
	case CharLiteral:
		return types.Char
	case BooleanLiteral:
		return types.Boolean
	default:
		return types.Number
	}
}

func (k LiteralKind) String() string {
	switch k {
	case StringLiteral:
		return "String"
	case CharLiteral:
		return "Char"
	case BooleanLiteral:
		return "Boolean"
	default:
		return "Number"
	}
}

// Primitive literal: `1`, `"s"`, `'c'`, `True`
type Literal struct {
	Kind LiteralKind
	// Syntax of the literal value, as written
	Value string
}

// Reference to a variable, function or constructor: `x`, `Just`
type Symbol struct {
	Name string
}

// Arithmetic operators
const (
	Plus     = "Plus"
	Minus    = "Minus"
	Multiply = "Multiply"
	Divide   = "Divide"
	Modulo   = "Modulo"
	Power    = "Power"
	Max      = "Max"
	Min      = "Min"

	Negation = "Negation"
	Round    = "Round"
	Absolute = "Absolute"
	Ceiling  = "Ceiling"
	Floor    = "Floor"
	Sqrt     = "Sqrt"
)

// Binary numeric operation, infix or prefix: `a + b`, `max a b`
type Arithmetic struct {
	Op          string
	Left, Right Expr
}

// Unary numeric operation: `abs a`, `round a`
type ArithmeticUnary struct {
	Op      string
	Operand Expr
}

// Comparison operators
const (
	Equal          = "Equal"
	NotEqual       = "NotEqual"
	LessThan       = "LessThan"
	LessOrEqual    = "LessOrEqual"
	GreaterThan    = "GreaterThan"
	GreaterOrEqual = "GreaterOrEqual"
)

// Comparison: `a == b`, `a < b`
type Comparison struct {
	Op          string
	Left, Right Expr
}

// String operators
const (
	Concat = "Concat"
)

// String operation: `a ++ b`
type StringOp struct {
	Op          string
	Left, Right Expr
}

// Logical operators
const (
	And = "And"
	Or  = "Or"
	Not = "Not"
)

// Binary logical operation: `a && b`
type Logical struct {
	Op          string
	Left, Right Expr
}

// Unary logical operation: `not a`
type LogicalUnary struct {
	Op      string
	Operand Expr
}

// Conditional: `if c then a else b`
type If struct {
	Cond, Then, Else Expr
}

// Abstraction: `\x y -> e`
type Lambda struct {
	Params []Pattern
	Body   Expr
}

// Application of a curried function to one argument: `f x`
type Application struct {
	Func, Arg Expr
}

// Function composition: `f . g`
type Composition struct {
	Left, Right Expr
}

// Named operator applied infix: "a `div` b"
type InfixApplication struct {
	Op          string
	Left, Right Expr
}

// Saturated constructor application: `Point 1 2`
type DataExpr struct {
	Constructor string
	Fields      []Expr
}

// Tuple: `(a, b)`
type Tuple struct {
	Elems []Expr
}

// List construction: `x : xs`
type Cons struct {
	Head, Tail Expr
}

// List literal: `[a, b]`
type List struct {
	Elems []Expr
}

// Higher-order list operators
const (
	Collect    = "Collect"
	Select     = "Select"
	Detect     = "Detect"
	AnySatisfy = "AnySatisfy"
	AllSatisfy = "AllSatisfy"

	DetectMax = "DetectMax"
	DetectMin = "DetectMin"
	Size      = "Size"
)

// Higher-order list operation with a function and a list operand: `map f xs`, `filter p xs`
type ListBinary struct {
	Op string
	// Function operand
	Left Expr
	// List operand
	Right Expr
}

// List operation with a single list operand: `maximum xs`, `length xs`
type ListUnary struct {
	Op      string
	Operand Expr
}

// Catch-all guard: `otherwise`
type Otherwise struct{}

// Local bindings: `let x = 1; y = x in e`
type LetIn struct {
	Bindings []*LetBinding
	Body     Expr
}

// Paired identifier and value
type LetBinding struct {
	Name  string
	Value Expr
}

// Case analysis: `case e of p1 -> a; p2 -> b`
type Case struct {
	Scrutinee    Expr
	Alternatives []*CaseAlternative
}

// Paired pattern and body of a case alternative
type CaseAlternative struct {
	Pattern Pattern
	Body    Expr
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

// "Symbol"
func (e *Symbol) ExprName() string { return "Symbol" }

// "Arithmetic"
func (e *Arithmetic) ExprName() string { return "Arithmetic" }

// "ArithmeticUnary"
func (e *ArithmeticUnary) ExprName() string { return "ArithmeticUnary" }

// "Comparison"
func (e *Comparison) ExprName() string { return "Comparison" }

// "StringOp"
func (e *StringOp) ExprName() string { return "StringOp" }

// "Logical"
func (e *Logical) ExprName() string { return "Logical" }

// "LogicalUnary"
func (e *LogicalUnary) ExprName() string { return "LogicalUnary" }

// "If"
func (e *If) ExprName() string { return "If" }

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }

// "Application"
func (e *Application) ExprName() string { return "Application" }

// "Composition"
func (e *Composition) ExprName() string { return "Composition" }

// "InfixApplication"
func (e *InfixApplication) ExprName() string { return "InfixApplication" }

// "DataExpr"
func (e *DataExpr) ExprName() string { return "DataExpr" }

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// "Cons"
func (e *Cons) ExprName() string { return "Cons" }

// "List"
func (e *List) ExprName() string { return "List" }

// "ListBinary"
func (e *ListBinary) ExprName() string { return "ListBinary" }

// "ListUnary"
func (e *ListUnary) ExprName() string { return "ListUnary" }

// "Otherwise"
func (e *Otherwise) ExprName() string { return "Otherwise" }

// "LetIn"
func (e *LetIn) ExprName() string { return "LetIn" }

// "Case"
func (e *Case) ExprName() string { return "Case" }

func (e *Literal) Accept(v ExprVisitor) (types.Type, error)          { return v.VisitLiteral(e) }
func (e *Symbol) Accept(v ExprVisitor) (types.Type, error)           { return v.VisitSymbol(e) }
func (e *Arithmetic) Accept(v ExprVisitor) (types.Type, error)       { return v.VisitArithmetic(e) }
func (e *ArithmeticUnary) Accept(v ExprVisitor) (types.Type, error)  { return v.VisitArithmeticUnary(e) }
func (e *Comparison) Accept(v ExprVisitor) (types.Type, error)       { return v.VisitComparison(e) }
func (e *StringOp) Accept(v ExprVisitor) (types.Type, error)         { return v.VisitStringOp(e) }
func (e *Logical) Accept(v ExprVisitor) (types.Type, error)          { return v.VisitLogical(e) }
func (e *LogicalUnary) Accept(v ExprVisitor) (types.Type, error)     { return v.VisitLogicalUnary(e) }
func (e *If) Accept(v ExprVisitor) (types.Type, error)               { return v.VisitIf(e) }
func (e *Lambda) Accept(v ExprVisitor) (types.Type, error)           { return v.VisitLambda(e) }
func (e *Application) Accept(v ExprVisitor) (types.Type, error)      { return v.VisitApplication(e) }
func (e *Composition) Accept(v ExprVisitor) (types.Type, error)      { return v.VisitComposition(e) }
func (e *InfixApplication) Accept(v ExprVisitor) (types.Type, error) { return v.VisitInfixApplication(e) }
func (e *DataExpr) Accept(v ExprVisitor) (types.Type, error)         { return v.VisitDataExpr(e) }
func (e *Tuple) Accept(v ExprVisitor) (types.Type, error)            { return v.VisitTuple(e) }
func (e *Cons) Accept(v ExprVisitor) (types.Type, error)             { return v.VisitCons(e) }
func (e *List) Accept(v ExprVisitor) (types.Type, error)             { return v.VisitList(e) }
func (e *ListBinary) Accept(v ExprVisitor) (types.Type, error)       { return v.VisitListBinary(e) }
func (e *ListUnary) Accept(v ExprVisitor) (types.Type, error)        { return v.VisitListUnary(e) }
func (e *Otherwise) Accept(v ExprVisitor) (types.Type, error)        { return v.VisitOtherwise(e) }
func (e *LetIn) Accept(v ExprVisitor) (types.Type, error)            { return v.VisitLetIn(e) }
func (e *Case) Accept(v ExprVisitor) (types.Type, error)             { return v.VisitCase(e) }
