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

import "github.com/wdamron/hmcheck/types"

// Program is an ordered sequence of top-level declarations.
type Program []Decl

// Decl is the base for all top-level declarations.
type Decl interface {
	// Name of the syntax-type of the declaration.
	DeclName() string
	decl()
}

var (
	_ Decl = (*Function)(nil)
	_ Decl = (*TypeSignature)(nil)
	_ Decl = (*TypeAlias)(nil)
	_ Decl = (*Record)(nil)
)

// Function definition: one or more equations `f p1 p2 = e`
type Function struct {
	Name      string
	Equations []*Equation
}

// Type signature: `f :: Num a => a -> a`
type TypeSignature struct {
	Name string
	Body TypeExpr
}

// Type alias: `type Name = String`
type TypeAlias struct {
	Name  string
	Value TypeExpr
}

// Data declaration: `data Maybe a = Nothing | Just a`
type Record struct {
	Name         string
	Params       []string
	Constructors []*Constructor
}

// Data constructor: `Just a`, `Point { x :: Int, y :: Int }`
type Constructor struct {
	Name   string
	Fields []*Field
}

// Constructor field. Name is empty for positional fields.
type Field struct {
	Name  string
	Value TypeExpr
}

// "Function"
func (d *Function) DeclName() string { return "Function" }

// "TypeSignature"
func (d *TypeSignature) DeclName() string { return "TypeSignature" }

// "TypeAlias"
func (d *TypeAlias) DeclName() string { return "TypeAlias" }

// "Record"
func (d *Record) DeclName() string { return "Record" }

func (*Function) decl()      {}
func (*TypeSignature) decl() {}
func (*TypeAlias) decl()     {}
func (*Record) decl()        {}

// Equation of a function: parameter patterns and a body.
type Equation struct {
	Patterns []Pattern
	Body     Body
}

// Body is either an *UnguardedBody or Guards.
type Body interface {
	body()
}

var (
	_ Body = (*UnguardedBody)(nil)
	_ Body = Guards(nil)
)

// Single return expression: `f x = e`
type UnguardedBody struct {
	Expr Expr
}

// Ordered guard clauses: `f x | c1 = e1 | otherwise = e2`
type Guards []*GuardedBody

// Guard clause pairing a boolean condition with a return expression.
type GuardedBody struct {
	Condition Expr
	Body      Expr
}

func (*UnguardedBody) body() {}
func (Guards) body()         {}

// TypeExpr is the base for all type syntax.
type TypeExpr interface {
	// Accept dispatches to the method of v for the syntax-type of the node.
	Accept(v TypeVisitor) types.Type
}

var (
	_ TypeExpr = (*SimpleType)(nil)
	_ TypeExpr = (*ParameterizedType)(nil)
	_ TypeExpr = (*TupleType)(nil)
	_ TypeExpr = (*ListType)(nil)
	_ TypeExpr = (*TypeApplication)(nil)
)

// TypeVisitor has one method per syntax-type of TypeExpr.
type TypeVisitor interface {
	VisitSimpleType(t *SimpleType) types.Type
	VisitParameterizedType(t *ParameterizedType) types.Type
	VisitTupleType(t *TupleType) types.Type
	VisitListType(t *ListType) types.Type
	VisitTypeApplication(t *TypeApplication) types.Type
}

// Named type or type-variable: `Int`, `a`. Lower-case names are type-variables.
type SimpleType struct {
	Value string
}

// Function type with optional constraints: `(Eq a, Show b) => a -> b -> String`
//
// A constrained non-function type `Num a => a` has no inputs.
type ParameterizedType struct {
	Inputs      []TypeExpr
	Return      TypeExpr
	Constraints []*Constraint
}

// Constraint clause: `Num a`
type Constraint struct {
	Class  string
	Params []TypeExpr
}

// Tuple type: `(a, Int)`
type TupleType struct {
	Values []TypeExpr
}

// List type: `[a]`
type ListType struct {
	Value TypeExpr
}

// Applied type constructor: `Maybe a`
type TypeApplication struct {
	Constructor string
	Args        []TypeExpr
}

func (t *SimpleType) Accept(v TypeVisitor) types.Type        { return v.VisitSimpleType(t) }
func (t *ParameterizedType) Accept(v TypeVisitor) types.Type { return v.VisitParameterizedType(t) }
func (t *TupleType) Accept(v TypeVisitor) types.Type         { return v.VisitTupleType(t) }
func (t *ListType) Accept(v TypeVisitor) types.Type          { return v.VisitListType(t) }
func (t *TypeApplication) Accept(v TypeVisitor) types.Type   { return v.VisitTypeApplication(t) }
