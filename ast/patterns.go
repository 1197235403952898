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

// Pattern is the base for all patterns.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
	// Accept dispatches to the method of v for the syntax-type of the pattern. The expected type is
	// the type of the value matched by the pattern.
	Accept(v PatternVisitor, expected types.Type) error
}

// PatternVisitor has one method per syntax-type of Pattern.
type PatternVisitor interface {
	VisitLiteralPattern(p *LiteralPattern, expected types.Type) error
	VisitVarPattern(p *VarPattern, expected types.Type) error
	VisitWildcardPattern(p *WildcardPattern, expected types.Type) error
	VisitAsPattern(p *AsPattern, expected types.Type) error
	VisitConsPattern(p *ConsPattern, expected types.Type) error
	VisitListPattern(p *ListPattern, expected types.Type) error
	VisitTuplePattern(p *TuplePattern, expected types.Type) error
	VisitConstructorPattern(p *ConstructorPattern, expected types.Type) error
	VisitApplicationPattern(p *ApplicationPattern, expected types.Type) error
	VisitRecordPattern(p *RecordPattern, expected types.Type) error
}

var (
	_ Pattern = (*LiteralPattern)(nil)
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*AsPattern)(nil)
	_ Pattern = (*ConsPattern)(nil)
	_ Pattern = (*ListPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
	_ Pattern = (*ConstructorPattern)(nil)
	_ Pattern = (*ApplicationPattern)(nil)
	_ Pattern = (*RecordPattern)(nil)
)

// Literal pattern: `0`, `"s"`
type LiteralPattern struct {
	Value *Literal
}

// Variable pattern: `x`
type VarPattern struct {
	Name string
}

// Wildcard pattern: `_`
type WildcardPattern struct{}

// As-pattern: `all@(x:xs)`
type AsPattern struct {
	Name    string
	Pattern Pattern
}

// Cons pattern: `(x:xs)`
type ConsPattern struct {
	Head, Tail Pattern
}

// List pattern: `[]`, `[x, y]`
type ListPattern struct {
	Elems []Pattern
}

// Tuple pattern: `(a, b)`
type TuplePattern struct {
	Elems []Pattern
}

// Constructor pattern: `Nothing`, `Just x`
type ConstructorPattern struct {
	Constructor string
	Args        []Pattern
}

// Parenthesised constructor application pattern: `(Just x)`
type ApplicationPattern struct {
	Constructor string
	Args        []Pattern
}

// Record pattern: `Point { x = px }`
type RecordPattern struct {
	Constructor string
	Fields      []*FieldPattern
}

// Paired field name and pattern
type FieldPattern struct {
	Field   string
	Pattern Pattern
}

// "LiteralPattern"
func (p *LiteralPattern) PatternName() string { return "LiteralPattern" }

// "VarPattern"
func (p *VarPattern) PatternName() string { return "VarPattern" }

// "WildcardPattern"
func (p *WildcardPattern) PatternName() string { return "WildcardPattern" }

// "AsPattern"
func (p *AsPattern) PatternName() string { return "AsPattern" }

// "ConsPattern"
func (p *ConsPattern) PatternName() string { return "ConsPattern" }

// "ListPattern"
func (p *ListPattern) PatternName() string { return "ListPattern" }

// "TuplePattern"
func (p *TuplePattern) PatternName() string { return "TuplePattern" }

// "ConstructorPattern"
func (p *ConstructorPattern) PatternName() string { return "ConstructorPattern" }

// "ApplicationPattern"
func (p *ApplicationPattern) PatternName() string { return "ApplicationPattern" }

// "RecordPattern"
func (p *RecordPattern) PatternName() string { return "RecordPattern" }

func (p *LiteralPattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitLiteralPattern(p, t)
}
func (p *VarPattern) Accept(v PatternVisitor, t types.Type) error { return v.VisitVarPattern(p, t) }
func (p *WildcardPattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitWildcardPattern(p, t)
}
func (p *AsPattern) Accept(v PatternVisitor, t types.Type) error   { return v.VisitAsPattern(p, t) }
func (p *ConsPattern) Accept(v PatternVisitor, t types.Type) error { return v.VisitConsPattern(p, t) }
func (p *ListPattern) Accept(v PatternVisitor, t types.Type) error { return v.VisitListPattern(p, t) }
func (p *TuplePattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitTuplePattern(p, t)
}
func (p *ConstructorPattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitConstructorPattern(p, t)
}
func (p *ApplicationPattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitApplicationPattern(p, t)
}
func (p *RecordPattern) Accept(v PatternVisitor, t types.Type) error {
	return v.VisitRecordPattern(p, t)
}
