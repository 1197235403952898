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

package types

// Type is the base interface for all types. The set of implementations is closed: *Var and *Con.
type Type interface {
	TypeName() string
	isType()
}

func (t *Var) TypeName() string { return "Var" }
func (t *Con) TypeName() string { return "Con" }

func (*Var) isType() {}
func (*Con) isType() {}

// Names of the built-in type constructors.
const (
	NumberName  = "Number"
	StringName  = "String"
	CharName    = "Char"
	BooleanName = "Boolean"
	ArrowName   = "->"
	ListName    = "List"
	TupleName   = "Tuple"
)

// Type constructor: `Number`, `[a]`, `a -> b`, `(a, b)`, `Maybe a`
//
// Function types have exactly 2 args (parameter, result), lists have 1 arg, tuples have N args.
type Con struct {
	Name string
	Args []Type
}

// Primitive types. Types are never mutated after construction, so these may be shared.
var (
	Number  = &Con{Name: NumberName}
	String  = &Con{Name: StringName}
	Char    = &Con{Name: CharName}
	Boolean = &Con{Name: BooleanName}
)

// Create a nullary or applied type constructor.
func NewCon(name string, args ...Type) *Con { return &Con{Name: name, Args: args} }

// Function type: `from -> to`
func Func(from, to Type) *Con { return &Con{Name: ArrowName, Args: []Type{from, to}} }

// Curried function type: `p1 -> p2 -> ... -> ret`
func Curried(params []Type, ret Type) Type {
	t := ret
	for i := len(params) - 1; i >= 0; i-- {
		t = Func(params[i], t)
	}
	return t
}

// List type: `[elem]`
func List(elem Type) *Con { return &Con{Name: ListName, Args: []Type{elem}} }

// Tuple type: `(a, b, ...)`
func Tuple(elems ...Type) *Con { return &Con{Name: TupleName, Args: elems} }

// Check if t is a function type.
func IsFunc(t Type) bool { return isCon(t, ArrowName, 2) }

// Check if t is a list type.
func IsList(t Type) bool { return isCon(t, ListName, 1) }

// Check if t is a tuple type.
func IsTuple(t Type) bool {
	c, ok := t.(*Con)
	return ok && c.Name == TupleName
}

func isCon(t Type, name string, arity int) bool {
	c, ok := t.(*Con)
	return ok && c.Name == name && len(c.Args) == arity
}

// Split a curried function type into its parameter types and its final return type.
// A non-function type has no parameters and is its own return type.
func Split(t Type) (params []Type, ret Type) {
	for IsFunc(t) {
		c := t.(*Con)
		params = append(params, c.Args[0])
		t = c.Args[1]
	}
	return params, t
}

// Arity counts the top-level arrows of a curried function type.
func Arity(t Type) int {
	n := 0
	for IsFunc(t) {
		n++
		t = t.(*Con).Args[1]
	}
	return n
}

// Elem returns the element type of a list type, or nil.
func Elem(t Type) Type {
	if !IsList(t) {
		return nil
	}
	return t.(*Con).Args[0]
}
