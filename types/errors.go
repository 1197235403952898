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

// MismatchError is returned when two type constructors differ in name or arity.
type MismatchError struct {
	A, B Type
}

func (e *MismatchError) Error() string {
	return "Cannot unify " + TypeString(e.A) + " with " + TypeString(e.B)
}

// OccursError is returned when binding a type-variable would construct an infinite type.
type OccursError struct {
	Var  *Var
	Type Type
}

func (e *OccursError) Error() string {
	return "Occurs check failed: " + e.Var.DisplayName() + " occurs in " + TypeString(e.Type)
}

// ConstraintError is returned when a type is not an instance of a required type-class.
type ConstraintError struct {
	Class string
	Type  Type
}

func (e *ConstraintError) Error() string {
	return "Type '" + TypeString(e.Type) + "' is not an instance of '" + e.Class + "'"
}
