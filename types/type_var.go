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

import "strconv"

// Type variable
//
// Ids are unique within one checking run. Type-class constraints on a variable are not stored here;
// they are tracked by the solver, keyed by id.
type Var struct {
	ID   int
	Name string // optional display name, e.g. `a` from a signature
}

// Create an anonymous type-variable with the given id.
func NewVar(id int) *Var { return &Var{ID: id} }

// Create a type-variable with the given id and display name.
func NewNamedVar(id int, name string) *Var { return &Var{ID: id, Name: name} }

// Display name of the variable: its declared name, or `t<id>`.
func (t *Var) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return "t" + strconv.Itoa(t.ID)
}

// FreeVars returns the ids of all type-variables within t, in order of first occurrence.
func FreeVars(t Type) []int {
	var ids []int
	seen := make(map[int]bool)
	var visit func(Type)
	visit = func(t Type) {
		switch t := t.(type) {
		case *Var:
			if !seen[t.ID] {
				seen[t.ID] = true
				ids = append(ids, t.ID)
			}
		case *Con:
			for _, arg := range t.Args {
				visit(arg)
			}
		}
	}
	visit(t)
	return ids
}

// Occurs reports whether the type-variable id occurs structurally within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.ID == id
	case *Con:
		for _, arg := range t.Args {
			if Occurs(id, arg) {
				return true
			}
		}
	}
	return false
}
