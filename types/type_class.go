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

import "golang.org/x/exp/slices"

var primitives = []string{NumberName, StringName, CharName, BooleanName}

// Fixed table of built-in type-classes and the names of their member type constructors.
// User-defined instances are not supported.
var typeClasses = map[string][]string{
	"Bounded":    {NumberName, CharName, BooleanName},
	"Enum":       {NumberName, CharName, BooleanName},
	"Eq":         append(primitives[:len(primitives):len(primitives)], ListName, TupleName),
	"Floating":   {NumberName},
	"Fractional": {NumberName},
	"Functor":    {ListName},
	"Integral":   {NumberName},
	"Ix":         {NumberName, CharName, BooleanName, TupleName},
	"Monad":      {ListName},
	"MonadPlus":  {ListName},
	"Num":        {NumberName},
	"Ord":        append(primitives[:len(primitives):len(primitives)], ListName, TupleName),
	"Random":     {NumberName, CharName, BooleanName},
	"RandomGen":  {},
	"Read":       primitives,
	"Real":       {NumberName},
	"RealFloat":  {NumberName},
	"RealFrac":   {NumberName},
	"Show":       append(primitives[:len(primitives):len(primitives)], ListName, TupleName),
}

// Type-classes whose List/Tuple instances require instances for every element type.
var structuralClasses = map[string]bool{"Eq": true, "Ord": true, "Show": true, "Ix": true}

// Check if a type-class with the given name is built in.
func IsTypeClass(name string) bool {
	_, ok := typeClasses[name]
	return ok
}

// Check if the named type constructor is an instance of the type-class.
func HasInstance(class, con string) bool {
	return slices.Contains(typeClasses[class], con)
}

// Check if instances of the type-class for a constructor also constrain its arguments.
func IsStructural(class string) bool { return structuralClasses[class] }

// Sorted names of all built-in type-classes.
func TypeClassNames() []string {
	names := make([]string, 0, len(typeClasses))
	for name := range typeClasses {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
