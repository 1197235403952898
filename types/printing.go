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

import (
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme, prefixed by the constraints of its
// quantified variables: `(Eq t1, Num t2) => t1 -> t2`
func SchemeString(s *Scheme) string {
	var preds []string
	for _, id := range s.Quantifiers {
		cs := s.Constraints[id]
		if len(cs) == 0 {
			continue
		}
		name := varName(s.Body, id)
		for _, c := range cs {
			preds = append(preds, c+" "+name)
		}
	}
	body := TypeString(s.Body)
	switch len(preds) {
	case 0:
		return body
	case 1:
		return preds[0] + " => " + body
	}
	slices.Sort(preds)
	return "(" + strings.Join(preds, ", ") + ") => " + body
}

func varName(t Type, id int) string {
	switch t := t.(type) {
	case *Var:
		if t.ID == id {
			return t.DisplayName()
		}
	case *Con:
		for _, arg := range t.Args {
			if name := varName(arg, id); name != "" {
				return name
			}
		}
	}
	return ""
}

// simple is set for constructor arguments, which must be parenthesised unless atomic.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(t.DisplayName())

	case *Con:
		switch {
		case IsFunc(t):
			if simple {
				p.sb.WriteByte('(')
			}
			typeString(p, IsFunc(t.Args[0]), t.Args[0])
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Args[1])
			if simple {
				p.sb.WriteByte(')')
			}

		case IsList(t):
			p.sb.WriteByte('[')
			typeString(p, false, t.Args[0])
			p.sb.WriteByte(']')

		case t.Name == TupleName:
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
			}
			p.sb.WriteByte(')')

		case len(t.Args) == 0:
			p.sb.WriteString(t.Name)

		default:
			if simple {
				p.sb.WriteByte('(')
			}
			p.sb.WriteString(t.Name)
			for _, arg := range t.Args {
				p.sb.WriteByte(' ')
				typeString(p, true, arg)
			}
			if simple {
				p.sb.WriteByte(')')
			}
		}
	}
}
