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

package util_test

import (
	"sort"
	"testing"

	. "github.com/wdamron/hmcheck/internal/util"
)

func sorted(sccs [][]int) [][]int {
	for _, scc := range sccs {
		sort.Ints(scc)
	}
	return sccs
}

func TestSCC(t *testing.T) {
	// 0 -> 1 -> 2 -> 0, 2 -> 3, 4 -> 4
	g := NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)
	g.AddEdge(2, 3)
	g.AddEdge(4, 4)

	if len(g[2]) != 2 {
		t.Fatalf("duplicate edge was added: %v", g[2])
	}

	sccs := sorted(g.SCC())
	if len(sccs) != 3 {
		t.Fatalf("unexpected components: %v", sccs)
	}
	pos := make(map[int]int)
	for i, scc := range sccs {
		for _, v := range scc {
			pos[v] = i
		}
	}
	if pos[0] != pos[1] || pos[1] != pos[2] {
		t.Fatalf("cycle was split: %v", sccs)
	}
	if pos[0] > pos[3] {
		t.Fatalf("components are not in topological order: %v", sccs)
	}

	cyclic := g.Cyclic()
	expect := []bool{true, true, true, false, true}
	for v := range expect {
		if cyclic[v] != expect[v] {
			t.Fatalf("vertex %d: cyclic = %v", v, cyclic[v])
		}
	}
}
