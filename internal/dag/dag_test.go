// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestTopologicalSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func(g *Graph)
		wantExact []string    // full expected order; nil skips the check
		wantLen   int
		before    [][2]string // pairs that must keep this relative order
	}{
		{
			name:  "empty graph",
			build: func(g *Graph) {},
		},
		{
			name:      "single node",
			build:     func(g *Graph) { g.AddNode("@acme/widgets") },
			wantExact: []string{"@acme/widgets"},
			wantLen:   1,
		},
		{
			name: "linear chain builds the primary last",
			build: func(g *Graph) {
				g.AddEdge("@acme/widgets/core", "@acme/widgets/testing")
				g.AddEdge("@acme/widgets/testing", "@acme/widgets")
			},
			wantExact: []string{"@acme/widgets/core", "@acme/widgets/testing", "@acme/widgets"},
			wantLen:   3,
		},
		{
			name: "diamond",
			build: func(g *Graph) {
				g.AddEdge("A", "B")
				g.AddEdge("A", "C")
				g.AddEdge("B", "D")
				g.AddEdge("C", "D")
			},
			wantLen: 4,
			before:  [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		},
		{
			name: "disconnected components",
			build: func(g *Graph) {
				g.AddEdge("A", "B")
				g.AddNode("C")
				g.AddNode("D")
			},
			wantLen: 4,
			before:  [][2]string{{"A", "B"}},
		},
		{
			name: "duplicate edges collapse",
			build: func(g *Graph) {
				g.AddEdge("A", "B")
				g.AddEdge("A", "B")
			},
			wantExact: []string{"A", "B"},
			wantLen:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := New()
			tt.build(g)

			order, err := g.TopologicalSort()
			if err != nil {
				t.Fatalf("TopologicalSort() error: %v", err)
			}
			if tt.wantLen == 0 && order != nil {
				t.Fatalf("expected nil order for an empty graph, got %v", order)
			}
			if len(order) != tt.wantLen {
				t.Fatalf("got %d nodes, want %d: %v", len(order), tt.wantLen, order)
			}
			if tt.wantExact != nil && !slices.Equal(order, tt.wantExact) {
				t.Errorf("order = %v, want %v", order, tt.wantExact)
			}
			for _, pair := range tt.before {
				if slices.Index(order, pair[0]) >= slices.Index(order, pair[1]) {
					t.Errorf("%s should come before %s in %v", pair[0], pair[1], order)
				}
			}
		})
	}
}

func TestTopologicalSortRejectsCycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edges      [][2]string
		minInCycle int
	}{
		{"self loop", [][2]string{{"A", "A"}}, 1},
		{"two node cycle", [][2]string{{"A", "B"}, {"B", "A"}}, 2},
		{"three node cycle", [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := New()
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1])
			}

			_, err := g.TopologicalSort()
			if err == nil {
				t.Fatal("expected a cycle error, got nil")
			}
			var cycleErr *CycleError
			if !errors.As(err, &cycleErr) {
				t.Fatalf("expected *CycleError, got %T: %v", err, err)
			}
			if len(cycleErr.Cycle) < tt.minInCycle {
				t.Errorf("cycle %v names fewer than %d nodes", cycleErr.Cycle, tt.minInCycle)
			}
		})
	}
}

func TestHasNode(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddEdge("@acme/widgets/testing", "@acme/widgets")

	if !g.HasNode("@acme/widgets") {
		t.Error("expected @acme/widgets to be known")
	}
	if g.HasNode("rxjs") {
		t.Error("rxjs should not be known")
	}
}

func TestCycleErrorMessage(t *testing.T) {
	t.Parallel()

	err := &CycleError{Cycle: []string{"A", "B", "C"}}
	want := "entry point dependency cycle detected: A -> B -> C"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
