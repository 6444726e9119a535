// SPDX-License-Identifier: MPL-2.0

// Package dag provides directed acyclic graph operations for topological
// sorting and cycle detection. The build planner uses it to order entry
// points so that every entry point is built after the entry points it
// imports.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError indicates that the graph contains a cycle, preventing
	// topological ordering.
	CycleError struct {
		// Cycle contains the nodes that form the cycle (not necessarily all
		// of them, but enough to identify the problem).
		Cycle []string
	}

	// Graph is a directed graph over string node keys (module IDs in the
	// build planner). An edge from A to B means A must be built before B.
	Graph struct {
		edges map[string][]string
		// insertion order of nodes; keeps TopologicalSort deterministic
		nodes []string
		known map[string]bool
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("entry point dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		edges: make(map[string][]string),
		known: make(map[string]bool),
	}
}

// AddNode records a node; adding the same node twice is a no-op.
func (g *Graph) AddNode(name string) {
	if g.known[name] {
		return
	}
	g.known[name] = true
	g.nodes = append(g.nodes, name)
}

// HasNode reports whether the node is part of the graph. The planner uses it
// to drop import references that do not name a sibling entry point.
func (g *Graph) HasNode(name string) bool {
	return g.known[name]
}

// AddEdge records that from must be built before to, adding either node if it
// is new. Duplicate edges do not change the resulting order.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.edges[from] = append(g.edges[from], to)
}

// TopologicalSort returns a build order via Kahn's algorithm, or a CycleError
// when no such order exists. Ties break on node insertion order, so the
// result is stable across runs.
func (g *Graph) TopologicalSort() ([]string, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	incoming := make(map[string]int, len(g.nodes))
	for _, from := range g.nodes {
		for _, to := range g.edges[from] {
			incoming[to]++
		}
	}

	ready := make([]string, 0, len(g.nodes))
	for _, node := range g.nodes {
		if incoming[node] == 0 {
			ready = append(ready, node)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for head := 0; head < len(ready); head++ {
		node := ready[head]
		order = append(order, node)
		for _, to := range g.edges[node] {
			incoming[to]--
			if incoming[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, &CycleError{Cycle: g.blocked(incoming)}
	}
	return order, nil
}

// blocked lists the nodes still waiting on an incoming edge after the sort
// ran out of ready nodes; together they contain the cycle.
func (g *Graph) blocked(incoming map[string]int) []string {
	var cycle []string
	for _, node := range g.nodes {
		if incoming[node] > 0 {
			cycle = append(cycle, node)
		}
	}
	return cycle
}
