// File: methods_edges.go
// Role: Directed edge lifecycle & queries.
//
// Edges are informational for the frequented region search: the search works
// on paths only, but loaders keep the topology so inspection and synthetic
// generators can reason about it.
package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the directed edge from→to. Both endpoints must exist.
// Re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrNodeNotFound: either endpoint is missing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to uint64) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("AddEdge(%d→%d): from: %w", from, to, ErrNodeNotFound)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("AddEdge(%d→%d): to: %w", from, to, ErrNodeNotFound)
	}

	e := Edge{From: from, To: to}
	if _, ok := g.edges[e]; ok {
		return nil
	}
	g.edges[e] = struct{}{}
	if g.successors[from] == nil {
		g.successors[from] = make(map[uint64]struct{})
	}
	g.successors[from][to] = struct{}{}

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to uint64) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.edges[Edge{From: from, To: to}]

	return ok
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muNode.RLock()
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	g.muNode.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.edges)
}

// Successors returns the sorted IDs reachable from id over one edge.
//
// Errors:
//   - ErrNodeNotFound: id is missing.
func (g *Graph) Successors(id uint64) ([]uint64, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("Successors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]uint64, 0, len(g.successors[id]))
	for to := range g.successors[id] {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}
