// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes sorted by ID ascending.
//
// Concurrency:
//   - Node catalog protected by muNode.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with its sequence.
//
// Implementation:
//   - Stage 1: Under muNode write lock, check presence.
//   - Stage 2: If present with the same sequence, no-op; with a different
//     sequence, reject with ErrDuplicateNode.
//   - Stage 3: Otherwise register the node.
//
// Behavior highlights:
//   - Idempotent for identical (id, sequence) pairs, so loaders may replay input.
//   - Empty sequences are legal (zero-length nodes contribute 0 bases).
//
// Errors:
//   - ErrDuplicateNode: id already present with a different sequence.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id uint64, sequence string) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if existing, ok := g.nodes[id]; ok {
		if existing.Sequence == sequence {
			return nil
		}

		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &Node{ID: id, Sequence: sequence}

	return nil
}

// HasNode reports whether the node ID exists. A nil graph has no nodes.
// Complexity: O(1).
func (g *Graph) HasNode(id uint64) bool {
	if g == nil {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id uint64) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// Nodes returns every node sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	g.muNode.RLock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	g.muNode.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns every node ID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []uint64 {
	g.muNode.RLock()
	out := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.muNode.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Sequences returns a copy of the node ID → sequence table.
//
// The copy is what regions share read-only during a search, so later
// AddNode calls never race with a running search.
// Complexity: O(V).
func (g *Graph) Sequences() map[uint64]string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make(map[uint64]string, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.Sequence
	}

	return out
}
