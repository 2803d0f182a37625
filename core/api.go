// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: policy flags and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// StrictPaths reports whether AddPath validates node references.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) StrictPaths() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.strictPaths
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muNode.RLock, count nodes/edges and bases, then release.
//   - Stage 2: Acquire muPath.RLock, count paths and labels, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(V + P), Space O(labels).
func (g *Graph) Stats() *GraphStats {
	g.muNode.RLock()
	stats := GraphStats{
		NodeCount:   len(g.nodes),
		EdgeCount:   len(g.edges),
		StrictPaths: g.strictPaths,
		LabelCounts: make(map[string]int),
	}
	for _, n := range g.nodes {
		stats.TotalBases += len(n.Sequence)
		if len(n.Sequence) > stats.MaxNodeLength {
			stats.MaxNodeLength = len(n.Sequence)
		}
	}
	g.muNode.RUnlock()

	g.muPath.RLock()
	stats.PathCount = len(g.paths)
	for _, p := range g.paths {
		stats.LabelCounts[p.Label]++
		if len(p.Nodes) > stats.LongestPath {
			stats.LongestPath = len(p.Nodes)
		}
	}
	g.muPath.RUnlock()

	return &stats
}
