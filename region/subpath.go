// File: subpath.go
// Role: Subpath derivation with the kappa (insertion) and alpha (penetrance)
// filters, followed by the support/avgLength statistics.
package region

import (
	"fmt"

	"github.com/katalvlaran/frfinder/core"
)

// recompute derives subpaths from the full path collection and refreshes
// every derived statistic. It is called exactly once per Region value.
func (r *Region) recompute() error {
	var subpaths []*core.Path
	for _, p := range r.paths {
		sp, err := r.subpathOf(p)
		if err != nil {
			return err
		}
		if sp != nil {
			subpaths = append(subpaths, sp)
		}
	}
	r.subpaths = core.SortPaths(subpaths)

	return r.updateStats()
}

// subpathOf returns the qualifying subpath of p, or nil when p does not
// support the region.
//
// Implementation:
//   - Stage 1: Locate the first and last positions of p whose node is in the
//     set. A multi-node region needs two matched positions; a singleton is
//     supported by any traversal of its node.
//   - Stage 2: Scan the span between them. Off-set nodes form insertion runs
//     that close when the scan re-enters a member; each run's summed
//     sequence length must not exceed kappa.
//   - Stage 3: Count distinct members present in the span; reject when the
//     fraction of the set they cover is below alpha.
//
// Errors:
//   - ErrMissingSequence: a span node has no sequence. Every span node is
//     looked up even after a filter has already rejected the span.
func (r *Region) subpathOf(p *core.Path) (*core.Path, error) {
	size := r.nodes.Len()
	if size == 0 {
		return nil, nil
	}
	need := min(2, size)

	left, right, matched := -1, -1, 0
	for i, id := range p.Nodes {
		if r.nodes.Contains(id) {
			if left < 0 {
				left = i
			}
			right = i
			matched++
		}
	}
	if matched < need {
		return nil, nil
	}

	span := p.Nodes[left : right+1 : right+1]
	members := make(map[uint64]struct{}, min(size, matched))
	kappaOK := true
	insertion := 0
	for _, id := range span {
		seq, ok := r.seqs.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("path %s: node %d: %w", p.Name, id, ErrMissingSequence)
		}
		if r.nodes.Contains(id) {
			if insertion > r.kappa {
				kappaOK = false
			}
			insertion = 0
			members[id] = struct{}{}
			continue
		}
		insertion += len(seq)
	}
	if !kappaOK {
		return nil, nil
	}
	if frac := float64(len(members)) / float64(size); frac < r.alpha {
		return nil, nil
	}

	return &core.Path{Name: p.Name, Label: p.Label, Nodes: span}, nil
}

// updateStats computes support, avgLength and per-label counts from the
// accepted subpaths.
func (r *Region) updateStats() error {
	r.support = len(r.subpaths)
	r.labelCounts = make(map[string]int)
	if r.support == 0 {
		r.avgLength = 0
		return nil
	}

	total := 0
	for _, sp := range r.subpaths {
		r.labelCounts[sp.Label]++
		for _, id := range sp.Nodes {
			seq, ok := r.seqs.Lookup(id)
			if !ok {
				return fmt.Errorf("subpath %s: node %d: %w", sp.Name, id, ErrMissingSequence)
			}
			total += len(seq)
		}
	}
	r.avgLength = total / r.support

	return nil
}
