package region

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/nodeset"
)

// New builds a region over nodes and recomputes its subpaths.
//
// Implementation:
//   - Stage 1: Validate alpha and kappa.
//   - Stage 2: Sort and deduplicate a copy of paths by core.ComparePaths.
//   - Stage 3: Derive subpaths and statistics.
//
// Errors:
//   - ErrBadAlpha, ErrBadKappa: parameters out of range.
//   - ErrMissingSequence: a subpath node has no entry in seqs.
//
// Complexity: O(P·L·log|nodes|) for P paths of length ≤ L.
func New(nodes nodeset.NodeSet, paths []*core.Path, seqs *Sequences, alpha float64, kappa int) (*Region, error) {
	if err := checkParams(alpha, kappa); err != nil {
		return nil, err
	}
	if seqs == nil {
		seqs = NewSequences(nil)
	}
	r := &Region{
		nodes: nodes,
		paths: core.SortPaths(slices.Clone(paths)),
		seqs:  seqs,
		alpha: alpha,
		kappa: kappa,
	}
	if err := r.recompute(); err != nil {
		return nil, err
	}

	return r, nil
}

// Derive builds a region over nodes that shares r's paths, sequences, alpha
// and kappa. It is how a search seeds one singleton per node without copying
// the path collection.
func (r *Region) Derive(nodes nodeset.NodeSet) (*Region, error) {
	if r.restored {
		return nil, fmt.Errorf("Derive(%s): %w", nodes, ErrRestored)
	}
	out := &Region{nodes: nodes, paths: r.paths, seqs: r.seqs, alpha: r.alpha, kappa: r.kappa}
	if err := out.recompute(); err != nil {
		return nil, err
	}

	return out, nil
}

// Recompute returns a new region with the same contents evaluated under
// different filter parameters. The receiver is unchanged.
func (r *Region) Recompute(alpha float64, kappa int) (*Region, error) {
	if r.restored {
		return nil, fmt.Errorf("Recompute(%s): %w", r.nodes, ErrRestored)
	}
	if err := checkParams(alpha, kappa); err != nil {
		return nil, err
	}
	out := &Region{nodes: r.nodes, paths: r.paths, seqs: r.seqs, alpha: alpha, kappa: kappa}
	if err := out.recompute(); err != nil {
		return nil, err
	}

	return out, nil
}

// Restore rebuilds a region from persisted statistics. It carries no paths,
// sequences or subpaths and cannot be merged or recomputed.
func Restore(nodes nodeset.NodeSet, support, avgLength int, labelCounts map[string]int) *Region {
	counts := make(map[string]int, len(labelCounts))
	for label, n := range labelCounts {
		counts[label] = n
	}

	return &Region{
		nodes:       nodes,
		support:     support,
		avgLength:   avgLength,
		labelCounts: counts,
		restored:    true,
	}
}

func checkParams(alpha float64, kappa int) error {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return fmt.Errorf("alpha=%v: %w", alpha, ErrBadAlpha)
	}
	if kappa < 0 {
		return fmt.Errorf("kappa=%d: %w", kappa, ErrBadKappa)
	}

	return nil
}
