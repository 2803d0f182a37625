// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: Region total order and pairwise merge.
package region

import (
	"fmt"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/nodeset"
)

// Compare ranks regions by interestingness; a larger value is better.
//
// Order:
//  1. Support ascending.
//  2. AvgLength ascending.
//  3. Node-set cardinality ascending.
//  4. Smallest node ID ascending.
//  5. Node-set order, so distinct sets never compare equal.
//
// Returns -1, 0 or +1.
func Compare(a, b *Region) int {
	if c := cmpInt(a.support, b.support); c != 0 {
		return c
	}
	if c := cmpInt(a.avgLength, b.avgLength); c != 0 {
		return c
	}
	if c := cmpInt(a.nodes.Len(), b.nodes.Len()); c != 0 {
		return c
	}
	fa, _ := a.nodes.First()
	fb, _ := b.nodes.First()
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}

	return a.nodes.Compare(b.nodes)
}

// Merge builds the region over the union of a's and b's node sets.
//
// Implementation:
//   - Stage 1: Union node sets (nodeset.Merge).
//   - Stage 2: Union path collections, deduplicated by core.ComparePaths;
//     a collection shared by both parents is reused as is.
//   - Stage 3: Union sequence tables, reusing a shared table.
//   - Stage 4: Full recompute under the caller's alpha and kappa.
//
// Behavior highlights:
//   - Parents are never modified.
//   - Parent alpha/kappa are ignored; the search applies its global values.
//
// Errors:
//   - ErrRestored: either parent came from a report.
//   - ErrBadAlpha, ErrBadKappa, ErrMissingSequence: as for New.
func Merge(a, b *Region, alpha float64, kappa int) (*Region, error) {
	if a.restored || b.restored {
		return nil, fmt.Errorf("Merge(%s, %s): %w", a.nodes, b.nodes, ErrRestored)
	}
	if err := checkParams(alpha, kappa); err != nil {
		return nil, err
	}

	r := &Region{
		nodes: nodeset.Merge(a.nodes, b.nodes),
		paths: unionPaths(a.paths, b.paths),
		seqs:  unionSequences(a.seqs, b.seqs),
		alpha: alpha,
		kappa: kappa,
	}
	if err := r.recompute(); err != nil {
		return nil, fmt.Errorf("Merge(%s, %s): %w", a.nodes, b.nodes, err)
	}

	return r, nil
}

// unionPaths merges two sorted, duplicate-free path slices.
func unionPaths(a, b []*core.Path) []*core.Path {
	if sameSlice(a, b) || len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}

	out := make([]*core.Path, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := core.ComparePaths(a[i], b[j]); {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

func sameSlice(a, b []*core.Path) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
