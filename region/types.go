// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Region aggregate, shared sequence table and sentinel errors.
//
// Policy:
//   - A Region is immutable after construction; every constructor runs the
//     full recompute, so statistics always match (nodes, paths, alpha, kappa).
//   - Path collections and sequence tables are shared read-only between
//     regions derived from the same graph.
package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/nodeset"
)

// RCSupport is the reverse-complement support of every region. Reverse
// complement matching is not implemented; the counter is reserved.
const RCSupport = 0

var (
	// ErrMissingSequence indicates a subpath node absent from the sequence
	// table. It is fatal for a search: statistics would be wrong otherwise.
	ErrMissingSequence = errors.New("region: node has no sequence")

	// ErrRestored indicates an operation that needs sequences was attempted
	// on a region restored from a report.
	ErrRestored = errors.New("region: restored region has no sequences")

	// ErrBadAlpha indicates alpha outside [0,1].
	ErrBadAlpha = errors.New("region: alpha must be within [0,1]")

	// ErrBadKappa indicates a negative kappa.
	ErrBadKappa = errors.New("region: kappa must be non-negative")
)

// Sequences is a read-only node ID → sequence table shared by regions.
type Sequences struct {
	m map[uint64]string
}

// NewSequences wraps m. The caller must not modify m afterwards.
func NewSequences(m map[uint64]string) *Sequences {
	if m == nil {
		m = map[uint64]string{}
	}

	return &Sequences{m: m}
}

// Lookup returns the sequence of id.
func (s *Sequences) Lookup(id uint64) (string, bool) {
	if s == nil {
		return "", false
	}
	seq, ok := s.m[id]

	return seq, ok
}

// Len returns the number of entries.
func (s *Sequences) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// unionSequences returns a table holding both a and b. Identical tables are
// reused; sequences are keyed by global node ID so there is nothing to resolve.
func unionSequences(a, b *Sequences) *Sequences {
	switch {
	case a == b || b.Len() == 0:
		return a
	case a.Len() == 0:
		return b
	}
	m := make(map[uint64]string, a.Len()+b.Len())
	for id, seq := range a.m {
		m[id] = seq
	}
	for id, seq := range b.m {
		m[id] = seq
	}

	return &Sequences{m: m}
}

// Region is a frequented region: a node set together with the paths it was
// derived from and the subpaths that support it under (alpha, kappa).
type Region struct {
	nodes nodeset.NodeSet
	paths []*core.Path // sorted by core.ComparePaths, shared
	seqs  *Sequences   // shared
	alpha float64
	kappa int

	subpaths    []*core.Path
	support     int
	avgLength   int
	labelCounts map[string]int
	restored    bool
}

// Nodes returns the node set.
func (r *Region) Nodes() nodeset.NodeSet { return r.nodes }

// Size returns the node-set cardinality.
func (r *Region) Size() int { return r.nodes.Len() }

// Alpha returns the penetrance used for the last recompute.
func (r *Region) Alpha() float64 { return r.alpha }

// Kappa returns the maximum insertion length used for the last recompute.
func (r *Region) Kappa() int { return r.kappa }

// Support returns the number of qualifying subpaths.
func (r *Region) Support() int { return r.support }

// AvgLength returns the truncated mean subpath sequence length, or 0 when
// Support is 0.
func (r *Region) AvgLength() int { return r.avgLength }

// Restored reports whether the region was rebuilt from a report row.
func (r *Region) Restored() bool { return r.restored }

// Paths returns the full path collection the region was derived from.
func (r *Region) Paths() []*core.Path { return r.paths }

// String renders a one-line summary used in logs.
func (r *Region) String() string {
	return fmt.Sprintf("%s support=%d avgLen=%d", r.nodes, r.support, r.avgLength)
}
