// SPDX-License-Identifier: MIT
//
// File: nodeset.go
// Role: Immutable ordered node-ID set with total order, subset tests and union.
//
// Determinism:
//   - IDs are stored sorted ascending and duplicate-free; every operation
//     that builds a set re-establishes that invariant.
//
// Concurrency:
//   - A NodeSet is never mutated after construction; values are safe to share.
package nodeset

import (
	"errors"
	"slices"

	"github.com/katalvlaran/frfinder/core"
)

// ErrMalformed is returned by Parse for text that is not a bracketed list of
// unsigned integers.
var ErrMalformed = errors.New("nodeset: malformed node set")

// NodeSet is a strictly increasing, duplicate-free sequence of node IDs.
// The zero value is the empty set.
type NodeSet struct {
	ids []uint64
}

// New builds a set from ids in any order; duplicates collapse.
// Complexity: O(n log n).
func New(ids ...uint64) NodeSet {
	if len(ids) == 0 {
		return NodeSet{}
	}
	out := slices.Clone(ids)
	slices.Sort(out)

	return NodeSet{ids: slices.Compact(out)}
}

// FromNodes builds a set from node values.
func FromNodes(nodes []*core.Node) NodeSet {
	ids := make([]uint64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}

	return New(ids...)
}

// Empty returns the empty set.
func Empty() NodeSet { return NodeSet{} }

// Add returns a new set that also contains id. The receiver is unchanged.
// Complexity: O(n).
func (s NodeSet) Add(id uint64) NodeSet {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		return s
	}
	out := make([]uint64, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	out = append(out, s.ids[i:]...)

	return NodeSet{ids: out}
}

// Len returns the cardinality.
func (s NodeSet) Len() int { return len(s.ids) }

// IsEmpty reports whether the set has no members.
func (s NodeSet) IsEmpty() bool { return len(s.ids) == 0 }

// IDs returns a copy of the members in ascending order.
func (s NodeSet) IDs() []uint64 { return slices.Clone(s.ids) }

// Contains reports membership by binary search. Complexity: O(log n).
func (s NodeSet) Contains(id uint64) bool {
	_, found := slices.BinarySearch(s.ids, id)

	return found
}

// First returns the smallest member; ok is false for the empty set.
func (s NodeSet) First() (id uint64, ok bool) {
	if len(s.ids) == 0 {
		return 0, false
	}

	return s.ids[0], true
}

// Equal reports set equality.
func (s NodeSet) Equal(other NodeSet) bool { return slices.Equal(s.ids, other.ids) }

// Compare orders sets by cardinality first, then elementwise at the first
// differing position. It returns -1, 0 or +1.
//
// Behavior highlights:
//   - Two empty sets compare equal; the empty set precedes any non-empty set.
//
// Complexity: O(min(|s|, |other|)).
func (s NodeSet) Compare(other NodeSet) int {
	if c := compareInt(len(s.ids), len(other.ids)); c != 0 {
		return c
	}

	return slices.Compare(s.ids, other.ids)
}

// ParentOf reports whether s is a strict subset of other.
// Complexity: O(|s| + |other|).
func (s NodeSet) ParentOf(other NodeSet) bool {
	if len(s.ids) >= len(other.ids) {
		return false
	}

	return isSubset(s.ids, other.ids)
}

// ChildOf reports whether s is a strict superset of other.
func (s NodeSet) ChildOf(other NodeSet) bool { return other.ParentOf(s) }

// Merge returns the union of a and b. Neither input is modified.
// Complexity: O(|a| + |b|).
func Merge(a, b NodeSet) NodeSet {
	if len(a.ids) == 0 {
		return b
	}
	if len(b.ids) == 0 {
		return a
	}
	out := make([]uint64, 0, len(a.ids)+len(b.ids))
	i, j := 0, 0
	for i < len(a.ids) && j < len(b.ids) {
		switch {
		case a.ids[i] < b.ids[j]:
			out = append(out, a.ids[i])
			i++
		case a.ids[i] > b.ids[j]:
			out = append(out, b.ids[j])
			j++
		default:
			out = append(out, a.ids[i])
			i++
			j++
		}
	}
	out = append(out, a.ids[i:]...)
	out = append(out, b.ids[j:]...)

	return NodeSet{ids: out}
}

// isSubset reports whether every element of small occurs in big; both sorted.
func isSubset(small, big []uint64) bool {
	j := 0
	for _, id := range small {
		for j < len(big) && big[j] < id {
			j++
		}
		if j == len(big) || big[j] != id {
			return false
		}
		j++
	}

	return true
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
