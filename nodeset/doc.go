// Package nodeset provides NodeSet, the immutable ordered set of node IDs that
// identifies a frequented region.
//
// Order:
//
//	Compare ranks by cardinality, then elementwise ascending at the first
//	differing member. This is the order used by region tie-breaking and by
//	deterministic report output.
//
// Relations:
//
//	a.ParentOf(b)  – a is a strict subset of b
//	a.ChildOf(b)   – a is a strict superset of b
//	Merge(a, b)    – union; |a ∪ b| ≤ |a| + |b|, commutative
//
// Text form:
//
//	String() writes "[1,5,9]" and Parse reads it back, optionally filtering
//	IDs against a NodeTable such as *core.Graph.
package nodeset
