// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Path, Edge and Graph declarations, GraphOption, sentinel errors, NewGraph.
// Policy:
//   - Nodes and paths are immutable once they are stored in a Graph.
//   - Every enumeration surface returns sorted results (deterministic output).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node ID absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates a node ID was re-added with a different sequence.
	ErrDuplicateNode = errors.New("core: node already present with a different sequence")

	// ErrEmptyPathName indicates a path was added without a name.
	ErrEmptyPathName = errors.New("core: path name is empty")

	// ErrEmptyPath indicates a path was added without any node.
	ErrEmptyPath = errors.New("core: path has no nodes")

	// ErrDuplicatePath indicates a path name is already taken in the graph.
	ErrDuplicatePath = errors.New("core: path already present")

	// ErrPathNotFound indicates an operation referenced a path name absent from the graph.
	ErrPathNotFound = errors.New("core: path not found")
)

// Node is a segment of the pangenome graph: a unique identifier and the
// nucleotide sequence it spells.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID uint64

	// Sequence is the nucleotide sequence carried by the node.
	Sequence string
}

// Len returns the sequence length in bases.
func (n *Node) Len() int { return len(n.Sequence) }

// Edge is a directed link between two nodes.
type Edge struct {
	From uint64
	To   uint64
}

// Path is a haplotype walk through the graph.
//
// Name is unique per graph, Label is an optional category such as "case" or
// "ctrl", Nodes is the ordered walk. A Path stored in a Graph must not be
// mutated; the same value type also carries derived subpaths.
type Path struct {
	// Name identifies the originating sample or haplotype.
	Name string

	// Label is the optional category of the sample ("" when unlabelled).
	Label string

	// Nodes is the ordered sequence of node IDs visited by the walk.
	Nodes []uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictPaths makes AddPath reject paths that reference unknown node IDs.
// Without it, paths are stored as given and referential integrity is left
// to the loader.
func WithStrictPaths() GraphOption {
	return func(g *Graph) { g.strictPaths = true }
}

// Graph is the in-memory pangenome graph: nodes with sequences, directed
// edges and named haplotype paths.
//
// muNode protects nodes and edges; muPath protects paths and pathIndex.
// Lock order is muNode -> muPath wherever both are needed.
type Graph struct {
	muNode sync.RWMutex // guards nodes, edges, successors
	muPath sync.RWMutex // guards paths, pathIndex

	// Configuration flags
	strictPaths bool // reject paths with unknown node IDs

	// Storage
	nodes      map[uint64]*Node
	edges      map[Edge]struct{}
	successors map[uint64]map[uint64]struct{}
	paths      []*Path          // insertion order; sorted on read
	pathIndex  map[string]*Path // name → path
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:      make(map[uint64]*Node),
		edges:      make(map[Edge]struct{}),
		successors: make(map[uint64]map[uint64]struct{}),
		pathIndex:  make(map[string]*Path),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	PathCount     int
	TotalBases    int            // summed node sequence length
	LabelCounts   map[string]int // paths per label ("" = unlabelled)
	StrictPaths   bool
	LongestPath   int // node count of the longest walk
	MaxNodeLength int
}
