// Package core defines the pangenome graph model consumed by the frequented
// region search: Node (identifier + sequence), Edge, Path (named, optionally
// labelled haplotype walk) and the thread-safe Graph container.
//
// The Graph G = (V, E, P) holds:
//
//   - Nodes keyed by uint64 ID, each carrying its nucleotide sequence.
//   - Directed edges between nodes (topology, informational for the search).
//   - Paths keyed by unique name; each path is an ordered walk of node IDs with
//     an optional label ("case", "ctrl", ...).
//
// Locking:
//
//	muNode guards nodes, edges and successors.
//	muPath guards the path catalog.
//	Lock order is muNode -> muPath.
//
// Core Methods:
//
//	// Nodes
//	AddNode(id uint64, seq string) error   // O(1), idempotent for identical input
//	HasNode(id uint64) bool                // O(1)
//	Node(id uint64) (*Node, error)         // O(1)
//	Nodes() []*Node                        // O(V log V), sorted by ID
//	Sequences() map[uint64]string          // O(V) copy
//
//	// Edges
//	AddEdge(from, to uint64) error         // O(1)
//	Edges() []Edge                         // O(E log E)
//	Successors(id uint64) ([]uint64, error)
//
//	// Paths
//	AddPath(name, label string, nodes []uint64) error
//	SetPathLabel(name, label string) error // relabels by replacement
//	ApplyLabels(map[string]string) int
//	Paths() []*Path                        // sorted by ComparePaths
//	NodePaths(id uint64) []*Path
//	PathSequence(name string) (string, error)
//	Labels() []string; LabelCounts() map[string]int
//
// Referential integrity:
//
// By default AddPath does not check that every node ID of a walk exists; the
// loader is trusted, and a missing node surfaces later as a fatal sequence
// lookup error in the region computation. WithStrictPaths() moves that
// check to AddPath.
//
// Errors:
//
//	ErrNodeNotFound   – missing node
//	ErrDuplicateNode  – node re-added with a different sequence
//	ErrEmptyPathName  – path without a name
//	ErrEmptyPath      – path without nodes
//	ErrDuplicatePath  – path name already taken
//	ErrPathNotFound   – missing path
package core
