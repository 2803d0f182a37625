// File: methods_paths.go
// Role: Haplotype path lifecycle & queries, label bookkeeping.
//
// Determinism:
//   - Paths() and NodePaths() return paths sorted by ComparePaths.
//   - Labels() returns distinct labels sorted ascending, unlabelled excluded.
//
// Concurrency:
//   - Path catalog protected by muPath; node lookups take muNode first.
package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// AddPath stores a new haplotype walk.
//
// Implementation:
//   - Stage 1: Validate name and node list.
//   - Stage 2: With WithStrictPaths, check every node ID under muNode.
//   - Stage 3: Under muPath, reject duplicates and register a private copy.
//
// Errors:
//   - ErrEmptyPathName, ErrEmptyPath: invalid input.
//   - ErrNodeNotFound: strict mode and an unknown node ID.
//   - ErrDuplicatePath: the name is taken.
//
// Complexity: O(len(nodes)).
func (g *Graph) AddPath(name, label string, nodes []uint64) error {
	if name == "" {
		return ErrEmptyPathName
	}
	if len(nodes) == 0 {
		return fmt.Errorf("AddPath(%s): %w", name, ErrEmptyPath)
	}

	if g.strictPaths {
		g.muNode.RLock()
		for _, id := range nodes {
			if _, ok := g.nodes[id]; !ok {
				g.muNode.RUnlock()
				return fmt.Errorf("AddPath(%s): node %d: %w", name, id, ErrNodeNotFound)
			}
		}
		g.muNode.RUnlock()
	}

	g.muPath.Lock()
	defer g.muPath.Unlock()

	if _, ok := g.pathIndex[name]; ok {
		return fmt.Errorf("AddPath(%s): %w", name, ErrDuplicatePath)
	}
	p := &Path{Name: name, Label: label, Nodes: slices.Clone(nodes)}
	g.paths = append(g.paths, p)
	g.pathIndex[name] = p

	return nil
}

// SetPathLabel assigns a label to the named path.
//
// The stored Path is replaced by a relabelled copy rather than mutated, so
// Path values already handed out stay immutable.
//
// Errors:
//   - ErrPathNotFound: no path with that name.
func (g *Graph) SetPathLabel(name, label string) error {
	g.muPath.Lock()
	defer g.muPath.Unlock()

	old, ok := g.pathIndex[name]
	if !ok {
		return fmt.Errorf("SetPathLabel(%s): %w", name, ErrPathNotFound)
	}
	relabelled := &Path{Name: old.Name, Label: label, Nodes: old.Nodes}
	for i, p := range g.paths {
		if p == old {
			g.paths[i] = relabelled
			break
		}
	}
	g.pathIndex[name] = relabelled

	return nil
}

// ApplyLabels labels every path named in labels and returns how many paths
// were relabelled. Names that match no path are ignored.
func (g *Graph) ApplyLabels(labels map[string]string) int {
	applied := 0
	for name, label := range labels {
		if err := g.SetPathLabel(name, label); err == nil {
			applied++
		}
	}

	return applied
}

// Paths returns every path sorted by ComparePaths.
// Complexity: O(P log P).
func (g *Graph) Paths() []*Path {
	g.muPath.RLock()
	out := slices.Clone(g.paths)
	g.muPath.RUnlock()

	slices.SortFunc(out, ComparePaths)

	return out
}

// Path returns the named path or ErrPathNotFound.
func (g *Graph) Path(name string) (*Path, error) {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	p, ok := g.pathIndex[name]
	if !ok {
		return nil, fmt.Errorf("Path(%s): %w", name, ErrPathNotFound)
	}

	return p, nil
}

// PathCount returns the number of paths.
func (g *Graph) PathCount() int {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	return len(g.paths)
}

// NodePaths returns the paths that traverse node id, sorted by ComparePaths.
// Complexity: O(Σ len(path)).
func (g *Graph) NodePaths(id uint64) []*Path {
	var out []*Path
	for _, p := range g.Paths() {
		if slices.Contains(p.Nodes, id) {
			out = append(out, p)
		}
	}

	return out
}

// PathSequence spells the named path by concatenating its node sequences.
//
// Errors:
//   - ErrPathNotFound: no path with that name.
//   - ErrNodeNotFound: the walk references a node absent from the graph.
func (g *Graph) PathSequence(name string) (string, error) {
	p, err := g.Path(name)
	if err != nil {
		return "", err
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var sb strings.Builder
	for _, id := range p.Nodes {
		n, ok := g.nodes[id]
		if !ok {
			return "", fmt.Errorf("PathSequence(%s): node %d: %w", name, id, ErrNodeNotFound)
		}
		sb.WriteString(n.Sequence)
	}

	return sb.String(), nil
}

// Labels returns the distinct non-empty path labels sorted ascending.
func (g *Graph) Labels() []string {
	counts := g.LabelCounts()
	out := make([]string, 0, len(counts))
	for label := range counts {
		if label != "" {
			out = append(out, label)
		}
	}
	sort.Strings(out)

	return out
}

// LabelCounts returns the number of paths per label; unlabelled paths are
// counted under "".
func (g *Graph) LabelCounts() map[string]int {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	out := make(map[string]int)
	for _, p := range g.paths {
		out[p.Label]++
	}

	return out
}
