package core

import "slices"

// labelSeparator joins a path name and its label in NameAndLabel.
const labelSeparator = "."

// NameAndLabel returns "name.label" for labelled paths and "name" otherwise.
func (p *Path) NameAndLabel() string {
	if p.Label == "" {
		return p.Name
	}

	return p.Name + labelSeparator + p.Label
}

// Len returns the number of nodes visited by the walk.
func (p *Path) Len() int { return len(p.Nodes) }

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{Name: p.Name, Label: p.Label, Nodes: slices.Clone(p.Nodes)}
}

// ComparePaths orders paths by name, then by node sequence (element by
// element, a strict prefix sorting first). Labels do not take part: two
// paths with the same name and walk are the same path.
func ComparePaths(a, b *Path) int {
	if a.Name != b.Name {
		if a.Name < b.Name {
			return -1
		}
		return 1
	}

	return slices.Compare(a.Nodes, b.Nodes)
}

// SortPaths sorts ps in place by ComparePaths and drops duplicates,
// returning the compacted slice.
func SortPaths(ps []*Path) []*Path {
	slices.SortFunc(ps, ComparePaths)

	return slices.CompactFunc(ps, func(a, b *Path) bool { return ComparePaths(a, b) == 0 })
}
