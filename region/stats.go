package region

import (
	"slices"
	"sort"

	"github.com/katalvlaran/frfinder/core"
)

// Subpaths returns the qualifying subpaths sorted by core.ComparePaths.
func (r *Region) Subpaths() []*core.Path { return slices.Clone(r.subpaths) }

// LabelCounts returns the number of subpaths per path label. Unlabelled
// subpaths are counted under "".
func (r *Region) LabelCounts() map[string]int {
	out := make(map[string]int, len(r.labelCounts))
	for label, n := range r.labelCounts {
		out[label] = n
	}

	return out
}

// LabelCount returns the number of subpaths carrying label.
func (r *Region) LabelCount(label string) int { return r.labelCounts[label] }

// Labels returns the labels with at least one subpath, sorted ascending.
func (r *Region) Labels() []string {
	out := make([]string, 0, len(r.labelCounts))
	for label, n := range r.labelCounts {
		if n > 0 {
			out = append(out, label)
		}
	}
	sort.Strings(out)

	return out
}

// CountSubpathsOf returns how many subpaths originate from the named path.
func (r *Region) CountSubpathsOf(pathName string) int {
	n := 0
	for _, sp := range r.subpaths {
		if sp.Name == pathName {
			n++
		}
	}

	return n
}

// ContainsSubpathOf reports whether the named path supports the region.
func (r *Region) ContainsSubpathOf(pathName string) bool {
	return r.CountSubpathsOf(pathName) > 0
}
