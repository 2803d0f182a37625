package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/frfinder/region"
)

// Bin is one histogram bucket: how many regions have Size nodes.
type Bin struct {
	Size  int
	Count int
}

// SizeHistogram counts regions per node-set size, sorted by size.
func SizeHistogram(regions []*region.Region) []Bin {
	counts := make(map[int]int)
	for _, r := range regions {
		counts[r.Size()]++
	}
	bins := make([]Bin, 0, len(counts))
	for size, n := range counts {
		bins = append(bins, Bin{Size: size, Count: n})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Size < bins[j].Size })

	return bins
}

// WriteHistogram writes "size\tcount" lines for SizeHistogram(regions).
func WriteHistogram(w io.Writer, regions []*region.Region) error {
	if _, err := fmt.Fprintln(w, "size"+sep+"count"); err != nil {
		return err
	}
	for _, b := range SizeHistogram(regions) {
		if _, err := fmt.Fprintf(w, "%d%s%d\n", b.Size, sep, b.Count); err != nil {
			return err
		}
	}

	return nil
}
