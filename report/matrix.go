package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/region"
)

// WritePathMatrix writes the path × region support matrix: a header of
// "FR" followed by one column per path (name.label), then one row per region
// holding the number of subpaths each path contributes.
//
// Complexity: O(R·P·S) for R regions, P paths and S subpaths per region.
func WritePathMatrix(w io.Writer, paths []*core.Path, regions []*region.Region) error {
	bw := bufio.NewWriter(w)

	cols := make([]string, 0, len(paths)+1)
	cols = append(cols, ColOrdinal)
	for _, p := range paths {
		cols = append(cols, p.NameAndLabel())
	}
	if _, err := fmt.Fprintln(bw, strings.Join(cols, sep)); err != nil {
		return fmt.Errorf("WritePathMatrix: header: %w", err)
	}

	row := make([]string, len(paths)+1)
	for i, r := range regions {
		row[0] = strconv.Itoa(i + 1)
		for k, p := range paths {
			row[k+1] = strconv.Itoa(r.CountSubpathsOf(p.Name))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(row, sep)); err != nil {
			return fmt.Errorf("WritePathMatrix: row %d: %w", i+1, err)
		}
	}

	return bw.Flush()
}
