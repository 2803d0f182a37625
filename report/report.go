// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Tab-separated frequented region report writer.
//
// Format:
//
//	FR  nodes   support avgLen  <label>.n <label>.f …
//	1   [1,3]   2       3       1         1.000     …
//
// Labels are sorted; unlabelled paths have no column. `.f` is the label's
// count divided by the number of paths carrying that label, "%.3f".
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/frfinder/region"
)

// Fixed leading columns.
const (
	ColOrdinal = "FR"
	ColNodes   = "nodes"
	ColSupport = "support"
	ColAvgLen  = "avgLen"

	countSuffix    = ".n"
	fractionSuffix = ".f"
	sep            = "\t"
)

var (
	// ErrBadHeader indicates a report whose header is not a report header.
	ErrBadHeader = errors.New("report: malformed header")

	// ErrBadRow indicates a row that does not match the header.
	ErrBadRow = errors.New("report: malformed row")

	// ErrNoHeader indicates an input without any non-blank line.
	ErrNoHeader = errors.New("report: missing header")
)

// Columns returns the header columns for labels, which are sorted first.
// Empty labels are skipped.
func Columns(labels []string) []string {
	ls := sortedLabels(labels)
	cols := []string{ColOrdinal, ColNodes, ColSupport, ColAvgLen}
	for _, l := range ls {
		cols = append(cols, l+countSuffix, l+fractionSuffix)
	}

	return cols
}

// FormatRow renders one report row. totals maps each label to its number of
// paths; its non-empty keys define the label columns.
func FormatRow(ordinal int, r *region.Region, totals map[string]int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(ordinal))
	sb.WriteString(sep)
	sb.WriteString(r.Nodes().String())
	sb.WriteString(sep)
	sb.WriteString(strconv.Itoa(r.Support()))
	sb.WriteString(sep)
	sb.WriteString(strconv.Itoa(r.AvgLength()))
	for _, label := range labelsOf(totals) {
		n := r.LabelCount(label)
		frac := 0.0
		if total := totals[label]; total > 0 {
			frac = float64(n) / float64(total)
		}
		sb.WriteString(sep)
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString(sep)
		sb.WriteString(strconv.FormatFloat(frac, 'f', 3, 64))
	}

	return sb.String()
}

// Write emits the header and one row per region, numbered from 1 in the
// given order.
func Write(w io.Writer, regions []*region.Region, totals map[string]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(Columns(labelsOf(totals)), sep)); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	for i, r := range regions {
		if _, err := fmt.Fprintln(bw, FormatRow(i+1, r, totals)); err != nil {
			return fmt.Errorf("Write: row %d: %w", i+1, err)
		}
	}

	return bw.Flush()
}

// labelsOf returns the sorted non-empty keys of totals.
func labelsOf(totals map[string]int) []string {
	out := make([]string, 0, len(totals))
	for l := range totals {
		if l != "" {
			out = append(out, l)
		}
	}
	sort.Strings(out)

	return out
}

func sortedLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}
	sort.Strings(out)

	return out
}
