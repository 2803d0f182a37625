package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/region"
)

// maxLine bounds a single report line; node sets of large regions are long.
const maxLine = 16 << 20

// ParseError reports a malformed report line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("report: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Record is one parsed report row.
type Record struct {
	Ordinal     int
	Nodes       nodeset.NodeSet
	Support     int
	AvgLength   int
	LabelCounts map[string]int
	// Line is the row exactly as read, without the line terminator.
	Line string
	// Region is rebuilt from the persisted statistics; it has no sequences.
	Region *region.Region
}

// Table is a parsed report.
type Table struct {
	Header  []string
	Labels  []string
	Records []Record
}

// Regions returns the restored regions in row order.
func (t *Table) Regions() []*region.Region {
	out := make([]*region.Region, len(t.Records))
	for i := range t.Records {
		out[i] = t.Records[i].Region
	}

	return out
}

// Read parses a report without a node table; every node ID is kept.
func Read(r io.Reader) (*Table, error) { return ReadWith(r, nil) }

// ReadWith parses a report, dropping node IDs unknown to table. A nil table
// keeps every ID.
//
// Behavior highlights:
//   - Blank lines are ignored.
//   - Sequences are not needed; rows become restored regions.
//
// Errors:
//   - ErrNoHeader: no non-blank line.
//   - *ParseError wrapping ErrBadHeader, ErrBadRow, nodeset.ErrMalformed or a
//     number syntax error, with the 1-based line number.
func ReadWith(r io.Reader, table nodeset.NodeTable) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)

	var t *Table
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if t == nil {
			header, labels, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			t = &Table{Header: header, Labels: labels}
			continue
		}
		rec, err := parseRow(line, t, table)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		t.Records = append(t.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadWith: %w", err)
	}
	if t == nil {
		return nil, ErrNoHeader
	}

	return t, nil
}

func parseHeader(line string) ([]string, []string, error) {
	cols := strings.Split(line, sep)
	fixed := []string{ColOrdinal, ColNodes, ColSupport, ColAvgLen}
	if len(cols) < len(fixed) || (len(cols)-len(fixed))%2 != 0 {
		return nil, nil, fmt.Errorf("%d columns: %w", len(cols), ErrBadHeader)
	}
	for i, want := range fixed {
		if cols[i] != want {
			return nil, nil, fmt.Errorf("column %d is %q, want %q: %w", i+1, cols[i], want, ErrBadHeader)
		}
	}

	var labels []string
	for i := len(fixed); i < len(cols); i += 2 {
		label, ok := strings.CutSuffix(cols[i], countSuffix)
		if !ok || label == "" || cols[i+1] != label+fractionSuffix {
			return nil, nil, fmt.Errorf("label columns %q %q: %w", cols[i], cols[i+1], ErrBadHeader)
		}
		labels = append(labels, label)
	}

	return cols, labels, nil
}

func parseRow(line string, t *Table, table nodeset.NodeTable) (Record, error) {
	fields := strings.Split(line, sep)
	if len(fields) != len(t.Header) {
		return Record{}, fmt.Errorf("%d fields, header has %d: %w", len(fields), len(t.Header), ErrBadRow)
	}

	rec := Record{Line: line, LabelCounts: make(map[string]int, len(t.Labels))}
	var err error
	if rec.Ordinal, err = strconv.Atoi(fields[0]); err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColOrdinal, err)
	}
	if rec.Nodes, err = nodeset.Parse(fields[1], table); err != nil {
		return Record{}, err
	}
	if rec.Support, err = strconv.Atoi(fields[2]); err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColSupport, err)
	}
	if rec.AvgLength, err = strconv.Atoi(fields[3]); err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColAvgLen, err)
	}
	for k, label := range t.Labels {
		col := 4 + 2*k
		n, err := strconv.Atoi(fields[col])
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", t.Header[col], err)
		}
		if _, err := strconv.ParseFloat(fields[col+1], 64); err != nil {
			return Record{}, fmt.Errorf("%s: %w", t.Header[col+1], err)
		}
		rec.LabelCounts[label] = n
	}
	rec.Region = region.Restore(rec.Nodes, rec.Support, rec.AvgLength, rec.LabelCounts)

	return rec, nil
}
