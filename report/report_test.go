package report_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/finder"
	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/report"
)

func searchFourNodes(t *testing.T) (*core.Graph, *finder.Result) {
	t.Helper()
	g := core.NewGraph()
	for id, seq := range map[uint64]string{1: "A", 2: "C", 3: "GG", 4: "T"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	require.NoError(t, g.AddPath("A", "case", []uint64{1, 2, 3}))
	require.NoError(t, g.AddPath("B", "ctrl", []uint64{1, 3, 4}))
	require.NoError(t, g.AddPath("C", "ctrl", []uint64{4}))

	f, err := finder.New(g, finder.DefaultParams(1.0, 1))
	require.NoError(t, err)
	res, err := f.Find(context.Background())
	require.NoError(t, err)
	require.False(t, res.Empty())

	return g, res
}

func TestColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"FR", "nodes", "support", "avgLen", "case.n", "case.f", "ctrl.n", "ctrl.f"},
		report.Columns([]string{"ctrl", "", "case"}))
	assert.Equal(t, []string{"FR", "nodes", "support", "avgLen"}, report.Columns(nil))
}

func TestWrite_Format(t *testing.T) {
	_, res := searchFourNodes(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res.Regions, res.LabelTotals))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "FR\tnodes\tsupport\tavgLen\tcase.n\tcase.f\tctrl.n\tctrl.f", lines[0])
	assert.Equal(t, "1\t[1,3,4]\t1\t4\t0\t0.000\t1\t0.500", lines[1])
	assert.Equal(t, "2\t[1,3]\t2\t3\t1\t1.000\t1\t0.500", lines[2])
}

func TestFormatRow_ZeroTotal(t *testing.T) {
	_, res := searchFourNodes(t)
	row := report.FormatRow(7, res.Regions[0], map[string]int{"ghost": 0})
	assert.Equal(t, "7\t[1,3,4]\t1\t4\t0\t0.000", row)
}

func TestRead_ResumeFidelity(t *testing.T) {
	_, res := searchFourNodes(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res.Regions, res.LabelTotals))
	written := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	tbl, err := report.Read(strings.NewReader(buf.String() + "\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"case", "ctrl"}, tbl.Labels)
	require.Len(t, tbl.Records, len(res.Regions))

	for i, rec := range tbl.Records {
		assert.True(t, rec.Nodes.Equal(res.Regions[i].Nodes()))
		assert.Equal(t, written[i+1], rec.Line)
		assert.Equal(t, i+1, rec.Ordinal)
		assert.Equal(t, res.Regions[i].Support(), rec.Support)
		assert.Equal(t, res.Regions[i].AvgLength(), rec.AvgLength)
		assert.True(t, rec.Region.Restored())
		assert.Equal(t, rec.Line, report.FormatRow(rec.Ordinal, rec.Region, res.LabelTotals))
	}

	var again bytes.Buffer
	require.NoError(t, report.Write(&again, tbl.Regions(), res.LabelTotals))
	assert.Equal(t, buf.String(), again.String(), "restored regions re-write identically")
}

func TestReadWith_DropsUnknownNodes(t *testing.T) {
	in := "FR\tnodes\tsupport\tavgLen\n1\t[1,3,99]\t2\t3\n"
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, "A"))
	require.NoError(t, g.AddNode(3, "C"))

	tbl, err := report.ReadWith(strings.NewReader(in), g)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.True(t, tbl.Records[0].Nodes.Equal(nodeset.New(1, 3)))
	assert.Equal(t, "1\t[1,3,99]\t2\t3", tbl.Records[0].Line)
}

func TestRead_ParseErrors(t *testing.T) {
	const header = "FR\tnodes\tsupport\tavgLen\tcase.n\tcase.f\n"
	cases := []struct {
		name string
		in   string
		line int
		is   error
	}{
		{"bad header", "FR\tnodes\n", 1, report.ErrBadHeader},
		{"wrong fixed column", "FR\tset\tsupport\tavgLen\n", 1, report.ErrBadHeader},
		{"unpaired label", "FR\tnodes\tsupport\tavgLen\tcase.n\tctrl.f\n", 1, report.ErrBadHeader},
		{"short row", header + "1\t[1]\t2\t3\t1\n", 2, report.ErrBadRow},
		{"bad node set", header + "\n1\t[1,x]\t2\t3\t1\t0.5\n", 3, nodeset.ErrMalformed},
		{"bad support", header + "1\t[1]\tmany\t3\t1\t0.5\n", 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := report.Read(strings.NewReader(tc.in))
			var pe *report.ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tc.line, pe.Line)
			assert.NotEmpty(t, pe.Text)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}

	_, err := report.Read(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, report.ErrNoHeader)
}

func TestWritePathMatrix(t *testing.T) {
	g, res := searchFourNodes(t)
	var buf bytes.Buffer
	require.NoError(t, report.WritePathMatrix(&buf, g.Paths(), res.Regions))

	assert.Equal(t,
		"FR\tA.case\tB.ctrl\tC.ctrl\n"+
			"1\t0\t1\t0\n"+
			"2\t1\t1\t0\n",
		buf.String())
}

func TestSizeHistogram(t *testing.T) {
	_, res := searchFourNodes(t)
	assert.Equal(t, []report.Bin{{Size: 2, Count: 1}, {Size: 3, Count: 1}}, report.SizeHistogram(res.Regions))

	var buf bytes.Buffer
	require.NoError(t, report.WriteHistogram(&buf, res.Regions))
	assert.Equal(t, "size\tcount\n2\t1\n3\t1\n", buf.String())
}
