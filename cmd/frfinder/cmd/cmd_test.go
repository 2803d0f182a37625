package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/config"
)

const fourNodeDoc = `
nodes:
  - {id: 1, sequence: A}
  - {id: 2, sequence: C}
  - {id: 3, sequence: GG}
  - {id: 4, sequence: T}
paths:
  - {name: A, nodes: [1, 2, 3]}
  - {name: B, nodes: [1, 3, 4]}
  - {name: C, nodes: [4]}
`

const fourNodeLabels = "A\tcase\nB\tctrl\nC\tctrl\n"

const fourNodeReport = "FR\tnodes\tsupport\tavgLen\tcase.n\tcase.f\tctrl.n\tctrl.f\n" +
	"1\t[1,3,4]\t1\t4\t0\t0.000\t1\t0.500\n" +
	"2\t[1,3]\t2\t3\t1\t1.000\t1\t0.500\n"

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestSearch_Stdout(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)
	labels := writeTemp(t, dir, "labels.tsv", fourNodeLabels)

	stdout, stderr, err := run(t, "search", "--graph", graph, "--labels", labels,
		"--alpha", "1", "--kappa", "1", "--workers", "2", "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, fourNodeReport, stdout)
	assert.Contains(t, stderr, "2 regions in 2 rounds (exhausted)")
	assert.NotContains(t, stderr, "warning")
}

func TestSearch_ConfigFileAndOutputs(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)
	labels := writeTemp(t, dir, "labels.tsv", fourNodeLabels)
	prefix := filepath.Join(dir, "out", "four")
	require.NoError(t, os.MkdirAll(filepath.Dir(prefix), 0o750))
	cfg := writeTemp(t, dir, "run.yaml",
		"search:\n  alpha: 1\n  kappa: 0\n"+
			"graph:\n  path: "+graph+"\n  labels: "+labels+"\n"+
			"output:\n  prefix: "+prefix+"\n  metrics: "+prefix+".prom\n"+
			"logging:\n  level: error\n")

	// kappa from the file is overridden by the flag.
	stdout, _, err := run(t, "search", "--config", cfg, "--kappa", "1")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(prefix + suffixReport)
	require.NoError(t, err)
	assert.Equal(t, fourNodeReport, string(got))

	params, err := os.ReadFile(prefix + suffixParams)
	require.NoError(t, err)
	assert.Contains(t, string(params), "kappa\t1\n")
	assert.Contains(t, string(params), "graph\t"+graph+"\n")

	matrix, err := os.ReadFile(prefix + suffixPathFRs)
	require.NoError(t, err)
	assert.Equal(t, "FR\tA.case\tB.ctrl\tC.ctrl\n1\t0\t1\t0\n2\t1\t1\t0\n", string(matrix))

	hist, err := os.ReadFile(prefix + suffixHistogram)
	require.NoError(t, err)
	assert.Equal(t, "size\tcount\n2\t1\n3\t1\n", string(hist))

	metrics, err := os.ReadFile(prefix + ".prom")
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "frfinder_finder_rounds_total")

	// report reprints the file verbatim.
	stdout, _, err = run(t, "report", prefix+suffixReport, "--graph", graph)
	require.NoError(t, err)
	assert.Equal(t, fourNodeReport, stdout)
}

func TestSearch_Checkpoint(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)
	labels := writeTemp(t, dir, "labels.tsv", fourNodeLabels)
	db := filepath.Join(dir, "ckpt")

	_, _, err := run(t, "search", "-g", graph, "--labels", labels, "-a", "1", "-k", "1",
		"--checkpoint", db, "--log-level", "error")
	require.NoError(t, err)

	stdout, _, err := run(t, "report", "--checkpoint", db, "--log-level", "error")
	require.NoError(t, err)
	ids := strings.Fields(stdout)
	require.Len(t, ids, 1)

	stdout, _, err = run(t, "report", "--checkpoint", db, "--run", ids[0], "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.SplitN(fourNodeReport, "\n", 2)[0], lines[0])
	assert.Contains(t, stdout, "[1,3]\t2\t3")
	assert.Contains(t, stdout, "[1,3,4]\t1\t4")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseInto(t *testing.T) {
	failed := errors.New("close failed")
	first := errors.New("write failed")

	var err error
	closeInto(&err, closerFunc(func() error { return failed }))
	require.ErrorIs(t, err, failed, "a close error is returned")

	err = first
	closeInto(&err, closerFunc(func() error { return failed }))
	require.ErrorIs(t, err, first, "the earlier error wins")

	err = nil
	closeInto(&err, closerFunc(func() error { return nil }))
	require.NoError(t, err)
}

func TestReport_CheckpointClosed(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)
	db := filepath.Join(dir, "ckpt")

	_, _, err := run(t, "search", "-g", graph, "-a", "1", "-k", "1", "--checkpoint", db, "--log-level", "error")
	require.NoError(t, err)

	// Each command releases the directory lock, so the next one can open it.
	for range 2 {
		_, _, err = run(t, "report", "--checkpoint", db, "--log-level", "error")
		require.NoError(t, err)
	}
	_, _, err = run(t, "report", "--checkpoint", db, "--run", "missing", "--log-level", "error")
	require.Error(t, err)
}

func TestSearch_EmptyResultWarns(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", "nodes: [{id: 1, sequence: A}]\npaths: [{name: p, nodes: [1]}]\n")

	stdout, stderr, err := run(t, "search", "-g", graph, "-a", "0.5", "-k", "0", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "FR\tnodes\tsupport\tavgLen\n", stdout)
	assert.Contains(t, stderr, "warning: no frequented regions found")
}

func TestSearch_Errors(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)

	_, _, err := run(t, "search", "-g", graph, "-k", "1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "search", "-a", "0.5", "-k", "1")
	require.Error(t, err)

	_, _, err = run(t, "search", "-g", graph, "-a", "2", "-k", "1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "search", "-g", graph, "-a", "1", "-k", "1", "--log-format", "xml")
	require.Error(t, err)

	_, _, err = run(t, "report")
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)
	labels := writeTemp(t, dir, "labels.tsv", "A\tcase\nB\tctrl\n")

	stdout, _, err := run(t, "inspect", "-g", graph, "--labels", labels, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t,
		"# nodes\n1\t1\tA\n2\t1\tC\n3\t2\tGG\n4\t1\tT\n"+
			"# paths\nA\tcase\t1,2,3\nB\tctrl\t1,3,4\nC\t\t4\n"+
			"# node-paths\n1\tA,B\n2\tA\n3\tA,B\n4\tB,C\n"+
			"# sequences\nA\tACGG\nB\tAGGT\nC\tT\n"+
			"# labels\ncase\t1\nctrl\t1\n-\t1\n",
		stdout)

	stdout, _, err = run(t, "inspect", "-g", graph, "--section", "labels", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "# labels\n-\t3\n", stdout)

	_, _, err = run(t, "inspect", "-g", graph, "--section", "edges")
	require.Error(t, err)
}

func TestSearch_Trace(t *testing.T) {
	dir := t.TempDir()
	graph := writeTemp(t, dir, "g.yaml", fourNodeDoc)

	_, stderr, err := run(t, "search", "-g", graph, "-a", "1", "-k", "1", "--trace", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name": "finder.Find"`)
	assert.Contains(t, stderr, `"Name": "finder.round"`)
}
