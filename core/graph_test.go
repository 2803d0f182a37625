// Package core_test verifies node, edge and path lifecycle of core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/core"
)

// buildDiamond returns the bubble 1 → {2|3} → 4 with two haplotypes.
func buildDiamond(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.AddNode(1, "ACGT"))
	require.NoError(t, g.AddNode(2, "A"))
	require.NoError(t, g.AddNode(3, "GG"))
	require.NoError(t, g.AddNode(4, "TTT"))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 4))
	require.NoError(t, g.AddEdge(3, 4))
	require.NoError(t, g.AddPath("hapB", "ctrl", []uint64{1, 3, 4}))
	require.NoError(t, g.AddPath("hapA", "case", []uint64{1, 2, 4}))

	return g
}

func TestGraph_NodeLifecycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(7, "AC"))
	require.NoError(t, g.AddNode(7, "AC"), "identical re-add is a no-op")

	err := g.AddNode(7, "GG")
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	n, err := g.Node(7)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())
	assert.True(t, g.HasNode(7))
	assert.False(t, g.HasNode(8))

	_, err = g.Node(8)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_NilHasNoNodes(t *testing.T) {
	var g *core.Graph
	assert.False(t, g.HasNode(1))
}

func TestGraph_NodesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []uint64{9, 3, 5, 1} {
		require.NoError(t, g.AddNode(id, "A"))
	}
	assert.Equal(t, []uint64{1, 3, 5, 9}, g.NodeIDs())

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, uint64(1), nodes[0].ID)
	assert.Equal(t, uint64(9), nodes[3].ID)
}

func TestGraph_Edges(t *testing.T) {
	g := buildDiamond(t)
	assert.Equal(t, 4, g.EdgeCount())
	require.NoError(t, g.AddEdge(1, 2), "duplicate edge is a no-op")
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(3, 1), "edges are directed")

	succ, err := g.Successors(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, succ)

	require.ErrorIs(t, g.AddEdge(1, 99), core.ErrNodeNotFound)
	_, err = g.Successors(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	edges := g.Edges()
	assert.Equal(t, core.Edge{From: 1, To: 2}, edges[0])
	assert.Equal(t, core.Edge{From: 3, To: 4}, edges[3])
}

func TestGraph_PathValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, "A"))

	require.ErrorIs(t, g.AddPath("", "", []uint64{1}), core.ErrEmptyPathName)
	require.ErrorIs(t, g.AddPath("p", "", nil), core.ErrEmptyPath)
	require.NoError(t, g.AddPath("p", "", []uint64{1, 42}), "lenient graphs accept unknown nodes")
	require.ErrorIs(t, g.AddPath("p", "", []uint64{1}), core.ErrDuplicatePath)

	strict := core.NewGraph(core.WithStrictPaths())
	require.NoError(t, strict.AddNode(1, "A"))
	require.ErrorIs(t, strict.AddPath("p", "", []uint64{1, 42}), core.ErrNodeNotFound)
	assert.True(t, strict.StrictPaths())
}

func TestGraph_PathsSortedAndCopied(t *testing.T) {
	g := buildDiamond(t)
	paths := g.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, "hapA", paths[0].Name)
	assert.Equal(t, "hapB", paths[1].Name)

	walk := []uint64{1, 2}
	require.NoError(t, g.AddPath("hapC", "", walk))
	walk[0] = 99
	p, err := g.Path("hapC")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, p.Nodes, "AddPath must keep a private copy")
}

func TestGraph_Labels(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddPath("hapC", "", []uint64{1, 2, 4}))

	assert.Equal(t, []string{"case", "ctrl"}, g.Labels())
	assert.Equal(t, map[string]int{"case": 1, "ctrl": 1, "": 1}, g.LabelCounts())

	before, err := g.Path("hapC")
	require.NoError(t, err)
	require.NoError(t, g.SetPathLabel("hapC", "case"))
	assert.Equal(t, "", before.Label, "old Path value is not mutated")

	after, err := g.Path("hapC")
	require.NoError(t, err)
	assert.Equal(t, "case", after.Label)
	assert.Equal(t, "hapC.case", after.NameAndLabel())

	require.ErrorIs(t, g.SetPathLabel("nope", "case"), core.ErrPathNotFound)

	applied := g.ApplyLabels(map[string]string{"hapA": "ctrl", "ghost": "case"})
	assert.Equal(t, 1, applied)
	assert.Equal(t, map[string]int{"case": 1, "ctrl": 2}, g.LabelCounts())
}

func TestGraph_NodePathsAndSequence(t *testing.T) {
	g := buildDiamond(t)

	through3 := g.NodePaths(3)
	require.Len(t, through3, 1)
	assert.Equal(t, "hapB", through3[0].Name)
	assert.Len(t, g.NodePaths(1), 2)

	seq, err := g.PathSequence("hapA")
	require.NoError(t, err)
	assert.Equal(t, "ACGTATTT", seq)

	require.NoError(t, g.AddPath("broken", "", []uint64{1, 77}))
	_, err = g.PathSequence("broken")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.PathSequence("ghost")
	require.ErrorIs(t, err, core.ErrPathNotFound)
}

func TestGraph_SequencesIsCopy(t *testing.T) {
	g := buildDiamond(t)
	seqs := g.Sequences()
	assert.Equal(t, "GG", seqs[3])
	seqs[3] = "mutated"

	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Equal(t, "GG", n.Sequence)
}

func TestGraph_Stats(t *testing.T) {
	g := buildDiamond(t)
	st := g.Stats()
	assert.Equal(t, 4, st.NodeCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 2, st.PathCount)
	assert.Equal(t, 10, st.TotalBases)
	assert.Equal(t, 4, st.MaxNodeLength)
	assert.Equal(t, 3, st.LongestPath)
	assert.Equal(t, map[string]int{"case": 1, "ctrl": 1}, st.LabelCounts)
}
