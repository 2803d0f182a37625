package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/region"
)

// fourNodeGraph returns nodes 1..4 with paths A=[1,2,3] (case) and
// B=[1,3,4] (ctrl). Node 2 spells one base and node 3 two, so with kappa=1
// only the insertion {2} is tolerated; with kappa=0 it is not, and A no
// longer supports {1,3}.
func fourNodeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, seq := range map[uint64]string{1: "A", 2: "C", 3: "GG", 4: "T"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(3, 4))
	require.NoError(t, g.AddPath("A", "case", []uint64{1, 2, 3}))
	require.NoError(t, g.AddPath("B", "ctrl", []uint64{1, 3, 4}))

	return g
}

// nodeSets renders regions as their node-set strings, in order.
func nodeSets(regions []*region.Region) []string {
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = r.Nodes().String()
	}

	return out
}
