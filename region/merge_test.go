package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/region"
)

// fourNodeGraph is the two-path fixture A=[1,2,3], B=[1,3,4].
func fourNodeGraph() ([]*core.Path, map[uint64]string) {
	paths := []*core.Path{path("A", "case", 1, 2, 3), path("B", "ctrl", 1, 3, 4)}
	seqs := map[uint64]string{1: "ACGT", 2: "G", 3: "TT", 4: "CCCC"}

	return paths, seqs
}

func TestMerge_UnionAndRecompute(t *testing.T) {
	paths, seqs := fourNodeGraph()
	r1 := mustNew(t, nodeset.New(1), paths, seqs, 1.0, 1)
	r3 := mustNew(t, nodeset.New(3), paths, seqs, 1.0, 1)

	m, err := region.Merge(r1, r3, 1.0, 1)
	require.NoError(t, err)
	assert.True(t, m.Nodes().Equal(nodeset.New(1, 3)))
	assert.Equal(t, 2, m.Support())
	assert.Equal(t, 1, m.LabelCount("case"))
	assert.Equal(t, 1, m.LabelCount("ctrl"))
	// A spells ACGT+G+TT = 7, B spells ACGT+TT = 6.
	assert.Equal(t, 6, m.AvgLength())

	assert.Equal(t, 1, r1.Size(), "parents unchanged")
	assert.Equal(t, 1, r3.Size())
}

func TestMerge_Commutes(t *testing.T) {
	paths, seqs := fourNodeGraph()
	a := mustNew(t, nodeset.New(1, 2), paths, seqs, 1.0, 1)
	b := mustNew(t, nodeset.New(3), paths, seqs, 1.0, 1)

	ab, err := region.Merge(a, b, 1.0, 1)
	require.NoError(t, err)
	ba, err := region.Merge(b, a, 1.0, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, region.Compare(ab, ba))
	assert.Equal(t, ab.Subpaths(), ba.Subpaths())
}

func TestMerge_UsesCallerParams(t *testing.T) {
	paths, seqs := fourNodeGraph()
	r1 := mustNew(t, nodeset.New(1), paths, seqs, 0.1, 100)
	r4 := mustNew(t, nodeset.New(4), paths, seqs, 0.1, 100)

	// B=[1,3,4] has the 2-base insertion {3} between 1 and 4.
	m, err := region.Merge(r1, r4, 1.0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Support())
	assert.Equal(t, 1.0, m.Alpha())
	assert.Equal(t, 1, m.Kappa())
}

func TestMerge_UnionsDistinctPathCollections(t *testing.T) {
	seqs := map[uint64]string{1: "A", 2: "C"}
	left := mustNew(t, nodeset.New(1), []*core.Path{path("a", "", 1, 2)}, map[uint64]string{1: "A"}, 1.0, 0)
	right := mustNew(t, nodeset.New(2), []*core.Path{path("a", "", 1, 2), path("b", "", 2, 1)}, seqs, 1.0, 0)

	m, err := region.Merge(left, right, 1.0, 0)
	require.NoError(t, err)
	assert.Len(t, m.Paths(), 2, "shared path counted once")
	assert.Equal(t, 2, m.Support())
}

func TestMerge_SupportMonotone(t *testing.T) {
	seqs := map[uint64]string{1: "A", 2: "C", 3: "G", 4: "T", 5: "A"}
	paths := []*core.Path{
		path("p1", "", 1, 2, 3, 4, 5),
		path("p2", "", 1, 2, 3),
		path("p3", "", 3, 4, 5),
		path("p4", "", 1, 2, 5),
	}
	a := mustNew(t, nodeset.New(1, 2), paths, seqs, 1.0, 100)
	b := mustNew(t, nodeset.New(4, 5), paths, seqs, 1.0, 100)
	m, err := region.Merge(a, b, 1.0, 100)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Support())
	assert.Equal(t, 2, b.Support())
	assert.Equal(t, 1, m.Support())
	assert.LessOrEqual(t, m.Support(), min(a.Support(), b.Support()))
}

func TestMerge_RejectsRestored(t *testing.T) {
	paths, seqs := fourNodeGraph()
	live := mustNew(t, nodeset.New(1), paths, seqs, 1.0, 0)
	restored := region.Restore(nodeset.New(3), 2, 5, nil)

	_, err := region.Merge(live, restored, 1.0, 0)
	require.ErrorIs(t, err, region.ErrRestored)
}

func TestCompare_Order(t *testing.T) {
	mk := func(support, avg int, ids ...uint64) *region.Region {
		return region.Restore(nodeset.New(ids...), support, avg, nil)
	}
	cases := []struct {
		name string
		a, b *region.Region
	}{
		{"support", mk(1, 99, 1), mk(2, 1, 1)},
		{"avgLength", mk(2, 5, 1, 2, 3), mk(2, 6, 1)},
		{"cardinality", mk(2, 5, 1), mk(2, 5, 1, 2)},
		{"first node", mk(2, 5, 1, 9), mk(2, 5, 2, 3)},
		{"node set", mk(2, 5, 1, 3), mk(2, 5, 1, 4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, -1, region.Compare(tc.a, tc.b))
			assert.Equal(t, 1, region.Compare(tc.b, tc.a))
		})
	}
	assert.Equal(t, 0, region.Compare(mk(2, 5, 1, 3), mk(2, 5, 3, 1)))
}
