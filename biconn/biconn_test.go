package biconn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcover/biconn"
	"github.com/katalvlaran/lvlcover/builder"
	"github.com/katalvlaran/lvlcover/core"
)

// mustBuild assembles a fixture or fails the test.
func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestComponents_NilGraph(t *testing.T) {
	_, err := biconn.Components(nil)
	assert.ErrorIs(t, err, biconn.ErrGraphNil)
}

func TestComponents_EmptyAndIsolated(t *testing.T) {
	g := core.NewGraph()
	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Empty(t, comps)

	// Isolated vertices belong to no component.
	require.NoError(t, g.AddVertex("X"))
	comps, err = biconn.Components(g)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

// A path is all bridges: every edge is its own 2-vertex component.
func TestComponents_PathBridges(t *testing.T) {
	g := mustBuild(t, builder.Path(3))

	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1"}, {"1", "2"}}, comps)
}

func TestComponents_Triangle(t *testing.T) {
	g := mustBuild(t, builder.Cycle(3))

	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2"}}, comps)
}

// Bowtie: two triangles sharing cut vertex 2.
func TestComponents_Bowtie(t *testing.T) {
	g := mustBuild(t)
	for _, pair := range [][2]string{
		{"0", "1"}, {"1", "2"}, {"2", "0"},
		{"2", "3"}, {"3", "4"}, {"4", "2"},
	} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}

	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1", "2"}, {"2", "3", "4"}}, comps)
}

// A bridge edge next to a triangle: the bridge is a 2-vertex component.
func TestComponents_BridgeAndTriangle(t *testing.T) {
	g := mustBuild(t, builder.Path(2), builder.Shifted(2, builder.Cycle(3)))

	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "1"}, {"2", "3", "4"}}, comps)
}

// Parallel edges are biconnected on their own: one 2-vertex component,
// not two.
func TestComponents_ParallelPair(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)

	comps, err := biconn.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, comps)
}

func TestChains_NilGraph(t *testing.T) {
	_, err := biconn.Chains(nil)
	assert.ErrorIs(t, err, biconn.ErrGraphNil)
}

// Trees have no chains: every edge is a bridge.
func TestChains_TreeEmpty(t *testing.T) {
	g := mustBuild(t, builder.Star(5))

	chains, err := biconn.Chains(g)
	require.NoError(t, err)
	assert.Empty(t, chains)
}

// A triangle decomposes into a single closed chain of three edges.
func TestChains_TriangleSingleCycle(t *testing.T) {
	g := mustBuild(t, builder.Cycle(3))

	chains, err := biconn.Chains(g)
	require.NoError(t, err)
	require.Len(t, chains, 1)
	ch := chains[0]
	require.Len(t, ch, 3)
	// The first chain is a cycle: the walk returns to its start.
	assert.Equal(t, ch[0][0], ch[len(ch)-1][1])
}

// A wheel's rim plus spokes: first chain is a cycle, the rest are ears,
// and together they carry every edge exactly once.
func TestChains_WheelCoversAllEdges(t *testing.T) {
	g := mustBuild(t, builder.Wheel(6))

	chains, err := biconn.Chains(g)
	require.NoError(t, err)
	require.NotEmpty(t, chains)

	seen := biconn.NewPairSet()
	total := 0
	for _, ch := range chains {
		for _, pair := range ch {
			seen.Add(pair[0], pair[1])
			total++
		}
	}
	// W6 is simple and 2-edge-connected: every edge in exactly one chain.
	assert.Equal(t, g.EdgeCount(), total)
	assert.Equal(t, g.EdgeCount(), seen.Len())
	// First chain is a closed cycle.
	first := chains[0]
	assert.Equal(t, first[0][0], first[len(first)-1][1])
}

func TestCyclableEdges_NilGraph(t *testing.T) {
	_, err := biconn.CyclableEdges(nil)
	assert.ErrorIs(t, err, biconn.ErrGraphNil)
}

// A forest has no cyclable edges at all.
func TestCyclableEdges_Forest(t *testing.T) {
	g := mustBuild(t, builder.Path(4), builder.Shifted(4, builder.Star(3)))

	mask, err := biconn.CyclableEdges(g)
	require.NoError(t, err)
	assert.Zero(t, mask.Len())
}

// Bridge + triangle: only the triangle's edges are cyclable.
func TestCyclableEdges_BridgeExcluded(t *testing.T) {
	g := mustBuild(t, builder.Path(2), builder.Shifted(2, builder.Cycle(3)))

	mask, err := biconn.CyclableEdges(g)
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Len())
	assert.True(t, mask.Has("2", "3"))
	assert.True(t, mask.Has("3", "4"))
	assert.True(t, mask.Has("4", "2"))
	assert.False(t, mask.Has("0", "1"))
}

// A parallel pair closes a 2-cycle: cyclable despite the 2-vertex
// component. A self-loop never is.
func TestCyclableEdges_ParallelAndLoop(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "c")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c")
	require.NoError(t, err)

	mask, err := biconn.CyclableEdges(g)
	require.NoError(t, err)
	assert.Equal(t, 1, mask.Len())
	assert.True(t, mask.Has("a", "b"))
	assert.True(t, mask.Has("b", "a")) // unordered
	assert.False(t, mask.Has("c", "c"))
	assert.False(t, mask.Has("b", "c"))
}

func TestCyclableEdges_Square(t *testing.T) {
	g := mustBuild(t, builder.Cycle(4))

	mask, err := biconn.CyclableEdges(g)
	require.NoError(t, err)
	assert.Equal(t, 4, mask.Len())
	for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		assert.True(t, mask.Has(pair[0], pair[1]), "pair %v", pair)
	}
}

func TestPairSet_Basics(t *testing.T) {
	s := biconn.NewPairSet()
	assert.Zero(t, s.Len())

	s.Add("b", "a")
	s.Add("a", "b") // same unordered pair
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("a", "b"))
	assert.True(t, s.Has("b", "a"))
	assert.False(t, s.Has("a", "c"))
}
