package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph/core"
)

func TestAddNode_AssignsSequentialIndices(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddNode("a"))
	assert.Equal(t, 1, g.AddNode(""))
	assert.Equal(t, 2, g.AddNode("a"))
	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, "a", g.Nodes[2].Label)
}

func TestAddEdge_ValidatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a")
	g.AddNode("b")

	idx, err := g.AddEdge(0, 1, "e")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = g.AddEdge(0, 2, "e")
	assert.ErrorIs(t, err, core.ErrNodeIndex)

	_, err = g.AddEdge(-1, 1, "e")
	assert.ErrorIs(t, err, core.ErrNodeIndex)
}

func TestAddEdge_AllowsLoopsAndParallels(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a")
	g.AddNode("b")

	// Self-loop and two parallel edges are all legal.
	_, err := g.AddEdge(0, 0, "loop")
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, "p1")
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, "p2")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, g.EdgesBetween(0, 1))
	assert.Equal(t, []int{0}, g.EdgesBetween(0, 0))
	assert.Nil(t, g.EdgesBetween(1, 0))
	assert.True(t, g.HasEdgeBetween(0, 1))
	assert.False(t, g.HasEdgeBetween(1, 0), "direction is significant")
}

func TestDefineSubgraph_SortsAndValidates(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a")
	g.AddNode("b")
	_, err := g.AddEdge(0, 1, "e")
	require.NoError(t, err)

	require.NoError(t, g.DefineSubgraph("L", []int{1, 0}, []int{0}))
	sg, ok := g.Subgraph("L")
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, sg.Nodes, "selection is stored sorted")
	assert.Equal(t, []int{0}, sg.Edges)

	// Duplicate name is rejected.
	err = g.DefineSubgraph("L", nil, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateSubgraph)

	// Out-of-range members are rejected.
	err = g.DefineSubgraph("R", []int{5}, nil)
	assert.ErrorIs(t, err, core.ErrNodeIndex)
	err = g.DefineSubgraph("R", nil, []int{7})
	assert.ErrorIs(t, err, core.ErrEdgeIndex)

	_, ok = g.Subgraph("missing")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	g := core.NewGraph()
	g.AppendNode(core.Node{Label: "a", Attrs: map[string]string{"k": "v"}})
	g.AddNode("b")
	_, err := g.AppendEdge(core.Edge{Label: "e", Tail: 0, Head: 1, Attrs: map[string]string{"w": "1"}})
	require.NoError(t, err)
	require.NoError(t, g.DefineSubgraph("L", []int{0}, []int{0}))

	c := g.Clone()
	require.Equal(t, g, c)

	// Mutating the clone must not leak back.
	c.Nodes[0].Attrs["k"] = "changed"
	c.Edges[0].Attrs["w"] = "2"
	c.Subgraphs[0].Nodes[0] = 1
	assert.Equal(t, "v", g.Nodes[0].Attrs["k"])
	assert.Equal(t, "1", g.Edges[0].Attrs["w"])
	assert.Equal(t, 0, g.Subgraphs[0].Nodes[0])
}

func TestValidate_CatchesFieldAssembledGraphs(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{Label: "a"}},
		Edges: []core.Edge{{Tail: 0, Head: 3}},
	}
	assert.ErrorIs(t, g.Validate(), core.ErrNodeIndex)

	g = &core.Graph{
		Nodes:     []core.Node{{Label: "a"}},
		Subgraphs: []core.Subgraph{{Name: "L", Edges: []int{0}}},
	}
	assert.ErrorIs(t, g.Validate(), core.ErrEdgeIndex)

	g = &core.Graph{Nodes: []core.Node{{Label: "a"}}}
	assert.NoError(t, g.Validate())
}

func TestMappingClone_IsDeep(t *testing.T) {
	m := core.Mapping{Nodes: []int{1, 2}, Edges: [][]int{{0, 3}, nil}}
	c := m.Clone()
	require.Equal(t, m, c)

	c.Nodes[0] = 9
	c.Edges[0][0] = 9
	assert.Equal(t, 1, m.Nodes[0])
	assert.Equal(t, 0, m.Edges[0][0])
}
