package rewrite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/rewrite"
)

// annNode and annEdge describe one element of an annotated graph together
// with its side membership: "L", "R", "LR", or "" (none).
type annNode struct {
	label string
	side  string
}

type annEdge struct {
	tail, head int
	label      string
	side       string
}

// annotated assembles an annotated graph, registering the "L" and "R" views
// from the per-element side markers. sides lists which views to define, so
// tests can omit one.
func annotated(t *testing.T, nodes []annNode, edges []annEdge, sides ...string) *core.Graph {
	t.Helper()
	if len(sides) == 0 {
		sides = []string{"L", "R"}
	}

	g := core.NewGraph()
	member := map[string]*core.Subgraph{}
	for _, s := range sides {
		member[s] = &core.Subgraph{Name: s}
	}

	for i, n := range nodes {
		g.AddNode(n.label)
		for _, s := range sides {
			if containsSide(n.side, s) {
				member[s].Nodes = append(member[s].Nodes, i)
			}
		}
	}
	for i, e := range edges {
		_, err := g.AddEdge(e.tail, e.head, e.label)
		require.NoError(t, err)
		for _, s := range sides {
			if containsSide(e.side, s) {
				member[s].Edges = append(member[s].Edges, i)
			}
		}
	}
	for _, s := range sides {
		require.NoError(t, g.DefineSubgraph(s, member[s].Nodes, member[s].Edges))
	}

	return g
}

func containsSide(marker, side string) bool {
	for i := 0; i < len(marker); i++ {
		if string(marker[i]) == side {
			return true
		}
	}

	return false
}

func labels(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}

	return out
}

func edgeLabels(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Label
	}

	return out
}

func TestCompile_NilInput(t *testing.T) {
	_, err := rewrite.Compile(nil)
	assert.ErrorIs(t, err, rewrite.ErrNilInput)
}

func TestCompile_MissingSides(t *testing.T) {
	g := annotated(t, []annNode{{"a", "L"}}, nil, "L")
	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrMissingSide)
	assert.ErrorIs(t, err, rewrite.ErrStructure)
	assert.ErrorContains(t, err, `"R"`)

	g = annotated(t, []annNode{{"a", "R"}}, nil, "R")
	_, err = rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrMissingSide)
	assert.ErrorContains(t, err, `"L"`)
}

func TestCompile_SplitsNodesAndBuildsK(t *testing.T) {
	// a lives only in L, b only in R, s in both (preserved).
	g := annotated(t,
		[]annNode{{"a", "L"}, {"s", "LR"}, {"b", "R"}},
		nil,
	)

	rule, err := rewrite.Compile(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "s"}, labels(rule.L.Nodes))
	assert.Equal(t, []string{"s", "b"}, labels(rule.R.Nodes))
	assert.Equal(t, []string{"s"}, labels(rule.K.Nodes))
	assert.Equal(t, []int{1}, rule.KL.Nodes, "K node injects at L index 1")
	assert.Equal(t, []int{0}, rule.KR.Nodes, "K node injects at R index 0")
}

func TestCompile_PairsEdgesByLabel(t *testing.T) {
	g := annotated(t,
		[]annNode{{"x", "LR"}, {"y", "LR"}},
		[]annEdge{
			{0, 1, "e", "L"},
			{0, 1, "e", "R"},
			{0, 1, "f", "L"},
		},
	)

	rule, err := rewrite.Compile(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "f"}, edgeLabels(rule.L.Edges))
	assert.Equal(t, []string{"e"}, edgeLabels(rule.R.Edges))

	// Only "e" appears on both sides, so K pairs exactly that edge.
	require.Equal(t, []string{"e"}, edgeLabels(rule.K.Edges))
	assert.Equal(t, [][]int{{0}}, rule.KL.Edges)
	assert.Equal(t, [][]int{{0}}, rule.KR.Edges)

	// K edges carry dummy endpoints only.
	assert.Equal(t, 0, rule.K.Edges[0].Tail)
	assert.Equal(t, 0, rule.K.Edges[0].Head)
}

func TestCompile_RewritesEndpointsPerSide(t *testing.T) {
	// Node order interleaves the sides, so the translation tables matter.
	g := annotated(t,
		[]annNode{{"u", "R"}, {"v", "LR"}, {"w", "L"}},
		[]annEdge{
			{1, 2, "lw", "L"}, // v→w inside L: indices 0→1 there
			{1, 0, "ru", "R"}, // v→u inside R: indices 1→0 there
		},
	)

	rule, err := rewrite.Compile(g)
	require.NoError(t, err)

	require.Len(t, rule.L.Edges, 1)
	assert.Equal(t, 0, rule.L.Edges[0].Tail)
	assert.Equal(t, 1, rule.L.Edges[0].Head)

	require.Len(t, rule.R.Edges, 1)
	assert.Equal(t, 1, rule.R.Edges[0].Tail)
	assert.Equal(t, 0, rule.R.Edges[0].Head)
}

func TestCompile_OrphanNode(t *testing.T) {
	g := annotated(t, []annNode{{"a", "L"}, {"stray", ""}, {"b", "R"}}, nil)

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrOrphanNode)
	assert.ErrorContains(t, err, "stray")
}

func TestCompile_OrphanNode_CitesNameAttribute(t *testing.T) {
	g := core.NewGraph()
	g.AppendNode(core.Node{Label: "a", Attrs: map[string]string{"name": "torso"}})
	require.NoError(t, g.DefineSubgraph("L", nil, nil))
	require.NoError(t, g.DefineSubgraph("R", nil, nil))

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrOrphanNode)
	assert.ErrorContains(t, err, `"torso"`)
}

func TestCompile_OrphanEdge(t *testing.T) {
	g := annotated(t,
		[]annNode{{"a", "LR"}, {"b", "LR"}},
		[]annEdge{{0, 1, "e", ""}},
	)

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrOrphanEdge)
}

func TestCompile_SharedEdge(t *testing.T) {
	g := annotated(t,
		[]annNode{{"a", "LR"}, {"b", "LR"}},
		[]annEdge{{0, 1, "e", "LR"}},
	)

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrSharedEdge)
}

func TestCompile_DuplicateLabel(t *testing.T) {
	g := annotated(t,
		[]annNode{{"a", "LR"}, {"b", "LR"}},
		[]annEdge{
			{0, 1, "e", "L"},
			{1, 0, "e", "L"},
		},
	)

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrDuplicateLabel)
	assert.ErrorContains(t, err, `"e"`)
}

func TestCompile_EdgeEndpointOutsideSide(t *testing.T) {
	// b is R-only, yet an L edge reaches it.
	g := annotated(t,
		[]annNode{{"a", "L"}, {"b", "R"}},
		[]annEdge{{0, 1, "e", "L"}},
	)

	_, err := rewrite.Compile(g)
	assert.ErrorIs(t, err, rewrite.ErrEdgeEndpoint)
}

func TestCompile_EmptyLabelsNeverPairNorCollide(t *testing.T) {
	g := annotated(t,
		[]annNode{{"a", "LR"}, {"b", "LR"}},
		[]annEdge{
			{0, 1, "", "L"},
			{0, 1, "", "L"}, // second unlabeled L edge is fine
			{0, 1, "", "R"},
		},
	)

	rule, err := rewrite.Compile(g)
	require.NoError(t, err)
	assert.Len(t, rule.L.Edges, 2)
	assert.Len(t, rule.R.Edges, 1)
	assert.Empty(t, rule.K.Edges, "unlabeled edges induce no pairing")
}

func TestCompile_CopiesAttributes(t *testing.T) {
	g := core.NewGraph()
	g.AppendNode(core.Node{Label: "s", Attrs: map[string]string{"mass": "3"}})
	require.NoError(t, g.DefineSubgraph("L", []int{0}, nil))
	require.NoError(t, g.DefineSubgraph("R", []int{0}, nil))

	rule, err := rewrite.Compile(g)
	require.NoError(t, err)

	// Well-formedness: the K node's images carry matching attributes.
	assert.Equal(t, rule.K.Nodes[0], rule.L.Nodes[rule.KL.Nodes[0]])
	assert.Equal(t, rule.K.Nodes[0], rule.R.Nodes[rule.KR.Nodes[0]])

	// And no storage is shared with the input.
	rule.L.Nodes[0].Attrs["mass"] = "9"
	assert.Equal(t, "3", g.Nodes[0].Attrs["mass"])
	assert.Equal(t, "3", rule.K.Nodes[0].Attrs["mass"])
}

func TestCompile_Deterministic(t *testing.T) {
	g := annotated(t,
		[]annNode{{"a", "L"}, {"s", "LR"}, {"b", "R"}},
		[]annEdge{
			{1, 0, "drop", "L"},
			{1, 2, "grow", "R"},
		},
	)

	first, err := rewrite.Compile(g)
	require.NoError(t, err)
	second, err := rewrite.Compile(g)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
}
