// Package core declares Graph, Node, Edge, Subgraph, Mapping,
// sentinel errors, and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrNodeIndex indicates a node index outside [0, len(Nodes)).
	ErrNodeIndex = errors.New("core: node index out of range")

	// ErrEdgeIndex indicates an edge index outside [0, len(Edges)).
	ErrEdgeIndex = errors.New("core: edge index out of range")

	// ErrDuplicateSubgraph indicates DefineSubgraph was called with a name
	// that is already defined on this graph.
	ErrDuplicateSubgraph = errors.New("core: subgraph name already defined")
)

// Node is one vertex of a Graph, addressed by its position in Graph.Nodes.
//
// Label is compared by exact string equality; the empty label is legal and,
// in a pattern graph, matches any node. Attrs holds collaborator-supplied
// attributes which the engine preserves but never interprets.
type Node struct {
	// Label is the node's opaque label. May be empty.
	Label string

	// Attrs stores additional attributes carried through rewriting verbatim.
	// Nil and empty are equivalent.
	Attrs map[string]string
}

// Edge is one directed edge of a Graph, addressed by its position in
// Graph.Edges. Tail is the source node index, Head the destination node
// index; both index the owning graph's Nodes. Tail == Head is a self-loop,
// and several edges may share the same endpoints (parallel edges).
type Edge struct {
	// Label is the edge's opaque label. May be empty.
	Label string

	// Tail is the source node index.
	Tail int

	// Head is the destination node index.
	Head int

	// Attrs stores additional attributes carried through rewriting verbatim.
	Attrs map[string]string
}

// Subgraph is a named view into its parent graph: a selection of node and
// edge indices. It owns no nodes or edges of its own.
type Subgraph struct {
	// Name identifies the view. "L" and "R" are reserved by rule compilation.
	Name string

	// Nodes lists member node indices in ascending order.
	Nodes []int

	// Edges lists member edge indices in ascending order.
	Edges []int
}

// Graph is a labeled directed multigraph with position-indexed node and edge
// sequences plus named subgraph views.
type Graph struct {
	// Nodes is the ordered node sequence; a node's index is its identity.
	Nodes []Node

	// Edges is the ordered edge sequence; endpoints index Nodes.
	Edges []Edge

	// Subgraphs lists named views in definition order.
	Subgraphs []Subgraph
}

// Mapping is a correspondence from a source graph to a destination graph.
//
// Nodes[i] is the destination node index for source node i. Edges[i] lists
// every destination edge index corresponding to source edge i; the list may
// be empty or hold several entries (parallel destination edges).
type Mapping struct {
	Nodes []int
	Edges [][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}
