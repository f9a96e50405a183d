package core

import (
	"fmt"
	"sort"
)

// AddNode appends a node with the given label and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) int {
	g.Nodes = append(g.Nodes, Node{Label: label})

	return len(g.Nodes) - 1
}

// AppendNode appends n verbatim (including attributes) and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AppendNode(n Node) int {
	g.Nodes = append(g.Nodes, n)

	return len(g.Nodes) - 1
}

// AddEdge appends a directed edge tail→head with the given label and returns
// its index. Both endpoints must already exist.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(tail, head int, label string) (int, error) {
	return g.AppendEdge(Edge{Label: label, Tail: tail, Head: head})
}

// AppendEdge appends e verbatim (including attributes) and returns its index.
// Both endpoints must already exist.
// Complexity: O(1) amortized.
func (g *Graph) AppendEdge(e Edge) (int, error) {
	if e.Tail < 0 || e.Tail >= len(g.Nodes) {
		return 0, fmt.Errorf("%w: tail %d", ErrNodeIndex, e.Tail)
	}
	if e.Head < 0 || e.Head >= len(g.Nodes) {
		return 0, fmt.Errorf("%w: head %d", ErrNodeIndex, e.Head)
	}
	g.Edges = append(g.Edges, e)

	return len(g.Edges) - 1, nil
}

// DefineSubgraph registers a named view over the given node and edge indices.
// The index sets are copied and stored in ascending order. Defining the same
// name twice is an error.
// Complexity: O(n log n) in the selection size.
func (g *Graph) DefineSubgraph(name string, nodes, edges []int) error {
	if _, ok := g.Subgraph(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSubgraph, name)
	}
	for _, i := range nodes {
		if i < 0 || i >= len(g.Nodes) {
			return fmt.Errorf("%w: subgraph %q node %d", ErrNodeIndex, name, i)
		}
	}
	for _, i := range edges {
		if i < 0 || i >= len(g.Edges) {
			return fmt.Errorf("%w: subgraph %q edge %d", ErrEdgeIndex, name, i)
		}
	}

	sg := Subgraph{
		Name:  name,
		Nodes: append([]int(nil), nodes...),
		Edges: append([]int(nil), edges...),
	}
	sort.Ints(sg.Nodes)
	sort.Ints(sg.Edges)
	g.Subgraphs = append(g.Subgraphs, sg)

	return nil
}

// Subgraph returns the view with the given name, and whether it exists.
// Complexity: O(len(Subgraphs)).
func (g *Graph) Subgraph(name string) (Subgraph, bool) {
	for _, sg := range g.Subgraphs {
		if sg.Name == name {
			return sg, true
		}
	}

	return Subgraph{}, false
}

// EdgesBetween returns the indices of every edge tail→head, in ascending
// order. Parallel edges yield several entries; no edge yields nil.
// Complexity: O(len(Edges)).
func (g *Graph) EdgesBetween(tail, head int) []int {
	var out []int
	for i, e := range g.Edges {
		if e.Tail == tail && e.Head == head {
			out = append(out, i)
		}
	}

	return out
}

// HasEdgeBetween reports whether at least one edge tail→head exists.
// Complexity: O(len(Edges)).
func (g *Graph) HasEdgeBetween(tail, head int) bool {
	for _, e := range g.Edges {
		if e.Tail == tail && e.Head == head {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of g: node and edge sequences, attribute maps,
// and subgraph views are all freshly allocated.
// Complexity: O(V + E + attribute volume).
func (g *Graph) Clone() *Graph {
	out := &Graph{}
	if g.Nodes != nil {
		out.Nodes = make([]Node, len(g.Nodes))
	}
	if g.Edges != nil {
		out.Edges = make([]Edge, len(g.Edges))
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = Node{Label: n.Label, Attrs: cloneAttrs(n.Attrs)}
	}
	for i, e := range g.Edges {
		out.Edges[i] = Edge{Label: e.Label, Tail: e.Tail, Head: e.Head, Attrs: cloneAttrs(e.Attrs)}
	}
	if len(g.Subgraphs) > 0 {
		out.Subgraphs = make([]Subgraph, len(g.Subgraphs))
		for i, sg := range g.Subgraphs {
			out.Subgraphs[i] = Subgraph{
				Name:  sg.Name,
				Nodes: append([]int(nil), sg.Nodes...),
				Edges: append([]int(nil), sg.Edges...),
			}
		}
	}

	return out
}

// Validate checks that every edge endpoint and every subgraph member index is
// in range. Graphs built through AddEdge/DefineSubgraph are valid by
// construction; Validate is for graphs assembled field-by-field (decoders).
// Complexity: O(V + E + subgraph volume).
func (g *Graph) Validate() error {
	for i, e := range g.Edges {
		if e.Tail < 0 || e.Tail >= len(g.Nodes) {
			return fmt.Errorf("%w: edge %d tail %d", ErrNodeIndex, i, e.Tail)
		}
		if e.Head < 0 || e.Head >= len(g.Nodes) {
			return fmt.Errorf("%w: edge %d head %d", ErrNodeIndex, i, e.Head)
		}
	}
	for _, sg := range g.Subgraphs {
		for _, i := range sg.Nodes {
			if i < 0 || i >= len(g.Nodes) {
				return fmt.Errorf("%w: subgraph %q node %d", ErrNodeIndex, sg.Name, i)
			}
		}
		for _, i := range sg.Edges {
			if i < 0 || i >= len(g.Edges) {
				return fmt.Errorf("%w: subgraph %q edge %d", ErrEdgeIndex, sg.Name, i)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	out := Mapping{Nodes: append([]int(nil), m.Nodes...)}
	if m.Edges != nil {
		out.Edges = make([][]int, len(m.Edges))
		for i, dst := range m.Edges {
			out.Edges[i] = append([]int(nil), dst...)
		}
	}

	return out
}

// cloneAttrs copies an attribute bundle; nil stays nil.
func cloneAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}
