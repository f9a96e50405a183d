package match

import (
	"github.com/katalvlaran/morphgraph/core"
)

// endpoints is an adjacency-index key: (tail, head) target node indices.
type endpoints struct {
	tail, head int
}

// Find enumerates every embedding of pattern into target and returns one
// Mapping per embedding, in lexicographic order of the node mapping
// (target index 0 tried first). The empty result is a nil slice.
//
// Neither input graph is mutated; mappings share no storage with each other
// or with the inputs.
func Find(pattern, target *core.Graph, opts ...Option) ([]core.Mapping, error) {
	// 1. Validate inputs.
	if pattern == nil || target == nil {
		return nil, ErrNilGraph
	}
	if len(pattern.Nodes) == 0 {
		return nil, ErrEmptyPattern
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Index target edges by endpoint pair. Edge indices are appended in
	//    sequence order, so every witness list is ascending.
	adj := make(map[endpoints][]int, len(target.Edges))
	for i, e := range target.Edges {
		key := endpoints{tail: e.Tail, head: e.Head}
		adj[key] = append(adj[key], i)
	}

	// 4. Group pattern edges by the later of their two endpoints. An edge is
	//    "closed" the moment that endpoint is assigned, and is checked then.
	closedBy := make([][]int, len(pattern.Nodes))
	for i, e := range pattern.Edges {
		last := e.Tail
		if e.Head > last {
			last = e.Head
		}
		closedBy[last] = append(closedBy[last], i)
	}

	// 5. Depth-first backtracking. The stack is a partial node mapping whose
	//    final entry is speculative: stack[k-1] == j asks whether pattern
	//    node k-1 maps to target node j.
	var matches []core.Mapping
	stack := make([]int, 1, len(pattern.Nodes))
	candidates := len(target.Nodes)

	for len(stack) > 0 {
		k := len(stack)
		j := stack[k-1]

		// 5a. Candidates exhausted: pop, then advance the parent frame.
		if j >= candidates {
			stack = stack[:k-1]
			if len(stack) > 0 {
				stack[len(stack)-1]++
			}
			continue
		}

		// 5b. Label test: a labeled pattern node needs the identical label.
		if lbl := pattern.Nodes[k-1].Label; lbl != "" && lbl != target.Nodes[j].Label {
			stack[k-1]++
			continue
		}

		// 5c. Injectivity test (opt-in only).
		if o.Injective && assigned(stack[:k-1], j) {
			stack[k-1]++
			continue
		}

		// 5d. Partial edge test: every pattern edge closed by this
		//     assignment needs at least one witness in the target.
		if !closedEdgesWitnessed(pattern, stack, closedBy[k-1], adj) {
			stack[k-1]++
			continue
		}

		// 5e. Complete embedding: record it and keep searching.
		if k == len(pattern.Nodes) {
			matches = append(matches, materialize(pattern, stack, adj))
			if o.Limit > 0 && len(matches) == o.Limit {
				break
			}
			stack[k-1]++
			continue
		}

		// 5f. Extend the partial mapping with a fresh speculative frame.
		stack = append(stack, 0)
	}

	return matches, nil
}

// assigned reports whether target node j already appears in the committed
// prefix of the partial mapping.
func assigned(prefix []int, j int) bool {
	for _, v := range prefix {
		if v == j {
			return true
		}
	}

	return false
}

// closedEdgesWitnessed verifies that each pattern edge in closed has at least
// one target edge between its mapped endpoints.
func closedEdgesWitnessed(pattern *core.Graph, stack []int, closed []int, adj map[endpoints][]int) bool {
	for _, ei := range closed {
		e := pattern.Edges[ei]
		key := endpoints{tail: stack[e.Tail], head: stack[e.Head]}
		if len(adj[key]) == 0 {
			return false
		}
	}

	return true
}

// materialize turns a complete node assignment into a full Mapping: the node
// mapping is copied off the stack, and each pattern edge is mapped to every
// parallel target edge between its assigned endpoints.
func materialize(pattern *core.Graph, stack []int, adj map[endpoints][]int) core.Mapping {
	m := core.Mapping{
		Nodes: append([]int(nil), stack...),
		Edges: make([][]int, len(pattern.Edges)),
	}
	for i, e := range pattern.Edges {
		key := endpoints{tail: stack[e.Tail], head: stack[e.Head]}
		m.Edges[i] = append([]int(nil), adj[key]...)
	}

	return m
}
