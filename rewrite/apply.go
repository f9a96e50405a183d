package rewrite

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
)

// Apply constructs the pushout of rule at one embedding of rule.L into
// target, returning a fresh graph. The mapping m must be an embedding
// produced by match.Find(rule.L, target); Apply verifies only its shape and
// the gluing condition, not that it is a genuine embedding.
//
// Output order (observable, part of the contract):
//
//	Nodes: 1. target nodes outside the image of L, in target order;
//	       2. one node per K-node in K order — the preserved-in-place target
//	          node, carrying target-side attributes;
//	       3. R-nodes outside the image of K, in R order, copied verbatim.
//	Edges: 1. target edges outside the image of L's edges, in target order;
//	       2. per K-edge in K order, every target edge witnessing its paired
//	          L-edge (parallel multiplicities carried through);
//	       3. R-edges outside the image of K, in R order.
//
// Deletions are implicit: the image of L \ K is simply never re-emitted.
// Neither input is mutated.
//
// Complexity: O(V + E) over target plus rule sizes.
func Apply(rule *Rule, target *core.Graph, m core.Mapping) (*core.Graph, error) {
	// 1. Shape preconditions.
	if rule == nil || target == nil {
		return nil, ErrNilInput
	}
	if len(m.Nodes) != len(rule.L.Nodes) || len(m.Edges) != len(rule.L.Edges) {
		return nil, fmt.Errorf("%w: got %d/%d entries, want %d/%d",
			ErrMappingLength, len(m.Nodes), len(m.Edges), len(rule.L.Nodes), len(rule.L.Edges))
	}

	out := core.NewGraph()

	// 2. Mark the target nodes and edges covered by the embedding.
	coveredNode := make([]bool, len(target.Nodes))
	for _, ti := range m.Nodes {
		coveredNode[ti] = true
	}
	coveredEdge := make([]bool, len(target.Edges))
	for _, witnesses := range m.Edges {
		for _, ti := range witnesses {
			coveredEdge[ti] = true
		}
	}

	// 3. Translation tables into the result; -1 marks "absent".
	//    A K-node fills both tables at the same result index, gluing the
	//    preserved context to the fresh right-hand side.
	targetToOut := sentinelTable(len(target.Nodes))
	rToOut := sentinelTable(len(rule.R.Nodes))

	// 4. Nodes, step 1: untouched context, in target order.
	for ti, n := range target.Nodes {
		if !coveredNode[ti] {
			targetToOut[ti] = out.AppendNode(copyNode(n))
		}
	}

	// 5. Nodes, step 2: preserved-in-place nodes, in K order, with
	//    target-side attributes (R never overwrites a preserved node).
	for k := range rule.K.Nodes {
		ti := m.Nodes[rule.KL.Nodes[k]]
		idx := out.AppendNode(copyNode(target.Nodes[ti]))
		targetToOut[ti] = idx
		rToOut[rule.KR.Nodes[k]] = idx
	}

	// 6. Nodes, step 3: freshly created nodes, in R order.
	for ri, n := range rule.R.Nodes {
		if rToOut[ri] < 0 {
			rToOut[ri] = out.AppendNode(copyNode(n))
		}
	}

	// 7. Edges, step 1: untouched context, in target order. An endpoint
	//    with no result index belongs to a deleted node — the gluing
	//    condition fails and the rewrite is undefined at this embedding.
	for ti, e := range target.Edges {
		if coveredEdge[ti] {
			continue
		}
		tail, head := targetToOut[e.Tail], targetToOut[e.Head]
		if tail < 0 || head < 0 {
			return nil, fmt.Errorf("%w: target edge %d (%q)", ErrDanglingEdge, ti, e.Label)
		}
		out.Edges = append(out.Edges, core.Edge{Label: e.Label, Tail: tail, Head: head, Attrs: copyAttrs(e.Attrs)})
	}

	// 8. Edges, step 2: preserved edges, in K order. Each K-edge names one
	//    L-edge; every target edge witnessing it is re-emitted, carrying
	//    through parallel-edge multiplicities found by the matcher.
	for k := range rule.K.Edges {
		li := rule.KL.Edges[k][0]
		for _, ti := range m.Edges[li] {
			e := target.Edges[ti]
			tail, head := targetToOut[e.Tail], targetToOut[e.Head]
			if tail < 0 || head < 0 {
				return nil, fmt.Errorf("%w: target edge %d (%q)", ErrDanglingEdge, ti, e.Label)
			}
			out.Edges = append(out.Edges, core.Edge{Label: e.Label, Tail: tail, Head: head, Attrs: copyAttrs(e.Attrs)})
		}
	}

	// 9. Edges, step 3: freshly created edges, in R order.
	inKImage := make([]bool, len(rule.R.Edges))
	for _, dst := range rule.KR.Edges {
		inKImage[dst[0]] = true
	}
	for ri, e := range rule.R.Edges {
		if inKImage[ri] {
			continue
		}
		out.Edges = append(out.Edges, core.Edge{
			Label: e.Label,
			Tail:  rToOut[e.Tail],
			Head:  rToOut[e.Head],
			Attrs: copyAttrs(e.Attrs),
		})
	}

	return out, nil
}
