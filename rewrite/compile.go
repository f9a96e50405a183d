package rewrite

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
)

// Compile splits an annotated graph into a DPO rule.
//
// The input graph must carry subgraph views named "L" and "R". Every node
// must belong to at least one view (both ⇒ K-node); every edge must belong
// to exactly one. Non-empty edge labels must be unique per side, and a label
// present on both sides pairs its two edges through a K-edge.
//
// Emitted nodes and edges follow the input order: walking g.Nodes and
// g.Edges in sequence fixes the index order inside L, K, and R. This order
// is observable and part of the contract.
//
// Complexity: O(V + E). The input graph is not mutated.
func Compile(g *core.Graph) (*Rule, error) {
	// 1. Locate the two side views.
	if g == nil {
		return nil, ErrNilInput
	}
	left, ok := g.Subgraph("L")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSide, "L")
	}
	right, ok := g.Subgraph("R")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSide, "R")
	}

	// 2. Dense membership tables, indexed by source node/edge position.
	inLNode := memberTable(left.Nodes, len(g.Nodes))
	inRNode := memberTable(right.Nodes, len(g.Nodes))
	inLEdge := memberTable(left.Edges, len(g.Edges))
	inREdge := memberTable(right.Edges, len(g.Edges))

	rule := &Rule{L: core.NewGraph(), K: core.NewGraph(), R: core.NewGraph()}

	// 3. Translation tables from source node indices into each side;
	//    -1 marks "absent".
	toL := sentinelTable(len(g.Nodes))
	toR := sentinelTable(len(g.Nodes))

	// 4. Distribute nodes. A node in both sides additionally lands in K,
	//    gluing its L and R copies together through the injections.
	for i, n := range g.Nodes {
		l, r := inLNode[i], inRNode[i]
		if !l && !r {
			return nil, fmt.Errorf("%w: %s", ErrOrphanNode, nodeRef(i, n))
		}
		if l {
			toL[i] = rule.L.AppendNode(copyNode(n))
		}
		if r {
			toR[i] = rule.R.AppendNode(copyNode(n))
		}
		if l && r {
			rule.K.AppendNode(copyNode(n))
			rule.KL.Nodes = append(rule.KL.Nodes, toL[i])
			rule.KR.Nodes = append(rule.KR.Nodes, toR[i])
		}
	}

	// 5. Distribute edges, rewriting endpoints through the translation
	//    tables and collecting per-side label indexes for pairing.
	lByLabel := make(map[string]int, len(left.Edges))
	rByLabel := make(map[string]int, len(right.Edges))
	for i, e := range g.Edges {
		l, r := inLEdge[i], inREdge[i]
		switch {
		case l && r:
			return nil, fmt.Errorf("%w: edge %d (%q)", ErrSharedEdge, i, e.Label)
		case !l && !r:
			return nil, fmt.Errorf("%w: edge %d (%q)", ErrOrphanEdge, i, e.Label)
		case l:
			if err := placeEdge(rule.L, e, toL, i, lByLabel); err != nil {
				return nil, err
			}
		default:
			if err := placeEdge(rule.R, e, toR, i, rByLabel); err != nil {
				return nil, err
			}
		}
	}

	// 6. Pair sides: every label present in both L and R induces one K-edge.
	//    Walking L's edges in order keeps the K-edge order deterministic.
	for li, le := range rule.L.Edges {
		if le.Label == "" {
			continue
		}
		ri, shared := rByLabel[le.Label]
		if !shared {
			continue
		}
		// K-edges carry only the label; tail = head = 0 are dummies.
		rule.K.Edges = append(rule.K.Edges, core.Edge{Label: le.Label})
		rule.KL.Edges = append(rule.KL.Edges, []int{li})
		rule.KR.Edges = append(rule.KR.Edges, []int{ri})
	}

	return rule, nil
}

// placeEdge appends e into side with endpoints rewritten through trans,
// enforcing endpoint membership and per-side label uniqueness.
// srcIdx is e's index in the source graph, used in error messages.
func placeEdge(side *core.Graph, e core.Edge, trans []int, srcIdx int, byLabel map[string]int) error {
	tail, head := trans[e.Tail], trans[e.Head]
	if tail < 0 || head < 0 {
		return fmt.Errorf("%w: edge %d (%q)", ErrEdgeEndpoint, srcIdx, e.Label)
	}
	if e.Label != "" {
		if _, dup := byLabel[e.Label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, e.Label)
		}
	}

	idx, err := side.AppendEdge(core.Edge{Label: e.Label, Tail: tail, Head: head, Attrs: copyAttrs(e.Attrs)})
	if err != nil {
		return err
	}
	if e.Label != "" {
		byLabel[e.Label] = idx
	}

	return nil
}

// memberTable expands a sorted index selection into a dense bool table.
func memberTable(selection []int, size int) []bool {
	table := make([]bool, size)
	for _, i := range selection {
		table[i] = true
	}

	return table
}

// sentinelTable allocates a translation table with every entry "absent".
func sentinelTable(size int) []int {
	table := make([]int, size)
	for i := range table {
		table[i] = -1
	}

	return table
}

// nodeRef names a node for a structural error message: the "name" attribute
// when the author supplied one, otherwise index and label.
func nodeRef(i int, n core.Node) string {
	if name, ok := n.Attrs["name"]; ok && name != "" {
		return fmt.Sprintf("node %q", name)
	}

	return fmt.Sprintf("node %d (%q)", i, n.Label)
}

// copyNode deep-copies a node so rule graphs share no storage with input.
func copyNode(n core.Node) core.Node {
	return core.Node{Label: n.Label, Attrs: copyAttrs(n.Attrs)}
}

// copyAttrs deep-copies an attribute bundle; nil stays nil.
func copyAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}
