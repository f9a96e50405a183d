package match_test

import (
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/match"
)

// ExampleFind looks for a labeled edge pattern inside a small target graph.
// Pattern structure:
//
//	body ──▶ leg
//
// Target structure:
//
//	body ──▶ leg₀
//	  │
//	  └────▶ leg₁
//
// Both legs qualify, in lexicographic order of the node mapping.
func ExampleFind() {
	// Build the pattern: body → leg.
	pattern := core.NewGraph()
	body := pattern.AddNode("body")
	leg := pattern.AddNode("leg")
	_, _ = pattern.AddEdge(body, leg, "")

	// Build the target: one body attached to two legs.
	target := core.NewGraph()
	tb := target.AddNode("body")
	l0 := target.AddNode("leg")
	l1 := target.AddNode("leg")
	_, _ = target.AddEdge(tb, l0, "")
	_, _ = target.AddEdge(tb, l1, "")

	matches, err := match.Find(pattern, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, m := range matches {
		fmt.Println(m.Nodes)
	}
	// Output:
	// [0 1]
	// [0 2]
}
