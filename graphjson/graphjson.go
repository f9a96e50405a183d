// Package graphjson implements the JSON(C) wire adapter for core graphs.
package graphjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/katalvlaran/morphgraph/core"
)

// ErrDecode indicates input that is not valid JSON(C) for the wire shape.
var ErrDecode = errors.New("graphjson: invalid graph document")

// Option configures Decode behavior.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictJSON disables the JSONC preprocessing pass: comments and
// trailing commas become decode errors.
func WithStrictJSON() Option {
	return func(o *options) {
		o.strict = true
	}
}

// wireNode, wireEdge, wireSubgraph, and wireGraph mirror the documented
// wire shape one-to-one.
type wireNode struct {
	Label string            `json:"label"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

type wireEdge struct {
	Label string            `json:"label"`
	Tail  int               `json:"tail"`
	Head  int               `json:"head"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

type wireSubgraph struct {
	Name  string `json:"name"`
	Nodes []int  `json:"nodes"`
	Edges []int  `json:"edges"`
}

type wireGraph struct {
	Nodes     []wireNode     `json:"nodes"`
	Edges     []wireEdge     `json:"edges"`
	Subgraphs []wireSubgraph `json:"subgraphs,omitempty"`
}

// Decode parses data into a graph. Endpoint and subgraph indices are
// validated; the input slice is never retained.
func Decode(data []byte, opts ...Option) (*core.Graph, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if !o.strict {
		data = jsonc.ToJSON(data)
	}

	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g := core.NewGraph()
	for _, n := range w.Nodes {
		g.AppendNode(core.Node{Label: n.Label, Attrs: n.Attrs})
	}
	for i, e := range w.Edges {
		if _, err := g.AppendEdge(core.Edge{Label: e.Label, Tail: e.Tail, Head: e.Head, Attrs: e.Attrs}); err != nil {
			return nil, fmt.Errorf("graphjson: edge %d: %w", i, err)
		}
	}
	for _, sg := range w.Subgraphs {
		if err := g.DefineSubgraph(sg.Name, sg.Nodes, sg.Edges); err != nil {
			return nil, fmt.Errorf("graphjson: %w", err)
		}
	}

	return g, nil
}

// Encode marshals g in the wire shape with two-space indentation. Output is
// deterministic: sequences keep index order and attribute maps marshal with
// sorted keys.
func Encode(g *core.Graph) ([]byte, error) {
	w := wireGraph{
		Nodes: make([]wireNode, len(g.Nodes)),
		Edges: make([]wireEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		w.Nodes[i] = wireNode{Label: n.Label, Attrs: n.Attrs}
	}
	for i, e := range g.Edges {
		w.Edges[i] = wireEdge{Label: e.Label, Tail: e.Tail, Head: e.Head, Attrs: e.Attrs}
	}
	for _, sg := range g.Subgraphs {
		w.Subgraphs = append(w.Subgraphs, wireSubgraph{Name: sg.Name, Nodes: sg.Nodes, Edges: sg.Edges})
	}

	out, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("graphjson: encode: %w", err)
	}

	return out, nil
}
