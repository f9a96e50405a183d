package dot

import (
	"sort"

	"github.com/katalvlaran/morphgraph/core"
)

// block accumulates one named view's membership while parsing.
type block struct {
	name  string
	nodes map[int]struct{}
	edges map[int]struct{}
}

func (b *block) addNode(i int) {
	b.nodes[i] = struct{}{}
}

func (b *block) addEdge(i int) {
	b.edges[i] = struct{}{}
}

// parser holds one Decode call's state: the token stream, the graph under
// construction, the ident → node-index table, and the view blocks in order
// of first appearance.
type parser struct {
	sc      *scanner
	tok     token
	g       *core.Graph
	nodeIdx map[string]int
	blocks  []*block
	byName  map[string]*block
}

// Decode parses src and returns the graph it describes.
// The input is never retained; the result owns all its storage.
func Decode(src []byte) (*core.Graph, error) {
	p := &parser{
		sc:      newScanner(src),
		g:       core.NewGraph(),
		nodeIdx: make(map[string]int),
		byName:  make(map[string]*block),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.parseGraph(); err != nil {
		return nil, err
	}

	// Register the views in order of first appearance; membership sets are
	// flattened to sorted index slices.
	for _, b := range p.blocks {
		if err := p.g.DefineSubgraph(b.name, sortedKeys(b.nodes), sortedKeys(b.edges)); err != nil {
			return nil, err
		}
	}

	return p.g, nil
}

// advance reads the next token into p.tok.
func (p *parser) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

// expect consumes a token of the given kind or fails.
func (p *parser) expect(kind tokenKind) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.sc.errorf(p.tok.line, p.tok.col, "expected %s, found %s", kind, p.tok.kind)
	}
	tok := p.tok

	return tok, p.advance()
}

// parseGraph parses: "digraph" [name] "{" statements "}".
func (p *parser) parseGraph() error {
	kw, err := p.expect(tokIdent)
	if err != nil {
		return err
	}
	if kw.text != "digraph" {
		return p.sc.errorf(kw.line, kw.col, "expected 'digraph', found %q", kw.text)
	}
	// Optional graph name; it is not retained.
	if p.tok.kind == tokIdent || p.tok.kind == tokString {
		if err = p.advance(); err != nil {
			return err
		}
	}
	if _, err = p.expect(tokLBrace); err != nil {
		return err
	}
	if err = p.parseStatements(nil); err != nil {
		return err
	}
	if _, err = p.expect(tokRBrace); err != nil {
		return err
	}
	_, err = p.expect(tokEOF)

	return err
}

// parseStatements parses statements until the closing brace. A non-nil blk
// means we are inside a subgraph block and every statement contributes
// membership to it.
func (p *parser) parseStatements(blk *block) error {
	for {
		switch p.tok.kind {
		case tokRBrace:
			return nil
		case tokSemi:
			if err := p.advance(); err != nil {
				return err
			}
		case tokIdent, tokString:
			if p.tok.kind == tokIdent && p.tok.text == "subgraph" {
				if blk != nil {
					return p.sc.errorf(p.tok.line, p.tok.col, "nested subgraph")
				}
				if err := p.parseSubgraph(); err != nil {
					return err
				}
				continue
			}
			if err := p.parseNodeOrEdge(blk); err != nil {
				return err
			}
		default:
			return p.sc.errorf(p.tok.line, p.tok.col, "unexpected %s", p.tok.kind)
		}
	}
}

// parseSubgraph parses: "subgraph" name "{" statements "}".
// Reopening an existing name extends its membership.
func (p *parser) parseSubgraph() error {
	if err := p.advance(); err != nil { // consume "subgraph"
		return err
	}
	if p.tok.kind != tokIdent && p.tok.kind != tokString {
		return p.sc.errorf(p.tok.line, p.tok.col, "expected subgraph name, found %s", p.tok.kind)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return err
	}

	blk, ok := p.byName[name]
	if !ok {
		blk = &block{name: name, nodes: make(map[int]struct{}), edges: make(map[int]struct{})}
		p.byName[name] = blk
		p.blocks = append(p.blocks, blk)
	}

	if _, err := p.expect(tokLBrace); err != nil {
		return err
	}
	if err := p.parseStatements(blk); err != nil {
		return err
	}
	_, err := p.expect(tokRBrace)

	return err
}

// parseNodeOrEdge parses a node statement or an edge statement. The current
// token is the leading identifier.
func (p *parser) parseNodeOrEdge(blk *block) error {
	first := p.tok.text
	if err := p.advance(); err != nil {
		return err
	}

	// Edge statement: ident -> ident [attrs].
	if p.tok.kind == tokArrow {
		if err := p.advance(); err != nil {
			return err
		}
		if p.tok.kind != tokIdent && p.tok.kind != tokString {
			return p.sc.errorf(p.tok.line, p.tok.col, "expected edge head, found %s", p.tok.kind)
		}
		second := p.tok.text
		if err := p.advance(); err != nil {
			return err
		}
		attrs, err := p.parseAttrList()
		if err != nil {
			return err
		}

		tail := p.ensureNode(first)
		head := p.ensureNode(second)
		e := core.Edge{Tail: tail, Head: head}
		applyEdgeAttrs(&e, attrs)
		ei, err := p.g.AppendEdge(e)
		if err != nil {
			return err
		}
		if blk != nil {
			// An edge inside a block pulls both endpoints into the view.
			blk.addEdge(ei)
			blk.addNode(tail)
			blk.addNode(head)
		}

		return nil
	}

	// Node statement: ident [attrs].
	attrs, err := p.parseAttrList()
	if err != nil {
		return err
	}
	ni := p.ensureNode(first)
	applyNodeAttrs(&p.g.Nodes[ni], attrs)
	if blk != nil {
		blk.addNode(ni)
	}

	return nil
}

// parseAttrList parses an optional "[ k=v, ... ]" list into ordered pairs.
func (p *parser) parseAttrList() ([][2]string, error) {
	if p.tok.kind != tokLBracket {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var attrs [][2]string
	for p.tok.kind != tokRBracket {
		key, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokEquals); err != nil {
			return nil, err
		}
		if p.tok.kind != tokIdent && p.tok.kind != tokString {
			return nil, p.sc.errorf(p.tok.line, p.tok.col, "expected attribute value, found %s", p.tok.kind)
		}
		attrs = append(attrs, [2]string{key.text, p.tok.text})
		if err = p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokComma {
			if err = p.advance(); err != nil {
				return nil, err
			}
		}
	}

	return attrs, p.advance() // consume ']'
}

// ensureNode returns the index for ident, appending a fresh node on first
// sight. The identifier is retained as the "name" attribute.
func (p *parser) ensureNode(ident string) int {
	if i, ok := p.nodeIdx[ident]; ok {
		return i
	}
	i := p.g.AppendNode(core.Node{Attrs: map[string]string{"name": ident}})
	p.nodeIdx[ident] = i

	return i
}

// applyNodeAttrs merges parsed attributes into a node; "label" is lifted.
func applyNodeAttrs(n *core.Node, attrs [][2]string) {
	for _, kv := range attrs {
		if kv[0] == "label" {
			n.Label = kv[1]
			continue
		}
		if n.Attrs == nil {
			n.Attrs = make(map[string]string)
		}
		n.Attrs[kv[0]] = kv[1]
	}
}

// applyEdgeAttrs merges parsed attributes into an edge; "label" is lifted.
func applyEdgeAttrs(e *core.Edge, attrs [][2]string) {
	for _, kv := range attrs {
		if kv[0] == "label" {
			e.Label = kv[1]
			continue
		}
		if e.Attrs == nil {
			e.Attrs = make(map[string]string)
		}
		e.Attrs[kv[0]] = kv[1]
	}
}

// sortedKeys flattens a membership set to an ascending index slice.
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}
