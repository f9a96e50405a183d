package dot

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/morphgraph/core"
)

// Encode writes g in the package dialect, deterministically: nodes first in
// index order, then each view block in definition order, then unowned edges
// in index order. Node identifiers come from the "name" attribute when
// present, otherwise "n<index>"; an identifier already taken by an earlier
// node is prefixed with '_' until unique.
//
// Complexity: O(V + E + attribute volume), plus sorting of attribute keys.
func Encode(g *core.Graph) []byte {
	var buf bytes.Buffer
	idents := nodeIdents(g)

	// edge index → owning view (first containing view wins).
	owner := make([]int, len(g.Edges))
	for i := range owner {
		owner[i] = -1
	}
	for si, sg := range g.Subgraphs {
		for _, ei := range sg.Edges {
			if owner[ei] < 0 {
				owner[ei] = si
			}
		}
	}

	buf.WriteString("digraph g {\n")

	// 1. Every node, in index order, with its attributes.
	for i, n := range g.Nodes {
		buf.WriteByte('\t')
		buf.WriteString(quoteIdent(idents[i]))
		writeAttrs(&buf, n.Label, n.Attrs)
		buf.WriteString(";\n")
	}

	// 2. View blocks: bare membership statements plus owned edges.
	for si, sg := range g.Subgraphs {
		buf.WriteString("\tsubgraph ")
		buf.WriteString(quoteIdent(sg.Name))
		buf.WriteString(" {\n")
		for _, ni := range sg.Nodes {
			buf.WriteString("\t\t")
			buf.WriteString(quoteIdent(idents[ni]))
			buf.WriteString(";\n")
		}
		for _, ei := range sg.Edges {
			if owner[ei] == si {
				writeEdge(&buf, "\t\t", g, idents, ei)
			}
		}
		buf.WriteString("\t}\n")
	}

	// 3. Edges owned by no view.
	for ei := range g.Edges {
		if owner[ei] < 0 {
			writeEdge(&buf, "\t", g, idents, ei)
		}
	}

	buf.WriteString("}\n")

	return buf.Bytes()
}

// writeEdge emits one edge statement.
func writeEdge(buf *bytes.Buffer, indent string, g *core.Graph, idents []string, ei int) {
	e := g.Edges[ei]
	buf.WriteString(indent)
	buf.WriteString(quoteIdent(idents[e.Tail]))
	buf.WriteString(" -> ")
	buf.WriteString(quoteIdent(idents[e.Head]))
	writeAttrs(buf, e.Label, e.Attrs)
	buf.WriteString(";\n")
}

// writeAttrs emits "[label=..., k=v, ...]": label first, remaining keys
// sorted, the "name" attribute suppressed (it became the identifier).
func writeAttrs(buf *bytes.Buffer, label string, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "name" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if label == "" && len(keys) == 0 {
		return
	}

	buf.WriteString(" [")
	sep := ""
	if label != "" {
		buf.WriteString("label=")
		buf.WriteString(quoteValue(label))
		sep = ", "
	}
	for _, k := range keys {
		buf.WriteString(sep)
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(quoteValue(attrs[k]))
		sep = ", "
	}
	buf.WriteByte(']')
}

// nodeIdents assigns each node a unique identifier: the "name" attribute
// when present, otherwise "n<index>", prefixed with '_' while taken.
func nodeIdents(g *core.Graph) []string {
	idents := make([]string, len(g.Nodes))
	taken := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		ident := n.Attrs["name"]
		if ident == "" {
			ident = fallbackIdent(i)
		}
		// A taken identifier (duplicate names, or a name colliding with a
		// fallback) is prefixed until unique.
		for _, dup := taken[ident]; dup; _, dup = taken[ident] {
			ident = "_" + ident
		}
		taken[ident] = struct{}{}
		idents[i] = ident
	}

	return idents
}

func fallbackIdent(i int) string {
	return "n" + strconv.Itoa(i)
}

// quoteIdent writes an identifier bare when the scanner would read it back
// as one token, quoted otherwise.
func quoteIdent(s string) string {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return quoteValue(s)
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return quoteValue(s)
		}
	}

	return s
}

// quoteValue always quotes, escaping backslashes and quotes.
func quoteValue(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')

	return b.String()
}
