// Package dot reads and writes morphgraph graphs in a DOT dialect, the
// format rule authors work in.
//
// The dialect is a strict subset of Graphviz DOT:
//
//	digraph name {
//	    subgraph L {
//	        body [label="body"];
//	        limb;
//	        body -> limb [label="attach"];
//	    }
//	    subgraph R {
//	        body;
//	        limb [label="leg"];
//	        body -> limb [label="attach"];
//	    }
//	}
//
// Node statements declare (or re-declare) a node; edge statements always
// create a fresh edge, so parallel edges are written as repeated statements.
// Nodes are indexed in order of first appearance, edges in statement order —
// the order rule compilation observes. A statement inside a subgraph block
// places the node (or the edge and both its endpoints) in that view; the
// same node may appear in several blocks, which is how an author marks it
// preserved across a rule's L and R sides.
//
// The "label" attribute is lifted onto Node.Label / Edge.Label. The node's
// identifier is kept as the "name" attribute; every other attribute is
// carried verbatim. Line comments (//), block comments (/* */), and
// semicolons are permitted and ignored. Unsupported DOT features — ports,
// undirected edges, nested subgraphs, statement-level k=v assignments — are
// syntax errors. Graph, node and edge attribute statements (graph [...]) are
// not recognised: they are read as node statements for a node of that name.
//
// Encode is the inverse, up to layout: all nodes are declared first in index
// order (so node indices survive a round trip), then each view's membership
// and edges, then unowned edges. Edge indices survive a round trip only when
// the edges are already in that order: grouped by the first view listing
// them, views in definition order, unowned edges last. A decoded file with a
// top-level edge before a subgraph block, or with a block reopened after
// another block's edges, comes back with its edges renumbered.
//
// Errors:
//
//	ErrSyntax - malformed input; wrapped with the offending line and column.
package dot
