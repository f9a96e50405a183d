// Package core defines the value types shared by every morphgraph component:
// Graph, Node, Edge, Subgraph, and Mapping.
//
// A Graph is a labeled directed multigraph held as two parallel, position-
// indexed sequences. Nodes and edges are addressed by their index, never by
// pointer, so a Graph can be copied, compared, and shared without aliasing
// surprises. Self-loops and parallel edges are always permitted.
//
// Subgraphs are lightweight views: a named pair of index sets into the parent
// graph. They carry no copies of nodes or edges. The rewrite package reserves
// the names "L" and "R" for rule authoring.
//
// A Mapping records a correspondence between two graphs: one destination node
// index per source node, and a list of destination edge indices per source
// edge (a single source edge may correspond to several parallel destination
// edges, so multiplicity is preserved).
//
// Value semantics:
//
//	Graphs are built with AppendNode/AppendEdge/DefineSubgraph and then
//	treated as immutable. None of the algorithm packages mutate a Graph they
//	receive; they allocate fresh ones. A Graph already published to other
//	goroutines is therefore safe for concurrent reads.
//
// Errors:
//
//	ErrNodeIndex         - an edge or subgraph references a node index out of range.
//	ErrEdgeIndex         - a subgraph references an edge index out of range.
//	ErrDuplicateSubgraph - DefineSubgraph called twice with the same name.
package core
