// Package rewrite compiles annotated graphs into double-pushout (DPO)
// rewrite rules and applies them to target graphs.
//
// A rule is the span L ← K → R:
//
//	L  — the left-hand side, matched against the target
//	K  — the common interface naming everything preserved by the rewrite
//	R  — the right-hand side, instantiated into the result
//
// Elements of L outside K are deleted; elements of R outside K are created.
//
// Compile consumes a graph carrying two subgraph views named "L" and "R".
// A node present in both views becomes a K-node. Edges must belong to
// exactly one view; an edge label appearing on both sides (labels are unique
// per side) pairs the two edges through a K-edge, marking the connection as
// preserved. K-edges exist purely for that pairing: they carry a label and
// dummy endpoints (tail = head = 0) which must never be trusted.
//
// Apply builds the pushout at one embedding of L into the target, as found
// by the match package. The output order is part of the contract:
//
//	nodes:  untouched target context, then K-preserved nodes in K order
//	        (carrying target-side attributes), then fresh R-nodes in R order
//	edges:  untouched target context, then preserved edges in K order with
//	        parallel-edge multiplicity, then fresh R-edges in R order
//
// Deletions are implicit: anything in the image of L but not reachable
// through K is simply never re-emitted.
//
// Both operations are pure: inputs are never mutated, outputs share no
// storage with inputs, and identical inputs yield byte-identical outputs.
//
// Errors:
//
//	Compile reports violations of the annotation contract as structural
//	errors wrapping ErrStructure; each names the offending node, edge, or
//	label. Apply trusts its inputs (rule from Compile, mapping from
//	match.Find) and checks only what it cannot proceed without: mapping
//	shape (ErrMappingLength) and the gluing condition (ErrDanglingEdge).
package rewrite
