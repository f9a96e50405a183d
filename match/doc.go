// Package match enumerates subgraph embeddings of a pattern graph inside a
// target graph, producing node- and edge-correspondence mappings.
//
// Matching semantics:
//   - A pattern node with a non-empty label matches only target nodes bearing
//     the identical label; an empty label matches any target node.
//   - Every pattern edge tail→head must be witnessed by at least one target
//     edge between the assigned endpoints; direction is significant. All
//     parallel witnesses are recorded in the mapping, with multiplicity.
//   - Two distinct pattern nodes may map to the same target node unless
//     WithInjective is set. Non-injective search is the default.
//
// Search algorithm:
//
//	Depth-first backtracking over an explicit stack of partial matches,
//	assigning pattern nodes in index order. The final stack entry is always
//	speculative: "does pattern node k−1 map to target node j?". Candidates
//	are tried in ascending target order, so results come out in lexicographic
//	order of their node mapping. Edges already closed by the partial mapping
//	are verified immediately, which is the sole pruning step.
//
// Complexity:
//
//   - Time:   O(|T.Nodes|^|P.Nodes|) worst case; the closed-edge pruning
//     cuts the practical search space sharply.
//   - Memory: O(|P.Nodes|) for the stack plus O(|T.Edges|) for the
//     adjacency index.
//
// Options:
//
//   - WithInjective()   forbid two pattern nodes sharing a target node.
//   - WithLimit(n)      stop after n complete embeddings (0 = unlimited).
//
// Errors:
//
//   - ErrNilGraph       if pattern or target is nil.
//   - ErrEmptyPattern   if the pattern has no nodes.
package match
