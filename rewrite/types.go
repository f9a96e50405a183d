// Package rewrite declares the Rule type and sentinel errors for rule
// compilation and application.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/morphgraph/core"
)

// ErrStructure is the base error for every annotation-contract violation
// reported by Compile. Use errors.Is(err, ErrStructure) to classify, and the
// specific sentinels below to discriminate.
var ErrStructure = errors.New("rewrite: malformed annotated graph")

// Structural error sentinels. Each wraps ErrStructure; Compile wraps them
// further with the offending element.
var (
	// ErrMissingSide indicates the annotated graph lacks an "L" or "R" view.
	ErrMissingSide = fmt.Errorf("%w: missing side subgraph", ErrStructure)

	// ErrOrphanNode indicates a node that belongs to neither L nor R.
	ErrOrphanNode = fmt.Errorf("%w: node in neither L nor R", ErrStructure)

	// ErrOrphanEdge indicates an edge that belongs to neither L nor R.
	ErrOrphanEdge = fmt.Errorf("%w: edge in neither L nor R", ErrStructure)

	// ErrSharedEdge indicates an edge placed in both L and R. Authors must
	// use two edges with the same label, one per side, instead.
	ErrSharedEdge = fmt.Errorf("%w: edge in both L and R", ErrStructure)

	// ErrEdgeEndpoint indicates a side edge whose endpoint node is not a
	// member of the same side.
	ErrEdgeEndpoint = fmt.Errorf("%w: edge endpoint outside its side", ErrStructure)

	// ErrDuplicateLabel indicates a non-empty edge label used twice on the
	// same side.
	ErrDuplicateLabel = fmt.Errorf("%w: duplicate edge label on one side", ErrStructure)
)

// Application errors. ErrNilInput and ErrMappingLength are programmer-facing
// preconditions: they cannot occur for rules produced by Compile and
// mappings produced by match.Find against rule.L on the same target.
// ErrDanglingEdge can occur for such inputs, since it depends on the
// target's edges around the nodes the rule deletes.
var (
	// ErrNilInput indicates a nil graph or rule was passed in.
	ErrNilInput = errors.New("rewrite: nil input")

	// ErrMappingLength indicates the mapping's shape does not match rule.L.
	ErrMappingLength = errors.New("rewrite: mapping does not match rule left-hand side")

	// ErrDanglingEdge indicates the gluing condition failed: a node deleted
	// by the rule still has target edges outside the match image.
	ErrDanglingEdge = errors.New("rewrite: deleted node still has context edges")
)

// Rule is a compiled DPO rewrite rule with all five ingredients
// materialized.
//
// KL injects K into L: KL.Nodes[k] is the L-node index for K-node k, and
// KL.Edges[e] is a singleton list holding the one L-edge paired with K-edge
// e. KR is the analogous injection into R.
//
// K is a bookkeeping object. Its nodes carry the shared attributes; its
// edges carry only a label and dummy endpoints (tail = head = 0) and exist
// solely to pair an L-edge with the R-edge sharing that label. Code that
// walks K as a graph must not trust those endpoints.
//
// A Rule is immutable after Compile and safe for concurrent readers.
type Rule struct {
	// L is the left-hand side pattern.
	L *core.Graph

	// K is the common interface naming preserved elements.
	K *core.Graph

	// R is the right-hand side.
	R *core.Graph

	// KL maps K into L (node injection; singleton edge lists).
	KL core.Mapping

	// KR maps K into R (node injection; singleton edge lists).
	KR core.Mapping
}
