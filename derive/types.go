// Package derive defines the engine's options, result types, and sentinel
// errors.
package derive

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/rewrite"
)

var (
	// ErrNilSeed is returned when Derive is given a nil seed graph.
	ErrNilSeed = errors.New("derive: seed graph is nil")

	// ErrRuleIndex is returned when a sequence entry does not name a rule.
	ErrRuleIndex = errors.New("derive: rule index out of range")

	// ErrNoMatch is returned when a rule's left-hand side has no embedding
	// in the current graph.
	ErrNoMatch = errors.New("derive: rule does not match")

	// ErrBadSelection is returned when the Selector picks an index outside
	// the match list.
	ErrBadSelection = errors.New("derive: selector returned invalid match index")
)

// NamedRule pairs a compiled rule with the name it is reported under in
// errors, logs, and derivation records.
type NamedRule struct {
	Name string
	Rule *rewrite.Rule
}

// Selector picks which embedding to rewrite at. step is the position in the
// sequence, matches is never empty, and the return value must index it.
type Selector func(step int, rule NamedRule, matches []core.Mapping) int

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger enables structured step logging on the engine.
//
// Each applied step logs the derivation id, step number, rule name, match
// count, selected match, and the result size. Pass nil to disable logging
// (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSelector installs a custom embedding Selector. The default selects
// match 0, the lexicographically first embedding.
func WithSelector(sel Selector) Option {
	return func(e *Engine) {
		if sel != nil {
			e.selector = sel
		}
	}
}

// Step records one rule application inside a derivation.
type Step struct {
	// RuleIndex is the engine rule applied, Rule its name.
	RuleIndex int
	Rule      string

	// MatchIndex is the position of the chosen embedding in the match
	// list; Match is the embedding itself.
	MatchIndex int
	Match      core.Mapping

	// Result is the graph after this step.
	Result *core.Graph
}

// Derivation is the full record of one Derive call: the stamped identifier,
// the untouched seed, every step in order, and the final graph (identical to
// the last step's Result, or to Seed for an empty sequence).
type Derivation struct {
	ID     uuid.UUID
	Seed   *core.Graph
	Steps  []Step
	Result *core.Graph
}
