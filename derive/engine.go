package derive

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/morphgraph/core"
	"github.com/katalvlaran/morphgraph/match"
	"github.com/katalvlaran/morphgraph/rewrite"
)

// Engine holds a rule set and applies sequences of it to seed graphs.
// An Engine is immutable after NewEngine and safe for concurrent Derive
// calls on distinct seeds.
type Engine struct {
	rules    []NamedRule
	logger   *slog.Logger
	selector Selector
}

// NewEngine builds an engine over the given rules. The rule slice is copied.
func NewEngine(rules []NamedRule, opts ...Option) *Engine {
	e := &Engine{
		rules:    append([]NamedRule(nil), rules...),
		selector: firstMatch,
	}
	for _, fn := range opts {
		fn(e)
	}

	return e
}

// Rules returns the number of rules held by the engine.
func (e *Engine) Rules() int {
	return len(e.rules)
}

// Derive applies sequence (rule indices into the engine's rule set) to seed
// and returns the full derivation record. The seed is never mutated; every
// step allocates a fresh graph.
//
// A step with no embedding fails the whole derivation with ErrNoMatch —
// partially applied sequences are not returned.
func (e *Engine) Derive(seed *core.Graph, sequence []int) (*Derivation, error) {
	// 1. Preconditions.
	if seed == nil {
		return nil, ErrNilSeed
	}

	d := &Derivation{
		ID:     uuid.New(),
		Seed:   seed,
		Result: seed,
	}
	if len(sequence) > 0 {
		d.Steps = make([]Step, 0, len(sequence))
	}

	// 2. Walk the sequence, rewriting step by step.
	current := seed
	for step, ri := range sequence {
		if ri < 0 || ri >= len(e.rules) {
			return nil, fmt.Errorf("%w: %d at step %d", ErrRuleIndex, ri, step)
		}
		nr := e.rules[ri]

		// 2a. Enumerate embeddings of the rule's left-hand side.
		matches, err := match.Find(nr.Rule.L, current)
		if err != nil {
			return nil, fmt.Errorf("derive: rule %q at step %d: %w", nr.Name, step, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: rule %q at step %d", ErrNoMatch, nr.Name, step)
		}

		// 2b. Pick one.
		pick := e.selector(step, nr, matches)
		if pick < 0 || pick >= len(matches) {
			return nil, fmt.Errorf("%w: %d of %d at step %d", ErrBadSelection, pick, len(matches), step)
		}

		// 2c. Rewrite.
		next, err := rewrite.Apply(nr.Rule, current, matches[pick])
		if err != nil {
			return nil, fmt.Errorf("derive: rule %q at step %d: %w", nr.Name, step, err)
		}

		if e.logger != nil {
			e.logger.Debug("applied rule",
				"derivation", d.ID,
				"step", step,
				"rule", nr.Name,
				"matches", len(matches),
				"picked", pick,
				"nodes", len(next.Nodes),
				"edges", len(next.Edges),
			)
		}

		d.Steps = append(d.Steps, Step{
			RuleIndex:  ri,
			Rule:       nr.Name,
			MatchIndex: pick,
			Match:      matches[pick].Clone(),
			Result:     next,
		})
		current = next
	}
	d.Result = current

	return d, nil
}

// firstMatch is the default Selector: the lexicographically first embedding.
func firstMatch(int, NamedRule, []core.Mapping) int {
	return 0
}
