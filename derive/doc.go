// Package derive applies a sequence of compiled rewrite rules to a seed
// graph, recording every intermediate step. It is the loop that grows a
// design out of a grammar: each step matches one rule against the current
// graph, picks one embedding, and rewrites.
//
// The engine deliberately contains no search: which embedding to take is a
// caller-supplied Selector (the default takes the first, which combined with
// the matcher's lexicographic order makes a derivation's steps and result
// deterministic; only its UUID differs between runs).
// Strategies that score or sample rule sequences live with the caller.
//
// Every derivation is stamped with a fresh UUID so long-running generation
// runs can correlate logs, stored results, and replays. Structured logging
// of each step goes through a caller-supplied *slog.Logger (WithLogger);
// without one the engine is silent.
//
// Errors:
//
//	ErrNilSeed      - Derive called with a nil seed graph.
//	ErrRuleIndex    - a sequence entry names no rule in the engine.
//	ErrNoMatch      - a rule's left-hand side has no embedding; the error
//	                  names the rule and the step.
//	ErrBadSelection - the Selector returned an out-of-range match index.
package derive
