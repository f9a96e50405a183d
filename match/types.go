// Package match defines options and sentinel errors for the embedding search.
package match

import "errors"

var (
	// ErrNilGraph is returned when a nil pattern or target is passed to Find.
	ErrNilGraph = errors.New("match: graph is nil")

	// ErrEmptyPattern is returned when the pattern graph has no nodes.
	// Matching an empty pattern is undefined.
	ErrEmptyPattern = errors.New("match: pattern has no nodes")
)

// Option configures optional behavior of the embedding search.
// Use with Find(pattern, target, opts...).
type Option func(*Options)

// Options holds configurable parameters for the embedding search.
type Options struct {
	// Injective, if true, forbids two distinct pattern nodes mapping to the
	// same target node. Default is false: the matching predicate itself does
	// not require injectivity, and callers relying on it must opt in.
	Injective bool

	// Limit, if positive, stops the search after that many complete
	// embeddings. Default is 0 (enumerate all).
	Limit int
}

// DefaultOptions returns the Options used when no Option is supplied:
// non-injective search, no result limit.
func DefaultOptions() Options {
	return Options{Injective: false, Limit: 0}
}

// WithInjective returns an Option that forbids two pattern nodes from
// sharing a target node.
func WithInjective() Option {
	return func(o *Options) {
		o.Injective = true
	}
}

// WithLimit returns an Option that stops the search after n embeddings.
// A non-positive n means no limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}
