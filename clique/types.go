package clique

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for clique enumeration.
var (
	// ErrNilGraph is returned by New when the graph pointer is nil.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrInvalidTimeout is returned by New for a negative timeout.
	// A timeout of zero means no time limit.
	ErrInvalidTimeout = errors.New("clique: invalid timeout, must not be negative")

	// ErrNotSimple is returned on first enumeration when the graph contains
	// self-loops or parallel edges.
	ErrNotSimple = errors.New("clique: graph must be simple")
)

// VertexSet is an unordered set of vertex IDs.
type VertexSet map[string]struct{}

// Adjacency maps each vertex ID to its neighbor set. It is an immutable
// snapshot of the graph taken once before a search run; strategies must not
// mutate it.
type Adjacency map[string]VertexSet

// Strategy is a pluggable branching rule for maximal-clique enumeration.
//
// Run must report every inclusion-maximal clique of adj exactly once via
// emit, as a sorted vertex-ID slice the callee may retain. A zero deadline
// means unbounded; otherwise Run should abandon unexplored branches once the
// deadline passes and return false. Run returns true iff the enumeration
// completed exhaustively.
type Strategy interface {
	Run(adj Adjacency, deadline time.Time, emit func(clique []string)) (complete bool)
}

// Option configures a Finder via functional arguments.
// An invalid Option (e.g. negative timeout) is recorded internally and
// surfaced as an error when New is invoked.
type Option func(*Options)

// Options holds parameters customizing a Finder.
type Options struct {
	// Timeout is the wall-clock budget for the single search run.
	// Zero (the default) means unbounded.
	Timeout time.Duration

	// Strategy is the branching rule; defaults to Pivot.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no time limit (Timeout == 0)
//   - the Pivot strategy
func DefaultOptions() Options {
	return Options{
		Timeout:  0,
		Strategy: Pivot{},
	}
}

// WithTimeout sets the wall-clock budget for the search run.
//
//	d > 0:  abandon unexplored branches once now+d passes
//	d == 0: explicit no time limit
//	d < 0:  invalid option → ErrInvalidTimeout
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %v", ErrInvalidTimeout, d)
			return
		}
		o.Timeout = d
	}
}

// WithStrategy overrides the branching rule. A nil strategy is ignored.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != nil {
			o.Strategy = s
		}
	}
}
