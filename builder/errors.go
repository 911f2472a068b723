package builder

import "errors"

// Sentinel errors for builder constructors.
// Callers branch with errors.Is; implementations attach method context via %w.
var (
	// ErrTooFewVertices indicates a size parameter (n, k) below the minimum
	// the requested topology is defined for.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG; set one with WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates BuildGraph could not apply its
	// constructor sequence (e.g. a nil Constructor).
	ErrConstructFailed = errors.New("builder: construction failed")
)
