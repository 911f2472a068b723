package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// idFn maps a vertex index to its ID (deterministic).
	idFn func(int) string

	// rng drives stochastic constructors; nil means "no randomness
	// available" and stochastic constructors fail with ErrNeedRandSource.
	rng *rand.Rand
}

// Option adjusts the builder configuration resolved by BuildGraph.
type Option func(*builderConfig)

// newBuilderConfig resolves deterministic defaults, then applies options in
// order (later overrides earlier). Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(i int) string { return strconv.Itoa(i) }

// WithSeed freezes stochastic constructors to a reproducible sequence.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies a caller-owned RNG. A nil value is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithIDScheme overrides the vertex ID scheme. A nil function is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}
