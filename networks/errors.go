package networks

import "errors"

// Sentinel errors for package networks.
var (
	// ErrTooFewNodes indicates a size parameter (length, rows, cols, n) is
	// below the constructor's minimum.
	ErrTooFewNodes = errors.New("networks: parameter too small")

	// ErrInvalidProbability indicates a probability argument to
	// RandomSparse is outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("networks: probability out of range")

	// ErrNeedRandSource indicates RandomSparse was called with a
	// stochastic probability (0 < p < 1) but no RNG, via neither
	// WithSeed nor WithRand.
	ErrNeedRandSource = errors.New("networks: random source required")
)
