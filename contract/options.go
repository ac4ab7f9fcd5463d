package contract

import "github.com/esgantivar/TensorNetwork/network"

// Option customizes a single Contract or Custom call. As a rule, option
// constructors never panic at runtime and ignore invalid inputs, matching
// the teacher's functional-options convention (package builder).
type Option func(cfg *config)

type config struct {
	memoryLimit int
	outputOrder []network.EdgeID
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithMemoryLimit caps the size (element count) of any intermediate tensor
// the chosen path may produce. Zero or negative disables the limit, which
// is also the default.
func WithMemoryLimit(limit int) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.memoryLimit = limit
		}
	}
}

// WithOutputEdgeOrder requests that the final node's dangling edges be
// permuted into exactly this order before Contract returns. The set of
// edges named must equal the final node's dangling edge set; order is nil
// (no permutation) by default, which just means "whatever order the
// contraction happened to leave them in".
func WithOutputEdgeOrder(order []network.EdgeID) Option {
	return func(cfg *config) {
		if len(order) > 0 {
			cfg.outputOrder = append([]network.EdgeID(nil), order...)
		}
	}
}
