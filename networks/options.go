package networks

import (
	"math/rand"

	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
)

// TensorFactory produces the concrete network.Tensor a constructor should
// place at each node it creates, given that node's shape.
type TensorFactory func(shape []int) (network.Tensor, error)

// Option customizes a single topology constructor call.
type Option func(cfg *config)

type config struct {
	rng     *rand.Rand
	factory TensorFactory
}

func newConfig(opts ...Option) *config {
	cfg := &config{factory: onesFactory}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func onesFactory(shape []int) (network.Tensor, error) {
	return tensor.Ones(shape)
}

// WithSeed seeds a deterministic RNG for RandomSparse. Without it (and
// without WithRand), RandomSparse requires p to be exactly 0 or 1.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG, overriding WithSeed if both are given.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithTensorFactory overrides the per-node tensor constructor. The default
// fills every node with tensor.Ones, the reference Dense backend's
// all-ones tensor.
func WithTensorFactory(fn TensorFactory) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.factory = fn
		}
	}
}
