package networks

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/network"
)

const minRandomSparseNodes = 1

// RandomSparse builds n rank-maxDegree nodes (dimension dim on every axis)
// and independently wires each unordered pair (i, j), i<j, with probability
// p, consuming one free axis on each side per wiring — an edge is skipped
// once either endpoint has run out of free axes. Grounded on the teacher's
// builder.RandomSparse, which samples the same i<j Bernoulli trials over a
// fixed trial order for reproducibility; as there, p outside {0,1} requires
// an RNG (WithSeed or WithRand).
func RandomSparse(net *network.Network, n, maxDegree, dim int, p float64, opts ...Option) ([]*network.Node, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("networks: RandomSparse n=%d: %w", n, ErrTooFewNodes)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("networks: RandomSparse p=%.6f: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, ErrNeedRandSource
	}

	nodes := make([]*network.Node, n)
	used := make([]int, n)
	for i := 0; i < n; i++ {
		shape := make([]int, maxDegree)
		for a := range shape {
			shape[a] = dim
		}
		t, err := cfg.factory(shape)
		if err != nil {
			return nil, fmt.Errorf("networks: RandomSparse node %d: %w", i, err)
		}
		node, err := net.AddNode(t)
		if err != nil {
			return nil, fmt.Errorf("networks: RandomSparse AddNode(%d): %w", i, err)
		}
		nodes[i] = node
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			draw := p == 1.0
			if cfg.rng != nil {
				draw = cfg.rng.Float64() <= p
			}
			if !draw {
				continue
			}
			if used[i] >= maxDegree || used[j] >= maxDegree {
				continue
			}
			ei := nodes[i].AxisEdge(used[i])
			ej := nodes[j].AxisEdge(used[j])
			if _, err := net.Connect(ei, ej); err != nil {
				return nil, fmt.Errorf("networks: RandomSparse Connect(%d,%d): %w", i, j, err)
			}
			used[i]++
			used[j]++
		}
	}

	return nodes, nil
}
