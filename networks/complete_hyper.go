package networks

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/network"
)

const minHyperNodes = 1

// CompleteHyperedge builds n rank-1 nodes of dimension dim and one shared
// rank-n copy node connecting all of them — the all-pairs-share-one-index
// topology a true hyperedge expresses directly, where the teacher's
// Complete(n) instead must lay down the O(n^2) edges of K_n. It returns
// the n leaf nodes followed by the copy node.
func CompleteHyperedge(net *network.Network, n, dim int, opts ...Option) ([]*network.Node, *network.Node, error) {
	if n < minHyperNodes {
		return nil, nil, fmt.Errorf("networks: CompleteHyperedge n=%d: %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	leaves := make([]*network.Node, n)
	for i := 0; i < n; i++ {
		t, err := cfg.factory([]int{dim})
		if err != nil {
			return nil, nil, fmt.Errorf("networks: CompleteHyperedge node %d: %w", i, err)
		}
		node, err := net.AddNode(t)
		if err != nil {
			return nil, nil, fmt.Errorf("networks: CompleteHyperedge AddNode(%d): %w", i, err)
		}
		leaves[i] = node
	}

	copyNode, err := net.AddCopyNode(n, dim)
	if err != nil {
		return nil, nil, fmt.Errorf("networks: CompleteHyperedge AddCopyNode: %w", err)
	}

	for i := 0; i < n; i++ {
		if _, err := net.Connect(leaves[i].AxisEdge(0), copyNode.AxisEdge(i)); err != nil {
			return nil, nil, fmt.Errorf("networks: CompleteHyperedge Connect(%d): %w", i, err)
		}
	}

	return leaves, copyNode, nil
}
