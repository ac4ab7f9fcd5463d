package networks

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/network"
)

const minChainNodes = 2

// Chain builds a matrix-product-state-shaped path of length nodes: the
// first and last nodes are rank 2 (one bond axis, one physical axis), every
// interior node is rank 3 (left bond, right bond, physical), and consecutive
// nodes share a bond edge of dimension bondDim. Every node's physical axis
// is left dangling at dimension physDim. Grounded on the teacher's
// builder.Path, which emits the same (i-1)-to-i edge pattern over plain
// vertices.
func Chain(net *network.Network, length, bondDim, physDim int, opts ...Option) ([]*network.Node, error) {
	if length < minChainNodes {
		return nil, fmt.Errorf("networks: Chain length=%d < %d: %w", length, minChainNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	nodes := make([]*network.Node, length)
	for i := 0; i < length; i++ {
		rank := 3
		if i == 0 || i == length-1 {
			rank = 2
		}
		shape := make([]int, rank)
		for a := 0; a < rank; a++ {
			shape[a] = bondDim
		}
		shape[rank-1] = physDim

		t, err := cfg.factory(shape)
		if err != nil {
			return nil, fmt.Errorf("networks: Chain node %d: %w", i, err)
		}
		n, err := net.AddNode(t)
		if err != nil {
			return nil, fmt.Errorf("networks: Chain AddNode(%d): %w", i, err)
		}
		nodes[i] = n
	}

	for i := 1; i < length; i++ {
		leftAxis := rightBondAxis(nodes[i-1])
		rightAxis := leftBondAxis(nodes[i])
		if _, err := net.Connect(nodes[i-1].AxisEdge(leftAxis), nodes[i].AxisEdge(rightAxis)); err != nil {
			return nil, fmt.Errorf("networks: Chain Connect(%d,%d): %w", i-1, i, err)
		}
	}

	return nodes, nil
}

// rightBondAxis returns the axis a chain node uses for its right-going
// bond: axis 0 for the rank-2 first node (its only bond axis), axis 1 for an
// interior node (axis 0 is its left bond). The very last node has no right
// bond and is never passed here.
func rightBondAxis(n *network.Node) int {
	if n.Rank() == 2 {
		return 0
	}

	return 1
}

// leftBondAxis returns the axis a chain node uses for its left-going bond,
// always axis 0.
func leftBondAxis(_ *network.Node) int {
	return 0
}
