package contract

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/einsumexpr"
	"github.com/esgantivar/TensorNetwork/network"
)

// reorder permutes node's axes into order, by running it through the
// backend's Einsum against a dimension-1 identity (a no-op multiplication)
// with a relabeled output token — the Backend interface has no dedicated
// transpose primitive, so a permutation is expressed as the one kind of
// reshuffle Einsum already performs for free.
func reorder(net *network.Network, node *network.Node, order []network.EdgeID) (*network.Node, error) {
	if len(order) != node.Rank() {
		return nil, ErrBadOutputOrder
	}

	posOf := make(map[network.EdgeID]int, node.Rank())
	for axis := 0; axis < node.Rank(); axis++ {
		posOf[node.AxisEdge(axis)] = axis
	}

	labels := make([]byte, node.Rank())
	for axis := 0; axis < node.Rank(); axis++ {
		labels[axis] = einsumexpr.Alphabet[axis]
	}
	outLabels := make([]byte, len(order))
	for i, eid := range order {
		axis, ok := posOf[eid]
		if !ok {
			return nil, ErrBadOutputOrder
		}
		outLabels[i] = labels[axis]
	}

	dummyLabel := einsumexpr.Alphabet[node.Rank()]
	dummy, berr := net.Backend().Identity(1, 1)
	if berr != nil {
		return nil, fmt.Errorf("%w: %v", network.ErrBackendError, berr)
	}

	expr := string(labels) + "," + string(dummyLabel) + "->" + string(outLabels)
	result, berr := net.Backend().Einsum(expr, node.Tensor(), dummy)
	if berr != nil {
		return nil, fmt.Errorf("%w: %v", network.ErrBackendError, berr)
	}

	rewire := make([]network.RewireSlot, len(order))
	for i, eid := range order {
		rewire[i] = network.RewireSlot{Edge: eid, OldNode: node.ID, OldAxis: posOf[eid]}
	}

	return net.ReplacePair(node.ID, node.ID, result, rewire)
}
