package contractor

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/einsumexpr"
	"github.com/esgantivar/TensorNetwork/network"
)

// Pair merges n1 and n2 into a single new node, replacing both in net, and
// returns the fused node (spec §4.3). Any copy node shared between n1 and
// n2 is folded in along the way; neither n1 nor n2 may itself be a copy
// node (the path optimizer never schedules one — copy nodes are coalesced
// away before the optimizer ever sees the network, package pathopt).
func Pair(net *network.Network, n1ID, n2ID network.NodeID) (*network.Node, error) {
	if n1ID == n2ID {
		return nil, ErrSameNode
	}
	n1, err := net.Node(n1ID)
	if err != nil {
		return nil, err
	}
	n2, err := net.Node(n2ID)
	if err != nil {
		return nil, err
	}

	shared, err := findSharedCopies(net, n1, n2)
	if err != nil {
		return nil, err
	}

	var remaining []*sharedCopy
	for _, c := range shared {
		consumed, terr := trivialize(net, c)
		if terr != nil {
			return nil, terr
		}
		if !consumed {
			remaining = append(remaining, c)
		}
	}

	// Re-fetch: trivialize may have replaced n1/n2's axis slice contents
	// (new direct edges), though never the node pointers themselves.
	n1, err = net.Node(n1ID)
	if err != nil {
		return nil, err
	}
	n2, err = net.Node(n2ID)
	if err != nil {
		return nil, err
	}

	var expr einsumexpr.Expr
	var slots []einsumexpr.OutputSlot
	var fullyConsumed []network.NodeID

	if len(remaining) == 0 {
		ordinary, oerr := net.SharedEdges(n1ID, n2ID)
		if oerr != nil {
			return nil, oerr
		}
		expr, slots, err = einsumexpr.Build(n1, n2, ordinary)
		if err != nil {
			return nil, err
		}
	} else {
		group := make(map[network.EdgeID]network.EdgeID)
		var exposures []exposure
		for _, c := range remaining {
			rep := c.edgesToN1[0]
			for _, e := range c.edgesToN1 {
				group[e] = rep
			}
			for _, e := range c.edgesToN2 {
				group[e] = rep
			}

			switch len(c.other) {
			case 0:
				fullyConsumed = append(fullyConsumed, c.id)
			case 1:
				exposures = append(exposures, exposure{
					rep: rep,
					slot: einsumexpr.OutputSlot{
						Edge:    c.other[0],
						OldNode: c.id,
						OldAxis: axisOf(mustNode(net, c.id), c.other[0]),
					},
				})
				fullyConsumed = append(fullyConsumed, c.id)
			default:
				link, rerr := net.ReshapeCopyNode(c.id, c.other)
				if rerr != nil {
					return nil, rerr
				}
				exposures = append(exposures, exposure{
					rep: rep,
					slot: einsumexpr.OutputSlot{
						Edge:    link,
						OldNode: c.id,
						OldAxis: len(c.other),
					},
				})
			}
		}

		expr, slots, err = buildExtended(n1, n2, group, exposures)
		if err != nil {
			return nil, err
		}
	}

	result, berr := net.Backend().Einsum(expr.String(), n1.Tensor(), n2.Tensor())
	if berr != nil {
		return nil, fmt.Errorf("%w: %v", network.ErrBackendError, berr)
	}

	rewire := make([]network.RewireSlot, len(slots))
	for i, s := range slots {
		rewire[i] = network.RewireSlot{Edge: s.Edge, OldNode: s.OldNode, OldAxis: s.OldAxis}
	}

	fused, err := net.ReplacePair(n1ID, n2ID, result, rewire)
	if err != nil {
		return nil, err
	}

	for _, cid := range fullyConsumed {
		if err := net.DiscardCopyNode(cid); err != nil {
			return nil, err
		}
	}

	return fused, nil
}

func mustNode(net *network.Network, id network.NodeID) *network.Node {
	n, err := net.Node(id)
	if err != nil {
		// The copy node was just looked up successfully a moment ago by the
		// same caller; a concurrent mutation between then and now would be
		// a caller bug (spec §5 — the network is not thread-safe).
		panic(err)
	}

	return n
}
