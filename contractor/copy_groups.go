package contractor

import "github.com/esgantivar/TensorNetwork/network"

// sharedCopy describes one copy node that is a neighbor of both nodes being
// merged: the edges it spends on each side of the pair, and whatever axes
// of its own (dangling, or to a third node) it keeps regardless of the
// merge.
type sharedCopy struct {
	id        network.NodeID
	edgesToN1 []network.EdgeID
	edgesToN2 []network.EdgeID
	other     []network.EdgeID
}

// findSharedCopies returns every copy node reachable from both n1 and n2 by
// a non-dangling edge, in ascending NodeID order.
func findSharedCopies(net *network.Network, n1, n2 *network.Node) ([]*sharedCopy, error) {
	neigh1, err := net.NeighborEdges(n1.ID)
	if err != nil {
		return nil, err
	}
	neigh2, err := net.NeighborEdges(n2.ID)
	if err != nil {
		return nil, err
	}

	var out []*sharedCopy
	for _, id := range network.SortedNeighborIDs(neigh1) {
		edgesToN2, ok := neigh2[id]
		if !ok {
			continue
		}
		cand, err := net.Node(id)
		if err != nil {
			return nil, err
		}
		if !cand.IsCopy() {
			continue
		}
		edgesToN1 := neigh1[id]
		other := otherAxesOf(cand, edgesToN1, edgesToN2)
		out = append(out, &sharedCopy{id: id, edgesToN1: edgesToN1, edgesToN2: edgesToN2, other: other})
	}

	return out, nil
}

// otherAxesOf lists c's axis edges not already accounted for by a or b, in
// axis order.
func otherAxesOf(c *network.Node, a, b []network.EdgeID) []network.EdgeID {
	used := make(map[network.EdgeID]bool, len(a)+len(b))
	for _, e := range a {
		used[e] = true
	}
	for _, e := range b {
		used[e] = true
	}

	var other []network.EdgeID
	for axis := 0; axis < c.Rank(); axis++ {
		eid := c.AxisEdge(axis)
		if used[eid] {
			continue
		}
		other = append(other, eid)
	}

	return other
}

// axisOf returns the axis position of eid on n.
func axisOf(n *network.Node, eid network.EdgeID) int {
	for axis := 0; axis < n.Rank(); axis++ {
		if n.AxisEdge(axis) == eid {
			return axis
		}
	}

	return -1
}

// trivialize discards c directly when it has exactly one edge to each of
// n1/n2 and nothing else — spec §4.3 step 1. It reports whether c was
// consumed.
func trivialize(net *network.Network, c *sharedCopy) (bool, error) {
	if len(c.edgesToN1) != 1 || len(c.edgesToN2) != 1 || len(c.other) != 0 {
		return false, nil
	}

	_, onN1, err := net.Disconnect(c.edgesToN1[0], c.id)
	if err != nil {
		return false, err
	}
	_, onN2, err := net.Disconnect(c.edgesToN2[0], c.id)
	if err != nil {
		return false, err
	}
	if _, err := net.Connect(onN1, onN2); err != nil {
		return false, err
	}
	if err := net.DiscardCopyNode(c.id); err != nil {
		return false, err
	}

	return true, nil
}
