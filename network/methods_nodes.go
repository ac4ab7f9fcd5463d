// File: methods_nodes.go
// Role: Node lifecycle — AddNode, AddCopyNode, Node lookup,
//       RemoveNode, ContractCopyNode.
// Determinism: node IDs are a monotonic counter ("n1", "n2", ... in spirit,
//   held here as a plain uint64 since callers never need a textual form).
// Complexity: every operation in this file is O(degree) of the node(s)
//   involved, per spec §4.1.
package network

import "fmt"

// AddNode creates a new Node carrying t and r dangling edges, one per axis
// of t.Shape(). axisNames, if given, must have exactly rank entries.
func (net *Network) AddNode(t Tensor, axisNames ...string) (*Node, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	shape := t.Shape()
	if len(axisNames) > 0 && len(axisNames) != len(shape) {
		return nil, fmt.Errorf("%w: got %d axis names for rank %d", ErrAxisOutOfRange, len(axisNames), len(shape))
	}

	net.nextNodeID++
	id := net.nextNodeID
	n := &Node{ID: id, kind: Standard, tensor: t, axes: make([]EdgeID, len(shape))}
	if len(axisNames) > 0 {
		n.names = append([]string(nil), axisNames...)
	}
	for axis, dim := range shape {
		n.axes[axis] = net.newDanglingEdge(id, axis, dim)
	}
	net.nodes[id] = n

	return n, nil
}

// AddCopyNode creates a new CopyNode of the given rank and dimension, with
// rank dangling edges. Its tensor (the rank-k diagonal of ones) is never
// materialized (invariant 6).
func (net *Network) AddCopyNode(rank, dimension int) (*Node, error) {
	if rank <= 0 || dimension <= 0 {
		return nil, ErrBadRank
	}

	net.nextNodeID++
	id := net.nextNodeID
	n := &Node{ID: id, kind: Copy, copyDim: dimension, axes: make([]EdgeID, rank)}
	for axis := 0; axis < rank; axis++ {
		n.axes[axis] = net.newDanglingEdge(id, axis, dimension)
	}
	net.nodes[id] = n

	return n, nil
}

// Node returns the live Node for id, or ErrNodeNotFound/ErrNodeDisabled.
func (net *Network) Node(id NodeID) (*Node, error) {
	n, ok := net.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	if n.disabled {
		return nil, ErrNodeDisabled
	}

	return n, nil
}

// RemoveNode disconnects every non-dangling edge of n, returning the
// freshly-dangling partner edges keyed by n's former axis index, then marks
// n disabled. Already-dangling edges of n are left untouched (still
// dangling, now belonging to no live node at that axis since n is gone —
// callers must not address them by axis on n again).
func (net *Network) RemoveNode(id NodeID) (map[int]EdgeID, error) {
	n, err := net.Node(id)
	if err != nil {
		return nil, err
	}

	partners := make(map[int]EdgeID, len(n.axes))
	for axis, eid := range n.axes {
		e := net.edges[eid]
		if e.Dangling() {
			continue
		}
		// Disconnect splits e into two dangling edges; the one NOT on n is
		// the partner that survives with a live neighbor. A trace edge has
		// both ends on n and no partner, so it is deleted outright instead.
		if e.Trace() {
			delete(net.edges, eid)
			continue
		}
		otherEdge, _, rerr := net.disconnectOriented(eid, otherEndOf(e, id))
		if rerr != nil {
			return nil, rerr
		}
		partners[axis] = otherEdge.ID
	}

	n.disabled = true
	n.tensor = nil
	delete(net.nodes, id)

	return partners, nil
}

// ContractCopyNode materializes the effect of an isolated CopyNode: it asks
// the backend for the rank-k diagonal-of-ones tensor and replaces the copy
// node with an ordinary Node carrying it, preserving all of its (possibly
// dangling) edges in place. Nothing in the contraction pipeline calls it:
// package contract rejects a network with no non-copy node, and the
// copy-aware pair contractor (package contractor) folds copy nodes into
// their neighbors without materializing them.
func (net *Network) ContractCopyNode(id NodeID) (*Node, error) {
	c, err := net.Node(id)
	if err != nil {
		return nil, err
	}
	if !c.IsCopy() {
		return c, nil
	}

	t, berr := net.backend.Identity(c.Rank(), c.CopyDim())
	if berr != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendError, berr)
	}

	c.kind = Standard
	c.tensor = t
	c.copyDim = 0

	return c, nil
}

// otherEndOf returns the endpoint of e that is not on node id.
func otherEndOf(e *Edge, id NodeID) NodeID {
	if e.Ends[0].Node == id {
		return e.Ends[1].Node
	}

	return e.Ends[0].Node
}
