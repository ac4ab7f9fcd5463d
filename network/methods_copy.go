// File: methods_copy.go
// Role: the lower-level primitives package contractor drives to fold a copy
// node into a pairwise merge — neighbor discovery, copy-node axis
// repacking, and the pair-fusion operation itself. None of these
// understand einsum; they only rewire edge endpoints and axis slices.
// ReplacePair's endpoint swap is keyed by (OldNode, OldAxis), not
// restricted to the two nodes being merged, so it also handles a copy
// node's single leftover edge degenerating onto the fused node.
package network

import "sort"

// RewireSlot describes one surviving edge of a pairwise merge: the edge
// that should be moved onto the fused node, and the (node, axis) it is
// currently sitting at.
type RewireSlot struct {
	Edge    EdgeID
	OldNode NodeID
	OldAxis int
}

// NeighborEdges groups n's non-dangling edges by the neighbor node at the
// other end. A neighbor reachable via more than one axis (a copy node
// sharing several indices with n, or a multigraph edge) gets every such
// edge listed, in axis order.
func (net *Network) NeighborEdges(id NodeID) (map[NodeID][]EdgeID, error) {
	n, err := net.Node(id)
	if err != nil {
		return nil, err
	}

	out := make(map[NodeID][]EdgeID)
	for _, eid := range n.axes {
		e := net.edges[eid]
		if !e.Standard() {
			continue
		}
		nb := otherEndOf(e, id)
		out[nb] = append(out[nb], eid)
	}

	return out, nil
}

// ReshapeCopyNode repacks a surviving copy node's axes to exactly order,
// reindexing every edge in order to its new axis position, then appends one
// fresh dangling edge as the copy node's new last axis and returns its ID.
// Used when a shared copy node keeps more than one live connection after a
// pairwise merge consumes the axes it held on the two merged nodes (spec
// §4.3 step 3's surviving-copy-node case).
func (net *Network) ReshapeCopyNode(id NodeID, order []EdgeID) (EdgeID, error) {
	c, err := net.Node(id)
	if err != nil {
		return 0, err
	}
	if !c.IsCopy() {
		return 0, ErrInvalidCopyNode
	}

	newAxes := make([]EdgeID, len(order)+1)
	for i, eid := range order {
		e, ok := net.edges[eid]
		if !ok {
			return 0, ErrEdgeNotFound
		}
		switch {
		case e.Ends[0].Valid && e.Ends[0].Node == id:
			e.Ends[0].Axis = i
		case e.Ends[1].Valid && e.Ends[1].Node == id:
			e.Ends[1].Axis = i
		default:
			return 0, ErrInvalidCopyNode
		}
		newAxes[i] = eid
	}

	link := net.newDanglingEdge(id, len(order), c.copyDim)
	newAxes[len(order)] = link
	c.axes = newAxes

	return link, nil
}

// DiscardCopyNode deletes a copy node from the node set without touching
// any edge. Callers first deal with the copy node's edges themselves: a
// pairwise merge deletes the ones on the merged nodes and rewires a single
// leftover one onto the fused node, while trivialization and
// CollapseTwoEdgeCopies disconnect its edges from their partners before
// discarding it.
func (net *Network) DiscardCopyNode(id NodeID) error {
	c, ok := net.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	c.disabled = true
	delete(net.nodes, id)

	return nil
}

// ReplacePair fuses n1 and n2 into a single new Standard node carrying
// result, moving every surviving edge named in rewire onto the fused node
// at the slot's slice position, deleting every other edge that belonged to
// n1 or n2 (the contracted ones), then disabling n1 and n2. It is the
// shared finalization step for both the ordinary and copy-extended merge
// paths in package contractor.
func (net *Network) ReplacePair(n1, n2 NodeID, result Tensor, rewire []RewireSlot) (*Node, error) {
	a, err := net.Node(n1)
	if err != nil {
		return nil, err
	}
	b, err := net.Node(n2)
	if err != nil {
		return nil, err
	}

	net.nextNodeID++
	fusedID := net.nextNodeID
	fused := &Node{ID: fusedID, kind: Standard, tensor: result, axes: make([]EdgeID, len(rewire))}

	survivors := make(map[EdgeID]bool, len(rewire))
	for i, slot := range rewire {
		survivors[slot.Edge] = true
		e, ok := net.edges[slot.Edge]
		if !ok {
			return nil, ErrEdgeNotFound
		}
		switch {
		case e.Ends[0].Valid && e.Ends[0].Node == slot.OldNode && e.Ends[0].Axis == slot.OldAxis:
			e.Ends[0] = Endpoint{Node: fusedID, Axis: i, Valid: true}
		case e.Ends[1].Valid && e.Ends[1].Node == slot.OldNode && e.Ends[1].Axis == slot.OldAxis:
			e.Ends[1] = Endpoint{Node: fusedID, Axis: i, Valid: true}
		default:
			return nil, ErrEdgeNotFound
		}
		fused.axes[i] = slot.Edge
	}

	for _, eid := range append(append([]EdgeID(nil), a.axes...), b.axes...) {
		if survivors[eid] {
			continue
		}
		delete(net.edges, eid)
	}

	a.disabled = true
	a.tensor = nil
	b.disabled = true
	b.tensor = nil
	delete(net.nodes, n1)
	delete(net.nodes, n2)
	net.nodes[fusedID] = fused

	return fused, nil
}

// CollapseTwoEdgeCopies repeatedly removes every live copy node of rank 2
// with both axes non-dangling, reconnecting its two partner edges directly
// and discarding the copy node — the "copy node collapse" identity (spec
// §8): a chain of rank-2 copies is equivalent to connecting its ends
// straight through. It returns the number of copy nodes collapsed. Run once
// up front by package contract, before path planning, so the optimizer
// never has to reason about these structurally-trivial nodes at all.
func (net *Network) CollapseTwoEdgeCopies() (int, error) {
	collapsed := 0
	for {
		progressed := false
		for _, id := range net.Nodes() {
			n := net.nodes[id]
			if !n.IsCopy() || n.Rank() != 2 {
				continue
			}
			e1, e2 := net.edges[n.axes[0]], net.edges[n.axes[1]]
			if e1.Dangling() || e2.Dangling() {
				continue
			}
			onCopy1, onNeighbor1, err := net.disconnectOriented(n.axes[0], id)
			if err != nil {
				return collapsed, err
			}
			onCopy2, onNeighbor2, err := net.disconnectOriented(n.axes[1], id)
			if err != nil {
				return collapsed, err
			}
			delete(net.edges, onCopy1.ID)
			delete(net.edges, onCopy2.ID)
			if _, err := net.Connect(onNeighbor1.ID, onNeighbor2.ID); err != nil {
				return collapsed, err
			}
			if err := net.DiscardCopyNode(id); err != nil {
				return collapsed, err
			}
			collapsed++
			progressed = true
			break
		}
		if !progressed {
			return collapsed, nil
		}
	}
}

// SortedNeighborIDs is a small helper for callers that need a deterministic
// walk order over a NeighborEdges map's keys.
func SortedNeighborIDs(m map[NodeID][]EdgeID) []NodeID {
	out := make([]NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
