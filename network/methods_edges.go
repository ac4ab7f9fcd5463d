// File: methods_edges.go
// Role: Edge lifecycle — newDanglingEdge, Connect, Disconnect, SharedEdges,
//       AllEdges/AllNonDangling, Edge lookup.
// Determinism: AllEdges()/AllNonDangling() and SharedEdges() return results sorted
//   by EdgeID ascending, matching the teacher's sorted-by-ID convention for
//   reproducible logs and golden tests.
package network

import "sort"

// newDanglingEdge allocates a fresh dangling edge occupying axis on node,
// with the given dimension, and returns its ID.
func (net *Network) newDanglingEdge(node NodeID, axis, dim int) EdgeID {
	net.nextEdgeID++
	id := net.nextEdgeID
	net.edges[id] = &Edge{ID: id, Dim: dim, Ends: [2]Endpoint{{Node: node, Axis: axis, Valid: true}, {}}}

	return id
}

// Edge returns the live Edge for id, or ErrEdgeNotFound.
func (net *Network) Edge(id EdgeID) (*Edge, error) {
	e, ok := net.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Connect fuses two dangling edges into one standard or trace edge,
// requiring equal dimensions (spec §4.1). The two input edges are
// destroyed; a new Edge replaces them in both nodes' axis slots.
func (net *Network) Connect(e1, e2 EdgeID) (EdgeID, error) {
	edge1, ok := net.edges[e1]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	edge2, ok := net.edges[e2]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	if !edge1.Dangling() || !edge2.Dangling() {
		return 0, ErrEdgeNotDangling
	}
	if edge1.Dim != edge2.Dim {
		return 0, ErrDimensionMismatch
	}

	end1 := validEnd(edge1)
	end2 := validEnd(edge2)

	net.nextEdgeID++
	id := net.nextEdgeID
	fused := &Edge{ID: id, Dim: edge1.Dim, Ends: [2]Endpoint{end1, end2}}

	delete(net.edges, e1)
	delete(net.edges, e2)
	net.edges[id] = fused
	net.nodes[end1.Node].axes[end1.Axis] = id
	net.nodes[end2.Node].axes[end2.Axis] = id

	return id, nil
}

// Disconnect is the inverse of Connect: it splits a standard or trace edge
// back into two dangling edges. firstNode orients the result — the first
// returned EdgeID is endpointed on firstNode, per spec §4.1's "orient after
// disconnect" requirement. For a trace edge (both endpoints on the same
// node), firstNode cannot disambiguate which occurrence comes first; in
// that degenerate case Ends[0] is always returned first.
func (net *Network) Disconnect(eid EdgeID, firstNode NodeID) (EdgeID, EdgeID, error) {
	a, b, err := net.disconnectOriented(eid, firstNode)
	if err != nil {
		return 0, 0, err
	}

	return a.ID, b.ID, nil
}

// disconnectOriented is the shared implementation behind Disconnect and
// RemoveNode.
func (net *Network) disconnectOriented(eid EdgeID, firstNode NodeID) (*Edge, *Edge, error) {
	edge, ok := net.edges[eid]
	if !ok {
		return nil, nil, ErrEdgeNotFound
	}
	if edge.Dangling() {
		return nil, nil, ErrEdgeDangling
	}

	first, second := edge.Ends[0], edge.Ends[1]
	if first.Node != firstNode {
		if second.Node == firstNode {
			first, second = second, first
		} else {
			return nil, nil, ErrNodeNotFound
		}
	}

	net.nextEdgeID++
	idA := net.nextEdgeID
	net.nextEdgeID++
	idB := net.nextEdgeID
	edgeA := &Edge{ID: idA, Dim: edge.Dim, Ends: [2]Endpoint{first, {}}}
	edgeB := &Edge{ID: idB, Dim: edge.Dim, Ends: [2]Endpoint{second, {}}}

	delete(net.edges, eid)
	net.edges[idA] = edgeA
	net.edges[idB] = edgeB
	net.nodes[first.Node].axes[first.Axis] = idA
	net.nodes[second.Node].axes[second.Axis] = idB

	return edgeA, edgeB, nil
}

// SharedEdges returns every edge with one endpoint on n1 and the other on
// n2 (n1 != n2), sorted by EdgeID ascending.
func (net *Network) SharedEdges(n1, n2 NodeID) ([]EdgeID, error) {
	if n1 == n2 {
		return nil, ErrSameNodeShared
	}
	na, err := net.Node(n1)
	if err != nil {
		return nil, err
	}
	nb, err := net.Node(n2)
	if err != nil {
		return nil, err
	}

	var out []EdgeID
	for _, eid := range na.axes {
		e := net.edges[eid]
		if !e.Standard() {
			continue
		}
		if (e.Ends[0].Node == n1 && e.Ends[1].Node == n2) || (e.Ends[0].Node == n2 && e.Ends[1].Node == n1) {
			out = append(out, eid)
		}
	}
	_ = nb
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// AllEdges returns every live edge ID, sorted ascending.
func (net *Network) AllEdges() []EdgeID {
	out := make([]EdgeID, 0, len(net.edges))
	for id := range net.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AllNonDangling returns every live edge ID whose both endpoints are filled
// (standard or trace), sorted ascending.
func (net *Network) AllNonDangling() []EdgeID {
	out := make([]EdgeID, 0, len(net.edges))
	for id, e := range net.edges {
		if !e.Dangling() {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func validEnd(e *Edge) Endpoint {
	if e.Ends[0].Valid {
		return e.Ends[0]
	}

	return e.Ends[1]
}
