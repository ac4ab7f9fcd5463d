// File: methods_trace.go
// Role: resolving a single node's trace (self-loop) edges in place, ahead
// of any pairwise merge — package contract's step-1 pre-pass (spec §4.5).
package network

import "fmt"

// ResolveTrace finds one trace edge on node id (both endpoints on id, at
// two distinct axes) and folds it into id's tensor via the backend's
// Trace, removing both axes and reindexing the rest. It reports whether a
// trace edge was found and resolved; callers loop until it returns false,
// since folding one trace edge can shift axis positions but never creates
// a new trace edge on its own.
func (net *Network) ResolveTrace(id NodeID) (bool, error) {
	n, err := net.Node(id)
	if err != nil {
		return false, err
	}
	if n.IsCopy() {
		return false, nil
	}

	axis1, axis2 := findTracePair(n.axes)
	if axis1 < 0 {
		return false, nil
	}

	eid := n.axes[axis1]
	newTensor, berr := net.backend.Trace(n.tensor, axis1, axis2)
	if berr != nil {
		return false, fmt.Errorf("%w: %v", ErrBackendError, berr)
	}

	newAxes := make([]EdgeID, 0, len(n.axes)-2)
	var newNames []string
	for axis, e := range n.axes {
		if axis == axis1 || axis == axis2 {
			continue
		}
		newAxes = append(newAxes, e)
		if n.names != nil {
			newNames = append(newNames, n.names[axis])
		}
	}

	n.tensor = newTensor
	n.axes = newAxes
	n.names = newNames
	for axis, e := range n.axes {
		edge := net.edges[e]
		switch {
		case edge.Ends[0].Valid && edge.Ends[0].Node == id:
			edge.Ends[0].Axis = axis
		case edge.Ends[1].Valid && edge.Ends[1].Node == id:
			edge.Ends[1].Axis = axis
		}
	}
	delete(net.edges, eid)

	return true, nil
}

// findTracePair returns the first pair of distinct positions in axes that
// share the same EdgeID, or (-1, -1) if none.
func findTracePair(axes []EdgeID) (int, int) {
	seen := make(map[EdgeID]int, len(axes))
	for axis, eid := range axes {
		if prev, ok := seen[eid]; ok {
			return prev, axis
		}
		seen[eid] = axis
	}

	return -1, -1
}
