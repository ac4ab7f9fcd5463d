// File: view.go
// Role: Non-mutating queries over a Network — node listing, connectivity,
//       and the final-node accessor the driver (package contract) calls
//       after a contraction completes.
// Determinism: Nodes() is sorted by NodeID ascending; ConnectedComponents
//   visits nodes in that same order, so component membership order is
//   stable across runs of the same Network.
package network

import "sort"

// Nodes returns every live node ID, sorted ascending.
func (net *Network) Nodes() []NodeID {
	out := make([]NodeID, 0, len(net.nodes))
	for id := range net.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ConnectedComponents partitions the live node set by non-dangling-edge
// reachability. Nodes with only dangling edges form their own singleton
// component. Grounded on the teacher's DFS vertex-coloring traversal
// (White/Gray/Black), reduced here to component labeling since no cycle
// detection is needed.
func (net *Network) ConnectedComponents() [][]NodeID {
	const (
		white = iota
		black
	)
	color := make(map[NodeID]int, len(net.nodes))
	for _, id := range net.Nodes() {
		color[id] = white
	}

	var components [][]NodeID
	for _, start := range net.Nodes() {
		if color[start] != white {
			continue
		}
		var comp []NodeID
		stack := []NodeID{start}
		color[start] = black
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)

			n := net.nodes[cur]
			for _, eid := range n.axes {
				e := net.edges[eid]
				if !e.Standard() {
					continue
				}
				nb := otherEndOf(e, cur)
				if color[nb] == white {
					color[nb] = black
					stack = append(stack, nb)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		components = append(components, comp)
	}

	return components
}

// IncidenceDims returns the dimension of every live edge, keyed by EdgeID —
// the per-Index size_dict the path-optimizer adapter (package pathopt)
// needs, reduced from the teacher's full incidence-matrix bookkeeping
// (matrix.impl_incidence.go) to just the dimension map this core requires.
func (net *Network) IncidenceDims() map[EdgeID]int {
	out := make(map[EdgeID]int, len(net.edges))
	for id, e := range net.edges {
		out[id] = e.Dim
	}

	return out
}

// FinalNode returns the unique remaining non-copy node after a contraction,
// per spec §6. It is an error to call this while more than one non-copy
// node remains, or while none does.
func (net *Network) FinalNode() (*Node, error) {
	var found *Node
	for _, id := range net.Nodes() {
		n := net.nodes[id]
		if n.IsCopy() {
			continue
		}
		if found != nil {
			return nil, ErrMultipleFinalNodes
		}
		found = n
	}
	if found == nil {
		return nil, ErrNoFinalNode
	}

	return found, nil
}
