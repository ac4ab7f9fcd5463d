package einsumexpr

import (
	"github.com/esgantivar/TensorNetwork/network"
)

// Expr is an einsum expression string split into its three subscript
// tokens, one character per axis.
type Expr struct {
	Left  string
	Right string
	Out   string
}

// String renders the expression as "left,right->out".
func (x Expr) String() string { return x.Left + "," + x.Right + "->" + x.Out }

// OutputSlot describes one position of Out: which live edge survives into
// that position of the fused node, and where it used to attach.
type OutputSlot struct {
	Edge    network.EdgeID
	OldNode network.NodeID
	OldAxis int
}

// Build assigns einsum labels for a pairwise merge of n1 and n2, contracting
// exactly the edges in shared (which must each connect n1 and n2 — see
// spec §4.2). It returns the expression and, in Out order, the plan for
// rewiring surviving edges onto the fused node.
//
// Assignment rule (spec §4.2): walk n1's axes in order, assigning a label
// per axis; if the axis's edge is in shared, the same label is reused when
// walking n2's matching axis (contracted, absent from Out); otherwise the
// label survives into Out. Then walk n2's axes, reusing labels already
// bound by shared edges and allocating fresh labels — appended to Out — for
// n2's own survivors.
func Build(n1, n2 *network.Node, shared []network.EdgeID) (Expr, []OutputSlot, error) {
	sharedSet := make(map[network.EdgeID]bool, len(shared))
	for _, e := range shared {
		sharedSet[e] = true
	}

	if HasTraceAxis(n1) {
		return Expr{}, nil, ErrSelfLoop
	}
	if HasTraceAxis(n2) {
		return Expr{}, nil, ErrSelfLoop
	}

	nextLabel := 0
	alloc := func() (byte, error) {
		if nextLabel >= len(Alphabet) {
			return 0, ErrRankExceedsAlphabet
		}
		c := Alphabet[nextLabel]
		nextLabel++

		return c, nil
	}

	leftLabels := make([]byte, n1.Rank())
	rightLabels := make([]byte, n2.Rank())
	labelOf := make(map[network.EdgeID]byte, len(shared))
	var out []byte
	var slots []OutputSlot

	for axis := 0; axis < n1.Rank(); axis++ {
		eid := n1.AxisEdge(axis)
		c, err := alloc()
		if err != nil {
			return Expr{}, nil, err
		}
		leftLabels[axis] = c
		if sharedSet[eid] {
			labelOf[eid] = c
			continue
		}
		out = append(out, c)
		slots = append(slots, OutputSlot{Edge: eid, OldNode: n1.ID, OldAxis: axis})
	}

	for axis := 0; axis < n2.Rank(); axis++ {
		eid := n2.AxisEdge(axis)
		if sharedSet[eid] {
			c, ok := labelOf[eid]
			if !ok {
				return Expr{}, nil, ErrNotShared
			}
			rightLabels[axis] = c
			continue
		}
		c, err := alloc()
		if err != nil {
			return Expr{}, nil, err
		}
		rightLabels[axis] = c
		out = append(out, c)
		slots = append(slots, OutputSlot{Edge: eid, OldNode: n2.ID, OldAxis: axis})
	}

	// Every shared edge must actually have been seen from n1's walk.
	if len(labelOf) != len(sharedSet) {
		return Expr{}, nil, ErrNotShared
	}

	return Expr{Left: string(leftLabels), Right: string(rightLabels), Out: string(out)}, slots, nil
}

// HasTraceAxis reports whether n has the same edge occupying two distinct
// axes (a self-loop not yet resolved by network.Network.ResolveTrace).
func HasTraceAxis(n *network.Node) bool {
	seen := make(map[network.EdgeID]bool, n.Rank())
	for axis := 0; axis < n.Rank(); axis++ {
		eid := n.AxisEdge(axis)
		if seen[eid] {
			return true
		}
		seen[eid] = true
	}

	return false
}
