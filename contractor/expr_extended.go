package contractor

import (
	"github.com/esgantivar/TensorNetwork/einsumexpr"
	"github.com/esgantivar/TensorNetwork/network"
)

// exposure binds a label group's representative edge to the OutputSlot
// that should be emitted for it, for a group that would otherwise be
// invisible to buildExtended's plain occurrence count (spec §4.3 step 3).
type exposure struct {
	rep  network.EdgeID
	slot einsumexpr.OutputSlot
}

// buildExtended is einsumexpr.Build generalized with an edge-grouping
// function: axes whose edge maps to the same representative under group
// share one label instead of each getting its own. A group occurring
// exactly once keeps einsumexpr.Build's ordinary behavior (it survives into
// Out). A group occurring more than once is ordinarily contracted away
// silently — unless exposures names it, in which case it still gets
// exactly one Out position, carrying the given slot, the first time any of
// its axes is walked.
//
// Passing an empty group and empty exposures reduces exactly to the
// identity grouping einsumexpr.Build performs on n1/n2's own edges (a
// direct shared edge already carries one EdgeID on both sides, so it needs
// no explicit group entry to be recognized as occurring twice).
func buildExtended(n1, n2 *network.Node, group map[network.EdgeID]network.EdgeID, exposures []exposure) (einsumexpr.Expr, []einsumexpr.OutputSlot, error) {
	if einsumexpr.HasTraceAxis(n1) || einsumexpr.HasTraceAxis(n2) {
		return einsumexpr.Expr{}, nil, einsumexpr.ErrSelfLoop
	}

	rep := func(e network.EdgeID) network.EdgeID {
		if r, ok := group[e]; ok {
			return r
		}

		return e
	}

	counts := make(map[network.EdgeID]int)
	for axis := 0; axis < n1.Rank(); axis++ {
		counts[rep(n1.AxisEdge(axis))]++
	}
	for axis := 0; axis < n2.Rank(); axis++ {
		counts[rep(n2.AxisEdge(axis))]++
	}

	forced := make(map[network.EdgeID]einsumexpr.OutputSlot, len(exposures))
	for _, ex := range exposures {
		forced[ex.rep] = ex.slot
	}

	nextLabel := 0
	alloc := func() (byte, error) {
		if nextLabel >= len(einsumexpr.Alphabet) {
			return 0, einsumexpr.ErrRankExceedsAlphabet
		}
		c := einsumexpr.Alphabet[nextLabel]
		nextLabel++

		return c, nil
	}

	leftLabels := make([]byte, n1.Rank())
	rightLabels := make([]byte, n2.Rank())
	labelOf := make(map[network.EdgeID]byte)
	emitted := make(map[network.EdgeID]bool)
	var out []byte
	var slots []einsumexpr.OutputSlot

	assign := func(n *network.Node, axis int, labels []byte) error {
		eid := n.AxisEdge(axis)
		r := rep(eid)
		lbl, ok := labelOf[r]
		if !ok {
			c, err := alloc()
			if err != nil {
				return err
			}
			lbl = c
			labelOf[r] = c
		}
		labels[axis] = lbl

		switch {
		case counts[r] == 1:
			out = append(out, lbl)
			slots = append(slots, einsumexpr.OutputSlot{Edge: eid, OldNode: n.ID, OldAxis: axis})
			emitted[r] = true
		case !emitted[r]:
			if fs, ok := forced[r]; ok {
				out = append(out, lbl)
				slots = append(slots, fs)
				emitted[r] = true
			}
		}

		return nil
	}

	for axis := 0; axis < n1.Rank(); axis++ {
		if err := assign(n1, axis, leftLabels); err != nil {
			return einsumexpr.Expr{}, nil, err
		}
	}
	for axis := 0; axis < n2.Rank(); axis++ {
		if err := assign(n2, axis, rightLabels); err != nil {
			return einsumexpr.Expr{}, nil, err
		}
	}

	return einsumexpr.Expr{Left: string(leftLabels), Right: string(rightLabels), Out: string(out)}, slots, nil
}
