package pathopt_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/pathopt"
	"github.com/stretchr/testify/require"
)

func fourCycleProblem() ([]map[pathopt.Index]bool, map[pathopt.Index]bool, map[pathopt.Index]int) {
	// Four rank-2 tensors wired in a cycle: 0-1, 1-2, 2-3, 3-0.
	e01, e12, e23, e30 := pathopt.Index(1), pathopt.Index(2), pathopt.Index(3), pathopt.Index(4)
	inputs := []map[pathopt.Index]bool{
		{e30: true, e01: true},
		{e01: true, e12: true},
		{e12: true, e23: true},
		{e23: true, e30: true},
	}
	sizeDict := map[pathopt.Index]int{e01: 2, e12: 2, e23: 2, e30: 2}

	return inputs, map[pathopt.Index]bool{}, sizeDict
}

func TestRegistry_Names(t *testing.T) {
	names := pathopt.Names()
	require.Contains(t, names, "optimal")
	require.Contains(t, names, "branch")
	require.Contains(t, names, "greedy")
	require.Contains(t, names, "auto")
}

func TestRegistry_UnknownAlgorithm(t *testing.T) {
	_, err := pathopt.Get("nonexistent")
	require.ErrorIs(t, err, pathopt.ErrUnknownAlgorithm)
}

func testOptimizerProducesValidPath(t *testing.T, name string) {
	t.Helper()
	optimizer, err := pathopt.Get(name)
	require.NoError(t, err)

	inputs, output, sizeDict := fourCycleProblem()
	path, err := optimizer(inputs, output, sizeDict, 0)
	require.NoError(t, err)
	require.Len(t, path, 3)

	live := []int{0, 1, 2, 3}
	for _, step := range path {
		require.GreaterOrEqual(t, step[0], 0)
		require.Less(t, step[0], len(live))
		require.GreaterOrEqual(t, step[1], 0)
		require.Less(t, step[1], len(live))
		require.NotEqual(t, step[0], step[1])

		lo, hi := step[0], step[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		next := make([]int, 0, len(live)-1)
		for i, v := range live {
			if i == lo || i == hi {
				continue
			}
			next = append(next, v)
		}
		next = append(next, -1)
		live = next
	}
	require.Len(t, live, 1)
}

func TestOptimal_ValidPath(t *testing.T) {
	testOptimizerProducesValidPath(t, "optimal")
}

func TestBranch_ValidPath(t *testing.T) {
	testOptimizerProducesValidPath(t, "branch")
}

func TestGreedy_ValidPath(t *testing.T) {
	testOptimizerProducesValidPath(t, "greedy")
}

func TestAuto_DispatchesToOptimalBelowThreshold(t *testing.T) {
	inputs, output, sizeDict := fourCycleProblem()
	path, err := pathopt.Auto(inputs, output, sizeDict, 0)
	require.NoError(t, err)
	require.Len(t, path, 3)

	want, err := pathopt.Optimal(inputs, output, sizeDict, 0)
	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestEmptyProblemRejected(t *testing.T) {
	_, err := pathopt.Optimal(nil, map[pathopt.Index]bool{}, map[pathopt.Index]int{}, 0)
	require.ErrorIs(t, err, pathopt.ErrEmptyProblem)
}
