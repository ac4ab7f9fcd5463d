package contractor

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/einsumexpr"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func newPairForExtended(t *testing.T) (*network.Network, *network.Node, *network.Node) {
	t.Helper()
	net := network.NewNetwork(tensor.NewBackend())
	x, err := tensor.Ones([]int{3, 3})
	require.NoError(t, err)
	y, err := tensor.Ones([]int{3, 3, 3})
	require.NoError(t, err)
	xn, err := net.AddNode(x)
	require.NoError(t, err)
	yn, err := net.AddNode(y)
	require.NoError(t, err)

	return net, xn, yn
}

func TestBuildExtended_GroupedAxesShareOneLabel(t *testing.T) {
	_, xn, yn := newPairForExtended(t)

	// Group xn's axis-1 edge and yn's axis-2 edge under one representative
	// so they share a single einsum label, simulating a copy node binding
	// them diagonally, without an ordinary shared edge between them.
	group := map[network.EdgeID]network.EdgeID{
		yn.AxisEdge(2): xn.AxisEdge(1),
	}

	expr, slots, err := buildExtended(xn, yn, group, nil)
	require.NoError(t, err)
	require.Equal(t, byte(expr.Left[1]), byte(expr.Right[2]))
	require.Len(t, slots, 3, "only the three singly-occurring axes survive into the output")
	require.NotContains(t, expr.Out, expr.Left[1], "the grouped axis occurs twice with no exposure, so it is summed away")
}

func TestBuildExtended_ExposureForcesOutputSlot(t *testing.T) {
	_, xn, yn := newPairForExtended(t)

	rep := xn.AxisEdge(1)
	group := map[network.EdgeID]network.EdgeID{
		yn.AxisEdge(2): rep,
	}
	exposures := []exposure{{rep: rep, slot: einsumexpr.OutputSlot{Edge: rep, OldNode: xn.ID, OldAxis: 1}}}

	expr, slots, err := buildExtended(xn, yn, group, exposures)
	require.NoError(t, err)
	require.Len(t, slots, 4, "the three singly-occurring axes plus the forced exposure all survive")
	require.Contains(t, expr.Out, expr.Left[1])
}

func TestBuildExtended_SelfLoopRejected(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, err := tensor.Ones([]int{3, 3})
	require.NoError(t, err)
	n, err := net.AddNode(ones)
	require.NoError(t, err)
	other, err := tensor.Ones([]int{3})
	require.NoError(t, err)
	on, err := net.AddNode(other)
	require.NoError(t, err)

	_, err = net.Connect(n.AxisEdge(0), n.AxisEdge(1))
	require.NoError(t, err)

	_, _, err = buildExtended(n, on, nil, nil)
	require.Error(t, err)
}
