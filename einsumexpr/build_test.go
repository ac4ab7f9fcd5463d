package einsumexpr_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/einsumexpr"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleSharedEdge(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2, 3})
	a, err := net.AddNode(ones)
	require.NoError(t, err)
	b, err := net.AddNode(ones)
	require.NoError(t, err)

	shared, err := net.Connect(a.AxisEdge(0), b.AxisEdge(0))
	require.NoError(t, err)

	na, err := net.Node(a.ID)
	require.NoError(t, err)
	nb, err := net.Node(b.ID)
	require.NoError(t, err)

	expr, slots, err := einsumexpr.Build(na, nb, []network.EdgeID{shared})
	require.NoError(t, err)
	require.Equal(t, byte(expr.Left[0]), byte(expr.Right[0]))
	require.Len(t, slots, 2)
	require.Equal(t, "ab,ac->bc", expr.String())
}

func TestBuild_SelfLoopRejected(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2, 2})
	a, err := net.AddNode(ones)
	require.NoError(t, err)
	_, err = net.Connect(a.AxisEdge(0), a.AxisEdge(1))
	require.NoError(t, err)

	na, err := net.Node(a.ID)
	require.NoError(t, err)
	b, err := net.AddNode(ones)
	require.NoError(t, err)
	nb, err := net.Node(b.ID)
	require.NoError(t, err)

	_, _, err = einsumexpr.Build(na, nb, nil)
	require.ErrorIs(t, err, einsumexpr.ErrSelfLoop)
}
