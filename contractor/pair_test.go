package contractor_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/contractor"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func TestPair_Ordinary(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2, 3})
	a, err := net.AddNode(ones)
	require.NoError(t, err)
	b, err := net.AddNode(ones)
	require.NoError(t, err)
	_, err = net.Connect(a.AxisEdge(0), b.AxisEdge(0))
	require.NoError(t, err)

	fused, err := contractor.Pair(net, a.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, 2, fused.Rank())

	d := fused.Tensor().(*tensor.Dense)
	require.Equal(t, 2.0, d.At(0, 0))
}

func TestPair_SharedCopyNodeDiagonal(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	x, _ := tensor.Ones([]int{3, 3})
	y, _ := tensor.Ones([]int{3, 3, 3})
	xn, err := net.AddNode(x)
	require.NoError(t, err)
	yn, err := net.AddNode(y)
	require.NoError(t, err)
	c, err := net.AddCopyNode(2, 3)
	require.NoError(t, err)

	_, err = net.Connect(xn.AxisEdge(0), yn.AxisEdge(1))
	require.NoError(t, err)
	_, err = net.Connect(xn.AxisEdge(1), c.AxisEdge(0))
	require.NoError(t, err)
	_, err = net.Connect(yn.AxisEdge(2), c.AxisEdge(1))
	require.NoError(t, err)

	fused, err := contractor.Pair(net, xn.ID, yn.ID)
	require.NoError(t, err)
	require.Equal(t, 1, fused.Rank())

	d := fused.Tensor().(*tensor.Dense)
	require.Equal(t, 9.0, d.At(0))
	require.Equal(t, 9.0, d.At(1))
	require.Equal(t, 9.0, d.At(2))

	_, err = net.Node(c.ID)
	require.ErrorIs(t, err, network.ErrNodeNotFound)
}

func TestPair_SameNodeRejected(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2})
	a, err := net.AddNode(ones)
	require.NoError(t, err)

	_, err = contractor.Pair(net, a.ID, a.ID)
	require.ErrorIs(t, err, contractor.ErrSameNode)
}
