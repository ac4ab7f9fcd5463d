package network_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func TestCollapseTwoEdgeCopies(t *testing.T) {
	net := newBackendNet(t)
	ones, _ := tensor.Ones([]int{3})
	a, err := net.AddNode(ones)
	require.NoError(t, err)
	b, err := net.AddNode(ones)
	require.NoError(t, err)
	c, err := net.AddCopyNode(2, 3)
	require.NoError(t, err)

	_, err = net.Connect(a.AxisEdge(0), c.AxisEdge(0))
	require.NoError(t, err)
	_, err = net.Connect(c.AxisEdge(1), b.AxisEdge(0))
	require.NoError(t, err)

	collapsed, err := net.CollapseTwoEdgeCopies()
	require.NoError(t, err)
	require.Equal(t, 1, collapsed)

	_, err = net.Node(c.ID)
	require.ErrorIs(t, err, network.ErrNodeNotFound)

	na, err := net.Node(a.ID)
	require.NoError(t, err)
	nb, err := net.Node(b.ID)
	require.NoError(t, err)
	require.Equal(t, na.AxisEdge(0), nb.AxisEdge(0))
}

func TestResolveTrace(t *testing.T) {
	net := newBackendNet(t)
	ones, err := tensor.Ones([]int{2, 2, 2})
	require.NoError(t, err)
	n, err := net.AddNode(ones)
	require.NoError(t, err)

	_, err = net.Connect(n.AxisEdge(0), n.AxisEdge(1))
	require.NoError(t, err)

	resolved, err := net.ResolveTrace(n.ID)
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, 1, n.Rank())

	resolved, err = net.ResolveTrace(n.ID)
	require.NoError(t, err)
	require.False(t, resolved)

	d := n.Tensor().(*tensor.Dense)
	require.Equal(t, 2.0, d.At(0))
	require.Equal(t, 2.0, d.At(1))
}
