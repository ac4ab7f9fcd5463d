package contract_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/contract"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func TestContract_UnknownAlgorithm(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2})
	net.AddNode(ones)

	_, err := contract.Contract(net, "nonexistent")
	require.Error(t, err)
}

func TestContract_EmptyNetwork(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())

	_, err := contract.Contract(net, "optimal")
	require.ErrorIs(t, err, contract.ErrEmptyNetwork)
}

func TestContract_BadOutputOrder(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, _ := tensor.Ones([]int{2})
	n, err := net.AddNode(ones)
	require.NoError(t, err)

	_, err = contract.Contract(net, "optimal", contract.WithOutputEdgeOrder([]network.EdgeID{n.AxisEdge(0), 99999}))
	require.ErrorIs(t, err, contract.ErrBadOutputOrder)
}

func TestContract_SingleNodeNoOp(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())
	ones, err := tensor.Ones([]int{2, 2})
	require.NoError(t, err)
	_, err = net.AddNode(ones)
	require.NoError(t, err)

	final, err := contract.Contract(net, "optimal")
	require.NoError(t, err)
	require.Equal(t, 2, final.Rank())
}
