package networks_test

import (
	"testing"

	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/networks"
	"github.com/esgantivar/TensorNetwork/tensor"
	"github.com/stretchr/testify/require"
)

func TestLattice2D_ShapeAndRank(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())

	nodes, err := networks.Lattice2D(net, 2, 3, 4, 5)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Len(t, nodes[0], 3)

	// Corner (0,0): right + down bonds + physical = rank 3.
	require.Equal(t, 3, nodes[0][0].Rank())
	// Edge (0,1): left + right + down bonds + physical = rank 4.
	require.Equal(t, 4, nodes[0][1].Rank())
	// Interior-most available here, (1,1): up + left + right + physical =
	// rank 4, since rows=2 has no row below index 1 and cols=3 has a right
	// neighbor.
	require.Equal(t, 4, nodes[1][1].Rank())
}

func TestLattice2D_NeighborsShareAnEdge(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())

	nodes, err := networks.Lattice2D(net, 2, 2, 4, 5)
	require.NoError(t, err)

	shared, err := net.SharedEdges(nodes[0][0].ID, nodes[0][1].ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)

	shared, err = net.SharedEdges(nodes[0][0].ID, nodes[1][0].ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)

	shared, err = net.SharedEdges(nodes[0][0].ID, nodes[1][1].ID)
	require.NoError(t, err)
	require.Empty(t, shared)
}

func TestLattice2D_RejectsTooSmall(t *testing.T) {
	net := network.NewNetwork(tensor.NewBackend())

	_, err := networks.Lattice2D(net, 0, 2, 2, 2)
	require.ErrorIs(t, err, networks.ErrTooFewNodes)
}
