// Command tnctl builds a tensor network from a named topology and
// contracts it, printing the resulting tensor's shape and flattened
// values. It exists to exercise the networks and contract packages
// end to end from outside the test suite.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esgantivar/TensorNetwork/contract"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/networks"
	"github.com/esgantivar/TensorNetwork/tensor"
)

var errUnknownTopology = errors.New("tnctl: unknown topology")

func main() {
	var (
		topology  = flag.String("topology", "chain", "topology to build: chain, lattice2d, random, hyperedge")
		algorithm = flag.String("algorithm", "auto", "contraction algorithm: optimal, branch, greedy, auto")
		size      = flag.Int("size", 4, "primary size parameter (chain length, lattice side, node count)")
		bondDim   = flag.Int("bond", 2, "bond dimension between connected nodes")
		physDim   = flag.Int("phys", 2, "physical (dangling) dimension, where applicable")
		seed      = flag.Int64("seed", 1, "random seed, used only by the random topology")
	)
	flag.Parse()

	if err := run(*topology, *algorithm, *size, *bondDim, *physDim, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(topology, algorithm string, size, bondDim, physDim int, seed int64) error {
	net := network.NewNetwork(tensor.NewBackend())

	switch topology {
	case "chain":
		if _, err := networks.Chain(net, size, bondDim, physDim); err != nil {
			return fmt.Errorf("building chain: %w", err)
		}
	case "lattice2d":
		if _, err := networks.Lattice2D(net, size, size, bondDim, physDim); err != nil {
			return fmt.Errorf("building lattice2d: %w", err)
		}
	case "random":
		if _, err := networks.RandomSparse(net, size, 3, bondDim, 0.5, networks.WithSeed(seed)); err != nil {
			return fmt.Errorf("building random: %w", err)
		}
	case "hyperedge":
		if _, _, err := networks.CompleteHyperedge(net, size, bondDim); err != nil {
			return fmt.Errorf("building hyperedge: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownTopology, topology)
	}

	final, err := contract.Contract(net, algorithm)
	if err != nil {
		return fmt.Errorf("contracting: %w", err)
	}

	d, ok := final.Tensor().(*tensor.Dense)
	if !ok {
		return fmt.Errorf("unexpected tensor implementation %T", final.Tensor())
	}

	fmt.Fprintf(os.Stdout, "shape: %v\n", d.Shape())
	fmt.Fprintf(os.Stdout, "values: %v\n", d.Data())
	return nil
}
