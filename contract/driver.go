package contract

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/contractor"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/pathopt"
)

// Contract runs net down to its single final node using the named
// algorithm from package pathopt's registry ("optimal", "branch",
// "greedy", or "auto").
func Contract(net *network.Network, algorithmName string, opts ...Option) (*network.Node, error) {
	optimizer, err := pathopt.Get(algorithmName)
	if err != nil {
		return nil, err
	}

	return run(net, optimizer, opts...)
}

// Custom runs net down to its single final node using a caller-supplied
// pathopt.Optimizer, bypassing the named registry entirely.
func Custom(net *network.Network, optimizer pathopt.Optimizer, opts ...Option) (*network.Node, error) {
	return run(net, optimizer, opts...)
}

func run(net *network.Network, optimizer pathopt.Optimizer, opts ...Option) (*network.Node, error) {
	cfg := newConfig(opts...)

	if _, err := net.CollapseTwoEdgeCopies(); err != nil {
		return nil, err
	}
	for _, id := range net.Nodes() {
		for {
			resolved, err := net.ResolveTrace(id)
			if err != nil {
				return nil, err
			}
			if !resolved {
				break
			}
		}
	}

	if err := checkConnected(net); err != nil {
		return nil, err
	}

	problem, err := pathopt.Build(net)
	if err != nil {
		return nil, err
	}
	if len(problem.NodeOrder) == 0 {
		return nil, ErrEmptyNetwork
	}
	if len(problem.NodeOrder) == 1 {
		return finalize(net, cfg)
	}

	path, err := optimizer(problem.InputSets, problem.OutputSet, problem.SizeDict, cfg.memoryLimit)
	if err != nil {
		return nil, err
	}

	live := append([]network.NodeID(nil), problem.NodeOrder...)
	for _, step := range path {
		if step[0] < 0 || step[1] < 0 || step[0] >= len(live) || step[1] >= len(live) || step[0] == step[1] {
			return nil, ErrPathError
		}

		id1, id2 := live[step[0]], live[step[1]]
		merged, err := contractor.Pair(net, id1, id2)
		if err != nil {
			return nil, err
		}

		lo, hi := step[0], step[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		next := make([]network.NodeID, 0, len(live)-1)
		for i, id := range live {
			if i == lo || i == hi {
				continue
			}
			next = append(next, id)
		}
		next = append(next, merged.ID)
		live = next
	}

	return finalize(net, cfg)
}

func finalize(net *network.Network, cfg *config) (*network.Node, error) {
	final, err := net.FinalNode()
	if err != nil {
		return nil, err
	}
	if len(cfg.outputOrder) == 0 {
		return final, nil
	}

	return reorder(net, final, cfg.outputOrder)
}

func checkConnected(net *network.Network) error {
	hasLive := false
	nonCopy := 0
	for _, id := range net.Nodes() {
		hasLive = true
		n, err := net.Node(id)
		if err != nil {
			return err
		}
		if !n.IsCopy() {
			nonCopy++
		}
	}
	if !hasLive {
		return ErrEmptyNetwork
	}
	if nonCopy == 0 {
		return ErrEmptyNetwork
	}

	components := net.ConnectedComponents()
	nonCopyComponents := 0
	for _, comp := range components {
		for _, id := range comp {
			n, err := net.Node(id)
			if err != nil {
				return err
			}
			if !n.IsCopy() {
				nonCopyComponents++
				break
			}
		}
	}
	if nonCopyComponents > 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnectedNetwork, nonCopyComponents)
	}

	return nil
}
