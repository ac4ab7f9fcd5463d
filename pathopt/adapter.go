package pathopt

import "github.com/esgantivar/TensorNetwork/network"

// Problem is a network.Network flattened into the shape an Optimizer
// consumes, plus the bookkeeping package contract needs to turn a returned
// path back into actual network.NodeID pairs.
type Problem struct {
	InputSets  []map[Index]bool
	OutputSet  map[Index]bool
	SizeDict   map[Index]int
	NodeOrder  []network.NodeID // NodeOrder[k] is the node InputSets[k] describes
}

// Build flattens net's current live non-copy nodes into a Problem. Copy
// nodes are never listed as an input set of their own; every non-dangling
// edge they touch is coalesced onto one representative Index per copy node
// (its lowest-axis non-dangling edge), while a copy node's dangling edges
// keep their own Index. The optimizer thus sees a plain graph of ordinary
// tensors sharing indices, some of which happen to fan out through a
// hyper-edge it never has to reason about directly.
func Build(net *network.Network) (Problem, error) {
	rep := make(map[Index]Index)
	for _, id := range net.Nodes() {
		n, err := net.Node(id)
		if err != nil {
			return Problem{}, err
		}
		if !n.IsCopy() {
			continue
		}
		var first Index
		found := false
		for axis := 0; axis < n.Rank(); axis++ {
			eid := n.AxisEdge(axis)
			e, eerr := net.Edge(eid)
			if eerr != nil {
				return Problem{}, eerr
			}
			if e.Dangling() {
				continue
			}
			if !found {
				first = eid
				found = true
			}
			rep[eid] = first
		}
	}
	resolve := func(eid network.EdgeID) Index {
		if r, ok := rep[eid]; ok {
			return r
		}

		return eid
	}

	dims := net.IncidenceDims()
	sizeDict := make(map[Index]int)
	for eid, dim := range dims {
		sizeDict[resolve(eid)] = dim
	}

	var inputSets []map[Index]bool
	var nodeOrder []network.NodeID
	for _, id := range net.Nodes() {
		n, err := net.Node(id)
		if err != nil {
			return Problem{}, err
		}
		if n.IsCopy() {
			continue
		}
		set := make(map[Index]bool, n.Rank())
		for axis := 0; axis < n.Rank(); axis++ {
			set[resolve(n.AxisEdge(axis))] = true
		}
		inputSets = append(inputSets, set)
		nodeOrder = append(nodeOrder, id)
	}

	outputSet := make(map[Index]bool)
	for _, eid := range net.AllEdges() {
		e, err := net.Edge(eid)
		if err != nil {
			return Problem{}, err
		}
		if e.Dangling() {
			outputSet[resolve(eid)] = true
		}
	}

	return Problem{InputSets: inputSets, OutputSet: outputSet, SizeDict: sizeDict, NodeOrder: nodeOrder}, nil
}
