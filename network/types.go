package network

// Kind distinguishes an ordinary tensor-carrying Node from a CopyNode.
type Kind int

const (
	// Standard is an ordinary node: it carries a materialized Tensor.
	Standard Kind = iota
	// Copy is a copy node: its tensor (the rank-k diagonal of ones) is
	// never materialized (invariant 6) until Network.ContractCopyNode or
	// the copy-aware pair contractor folds it into a neighbor.
	Copy
)

// Endpoint is one side of an Edge: a (Node, axis) pair. Valid is false for
// the empty side of a dangling edge.
type Endpoint struct {
	Node  NodeID
	Axis  int
	Valid bool
}

// Edge is an undirected connection between up to two (Node, axis) slots.
// Ends[0] is always Valid for any live edge; Ends[1] is Valid unless the
// edge is dangling. Ends[0].Node == Ends[1].Node (both valid) marks a trace
// edge (self-loop).
type Edge struct {
	ID   EdgeID
	Dim  int
	Ends [2]Endpoint
}

// Dangling reports whether this edge has an empty endpoint.
func (e *Edge) Dangling() bool { return !e.Ends[0].Valid || !e.Ends[1].Valid }

// Trace reports whether both endpoints sit on the same node at different axes.
func (e *Edge) Trace() bool {
	return e.Ends[0].Valid && e.Ends[1].Valid && e.Ends[0].Node == e.Ends[1].Node
}

// Standard reports whether this is an ordinary two-distinct-node edge.
func (e *Edge) Standard() bool {
	return e.Ends[0].Valid && e.Ends[1].Valid && e.Ends[0].Node != e.Ends[1].Node
}

// Node is a vertex carrying a Tensor of rank r (or, for a CopyNode, an
// implicit rank/dimension pair) and an ordered sequence of r axis slots,
// each referencing exactly one Edge.
type Node struct {
	ID       NodeID
	kind     Kind
	tensor   Tensor   // nil for Copy nodes
	axes     []EdgeID // axes[i] is the edge occupying axis i
	names    []string // optional axis name aliases, parallel to axes; nil if unused
	copyDim  int      // meaningful only for Copy nodes
	disabled bool
}

// IsCopy reports whether this Node is a CopyNode.
func (n *Node) IsCopy() bool { return n.kind == Copy }

// Rank returns the node's number of axis slots.
func (n *Node) Rank() int { return len(n.axes) }

// Tensor returns the node's materialized array. It is nil for a live
// CopyNode (invariant 6); callers needing a concrete tensor for a surviving
// copy node must route it through Network.ContractCopyNode first.
func (n *Node) Tensor() Tensor { return n.tensor }

// Shape returns the node's per-axis dimensions. For a CopyNode this is
// synthesized ([copyDim] * rank) since its tensor is never materialized.
func (n *Node) Shape() []int {
	if n.tensor != nil {
		return n.tensor.Shape()
	}
	shape := make([]int, len(n.axes))
	for i := range shape {
		shape[i] = n.copyDim
	}

	return shape
}

// CopyDim returns the shared dimension of a CopyNode's axes (0 for a Standard node).
func (n *Node) CopyDim() int { return n.copyDim }

// AxisEdge returns the EdgeID occupying axis i.
func (n *Node) AxisEdge(i int) EdgeID { return n.axes[i] }

// AxisByName resolves a human-readable axis alias to its integer position.
// Axis names are lookup aliases only (spec §3) — the authoritative
// coordinate is always the integer position returned here.
func (n *Node) AxisByName(name string) (int, bool) {
	for i, nm := range n.names {
		if nm == name {
			return i, true
		}
	}

	return 0, false
}

// Disabled reports whether this node has been removed from its Network.
func (n *Node) Disabled() bool { return n.disabled }

// Network is the owning container for a hyper-edge graph of tensors: a set
// of live nodes and the implicit set of all edges reachable from them. It
// is single-threaded and synchronous (spec §5) — callers must externally
// serialize concurrent access, so unlike the teacher graph this arena holds
// no internal mutex.
type Network struct {
	backend Backend

	nextNodeID NodeID
	nextEdgeID EdgeID

	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge
}

// Backend returns the array backend this Network was constructed with.
func (net *Network) Backend() Backend { return net.backend }
