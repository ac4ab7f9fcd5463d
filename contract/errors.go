package contract

import "errors"

// Sentinel errors for package contract.
var (
	// ErrEmptyNetwork indicates Contract was called on a network.Network
	// with no live non-copy node (no live node at all, or only copy nodes).
	ErrEmptyNetwork = errors.New("contract: network has no live non-copy nodes")

	// ErrDisconnectedNetwork indicates more than one connected component
	// of non-copy nodes remains after the trace pre-pass; outer products
	// across disconnected components are a non-goal (spec §7).
	ErrDisconnectedNetwork = errors.New("contract: network has more than one connected component")

	// ErrPathError indicates the chosen Optimizer returned a path whose
	// (i, j) positions do not correspond to any live pair at that step.
	ErrPathError = errors.New("contract: optimizer returned an invalid path position")

	// ErrBadOutputOrder indicates WithOutputEdgeOrder named an edge that
	// is not a dangling edge of the final node.
	ErrBadOutputOrder = errors.New("contract: output edge order does not match the final node's dangling edges")
)
