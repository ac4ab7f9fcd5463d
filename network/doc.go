// Package network defines the central Node, Edge, CopyNode, and Network
// types for the tensor-network contraction core, and provides the mutable
// arena that ties axis positions in tensors to graph edges.
//
// A Network owns every live Node and Edge by a stable integer identifier
// (NodeID, EdgeID); cross-references between Node and Edge records are
// identifiers, not pointers, so that "disable a node" is a single flag flip
// that every other reference can detect on next lookup, instead of a
// graph-wide pointer-chasing invalidation pass.
//
// This file declares NodeID, EdgeID, sentinel errors, and the NewNetwork
// constructor. Node/Edge field layout is in types.go; mutating operations
// (AddNode, Connect, Disconnect, RemoveNode, ...) are in methods_nodes.go
// and methods_edges.go; read-only queries and connectivity are in view.go.
//
// Errors:
//
//	ErrNilTensor        - a nil Tensor was passed to AddNode.
//	ErrBadRank          - rank/dimension argument was not positive.
//	ErrNodeNotFound     - requested node ID is not live.
//	ErrEdgeNotFound     - requested edge ID is not live.
//	ErrEdgeNotDangling  - Connect was given an edge that already has both endpoints.
//	ErrDimensionMismatch - Connect's two edges (or a copy node's dimension) disagree.
//	ErrAxisOutOfRange   - an axis index was outside [0, rank).
//	ErrInvalidCopyNode  - a copy node reached an operation with an unsupported edge count.
//	ErrBackendError     - the backend's Einsum/Trace/Identity call failed.
package network

import "errors"

// NodeID identifies a Node within a Network's arena. It is never reused
// after a node is disabled.
type NodeID uint64

// EdgeID identifies an Edge within a Network's arena. It is never reused
// after an edge is destroyed.
type EdgeID uint64

// Sentinel errors for network operations.
var (
	ErrNilTensor         = errors.New("network: nil tensor")
	ErrBadRank           = errors.New("network: rank or dimension must be positive")
	ErrNodeNotFound      = errors.New("network: node not found")
	ErrNodeDisabled      = errors.New("network: node is disabled")
	ErrEdgeNotFound      = errors.New("network: edge not found")
	ErrEdgeNotDangling   = errors.New("network: edge is not dangling")
	ErrEdgeDangling      = errors.New("network: edge has no second endpoint to disconnect")
	ErrDimensionMismatch = errors.New("network: dimension mismatch")
	ErrAxisOutOfRange    = errors.New("network: axis out of range")
	ErrInvalidCopyNode   = errors.New("network: invalid copy node edge count")
	ErrBackendError      = errors.New("network: backend call failed")
	ErrSameNodeShared    = errors.New("network: shared-edge query requires two distinct nodes")
	ErrMultipleFinalNodes = errors.New("network: more than one non-copy node remains")
	ErrNoFinalNode        = errors.New("network: no non-copy node remains")
)

// NewNetwork creates an empty Network bound to the given Backend. The
// Backend is the network's only runtime dependency (see Tensor/Backend in
// backend.go); the Network never inspects tensor contents itself.
func NewNetwork(backend Backend) *Network {
	return &Network{
		backend: backend,
		nodes:   make(map[NodeID]*Node),
		edges:   make(map[EdgeID]*Edge),
	}
}
