// Package contract is the contraction driver (spec §4.5): given a live
// network.Network, it runs the network down to a single node.
//
// Contract(net, algorithmName, opts...) and Custom(net, optimizer, opts...)
// both perform the same six-step sequence:
//
//  1. collapse every rank-2 copy node with no dangling axis (the "copy
//     node collapse" identity, spec §8), then fold every remaining trace
//     edge into its node's tensor (package network's ResolveTrace).
//  2. check the live non-copy node set is a single connected component.
//  3. flatten the network into a path-optimizer problem (package pathopt),
//     coalescing any surviving copy node onto a representative Index.
//  4. resolve the requested algorithm (or use the caller's own Optimizer)
//     to get a contraction path.
//  5. walk the path, handing each pair to package contractor, which folds
//     in any copy node shared by that specific pair as it goes.
//  6. read off the sole remaining node (network.Network.FinalNode) and, if
//     requested, permute its dangling edges into the caller's order.
package contract
