// Package contractor implements the copy-aware pairwise contraction step
// (spec §4.3): given a live network.Network and two of its nodes, produce
// the single fused node that replaces them, correctly folding in any copy
// node shared between the pair along the way.
//
// Pair is the package's only entry point. It always performs, in order:
//
//  1. trivialize any copy node shared by n1 and n2 that has exactly two
//     non-dangling edges and nothing else — connect its two partners
//     directly and discard it, before any einsum expression is built;
//  2. if no shared copy node remains, build the ordinary two-operand
//     einsum expression (package einsumexpr) and hand it to the backend;
//  3. otherwise extend that expression so every axis a shared copy node
//     touches on n1 or n2 carries one reused label, classify what (if
//     anything) the copy node still needs to expose once the pair is
//     gone, and hand the extended expression to the backend;
//  4. rewire every surviving edge onto the freshly fused node and discard
//     n1, n2, and any copy node fully consumed by the merge.
//
// Grounded on the teacher's dfs traversal for neighbor discovery and on
// core's disconnect/reconnect primitives (here Network.Disconnect/Connect,
// Network.ReshapeCopyNode, Network.ReplacePair), which contractor drives
// directly against the network.Network it is given.
package contractor
