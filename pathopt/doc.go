// Package pathopt adapts a network.Network into the flat contraction-path
// problem a path optimizer solves (spec §4.4): a list of per-tensor index
// sets, the output index set, and a dictionary of index dimensions. It then
// supplies several optimizers over that problem, named and reachable
// through a small registry ("optimal", "branch", "greedy", "auto"). A
// "custom" optimizer is not in the registry: the caller passes it in
// directly (package contract's Custom).
//
// Index realizes the spec's opaque, hashable per-index identifier directly
// as a network.EdgeID: arena identifiers are already small, comparable,
// and stable for the lifetime of a contraction, so no further indirection
// earns its keep.
//
// A copy node's non-dangling edges are coalesced, for the optimizer's
// purposes only, onto a single representative Index — the lowest-axis
// edge the copy node holds to a live node. This mirrors the teacher's
// convention of picking a canonical representative for equivalence classes
// (see dfs's component labeling) and keeps the optimizer blind to copy
// nodes entirely: they never appear as an input set of their own, and
// package contractor is solely responsible for folding them back in once a
// pair is actually merged (spec §4.3).
package pathopt
