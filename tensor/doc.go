// Package tensor provides a reference implementation of the array backend
// that the contraction core (packages network/einsumexpr/contractor/pathopt/
// contract) treats as an opaque collaborator.
//
// What:
//
//   - Dense: a row-major, dense []float64-backed array with a fixed Shape.
//   - Backend: the concrete realization of network.Backend — Einsum, Trace,
//     and Identity, implemented as naive nested-loop reference code.
//
// Why:
//   - The core's own tests (and any caller without a real numerics
//     dependency) need *something* that satisfies network.Tensor and
//     network.Backend end to end. This package is that something; it is
//     not tuned for performance (it is O(product of all label dimensions)
//     per Einsum call), and production callers are expected to supply their
//     own network.Backend backed by a real numerics library.
//
// Complexity:
//
//   - Einsum:    O(prod(dims of every distinct label)).
//   - Trace:     O(prod(output shape) * dim(traced axis)).
//   - Identity:  O(dim) — only the diagonal is written, the rest is already zero.
package tensor
