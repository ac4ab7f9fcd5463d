// Package tensornetwork is a mutable hyper-edge graph and contraction
// engine for tensor networks: build a Network of Nodes and Edges, wire
// shared and copy-node (hyper-edge) indices between them, and contract the
// whole thing down to a final tensor along a caller-chosen or
// automatically optimized pairwise order.
//
// What is a tensor network here?
//
//	A collection of tensors (Nodes) connected along shared axes (Edges).
//	Contracting an edge sums the corresponding index out of both tensors
//	it touches; contracting a whole network repeats this pairwise until
//	one tensor remains.
//
//	  • network   — the Node/Edge/CopyNode arena and its mutations
//	  • einsumexpr — builds the flat einsum expression for one pair merge
//	  • contractor — applies a pair merge to the network, copy-node-aware
//	  • pathopt    — optimal/branch/greedy/auto contraction-order search
//	  • tensor     — the reference Dense array backend
//	  • contract   — the end-to-end driver tying the above together
//	  • networks   — topology constructors (chains, lattices, random graphs)
//
// Quick ASCII example, a four-site ring:
//
//	    x───y
//	    │   │
//	    w───z
//
//	contract.Contract walks a pairwise order over x, y, z, w and returns
//	the single tensor left once every shared axis has been summed away.
//
// See SPEC_FULL.md and DESIGN.md for the full specification and the
// grounding behind each package's design.
package tensornetwork
