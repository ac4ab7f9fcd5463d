// Package networks provides deterministic topology constructors for
// network.Network, mirroring the teacher's builder package: each
// constructor is a small, validated function that populates an already-
// created Network with nodes and edges in a fixed, documented pattern.
//
// Unlike builder, which always emits fresh vertices into a fresh
// core.Graph, these constructors take an existing *network.Network (and
// its Backend) and add nodes to it, since a network.Network's only
// useful payload is the tensor every node carries — there is no
// vertex-only mode to build toward.
//
// Chain builds a matrix-product-state-shaped path of rank-3 (or rank-2 at
// the ends) nodes, grounded on builder.Path. Lattice2D builds an
// orthogonal grid of rank-5 nodes (four bonds plus a physical axis; fewer
// bonds at the border), grounded on builder.Grid. RandomSparse independently wires pairs of nodes with
// probability p, grounded on builder.RandomSparse. CompleteHyperedge
// fans every node out to one shared copy node, grounded on
// builder.Complete, reusing a hyper-edge in place of Complete's all-pairs
// edge set.
package networks
