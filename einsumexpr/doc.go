// Package einsumexpr builds the flat einsum expression and output-edge plan
// for a single pairwise node merge (spec §4.2). It never mutates a
// network.Network — it only reads n1/n2's current axes and the set of
// edges shared between them, and returns a string plus bookkeeping the
// caller (package contractor) uses to invoke the backend and then rewire
// the Network.
//
// Alphabet: labels are drawn from a-z, A-Z, 0-9 (62 symbols), per the
// backend's einsum convention (spec §4.2, §6). A merge needing more than
// 62 distinct labels fails with ErrRankExceedsAlphabet rather than
// silently extending the alphabet (spec §9's "label alphabet limit").
package einsumexpr

import "errors"

// Alphabet is the fixed, ordered set of single-character einsum labels.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sentinel errors for the einsumexpr package.
var (
	// ErrRankExceedsAlphabet indicates a pair merge would need more than
	// len(Alphabet) distinct labels.
	ErrRankExceedsAlphabet = errors.New("einsumexpr: combined rank exceeds 62-label alphabet")

	// ErrSelfLoop indicates n1 or n2 carries a trace edge; trace edges must
	// be resolved (spec §4.5 step 1) before a pair merge is built.
	ErrSelfLoop = errors.New("einsumexpr: node carries an unresolved trace edge")

	// ErrNotShared indicates a caller-supplied "shared" edge does not in
	// fact connect n1 and n2.
	ErrNotShared = errors.New("einsumexpr: edge does not connect the two given nodes")
)
