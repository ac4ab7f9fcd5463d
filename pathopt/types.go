package pathopt

import "github.com/esgantivar/TensorNetwork/network"

// Index is the path optimizer's opaque per-dimension identifier. It is
// realized directly as the edge carrying that dimension in the source
// network.Network.
type Index = network.EdgeID

// Optimizer proposes a contraction order for a flat tensor-contraction
// problem (spec §4.4): inputSets[k] is the set of indices tensor k
// carries, outputSet is the set of indices the whole contraction must
// preserve, sizeDict gives every index's dimension, and memoryLimit (if
// positive) bounds the size of any intermediate tensor the path produces.
//
// The returned path is a sequence of (i, j) position pairs in opt_einsum's
// shrinking-list convention: positions index into a list that starts as
// [0, 1, ..., len(inputSets)-1]; each step removes the two named positions
// and appends their contraction result at the end of the list, so later
// pairs may reference positions that did not exist in the original input.
type Optimizer func(inputSets []map[Index]bool, outputSet map[Index]bool, sizeDict map[Index]int, memoryLimit int) ([][2]int, error)
