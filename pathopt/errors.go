package pathopt

import "errors"

// Sentinel errors for package pathopt.
var (
	// ErrTooManyTensors indicates the exact (optimal) optimizer was asked
	// to plan more tensors than MaxOptimalTensors permits.
	ErrTooManyTensors = errors.New("pathopt: too many tensors for the exact optimizer")

	// ErrEmptyProblem indicates an optimizer was called with no input sets
	// at all. A single input set is not an error: the optimizers return an
	// empty path for it.
	ErrEmptyProblem = errors.New("pathopt: no input sets to contract")

	// ErrUnknownAlgorithm indicates Get was asked for a registry name that
	// does not exist.
	ErrUnknownAlgorithm = errors.New("pathopt: unknown algorithm name")

	// ErrNoFeasiblePath indicates a memory limit ruled out every candidate
	// contraction at some step.
	ErrNoFeasiblePath = errors.New("pathopt: no pair fits within the memory limit")
)
