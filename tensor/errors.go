package tensor

import "errors"

// Sentinel errors for the tensor package.
var (
	// ErrBadShape indicates a shape with a non-positive dimension, or a
	// shape/data length mismatch on construction.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrRankMismatch indicates an einsum subscript token whose length does
	// not equal the rank of its operand.
	ErrRankMismatch = errors.New("tensor: subscript length does not match operand rank")

	// ErrDimensionMismatch indicates that the same label was assigned two
	// different dimensions, or a requested trace pair has unequal dims.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrBadExpr indicates a malformed einsum expression string.
	ErrBadExpr = errors.New("tensor: malformed einsum expression")

	// ErrUnsupportedTensor indicates an operand that is not *Dense; this
	// reference backend only understands its own concrete type.
	ErrUnsupportedTensor = errors.New("tensor: operand is not a *tensor.Dense")

	// ErrAxisOutOfRange indicates a trace axis outside [0, rank), or a trace
	// pair naming the same axis twice.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")
)
