package tensor

import (
	"fmt"
	"strings"

	"github.com/esgantivar/TensorNetwork/network"
)

// Backend is the reference network.Backend implementation, operating only
// on *Dense tensors.
type Backend struct{}

// NewBackend returns the reference Dense-only backend.
func NewBackend() *Backend { return &Backend{} }

var _ network.Backend = (*Backend)(nil)

// Einsum evaluates "left,right->out" against a and b. Repeated labels on a
// single operand's token denote a diagonal; labels present in both tokens
// but absent from out are summed (contracted); every label must carry a
// consistent dimension everywhere it appears.
func (b *Backend) Einsum(expr string, a, bt network.Tensor) (network.Tensor, error) {
	da, ok := a.(*Dense)
	if !ok {
		return nil, ErrUnsupportedTensor
	}
	db, ok := bt.(*Dense)
	if !ok {
		return nil, ErrUnsupportedTensor
	}

	left, right, out, err := parseExpr(expr)
	if err != nil {
		return nil, err
	}
	if len(left) != da.Rank() {
		return nil, fmt.Errorf("%w: left token %q has %d labels, operand has rank %d", ErrRankMismatch, left, len(left), da.Rank())
	}
	if len(right) != db.Rank() {
		return nil, fmt.Errorf("%w: right token %q has %d labels, operand has rank %d", ErrRankMismatch, right, len(right), db.Rank())
	}

	dims := make(map[byte]int)
	if err := bindDims(dims, left, da.Shape()); err != nil {
		return nil, err
	}
	if err := bindDims(dims, right, db.Shape()); err != nil {
		return nil, err
	}
	for i := 0; i < len(out); i++ {
		if _, ok := dims[out[i]]; !ok {
			return nil, fmt.Errorf("%w: output label %q absent from both operands", ErrBadExpr, string(out[i]))
		}
	}

	outSet := make(map[byte]bool, len(out))
	for i := 0; i < len(out); i++ {
		outSet[out[i]] = true
	}
	var sumLabels []byte
	seen := make(map[byte]bool)
	for i := 0; i < len(left)+len(right); i++ {
		var c byte
		if i < len(left) {
			c = left[i]
		} else {
			c = right[i-len(left)]
		}
		if seen[c] || outSet[c] {
			continue
		}
		seen[c] = true
		sumLabels = append(sumLabels, c)
	}

	outShape := make([]int, len(out))
	for i := 0; i < len(out); i++ {
		outShape[i] = dims[out[i]]
	}
	sumDims := make([]int, len(sumLabels))
	for i, c := range sumLabels {
		sumDims[i] = dims[c]
	}

	result, err := Zeros(outShape)
	if err != nil {
		return nil, err
	}

	assign := make(map[byte]int, len(dims))
	aIdx := make([]int, len(left))
	bIdx := make([]int, len(right))

	eachIndex(outShape, func(freeIdx []int) {
		for i := 0; i < len(out); i++ {
			assign[out[i]] = freeIdx[i]
		}
		var total float64
		eachIndex(sumDims, func(sumIdx []int) {
			for i, c := range sumLabels {
				assign[c] = sumIdx[i]
			}
			for i := 0; i < len(left); i++ {
				aIdx[i] = assign[left[i]]
			}
			for i := 0; i < len(right); i++ {
				bIdx[i] = assign[right[i]]
			}
			total += da.At(aIdx...) * db.At(bIdx...)
		})
		result.Set(total, freeIdx...)
	})

	return result, nil
}

// Trace sums t's diagonal over axis1/axis2, which must share a dimension,
// and returns a tensor with both axes removed.
func (b *Backend) Trace(t network.Tensor, axis1, axis2 int) (network.Tensor, error) {
	dt, ok := t.(*Dense)
	if !ok {
		return nil, ErrUnsupportedTensor
	}
	r := dt.Rank()
	if axis1 < 0 || axis1 >= r || axis2 < 0 || axis2 >= r || axis1 == axis2 {
		return nil, ErrAxisOutOfRange
	}
	shape := dt.Shape()
	if shape[axis1] != shape[axis2] {
		return nil, fmt.Errorf("%w: axis %d has dim %d, axis %d has dim %d", ErrDimensionMismatch, axis1, shape[axis1], axis2, shape[axis2])
	}
	dim := shape[axis1]

	keep := make([]int, 0, r-2)
	for i := 0; i < r; i++ {
		if i == axis1 || i == axis2 {
			continue
		}
		keep = append(keep, i)
	}
	outShape := make([]int, len(keep))
	for i, ax := range keep {
		outShape[i] = shape[ax]
	}

	result, err := Zeros(outShape)
	if err != nil {
		return nil, err
	}

	full := make([]int, r)
	eachIndex(outShape, func(outIdx []int) {
		for i, ax := range keep {
			full[ax] = outIdx[i]
		}
		var total float64
		for k := 0; k < dim; k++ {
			full[axis1] = k
			full[axis2] = k
			total += dt.At(full...)
		}
		result.Set(total, outIdx...)
	})

	return result, nil
}

// Identity returns the rank-k diagonal-of-ones tensor for dimension d.
func (b *Backend) Identity(rank, dim int) (network.Tensor, error) {
	if rank <= 0 || dim <= 0 {
		return nil, ErrBadShape
	}
	shape := make([]int, rank)
	for i := range shape {
		shape[i] = dim
	}
	result, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	idx := make([]int, rank)
	for k := 0; k < dim; k++ {
		for i := range idx {
			idx[i] = k
		}
		result.Set(1, idx...)
	}

	return result, nil
}

// parseExpr splits "left,right->out" into its three subscript tokens.
func parseExpr(expr string) (left, right, out []byte, err error) {
	arrow := strings.Split(expr, "->")
	if len(arrow) != 2 {
		return nil, nil, nil, fmt.Errorf("%w: %q missing a single \"->\"", ErrBadExpr, expr)
	}
	operands := strings.Split(arrow[0], ",")
	if len(operands) != 2 {
		return nil, nil, nil, fmt.Errorf("%w: %q must have exactly two comma-separated operands", ErrBadExpr, expr)
	}

	return []byte(operands[0]), []byte(operands[1]), []byte(arrow[1]), nil
}

// bindDims records (or validates) the dimension of each label in token
// against shape, axis by axis.
func bindDims(dims map[byte]int, token []byte, shape []int) error {
	for i, c := range token {
		d := shape[i]
		if prev, ok := dims[c]; ok {
			if prev != d {
				return fmt.Errorf("%w: label %q bound to both %d and %d", ErrDimensionMismatch, string(c), prev, d)
			}
			continue
		}
		dims[c] = d
	}

	return nil
}
