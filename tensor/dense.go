package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dense is a row-major, dense array value with a fixed shape. It is the one
// concrete network.Tensor this module ships; callers with a real numerics
// stack are expected to supply their own network.Backend/network.Tensor pair
// instead.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense builds a Dense of the given shape from row-major data. The data
// slice is copied; len(data) must equal the shape's volume.
func NewDense(shape []int, data []float64) (*Dense, error) {
	sh := append([]int(nil), shape...)
	for _, d := range sh {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dimension %d", ErrBadShape, d)
		}
	}
	if volume(sh) != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrBadShape, sh, volume(sh), len(data))
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{shape: sh, data: buf}, nil
}

// Zeros returns a Dense of the given shape, every element 0.
func Zeros(shape []int) (*Dense, error) {
	sh := append([]int(nil), shape...)
	for _, d := range sh {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dimension %d", ErrBadShape, d)
		}
	}
	buf := make([]float64, volume(sh))
	floats.Fill(func(int) float64 { return 0 }, buf)

	return &Dense{shape: sh, data: buf}, nil
}

// Ones returns a Dense of the given shape, every element 1.
func Ones(shape []int) (*Dense, error) {
	d, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	floats.AddConst(1, d.data)

	return d, nil
}

// Scalar returns a rank-0 Dense holding v.
func Scalar(v float64) *Dense {
	return &Dense{shape: nil, data: []float64{v}}
}

// Shape returns the tensor's dimensions. The caller must not mutate it.
func (d *Dense) Shape() []int { return d.shape }

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// At returns the element at idx, a full multi-index (len(idx) == Rank()).
func (d *Dense) At(idx ...int) float64 {
	return d.data[d.flat(idx)]
}

// Set assigns the element at idx.
func (d *Dense) Set(v float64, idx ...int) {
	d.data[d.flat(idx)] = v
}

// Data returns the underlying row-major buffer. The caller must not retain
// or mutate it beyond read-only inspection.
func (d *Dense) Data() []float64 { return d.data }

func (d *Dense) flat(idx []int) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("tensor: At/Set expects %d indices, got %d", len(d.shape), len(idx)))
	}
	off := 0
	for i, ix := range idx {
		if ix < 0 || ix >= d.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range [0,%d) on axis %d", ix, d.shape[i], i))
		}
		off = off*d.shape[i] + ix
	}

	return off
}

// EqualApprox reports whether a and b have the same shape and agree
// elementwise within tol (using gonum's floating-point comparison).
func EqualApprox(a, b *Dense, tol float64) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return floats.EqualApprox(a.data, b.data, tol)
}
