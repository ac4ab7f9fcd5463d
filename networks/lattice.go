package networks

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/network"
)

const minLatticeDim = 1

// axisLayout records where, in a lattice node's axis slice, each of its
// possible four bond directions landed (-1 if that neighbor does not
// exist, e.g. a border cell), and where its physical axis landed.
type axisLayout struct {
	up, left, right, down, phys int
}

// Lattice2D builds an orthogonal rows×cols grid of nodes with 4-neighbor
// bonds of dimension bondDim and a dangling physical axis of dimension
// physDim per node (the PEPS layout) — grounded on the teacher's
// builder.Grid, which lays out the same row-major right/bottom neighbor
// pattern over plain vertices.
func Lattice2D(net *network.Network, rows, cols, bondDim, physDim int, opts ...Option) ([][]*network.Node, error) {
	if rows < minLatticeDim || cols < minLatticeDim {
		return nil, fmt.Errorf("networks: Lattice2D rows=%d cols=%d: %w", rows, cols, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	nodes := make([][]*network.Node, rows)
	layouts := make([][]axisLayout, rows)
	for r := 0; r < rows; r++ {
		nodes[r] = make([]*network.Node, cols)
		layouts[r] = make([]axisLayout, cols)
		for c := 0; c < cols; c++ {
			layout := axisLayout{up: -1, left: -1, right: -1, down: -1}
			var shape []int
			axis := 0
			if r > 0 {
				layout.up = axis
				shape = append(shape, bondDim)
				axis++
			}
			if c > 0 {
				layout.left = axis
				shape = append(shape, bondDim)
				axis++
			}
			if r < rows-1 {
				layout.down = axis
				shape = append(shape, bondDim)
				axis++
			}
			if c < cols-1 {
				layout.right = axis
				shape = append(shape, bondDim)
				axis++
			}
			layout.phys = axis
			shape = append(shape, physDim)

			t, err := cfg.factory(shape)
			if err != nil {
				return nil, fmt.Errorf("networks: Lattice2D node (%d,%d): %w", r, c, err)
			}
			n, err := net.AddNode(t)
			if err != nil {
				return nil, fmt.Errorf("networks: Lattice2D AddNode(%d,%d): %w", r, c, err)
			}
			nodes[r][c] = n
			layouts[r][c] = layout
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				a := nodes[r][c].AxisEdge(layouts[r][c].right)
				b := nodes[r][c+1].AxisEdge(layouts[r][c+1].left)
				if _, err := net.Connect(a, b); err != nil {
					return nil, fmt.Errorf("networks: Lattice2D Connect right (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				a := nodes[r][c].AxisEdge(layouts[r][c].down)
				b := nodes[r+1][c].AxisEdge(layouts[r+1][c].up)
				if _, err := net.Connect(a, b); err != nil {
					return nil, fmt.Errorf("networks: Lattice2D Connect down (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return nodes, nil
}
