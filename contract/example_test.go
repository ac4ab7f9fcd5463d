// Package contract_test runs the contraction driver end to end on small,
// hand-built networks, one per scenario.
package contract_test

import (
	"fmt"

	"github.com/esgantivar/TensorNetwork/contract"
	"github.com/esgantivar/TensorNetwork/network"
	"github.com/esgantivar/TensorNetwork/pathopt"
	"github.com/esgantivar/TensorNetwork/tensor"
)

// ExampleContract_ring contracts four rank-3 all-ones tensors wired into a
// cycle xn-yn-zn-wn-xn; every shared dimension is 3, so the scalar result
// is 3^6.
func ExampleContract_ring() {
	net := network.NewNetwork(tensor.NewBackend())

	ones, _ := tensor.Ones([]int{3, 3, 3})
	xn, _ := net.AddNode(ones) // axes b, c, a
	yn, _ := net.AddNode(ones) // axes c, d, g
	zn, _ := net.AddNode(ones) // axes d, b, f
	wn, _ := net.AddNode(ones) // axes a, f, g

	must(net.Connect(xn.AxisEdge(0), zn.AxisEdge(1))) // b
	must(net.Connect(xn.AxisEdge(1), yn.AxisEdge(0))) // c
	must(net.Connect(xn.AxisEdge(2), wn.AxisEdge(0))) // a
	must(net.Connect(yn.AxisEdge(1), zn.AxisEdge(0))) // d
	must(net.Connect(zn.AxisEdge(2), wn.AxisEdge(1))) // f
	must(net.Connect(yn.AxisEdge(2), wn.AxisEdge(2))) // g

	final, err := contract.Contract(net, "optimal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := final.Tensor().(*tensor.Dense)
	fmt.Println(d.At())
	// Output: 729
}

// ExampleContract_trace contracts a single rank-3 ones tensor with a
// self-loop on its first two axes, leaving a dangling length-2 vector.
func ExampleContract_trace() {
	net := network.NewNetwork(tensor.NewBackend())

	ones, _ := tensor.Ones([]int{2, 2, 2})
	n, _ := net.AddNode(ones)
	must(net.Connect(n.AxisEdge(0), n.AxisEdge(1)))

	final, err := contract.Contract(net, "optimal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := final.Tensor().(*tensor.Dense)
	fmt.Println(d.At(0), d.At(1))
	// Output: 2 2
}

// ExampleContract_disconnected demonstrates the disconnected-network error:
// two separate rank-2 pairs share no edge at all.
func ExampleContract_disconnected() {
	net := network.NewNetwork(tensor.NewBackend())

	ones2, _ := tensor.Ones([]int{2, 2})
	a, _ := net.AddNode(ones2)
	b, _ := net.AddNode(ones2)
	c, _ := net.AddNode(ones2)
	d, _ := net.AddNode(ones2)
	must(net.Connect(a.AxisEdge(0), b.AxisEdge(0)))
	must(net.Connect(c.AxisEdge(0), d.AxisEdge(0)))

	_, err := contract.Contract(net, "optimal")
	fmt.Println(err)
	// Output: contract: network has more than one connected component: 2 components
}

// ExampleContract_copyNodeDiagonal wires a rank-2 copy node as a shared
// diagonal index between two ordinary nodes.
func ExampleContract_copyNodeDiagonal() {
	net := network.NewNetwork(tensor.NewBackend())

	x, _ := tensor.Ones([]int{3, 3})
	y, _ := tensor.Ones([]int{3, 3, 3})
	xn, _ := net.AddNode(x)
	yn, _ := net.AddNode(y)
	c, _ := net.AddCopyNode(2, 3)

	must(net.Connect(xn.AxisEdge(0), yn.AxisEdge(1)))
	must(net.Connect(xn.AxisEdge(1), c.AxisEdge(0)))
	must(net.Connect(yn.AxisEdge(2), c.AxisEdge(1)))

	final, err := contract.Contract(net, "optimal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := final.Tensor().(*tensor.Dense)
	fmt.Println(d.At(0), d.At(1), d.At(2))
	// Output: 9 9 9
}

// ExampleContract_copyNodeExposed is the same wiring as copyNodeDiagonal but
// the copy node carries one extra dangling axis, and the caller requests a
// specific output edge order.
func ExampleContract_copyNodeExposed() {
	net := network.NewNetwork(tensor.NewBackend())

	x, _ := tensor.Ones([]int{3, 3})
	y, _ := tensor.Ones([]int{3, 3, 3})
	xn, _ := net.AddNode(x)
	yn, _ := net.AddNode(y)
	c, _ := net.AddCopyNode(3, 3)

	must(net.Connect(xn.AxisEdge(0), yn.AxisEdge(1)))
	must(net.Connect(xn.AxisEdge(1), c.AxisEdge(0)))
	must(net.Connect(yn.AxisEdge(2), c.AxisEdge(1)))

	yOut := yn.AxisEdge(0)
	cOut := c.AxisEdge(2)

	final, err := contract.Contract(net, "optimal", contract.WithOutputEdgeOrder([]network.EdgeID{yOut, cOut}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := final.Tensor().(*tensor.Dense)
	fmt.Println(d.At(0, 0), d.At(1, 1), d.At(2, 2))
	// Output: 3 3 3
}

// ExampleContract_custom supplies a trivial caller-written Optimizer instead
// of a registry name.
func ExampleContract_custom() {
	net := network.NewNetwork(tensor.NewBackend())

	av, _ := tensor.Ones([]int{2})
	bv, _ := tensor.Ones([]int{2, 5})
	a, _ := net.AddNode(av)
	b, _ := net.AddNode(bv)
	must(net.Connect(a.AxisEdge(0), b.AxisEdge(0)))

	trivial := func(inputSets []map[pathopt.Index]bool, outputSet map[pathopt.Index]bool, sizeDict map[pathopt.Index]int, memoryLimit int) ([][2]int, error) {
		return [][2]int{{0, 1}}, nil
	}

	final, err := contract.Custom(net, trivial)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := final.Tensor().(*tensor.Dense)
	fmt.Println(d.At(0), d.At(1), d.At(2), d.At(3), d.At(4))
	// Output: 2 2 2 2 2
}

func must(_ network.EdgeID, err error) {
	if err != nil {
		panic(err)
	}
}
