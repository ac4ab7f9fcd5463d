package pathopt

// linearizePath turns a children-before-parent sequence of subset merges
// (each a pair of disjoint bitmasks over the original n input positions)
// into opt_einsum's shrinking-list (i, j) convention: a simulated list
// starts as the n original positions and, for each merge in order, records
// the current list positions of its two children, then removes them and
// appends the merge's combined mask at the end.
func linearizePath(n int, merges [][2]int) [][2]int {
	listOrder := make([]int, n)
	for i := range listOrder {
		listOrder[i] = 1 << uint(i)
	}

	path := make([][2]int, 0, len(merges))
	for _, m := range merges {
		posA, posB := indexOf(listOrder, m[0]), indexOf(listOrder, m[1])
		if posA > posB {
			posA, posB = posB, posA
		}
		path = append(path, [2]int{posA, posB})

		newOrder := make([]int, 0, len(listOrder)-1)
		for i, mask := range listOrder {
			if i == posA || i == posB {
				continue
			}
			newOrder = append(newOrder, mask)
		}
		newOrder = append(newOrder, m[0]|m[1])
		listOrder = newOrder
	}

	return path
}

func indexOf(order []int, mask int) int {
	for i, m := range order {
		if m == mask {
			return i
		}
	}

	return -1
}
