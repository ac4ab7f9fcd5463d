package pathopt

import "container/heap"

// Greedy picks, at every step, the pair of live tensors whose contraction
// has the lowest flop cost, breaking ties by the lower position pair. It
// never backtracks.
//
// Grounded on the teacher's Dijkstra "lazy decrease-key" heap (package
// dijkstra): every live pair's cost is pushed once per side it touches,
// and a popped candidate is simply discarded if either side it names has
// since been contracted away, rather than hunting it down in the heap to
// remove it.
func Greedy(inputSets []map[Index]bool, outputSet map[Index]bool, sizeDict map[Index]int, memoryLimit int) ([][2]int, error) {
	n := len(inputSets)
	if n < 2 {
		if n == 0 {
			return nil, ErrEmptyProblem
		}

		return nil, nil
	}

	sets := make(map[int]map[Index]bool, n)
	alive := make(map[int]bool, n)
	pos := make(map[int]int, n) // stable id -> current list position
	listOrder := make([]int, n) // current list, by stable id, in position order
	for i, s := range inputSets {
		sets[i] = s
		alive[i] = true
		pos[i] = i
		listOrder[i] = i
	}

	nextID := n

	pq := make(candidatePQ, 0, n*n/2)
	pushPairs := func(from int) {
		for _, other := range listOrder {
			if other == from {
				continue
			}
			others := otherSets(sets, listOrder, from, other)
			_, flops, size := mergeCost(sets[from], sets[other], others, outputSet, sizeDict)
			if memoryLimit > 0 && size > float64(memoryLimit) {
				continue
			}
			heap.Push(&pq, &candidate{a: from, b: other, flops: flops})
		}
	}
	for _, id := range listOrder {
		pushPairs(id)
	}

	var path [][2]int
	for len(listOrder) > 1 {
		var chosen *candidate
		for pq.Len() > 0 {
			c := heap.Pop(&pq).(*candidate)
			if !alive[c.a] || !alive[c.b] {
				continue // stale entry, one side already merged away
			}
			chosen = c

			break
		}
		if chosen == nil {
			return nil, ErrNoFeasiblePath
		}

		pa, pb := pos[chosen.a], pos[chosen.b]
		if pa > pb {
			pa, pb = pb, pa
		}
		path = append(path, [2]int{pa, pb})

		others := otherSets(sets, listOrder, chosen.a, chosen.b)
		merged, _, _ := mergeCost(sets[chosen.a], sets[chosen.b], others, outputSet, sizeDict)

		alive[chosen.a] = false
		alive[chosen.b] = false
		newOrder := make([]int, 0, len(listOrder)-1)
		for _, id := range listOrder {
			if id == chosen.a || id == chosen.b {
				continue
			}
			newOrder = append(newOrder, id)
		}
		newOrder = append(newOrder, nextID)
		sets[nextID] = merged
		alive[nextID] = true
		listOrder = newOrder
		for i, id := range listOrder {
			pos[id] = i
		}
		pushPairs(nextID)
		nextID++
	}

	return path, nil
}

func otherSets(sets map[int]map[Index]bool, order []int, a, b int) []map[Index]bool {
	out := make([]map[Index]bool, 0, len(order))
	for _, id := range order {
		if id == a || id == b {
			continue
		}
		out = append(out, sets[id])
	}

	return out
}

// candidate is one pending pairwise-merge cost, lazily invalidated once
// either side is contracted away.
type candidate struct {
	a, b  int
	flops float64
}

type candidatePQ []*candidate

func (pq candidatePQ) Len() int { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].flops != pq[j].flops {
		return pq[i].flops < pq[j].flops
	}
	if pq[i].a != pq[j].a {
		return pq[i].a < pq[j].a
	}

	return pq[i].b < pq[j].b
}
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*candidate))
}
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
