package pathopt

import "sort"

// MaxBranchNodes bounds the branch-and-bound search's DFS node count. The
// teacher's branch-and-bound solver (package tsp, bb.go) instead bounds
// itself with a wall-clock deadline; a node-count budget is used here so
// the search is fully deterministic and its tests do not depend on timing.
const MaxBranchNodes = 200000

type bnbEngine struct {
	n         int
	output    map[Index]bool
	sizeDict  map[Index]int
	memLimit  int
	nodes     int

	bestCost float64
	bestPath [][2]int
	found    bool
}

// Branch searches contraction orders depth-first, branching on pairs in
// ascending flop-cost order and pruning any partial order whose cost so
// far already meets or exceeds the best complete order found (spec §4.4's
// branch mode). Grounded on the teacher's DFS branch-and-bound (package
// tsp, bb.go): deterministic branch order plus incumbent-based pruning,
// here without its admissible lower bound (the teacher's degree-1
// relaxation has no analogue over index sets), so pruning is weaker. The
// result is the cheapest order only if the search finishes within
// MaxBranchNodes visited nodes; past that budget the search stops and the
// best complete order found so far is returned.
func Branch(inputSets []map[Index]bool, outputSet map[Index]bool, sizeDict map[Index]int, memoryLimit int) ([][2]int, error) {
	n := len(inputSets)
	if n < 2 {
		if n == 0 {
			return nil, ErrEmptyProblem
		}

		return nil, nil
	}

	e := &bnbEngine{n: n, output: outputSet, sizeDict: sizeDict, memLimit: memoryLimit, bestCost: -1}

	sets := make(map[int]map[Index]bool, n)
	listOrder := make([]int, n)
	for i, s := range inputSets {
		sets[i] = s
		listOrder[i] = i
	}

	e.search(listOrder, sets, n, nil, 0)
	if !e.found {
		return nil, ErrNoFeasiblePath
	}

	return e.bestPath, nil
}

// search explores every pair at the current level, in ascending flop-cost
// order, recursing on the resulting shorter list.
func (e *bnbEngine) search(listOrder []int, sets map[int]map[Index]bool, nextID int, path [][2]int, costSoFar float64) {
	e.nodes++
	if e.nodes > MaxBranchNodes {
		return
	}
	if e.found && costSoFar >= e.bestCost {
		return
	}
	if len(listOrder) == 1 {
		e.found = true
		e.bestCost = costSoFar
		e.bestPath = append([][2]int(nil), path...)

		return
	}

	type option struct {
		i, j   int // positions
		merged map[Index]bool
		flops  float64
		size   float64
	}
	var options []option
	for i := 0; i < len(listOrder); i++ {
		for j := i + 1; j < len(listOrder); j++ {
			others := otherSets(sets, listOrder, listOrder[i], listOrder[j])
			merged, flops, size := mergeCost(sets[listOrder[i]], sets[listOrder[j]], others, e.output, e.sizeDict)
			if e.memLimit > 0 && size > float64(e.memLimit) {
				continue
			}
			options = append(options, option{i: i, j: j, merged: merged, flops: flops, size: size})
		}
	}
	sort.Slice(options, func(a, b int) bool {
		if options[a].flops != options[b].flops {
			return options[a].flops < options[b].flops
		}
		if options[a].i != options[b].i {
			return options[a].i < options[b].i
		}

		return options[a].j < options[b].j
	})

	for _, opt := range options {
		if e.found && costSoFar+opt.flops >= e.bestCost {
			continue
		}

		newOrder := make([]int, 0, len(listOrder)-1)
		for k, id := range listOrder {
			if k == opt.i || k == opt.j {
				continue
			}
			newOrder = append(newOrder, id)
		}
		newOrder = append(newOrder, nextID)
		sets[nextID] = opt.merged

		e.search(newOrder, sets, nextID+1, append(path, [2]int{opt.i, opt.j}), costSoFar+opt.flops)

		delete(sets, nextID)
	}
}
