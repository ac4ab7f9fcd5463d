package pathopt

import "testing"

func TestMergeCost_DropsIndexNotNeededElsewhere(t *testing.T) {
	a := map[Index]bool{1: true, 2: true}
	b := map[Index]bool{2: true, 3: true}
	sizeDict := map[Index]int{1: 2, 2: 3, 3: 4}

	merged, flops, size := mergeCost(a, b, nil, map[Index]bool{}, sizeDict)

	if flops != 24 {
		t.Fatalf("flops = %v, want 24", flops)
	}
	if merged[2] {
		t.Fatalf("index 2 should be summed away, not survive in %v", merged)
	}
	if !merged[1] || !merged[3] {
		t.Fatalf("indices 1 and 3 must survive, got %v", merged)
	}
	if size != 8 {
		t.Fatalf("size = %v, want 8", size)
	}
}

func TestMergeCost_KeepsIndexNeededInOutput(t *testing.T) {
	a := map[Index]bool{1: true, 2: true}
	b := map[Index]bool{2: true, 3: true}
	sizeDict := map[Index]int{1: 2, 2: 3, 3: 4}
	output := map[Index]bool{2: true}

	merged, _, _ := mergeCost(a, b, nil, output, sizeDict)

	if !merged[2] {
		t.Fatalf("index 2 is in the output set and must survive, got %v", merged)
	}
}

func TestMergeCost_KeepsIndexNeededInAnotherGroup(t *testing.T) {
	a := map[Index]bool{1: true, 2: true}
	b := map[Index]bool{2: true, 3: true}
	others := []map[Index]bool{{2: true, 9: true}}
	sizeDict := map[Index]int{1: 2, 2: 3, 3: 4, 9: 5}

	merged, _, _ := mergeCost(a, b, others, map[Index]bool{}, sizeDict)

	if !merged[2] {
		t.Fatalf("index 2 is still needed by another live group and must survive, got %v", merged)
	}
}

func TestLinearizePath_ThreeWayChain(t *testing.T) {
	// Three original positions (masks 1, 2, 4). Merge 0 with 1 first,
	// then the result with 2.
	merges := [][2]int{
		{1, 2},
		{3, 4},
	}

	path := linearizePath(3, merges)

	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0] != [2]int{0, 1} {
		t.Fatalf("first step = %v, want merging shrinking-list positions 0 and 1", path[0])
	}
	if path[1] != [2]int{0, 1} {
		t.Fatalf("second step = %v, want merging shrinking-list positions 0 and 1", path[1])
	}
}

func TestIndexOf_NotFound(t *testing.T) {
	if got := indexOf([]int{1, 2, 4}, 8); got != -1 {
		t.Fatalf("indexOf = %d, want -1 for a mask not present", got)
	}
}
