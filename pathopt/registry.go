package pathopt

// AutoGreedyThreshold is the input-list size at or below which Auto
// delegates to Optimal, trading an exponential exact search for a
// guaranteed-minimal path on problems small enough to afford it.
const AutoGreedyThreshold = 8

// Auto dispatches by problem size (spec §4.4's "auto" mode): Optimal for
// small problems, Branch while it is still tractable, Greedy otherwise.
func Auto(inputSets []map[Index]bool, outputSet map[Index]bool, sizeDict map[Index]int, memoryLimit int) ([][2]int, error) {
	switch {
	case len(inputSets) <= AutoGreedyThreshold:
		return Optimal(inputSets, outputSet, sizeDict, memoryLimit)
	case len(inputSets) <= MaxOptimalTensors:
		return Branch(inputSets, outputSet, sizeDict, memoryLimit)
	default:
		return Greedy(inputSets, outputSet, sizeDict, memoryLimit)
	}
}

// registry maps the names spec §4.4 fixes to their Optimizer. "custom" is
// deliberately absent: a custom optimizer is supplied directly by the
// caller (package contract's Custom entry point), never looked up here.
var registry = map[string]Optimizer{
	"optimal": Optimal,
	"branch":  Branch,
	"greedy":  Greedy,
	"auto":    Auto,
}

// Get resolves a registry name to its Optimizer, or ErrUnknownAlgorithm.
func Get(name string) (Optimizer, error) {
	opt, ok := registry[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}

	return opt, nil
}

// Names returns every registered algorithm name.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	return out
}
