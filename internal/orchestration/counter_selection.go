package orchestration

import "github.com/avannier/tilecalc/internal/tiling"

// MethodAll is the reserved method name that selects every registered
// counting method for a cross-checked run.
const MethodAll = "all"

// GetCountersToRun resolves a method name to the counters to execute.
// MethodAll yields every registered counter in alphabetically sorted order
// for consistent, reproducible behavior; an unknown name yields nil.
func GetCountersToRun(method string, factory *tiling.Factory) []tiling.Counter {
	if method == MethodAll {
		keys := factory.List() // List() returns sorted keys
		counters := make([]tiling.Counter, 0, len(keys))
		for _, k := range keys {
			if counter, err := factory.Get(k); err == nil {
				counters = append(counters, counter)
			}
		}
		return counters
	}
	if counter, err := factory.Get(method); err == nil {
		return []tiling.Counter{counter}
	}
	return nil
}
