package bench

import "sort"

// Aggregator collects results for one benchmark run and exposes the two
// reducers reporting needs: a grouped sort and a best-per-operation scan.
// Both are pure over the ordered collection; Add order is preserved so
// throughput ties break by insertion.
type Aggregator struct {
	results []Result
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends a result. Failed results are added like any other; they must
// remain visible in the report.
func (a *Aggregator) Add(r Result) {
	a.results = append(a.results, r)
}

// All returns the results in insertion order.
func (a *Aggregator) All() []Result {
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}

// Len returns the number of collected results.
func (a *Aggregator) Len() int { return len(a.results) }

// Sorted returns the results ordered for reporting: operation name
// ascending, then throughput descending, insertion order preserved among
// ties. Test suites assert exact row order, so this is a contract.
func (a *Aggregator) Sorted() []Result {
	out := a.All()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		return out[i].ThroughputMBs > out[j].ThroughputMBs
	})
	return out
}

// Best returns the successful result with the highest throughput for an
// operation, or a zero Result if none was recorded. Failed runs never win.
func (a *Aggregator) Best(op Operation) Result {
	var best Result
	for _, r := range a.results {
		if r.Operation != op || r.Failed() {
			continue
		}
		if r.ThroughputMBs > best.ThroughputMBs {
			best = r
		}
	}
	return best
}
