// Package bench is the timing engine: it drives a codec through warmup and
// measured phases, derives throughput/latency metrics, and aggregates and
// prints results.
package bench

import "time"

// Operation names one benchmarked activity. The string value is the
// reporting key: results sort lexicographically by it.
type Operation string

// Benchmarked operations.
const (
	OpParse          Operation = "Parse"
	OpStringify      Operation = "Stringify"
	OpParseFiles     Operation = "Parse (files)"
	OpStringifyFiles Operation = "Stringify (files)"
)

// Result is one immutable measurement of a (codec, operation) pair.
// A non-nil Err marks a failed run: its timing fields are zero and it must
// still be reported, never silently dropped.
type Result struct {
	Library       string
	Operation     Operation
	Iterations    int
	TotalBytes    int64
	Elapsed       time.Duration
	ThroughputMBs float64
	AvgLatencyUs  float64
	Err           error
}

// Failed reports whether the run aborted on a codec error.
func (r Result) Failed() bool { return r.Err != nil }

// TotalMB returns the processed volume in mebibytes.
func (r Result) TotalMB() float64 { return float64(r.TotalBytes) / (1 << 20) }

// DurationMS converts an elapsed monotonic interval to fractional
// milliseconds at microsecond precision, the clock granularity the metric
// formulas are defined over.
func DurationMS(elapsed time.Duration) float64 {
	return float64(elapsed.Microseconds()) / 1000.0
}

// ThroughputMBs derives throughput in MB/s (1 MB = 1,048,576 bytes) from a
// byte total and a duration in milliseconds. These formulas are fixed so
// numbers stay bit-for-bit comparable across codecs and runs.
func ThroughputMBs(totalBytes int64, durationMS float64) float64 {
	if durationMS <= 0 {
		return 0
	}
	return float64(totalBytes) / (durationMS / 1000.0) / (1 << 20)
}

// AvgLatencyUs derives the average per-operation latency in microseconds.
func AvgLatencyUs(durationMS float64, iterations int) float64 {
	if iterations <= 0 {
		return 0
	}
	return durationMS * 1000.0 / float64(iterations)
}

// newResult assembles a successful measurement with derived metrics.
func newResult(library string, op Operation, iterations int, totalBytes int64, elapsed time.Duration) Result {
	ms := DurationMS(elapsed)
	return Result{
		Library:       library,
		Operation:     op,
		Iterations:    iterations,
		TotalBytes:    totalBytes,
		Elapsed:       elapsed,
		ThroughputMBs: ThroughputMBs(totalBytes, ms),
		AvgLatencyUs:  AvgLatencyUs(ms, iterations),
	}
}

// failedResult records an aborted run. All timing for the phase is
// discarded: a partial average would be skewed, not conservative.
func failedResult(library string, op Operation, err error) Result {
	return Result{Library: library, Operation: op, Err: err}
}
