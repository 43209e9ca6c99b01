package bench

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportWidth = 80

// Printer renders aggregated results as fixed-width text tables plus a
// cross-run summary. It has no side effects beyond writing to w.
type Printer struct {
	w   io.Writer
	msg *message.Printer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, msg: message.NewPrinter(language.English)}
}

// PrintResults renders the result table. Rows are grouped by operation with
// a separator line whenever the operation column changes; failed runs are
// marked instead of silently omitted.
func (p *Printer) PrintResults(results []Result) {
	separator := strings.Repeat("=", reportWidth)
	line := strings.Repeat("-", reportWidth)

	fmt.Fprintln(p.w, "\n"+separator)
	fmt.Fprintln(p.w, "BENCHMARK RESULTS")
	fmt.Fprintln(p.w, separator)
	fmt.Fprintf(p.w, "%-20s %-20s %12s %12s %12s\n", "Library", "Operation", "Throughput", "Avg Latency", "Total MB")
	fmt.Fprintln(p.w, line)

	currentOp := Operation("")
	for _, r := range results {
		if r.Operation != currentOp {
			if currentOp != "" {
				fmt.Fprintln(p.w, line)
			}
			currentOp = r.Operation
		}
		if r.Failed() {
			fmt.Fprintf(p.w, "%-20s %-20s %12s  %v\n", r.Library, string(r.Operation), "FAILED", r.Err)
			continue
		}
		fmt.Fprintf(p.w, "%-20s %-20s %9.2f MB/s %9.2f us %9.2f MB\n",
			r.Library,
			string(r.Operation),
			r.ThroughputMBs,
			r.AvgLatencyUs,
			r.TotalMB(),
		)
	}
	fmt.Fprintln(p.w, separator)
}

// PrintSummary emits the cross-run comparison block naming the best parse
// and best stringify performers.
func (p *Printer) PrintSummary(agg *Aggregator, dataSize int64, iterations int) {
	separator := strings.Repeat("=", reportWidth)

	fmt.Fprintln(p.w, "\n"+separator)
	fmt.Fprintln(p.w, "SUMMARY FOR CROSS-LANGUAGE COMPARISON")
	fmt.Fprintln(p.w, separator)
	fmt.Fprintf(p.w, "Data size: %.2f MB\n", float64(dataSize)/(1<<20))
	p.msg.Fprintf(p.w, "Iterations: %d\n", iterations)

	bestParse := agg.Best(OpParse)
	bestStringify := agg.Best(OpStringify)

	fmt.Fprintf(p.w, "\nBest Parse: %s at %.2f MB/s (%.2f us/op)\n",
		bestParse.Library, bestParse.ThroughputMBs, bestParse.AvgLatencyUs)
	fmt.Fprintf(p.w, "Best Stringify: %s at %.2f MB/s (%.2f us/op)\n",
		bestStringify.Library, bestStringify.ThroughputMBs, bestStringify.AvgLatencyUs)
}
