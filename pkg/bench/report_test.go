package bench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintResultsLayout(t *testing.T) {
	agg := NewAggregator()
	agg.Add(Result{Library: "fast", Operation: OpParse, ThroughputMBs: 100.5, AvgLatencyUs: 12.34, TotalBytes: 2 << 20})
	agg.Add(Result{Library: "slow", Operation: OpParse, ThroughputMBs: 42.0, AvgLatencyUs: 99.9, TotalBytes: 1 << 20})
	agg.Add(Result{Library: "fast", Operation: OpStringify, ThroughputMBs: 80.0, AvgLatencyUs: 20.0, TotalBytes: 2 << 20})

	var buf bytes.Buffer
	NewPrinter(&buf).PrintResults(agg.Sorted())
	out := buf.String()

	for _, want := range []string{
		"BENCHMARK RESULTS",
		"Library", "Operation", "Throughput", "Avg Latency", "Total MB",
		"100.50 MB/s", "12.34 us",
		"42.00 MB/s",
		"80.00 MB/s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Rows must come out grouped: both Parse rows before the Stringify row.
	fastParse := strings.Index(out, "100.50 MB/s")
	slowParse := strings.Index(out, "42.00 MB/s")
	fastStringify := strings.Index(out, "80.00 MB/s")
	if !(fastParse < slowParse && slowParse < fastStringify) {
		t.Errorf("row order wrong: parse rows at %d, %d; stringify at %d", fastParse, slowParse, fastStringify)
	}

	// A separator line sits between the operation groups.
	between := out[slowParse:fastStringify]
	if !strings.Contains(between, strings.Repeat("-", reportWidth)) {
		t.Error("missing separator line between operation groups")
	}
}

func TestPrintResultsMarksFailures(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResults([]Result{
		{Library: "broken", Operation: OpParse, Err: errors.New("unexpected end of input")},
	})
	out := buf.String()

	if !strings.Contains(out, "FAILED") {
		t.Errorf("failed run not marked FAILED:\n%s", out)
	}
	if !strings.Contains(out, "unexpected end of input") {
		t.Errorf("failure cause not reported:\n%s", out)
	}
	if strings.Contains(out, "MB/s") {
		t.Errorf("failed run rendered with throughput:\n%s", out)
	}
}

func TestPrintSummary(t *testing.T) {
	agg := NewAggregator()
	agg.Add(Result{Library: "winner", Operation: OpParse, ThroughputMBs: 250.0, AvgLatencyUs: 4.0})
	agg.Add(Result{Library: "runner-up", Operation: OpParse, ThroughputMBs: 100.0, AvgLatencyUs: 10.0})
	agg.Add(Result{Library: "writer", Operation: OpStringify, ThroughputMBs: 180.0, AvgLatencyUs: 6.0})

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(agg, 3<<20, 1500000)
	out := buf.String()

	for _, want := range []string{
		"SUMMARY FOR CROSS-LANGUAGE COMPARISON",
		"Data size: 3.00 MB",
		"Iterations: 1,500,000",
		"Best Parse: winner at 250.00 MB/s (4.00 us/op)",
		"Best Stringify: writer at 180.00 MB/s (6.00 us/op)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
