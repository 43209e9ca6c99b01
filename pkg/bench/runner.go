package bench

import (
	"fmt"
	"runtime"
	"time"

	"github.com/blockberries/timelinebench/pkg/codec"
)

// Warmup discipline, fixed by design for comparability across libraries.
// Warmup amortizes first-call costs (lazy initialization, allocator warmup,
// code-page faulting) that would otherwise bias the first library measured.
const (
	// warmupIterations is the untimed iteration count before a single-payload
	// measured phase.
	warmupIterations = 10

	// warmupFilePasses is the untimed pass count over a file corpus before a
	// file-mode measured phase.
	warmupFilePasses = 5
)

// Run executes one (codec, operation) measurement over a fixed payload:
// warmup, then exactly iterations timed back-to-back operations with no
// intervening I/O. Any codec failure aborts the pair and returns a failed
// Result; results for other pairs are unaffected.
func Run(c codec.Codec, op Operation, payload []byte, iterations int) Result {
	switch op {
	case OpParse:
		return runParse(c, payload, iterations)
	case OpStringify:
		return runStringify(c, payload, iterations)
	default:
		return failedResult(c.Name(), op, fmt.Errorf("timelinebench: operation %q not runnable over a single payload", op))
	}
}

func runParse(c codec.Codec, payload []byte, iterations int) Result {
	for i := 0; i < warmupIterations; i++ {
		if _, err := c.Parse(payload); err != nil {
			return failedResult(c.Name(), OpParse, err)
		}
	}

	runtime.GC()

	// Every iteration parses the same fixed input, so the byte total is
	// input size times iterations.
	totalBytes := int64(len(payload)) * int64(iterations)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := c.Parse(payload); err != nil {
			return failedResult(c.Name(), OpParse, err)
		}
	}
	elapsed := time.Since(start)

	return newResult(c.Name(), OpParse, iterations, totalBytes, elapsed)
}

func runStringify(c codec.Codec, payload []byte, iterations int) Result {
	// Parse once, untimed, to obtain the codec's own representation.
	doc, err := c.Parse(payload)
	if err != nil {
		return failedResult(c.Name(), OpStringify, err)
	}

	for i := 0; i < warmupIterations; i++ {
		if _, err := c.Serialize(doc); err != nil {
			return failedResult(c.Name(), OpStringify, err)
		}
	}

	runtime.GC()

	// Output size should be constant for a fixed document, but it is summed
	// rather than assumed so the total stays honest if it is not.
	var totalBytes int64

	start := time.Now()
	for i := 0; i < iterations; i++ {
		out, err := c.Serialize(doc)
		if err != nil {
			return failedResult(c.Name(), OpStringify, err)
		}
		totalBytes += int64(len(out))
	}
	elapsed := time.Since(start)

	return newResult(c.Name(), OpStringify, iterations, totalBytes, elapsed)
}

// RunFiles executes the file-corpus benchmarks: passes full sweeps over
// every file for parse, then for stringify over the pre-parsed documents.
// The reported iteration count is passes * len(files).
func RunFiles(c codec.Codec, files [][]byte, passes int) (parse, stringify Result) {
	return runParseFiles(c, files, passes), runStringifyFiles(c, files, passes)
}

func runParseFiles(c codec.Codec, files [][]byte, passes int) Result {
	for i := 0; i < warmupFilePasses; i++ {
		for _, f := range files {
			if _, err := c.Parse(f); err != nil {
				return failedResult(c.Name(), OpParseFiles, err)
			}
		}
	}

	runtime.GC()

	var corpusBytes int64
	for _, f := range files {
		corpusBytes += int64(len(f))
	}
	totalBytes := corpusBytes * int64(passes)
	iterations := passes * len(files)

	start := time.Now()
	for i := 0; i < passes; i++ {
		for _, f := range files {
			if _, err := c.Parse(f); err != nil {
				return failedResult(c.Name(), OpParseFiles, err)
			}
		}
	}
	elapsed := time.Since(start)

	return newResult(c.Name(), OpParseFiles, iterations, totalBytes, elapsed)
}

func runStringifyFiles(c codec.Codec, files [][]byte, passes int) Result {
	// Parse every file once, untimed. All documents must stay alive for the
	// duration of the measured phase.
	docs := make([]codec.Document, 0, len(files))
	for _, f := range files {
		doc, err := c.Parse(f)
		if err != nil {
			return failedResult(c.Name(), OpStringifyFiles, err)
		}
		docs = append(docs, doc)
	}

	for i := 0; i < warmupFilePasses; i++ {
		for _, doc := range docs {
			if _, err := c.Serialize(doc); err != nil {
				return failedResult(c.Name(), OpStringifyFiles, err)
			}
		}
	}

	runtime.GC()

	var totalBytes int64
	iterations := passes * len(docs)

	start := time.Now()
	for i := 0; i < passes; i++ {
		for _, doc := range docs {
			out, err := c.Serialize(doc)
			if err != nil {
				return failedResult(c.Name(), OpStringifyFiles, err)
			}
			totalBytes += int64(len(out))
		}
	}
	elapsed := time.Since(start)

	return newResult(c.Name(), OpStringifyFiles, iterations, totalBytes, elapsed)
}
