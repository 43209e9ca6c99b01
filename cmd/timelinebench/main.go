// Command timelinebench measures JSON parse/serialize throughput across
// candidate libraries over a realistic editorial-timeline document.
//
// Usage:
//
//	timelinebench [options]
//
// Options:
//
//	-video-tracks N     Video track count for the generated document (default 3)
//	-audio-tracks N     Audio track count (default 2)
//	-clips N            Clips per track (default 100)
//	-iterations N       Measured iterations per (codec, operation) (default 100)
//	-testdata DIR       Also run file-corpus benchmarks over DIR
//	-generate DIR       Generate sample files to DIR and exit
//	-generate-count N   Number of files to generate (default 10)
//	-version            Print version information and exit
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/blockberries/timelinebench/pkg/bench"
	"github.com/blockberries/timelinebench/pkg/codec"
	"github.com/blockberries/timelinebench/pkg/corpus"
	"github.com/blockberries/timelinebench/pkg/timeline"
)

func main() {
	cfg := bench.DefaultConfig()

	flag.IntVar(&cfg.VideoTracks, "video-tracks", cfg.VideoTracks, "Number of video tracks")
	flag.IntVar(&cfg.AudioTracks, "audio-tracks", cfg.AudioTracks, "Number of audio tracks")
	flag.IntVar(&cfg.ClipsPerTrack, "clips", cfg.ClipsPerTrack, "Clips per track")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Number of iterations")
	flag.StringVar(&cfg.TestdataDir, "testdata", "", "Directory with .json test files")
	flag.StringVar(&cfg.GenerateDir, "generate", "", "Generate test data to directory and exit")
	flag.IntVar(&cfg.GenerateCount, "generate-count", cfg.GenerateCount, "Number of test files to generate")
	version := flag.Bool("version", false, "Print version information")
	flag.Parse()

	if *version {
		fmt.Printf("timelinebench version %s\n", bench.VersionInfo())
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.GenerateDir != "" {
		if err := runGenerate(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBenchmarks(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(cfg bench.Config) error {
	fmt.Printf("Generating %d test files to %s\n", cfg.GenerateCount, cfg.GenerateDir)
	files, err := corpus.Generate(cfg.GenerateDir, cfg.GenerateCount)
	for _, f := range files {
		fmt.Printf("  Generated %s (%d bytes)\n", f.Path, f.Size)
	}
	return err
}

func runBenchmarks(cfg bench.Config) error {
	fmt.Println("Go JSON Throughput Benchmark")
	fmt.Println("============================")
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("CPUs: %d\n", runtime.NumCPU())

	fmt.Printf("\nGenerating timeline: %d video + %d audio tracks, %d clips each\n",
		cfg.VideoTracks, cfg.AudioTracks, cfg.ClipsPerTrack)

	doc := timeline.Generate(cfg.VideoTracks, cfg.AudioTracks, cfg.ClipsPerTrack)

	// The baseline payload every codec parses comes from the stdlib codec,
	// so all libraries see identical input bytes.
	baseline := codec.NewStdlib()
	payload, err := baseline.Serialize(doc)
	if err != nil {
		return err
	}
	fmt.Printf("Timeline JSON size: %.2f MB\n", float64(len(payload))/(1<<20))
	fmt.Printf("Running %d iterations per library\n", cfg.Iterations)

	agg := bench.NewAggregator()

	registry := codec.NewRegistry()
	for _, c := range codec.Default() {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	for _, c := range registry.All() {
		fmt.Printf("\nBenchmarking %s...\n", c.Name())

		result := bench.Run(c, bench.OpStringify, payload, cfg.Iterations)
		agg.Add(result)
		printProgress(result)

		result = bench.Run(c, bench.OpParse, payload, cfg.Iterations)
		agg.Add(result)
		printProgress(result)
	}

	if cfg.TestdataDir != "" {
		runFileBenchmarks(cfg, registry, agg)
	}

	printer := bench.NewPrinter(os.Stdout)
	printer.PrintResults(agg.Sorted())
	printer.PrintSummary(agg, int64(len(payload)), cfg.Iterations)
	return nil
}

// runFileBenchmarks adds the corpus results. Corpus problems are
// diagnostics, not failures: the in-memory suite already ran.
func runFileBenchmarks(cfg bench.Config, registry *codec.Registry, agg *bench.Aggregator) {
	passes, ok := cfg.FilePasses()
	if !ok {
		fmt.Fprintf(os.Stderr, "Skipping file benchmarks: -iterations %d yields zero corpus passes (minimum 10)\n", cfg.Iterations)
		return
	}

	fmt.Printf("\nLoading test files from %s\n", cfg.TestdataDir)
	c, err := corpus.Load(cfg.TestdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Skipping file benchmarks: %v\n", err)
		return
	}
	fmt.Printf("Loaded %d files, total %.2f MB\n", c.Len(), float64(c.TotalBytes())/(1<<20))

	for _, cd := range registry.All() {
		fmt.Printf("\nBenchmarking %s with files...\n", cd.Name())
		parse, stringify := bench.RunFiles(cd, c.Files, passes)
		agg.Add(parse)
		agg.Add(stringify)
		printProgress(parse)
		printProgress(stringify)
	}
}

func printProgress(r bench.Result) {
	if r.Failed() {
		fmt.Printf("  %s: FAILED (%v)\n", r.Operation, r.Err)
		return
	}
	fmt.Printf("  %s: %.2f MB/s\n", r.Operation, r.ThroughputMBs)
}
