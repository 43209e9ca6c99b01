package bench

import "fmt"

// Default shape and iteration parameters.
const (
	DefaultVideoTracks   = 3
	DefaultAudioTracks   = 2
	DefaultClipsPerTrack = 100
	DefaultIterations    = 100
	DefaultGenerateCount = 10
)

// Config carries the benchmark parameters forwarded from the CLI layer.
type Config struct {
	// VideoTracks and AudioTracks are the track counts for the generated
	// document.
	VideoTracks int
	AudioTracks int

	// ClipsPerTrack is the clip count for every generated track.
	ClipsPerTrack int

	// Iterations is the measured iteration count per (codec, operation).
	Iterations int

	// TestdataDir, if set, enables file-corpus benchmarks over that
	// directory using Iterations/10 passes.
	TestdataDir string

	// GenerateDir, if set, switches to generate-only mode: write sample
	// files there and exit without benchmarking.
	GenerateDir string

	// GenerateCount is the number of files written in generate mode.
	GenerateCount int
}

// DefaultConfig returns a Config with the standard document shape.
func DefaultConfig() Config {
	return Config{
		VideoTracks:   DefaultVideoTracks,
		AudioTracks:   DefaultAudioTracks,
		ClipsPerTrack: DefaultClipsPerTrack,
		Iterations:    DefaultIterations,
		GenerateCount: DefaultGenerateCount,
	}
}

// ConfigError reports a malformed or out-of-range parameter. It is surfaced
// before any benchmarking starts.
type ConfigError struct {
	// Field is the offending parameter name.
	Field string

	// Message describes what is wrong with it.
	Message string
}

// Error returns a formatted error message.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("timelinebench: config %s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns a ConfigError for the first
// out-of-range parameter.
func (c Config) Validate() error {
	switch {
	case c.VideoTracks < 0:
		return &ConfigError{Field: "video-tracks", Message: "must be non-negative"}
	case c.AudioTracks < 0:
		return &ConfigError{Field: "audio-tracks", Message: "must be non-negative"}
	case c.ClipsPerTrack < 0:
		return &ConfigError{Field: "clips", Message: "must be non-negative"}
	case c.Iterations < 1:
		return &ConfigError{Field: "iterations", Message: "must be at least 1"}
	case c.GenerateDir != "" && c.GenerateCount < 1:
		return &ConfigError{Field: "generate-count", Message: "must be at least 1"}
	}
	return nil
}

// FilePasses returns the corpus pass count derived from Iterations, and
// whether it is usable. Iterations below 10 truncate to zero passes; that
// case is reported explicitly instead of silently running nothing.
func (c Config) FilePasses() (int, bool) {
	passes := c.Iterations / 10
	return passes, passes > 0
}
