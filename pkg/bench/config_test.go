package bench

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults_valid", func(c *Config) {}, ""},
		{"zero_tracks_valid", func(c *Config) { c.VideoTracks, c.AudioTracks, c.ClipsPerTrack = 0, 0, 0 }, ""},
		{"negative_video", func(c *Config) { c.VideoTracks = -1 }, "video-tracks"},
		{"negative_audio", func(c *Config) { c.AudioTracks = -2 }, "audio-tracks"},
		{"negative_clips", func(c *Config) { c.ClipsPerTrack = -1 }, "clips"},
		{"zero_iterations", func(c *Config) { c.Iterations = 0 }, "iterations"},
		{"generate_zero_count", func(c *Config) { c.GenerateDir = "out"; c.GenerateCount = 0 }, "generate-count"},
		{"zero_count_without_generate", func(c *Config) { c.GenerateCount = 0 }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tc.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tc.wantField)
			}
		})
	}
}

func TestConfigFilePasses(t *testing.T) {
	cases := []struct {
		iterations int
		passes     int
		ok         bool
	}{
		{100, 10, true},
		{10, 1, true},
		{19, 1, true},
		{9, 0, false},
		{1, 0, false},
	}

	for _, tc := range cases {
		cfg := Config{Iterations: tc.iterations}
		passes, ok := cfg.FilePasses()
		if passes != tc.passes || ok != tc.ok {
			t.Errorf("FilePasses() with %d iterations = (%d, %v), want (%d, %v)",
				tc.iterations, passes, ok, tc.passes, tc.ok)
		}
	}
}
