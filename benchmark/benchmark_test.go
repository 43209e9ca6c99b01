// Package benchmark holds Go-native performance comparisons across the JSON
// codecs, complementing the cross-language harness in cmd/timelinebench.
package benchmark

import (
	"encoding/json"
	"testing"

	"github.com/blockberries/timelinebench/pkg/codec"
	"github.com/blockberries/timelinebench/pkg/corpus"
	"github.com/blockberries/timelinebench/pkg/timeline"
)

// payloadFor builds the baseline bytes for one document shape. Every codec
// parses identical input, serialized once by the stdlib encoder.
func payloadFor(b *testing.B, p corpus.Preset) []byte {
	b.Helper()
	data, err := json.Marshal(timeline.Generate(p.VideoTracks, p.AudioTracks, p.ClipsPerTrack))
	if err != nil {
		b.Fatalf("marshal %s document: %v", p.Name, err)
	}
	return data
}

func presetByName(b *testing.B, name string) corpus.Preset {
	b.Helper()
	for _, p := range corpus.Presets {
		if p.Name == name {
			return p
		}
	}
	b.Fatalf("no preset named %s", name)
	return corpus.Preset{}
}

func benchmarkParse(b *testing.B, shape string) {
	payload := payloadFor(b, presetByName(b, shape))

	for _, c := range codec.Default() {
		b.Run(c.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Parse(payload); err != nil {
					b.Fatalf("Parse: %v", err)
				}
			}
		})
	}
}

func benchmarkSerialize(b *testing.B, shape string) {
	payload := payloadFor(b, presetByName(b, shape))

	for _, c := range codec.Default() {
		b.Run(c.Name(), func(b *testing.B) {
			doc, err := c.Parse(payload)
			if err != nil {
				b.Fatalf("Parse: %v", err)
			}
			out, err := c.Serialize(doc)
			if err != nil {
				b.Fatalf("Serialize: %v", err)
			}
			b.SetBytes(int64(len(out)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Serialize(doc); err != nil {
					b.Fatalf("Serialize: %v", err)
				}
			}
		})
	}
}

func BenchmarkParseSmall(b *testing.B)    { benchmarkParse(b, "small") }
func BenchmarkParseStandard(b *testing.B) { benchmarkParse(b, "standard") }
func BenchmarkParseLarge(b *testing.B)    { benchmarkParse(b, "large") }

func BenchmarkSerializeSmall(b *testing.B)    { benchmarkSerialize(b, "small") }
func BenchmarkSerializeStandard(b *testing.B) { benchmarkSerialize(b, "standard") }
func BenchmarkSerializeLarge(b *testing.B)    { benchmarkSerialize(b, "large") }

// TestOutputSizes reports each codec's serialized size per document shape.
// Compact encoders should all land within a few percent of the stdlib size;
// a large divergence would make throughput numbers incomparable.
func TestOutputSizes(t *testing.T) {
	t.Log("| Shape    | Codec         | Bytes     | vs stdlib |")
	t.Log("|----------|---------------|-----------|-----------|")

	for _, preset := range corpus.Presets {
		doc := timeline.Generate(preset.VideoTracks, preset.AudioTracks, preset.ClipsPerTrack)
		baseline, err := json.Marshal(doc)
		if err != nil {
			t.Fatalf("marshal %s document: %v", preset.Name, err)
		}

		for _, c := range codec.Default() {
			parsed, err := c.Parse(baseline)
			if err != nil {
				t.Errorf("%s/%s: parse failed: %v", preset.Name, c.Name(), err)
				continue
			}
			out, err := c.Serialize(parsed)
			if err != nil {
				t.Errorf("%s/%s: serialize failed: %v", preset.Name, c.Name(), err)
				continue
			}
			ratio := float64(len(out)) / float64(len(baseline))
			t.Logf("| %-8s | %-13s | %9d | %8.2fx |", preset.Name, c.Name(), len(out), ratio)

			if ratio < 0.9 || ratio > 1.1 {
				t.Errorf("%s/%s: output size %d diverges from stdlib %d",
					preset.Name, c.Name(), len(out), len(baseline))
			}
		}
	}
}
