package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// Preset is a named document shape used when generating sample corpora.
type Preset struct {
	Name          string
	VideoTracks   int
	AudioTracks   int
	ClipsPerTrack int
}

// Presets are the fixed shapes generate mode cycles through.
var Presets = []Preset{
	{"small", 1, 1, 10},
	{"medium", 2, 2, 50},
	{"standard", 3, 2, 100},
	{"large", 5, 4, 200},
	{"xlarge", 10, 8, 500},
}

// GeneratedFile records one written corpus file.
type GeneratedFile struct {
	Path string
	Size int64
}

// Generate writes count labeled sample documents to dir, cycling through
// the shape presets. Files are named timeline_{preset}_{index}.json with a
// three-digit zero-padded index and hold the pretty-printed document.
func Generate(dir string, count int) ([]GeneratedFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Dir: dir, Message: "create directory", Cause: err}
	}

	written := make([]GeneratedFile, 0, count)
	for i := 0; i < count; i++ {
		preset := Presets[i%len(Presets)]
		doc := timeline.Generate(preset.VideoTracks, preset.AudioTracks, preset.ClipsPerTrack)
		doc.Name = fmt.Sprintf("Timeline_%s_%d", preset.Name, i)

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return written, &Error{Dir: dir, Message: "encode " + doc.Name, Cause: err}
		}

		path := filepath.Join(dir, fmt.Sprintf("timeline_%s_%03d.json", preset.Name, i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, &Error{Dir: dir, Message: "write " + filepath.Base(path), Cause: err}
		}
		written = append(written, GeneratedFile{Path: path, Size: int64(len(data))})
	}
	return written, nil
}
