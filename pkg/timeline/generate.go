package timeline

import "fmt"

// Default rate for all generated RationalTimes, in frames per second.
const defaultRate = 24.0

// Generate builds a synthetic timeline document from shape parameters.
//
// It is a pure function: identical (videoTracks, audioTracks, clipsPerTrack)
// inputs always produce a structurally identical document, and therefore
// byte-identical output under any fixed deterministic serializer. All video
// tracks come first (V1..Vn), then all audio tracks (A1..An); clip fields
// are exact functions of the clip's index within its track.
//
// Zero counts are legal and yield empty children at that level. No upper
// bound is enforced; callers choose sizes that fit memory.
func Generate(videoTracks, audioTracks, clipsPerTrack int) *Timeline {
	tracks := make([]Track, 0, videoTracks+audioTracks)
	for i := 0; i < videoTracks; i++ {
		tracks = append(tracks, generateTrack(fmt.Sprintf("V%d", i+1), KindVideo, len(tracks), clipsPerTrack))
	}
	for i := 0; i < audioTracks; i++ {
		tracks = append(tracks, generateTrack(fmt.Sprintf("A%d", i+1), KindAudio, len(tracks), clipsPerTrack))
	}

	return &Timeline{
		Schema: SchemaTimeline,
		Name:   "Benchmark Timeline",
		GlobalStart: RationalTime{
			Schema: SchemaRationalTime,
			Value:  86400.0,
			Rate:   defaultRate,
		},
		Tracks: Stack{
			Schema:   SchemaStack,
			Name:     "tracks",
			Children: tracks,
			Metadata: map[string]any{},
		},
		Metadata: map[string]any{
			"project":    "Benchmark Project",
			"created_by": "json-benchmark",
		},
	}
}

func generateTrack(name, kind string, trackIndex, clipCount int) Track {
	clips := make([]Clip, clipCount)
	for i := 0; i < clipCount; i++ {
		clips[i] = generateClip(i)
	}
	return Track{
		Schema:   SchemaTrack,
		Name:     name,
		Kind:     kind,
		Children: clips,
		Metadata: map[string]any{
			"track_index": trackIndex,
			"locked":      false,
			"muted":       false,
		},
	}
}

func generateClip(index int) Clip {
	sourceRange := &TimeRange{
		Schema: SchemaTimeRange,
		StartTime: RationalTime{
			Schema: SchemaRationalTime,
			Value:  float64(index * 24),
			Rate:   defaultRate,
		},
		Duration: RationalTime{
			Schema: SchemaRationalTime,
			Value:  48.0,
			Rate:   defaultRate,
		},
	}

	mediaRef := &MediaReference{
		Schema:    SchemaExternalRef,
		Name:      fmt.Sprintf("media_%d", index),
		TargetURL: fmt.Sprintf("file:///media/project/footage/clip_%05d.mov", index),
		AvailableRange: &TimeRange{
			Schema: SchemaTimeRange,
			StartTime: RationalTime{
				Schema: SchemaRationalTime,
				Value:  0,
				Rate:   defaultRate,
			},
			Duration: RationalTime{
				Schema: SchemaRationalTime,
				Value:  1000,
				Rate:   defaultRate,
			},
		},
		Metadata: map[string]any{
			"codec":      "ProRes422HQ",
			"resolution": "1920x1080",
			"colorspace": "Rec709",
		},
	}

	return Clip{
		Schema:         SchemaClip,
		Name:           fmt.Sprintf("Shot_%04d", index),
		Enabled:        true,
		SourceRange:    sourceRange,
		MediaReference: mediaRef,
		Metadata: map[string]any{
			"shot_type":  "wide",
			"scene":      fmt.Sprintf("Scene_%d", index/10),
			"take":       index % 5,
			"notes":      "This is a sample note for the clip with some additional text to make it more realistic.",
			"color_tag":  "green",
			"approved":   true,
			"frame_rate": defaultRate,
		},
		ActiveMediaRef: "DEFAULT_MEDIA",
		Markers:        []Marker{},
		Effects:        []Effect{},
	}
}
