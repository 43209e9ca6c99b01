// Package timeline defines the synthetic editorial-timeline document used as
// the fixed workload for all codec benchmarks, along with a deterministic
// generator for it.
//
// The wire schema (OTIO_SCHEMA tags, key names, nesting) is a fixed contract:
// every candidate codec must see byte-comparable documents, so the struct
// field order below matches the emitted key order of std-compatible encoders.
package timeline

// Schema tags carried by each node type.
const (
	SchemaTimeline     = "Timeline.1"
	SchemaStack        = "Stack.1"
	SchemaTrack        = "Track.1"
	SchemaClip         = "Clip.2"
	SchemaTimeRange    = "TimeRange.1"
	SchemaRationalTime = "RationalTime.1"
	SchemaExternalRef  = "ExternalReference.1"
	SchemaMarker       = "Marker.2"
	SchemaEffect       = "Effect.1"
)

// Track kinds.
const (
	KindVideo = "Video"
	KindAudio = "Audio"
)

// RationalTime is a value/rate timestamp pair.
type RationalTime struct {
	Schema string  `json:"OTIO_SCHEMA"`
	Value  float64 `json:"value"`
	Rate   float64 `json:"rate"`
}

// TimeRange is a start+duration pair of RationalTimes.
type TimeRange struct {
	Schema    string       `json:"OTIO_SCHEMA"`
	StartTime RationalTime `json:"start_time"`
	Duration  RationalTime `json:"duration"`
}

// MediaReference points a clip at its backing media.
type MediaReference struct {
	Schema         string         `json:"OTIO_SCHEMA"`
	Name           string         `json:"name"`
	TargetURL      string         `json:"target_url"`
	AvailableRange *TimeRange     `json:"available_range"`
	Metadata       map[string]any `json:"metadata"`
}

// Marker annotates a range within a clip.
type Marker struct {
	Schema      string         `json:"OTIO_SCHEMA"`
	Name        string         `json:"name"`
	MarkedRange TimeRange      `json:"marked_range"`
	Color       string         `json:"color"`
	Metadata    map[string]any `json:"metadata"`
}

// Effect is a named processing step attached to a clip.
type Effect struct {
	Schema   string         `json:"OTIO_SCHEMA"`
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
}

// Clip is a single shot on a track.
type Clip struct {
	Schema         string          `json:"OTIO_SCHEMA"`
	Name           string          `json:"name"`
	Enabled        bool            `json:"enabled"`
	SourceRange    *TimeRange      `json:"source_range"`
	MediaReference *MediaReference `json:"media_reference"`
	Metadata       map[string]any  `json:"metadata"`
	ActiveMediaRef string          `json:"active_media_reference_key"`
	Markers        []Marker        `json:"markers"`
	Effects        []Effect        `json:"effects"`
}

// Track is an ordered sequence of clips of one kind.
type Track struct {
	Schema   string         `json:"OTIO_SCHEMA"`
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	Children []Clip         `json:"children"`
	Metadata map[string]any `json:"metadata"`
}

// Stack is the container holding all tracks.
type Stack struct {
	Schema   string         `json:"OTIO_SCHEMA"`
	Name     string         `json:"name"`
	Children []Track        `json:"children"`
	Metadata map[string]any `json:"metadata"`
}

// Timeline is the document root.
type Timeline struct {
	Schema      string         `json:"OTIO_SCHEMA"`
	Name        string         `json:"name"`
	GlobalStart RationalTime   `json:"global_start_time"`
	Tracks      Stack          `json:"tracks"`
	Metadata    map[string]any `json:"metadata"`
}

// TrackCount returns the number of tracks in the document.
func (t *Timeline) TrackCount() int {
	return len(t.Tracks.Children)
}

// ClipCount returns the total number of clips across all tracks.
func (t *Timeline) ClipCount() int {
	n := 0
	for i := range t.Tracks.Children {
		n += len(t.Tracks.Children[i].Children)
	}
	return n
}
