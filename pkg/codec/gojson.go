package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// gojsonCodec benchmarks goccy/go-json, a drop-in replacement for the
// standard library encoder.
type gojsonCodec struct{}

// NewGoJSON returns the goccy/go-json adapter.
func NewGoJSON() Codec { return gojsonCodec{} }

func (gojsonCodec) Name() string { return "go-json" }

func (c gojsonCodec) Parse(data []byte) (Document, error) {
	var t timeline.Timeline
	if err := gojson.Unmarshal(data, &t); err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return &t, nil
}

func (c gojsonCodec) Serialize(doc Document) ([]byte, error) {
	t, err := asTimeline(c.Name(), doc)
	if err != nil {
		return nil, err
	}
	out, err := gojson.Marshal(t)
	if err != nil {
		return nil, NewSerializeError(c.Name(), err)
	}
	return out, nil
}
