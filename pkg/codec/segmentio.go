package codec

import (
	segjson "github.com/segmentio/encoding/json"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// segmentioCodec benchmarks segmentio/encoding, which mirrors the
// encoding/json API.
type segmentioCodec struct{}

// NewSegmentio returns the segmentio/encoding adapter.
func NewSegmentio() Codec { return segmentioCodec{} }

func (segmentioCodec) Name() string { return "segmentio" }

func (c segmentioCodec) Parse(data []byte) (Document, error) {
	var t timeline.Timeline
	if err := segjson.Unmarshal(data, &t); err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return &t, nil
}

func (c segmentioCodec) Serialize(doc Document) ([]byte, error) {
	t, err := asTimeline(c.Name(), doc)
	if err != nil {
		return nil, err
	}
	out, err := segjson.Marshal(t)
	if err != nil {
		return nil, NewSerializeError(c.Name(), err)
	}
	return out, nil
}
