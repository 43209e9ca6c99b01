package codec

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// jsoniterCodec benchmarks json-iterator/go. The std-compatible config keeps
// map key ordering and float formatting comparable with the baseline.
type jsoniterCodec struct {
	api jsoniter.API
}

// NewJsoniter returns the json-iterator adapter.
func NewJsoniter() Codec {
	return jsoniterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

func (jsoniterCodec) Name() string { return "jsoniter" }

func (c jsoniterCodec) Parse(data []byte) (Document, error) {
	var t timeline.Timeline
	if err := c.api.Unmarshal(data, &t); err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return &t, nil
}

func (c jsoniterCodec) Serialize(doc Document) ([]byte, error) {
	t, err := asTimeline(c.Name(), doc)
	if err != nil {
		return nil, err
	}
	out, err := c.api.Marshal(t)
	if err != nil {
		return nil, NewSerializeError(c.Name(), err)
	}
	return out, nil
}
