package codec

import (
	"github.com/bytedance/sonic"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// sonicCodec benchmarks bytedance/sonic. ConfigStd sorts map keys and
// escapes HTML like encoding/json, so output bytes stay comparable across
// libraries.
type sonicCodec struct {
	api sonic.API
}

// NewSonic returns the sonic adapter.
func NewSonic() Codec {
	return sonicCodec{api: sonic.ConfigStd}
}

func (sonicCodec) Name() string { return "sonic" }

func (c sonicCodec) Parse(data []byte) (Document, error) {
	var t timeline.Timeline
	if err := c.api.Unmarshal(data, &t); err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return &t, nil
}

func (c sonicCodec) Serialize(doc Document) ([]byte, error) {
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
