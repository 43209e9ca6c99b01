package codec

import (
	"encoding/json"

	"github.com/blockberries/timelinebench/pkg/timeline"
)

// stdlibCodec benchmarks encoding/json, the baseline every other library
// is compared against. It is also the canonical serializer the harness uses
// for baseline payloads and corpus files.
type stdlibCodec struct{}

// NewStdlib returns the encoding/json adapter.
func NewStdlib() Codec { return stdlibCodec{} }

func (stdlibCodec) Name() string { return "encoding/json" }

func (c stdlibCodec) Parse(data []byte) (Document, error) {
	var t timeline.Timeline
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return &t, nil
}

func (c stdlibCodec) Serialize(doc Document) ([]byte, error) {
	t, err := asTimeline(c.Name(), doc)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(t)
	if err != nil {
		return nil, NewSerializeError(c.Name(), err)
	}
	return out, nil
}

// asTimeline checks that a document handed to a struct-based adapter came
// from its own Parse (or the generator, which produces the same type).
func asTimeline(codec string, doc Document) (*timeline.Timeline, error) {
	t, ok := doc.(*timeline.Timeline)
	if !ok {
		return nil, NewSerializeError(codec, ErrBadDocument)
	}
	return t, nil
}
