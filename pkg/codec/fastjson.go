package codec

import (
	"github.com/valyala/fastjson"
)

// fastjsonCodec benchmarks valyala/fastjson, a tree parser in the same
// mold as RapidJSON: Parse yields a *fastjson.Value and Serialize writes
// that tree back out, rather than going through typed structs.
//
// Parse deliberately uses the package-level entry point instead of reusing
// a fastjson.Parser. A reused parser invalidates every previously returned
// Value on the next Parse, and the file-mode stringify benchmark needs all
// parsed documents alive at once.
type fastjsonCodec struct{}

// NewFastJSON returns the fastjson adapter.
func NewFastJSON() Codec { return fastjsonCodec{} }

func (fastjsonCodec) Name() string { return "fastjson" }

func (c fastjsonCodec) Parse(data []byte) (Document, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, NewParseError(c.Name(), err)
	}
	return v, nil
}

func (c fastjsonCodec) Serialize(doc Document) ([]byte, error) {
	v, ok := doc.(*fastjson.Value)
	if !ok {
		return nil, NewSerializeError(c.Name(), ErrBadDocument)
	}
	return v.MarshalTo(nil), nil
}
