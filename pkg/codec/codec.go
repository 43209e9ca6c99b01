// Package codec adapts candidate JSON implementations to a common
// parse/serialize capability so the timing engine never depends on any
// particular library.
package codec

import "sync"

// Document is a codec's opaque in-memory representation of a parsed
// timeline. The harness never inspects it; it only hands it back to the
// same codec's Serialize.
type Document = any

// Codec is one candidate JSON library's parse/serialize pair.
//
// Implementations need not be safe for concurrent use: the harness runs one
// codec, one operation at a time. An adapter must not cache results across
// calls in a way that would let one iteration answer for the next; that
// would invalidate the measurement.
type Codec interface {
	// Name identifies the library in reports.
	Name() string

	// Parse decodes serialized timeline JSON into the codec's own
	// representation. It fails if the input is not well-formed according to
	// the library's own grammar.
	Parse(data []byte) (Document, error)

	// Serialize encodes a representation previously produced by Parse.
	// Output is deterministic for a fixed input document.
	Serialize(doc Document) ([]byte, error)
}

// Registry holds the configuration-time list of codecs under comparison.
// Registration order is preserved so reports and tie-breaks are stable.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	order  []string
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Codec)}
}

// Register adds a codec. Registering the same name twice is an error.
func (r *Registry) Register(c Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, ok := r.byName[name]; ok {
		return ErrDuplicateCodec
	}
	r.byName[name] = c
	r.order = append(r.order, name)
	return nil
}

// Lookup finds a codec by name.
func (r *Registry) Lookup(name string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	return c, ok
}

// All returns the registered codecs in registration order.
func (r *Registry) All() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Codec, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.byName[name])
	}
	return result
}

// Size returns the number of registered codecs.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Default returns the full set of built-in adapters in report order, with
// the standard library first as the baseline.
func Default() []Codec {
	return []Codec{
		NewStdlib(),
		NewGoJSON(),
		NewJsoniter(),
		NewSonic(),
		NewSegmentio(),
		NewFastJSON(),
	}
}
