package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
// These can be checked using errors.Is().
var (
	// ErrDuplicateCodec indicates a codec name was registered more than once.
	ErrDuplicateCodec = errors.New("timelinebench: duplicate codec registration")

	// ErrUnknownCodec indicates a codec name was not found in the registry.
	ErrUnknownCodec = errors.New("timelinebench: unknown codec")

	// ErrBadDocument indicates Serialize was handed a document that did not
	// come from the codec's own Parse (or the generator, for struct codecs).
	ErrBadDocument = errors.New("timelinebench: document not produced by this codec")
)

// Error reports a parse or serialize failure of one registered library.
// It implements the error interface and supports error unwrapping.
type Error struct {
	// Codec is the name of the library that failed.
	Codec string

	// Op is the failing operation, "parse" or "serialize".
	Op string

	// Cause is the underlying library error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("timelinebench: %s %s: %v", e.Codec, e.Op, e.Cause)
	}
	return fmt.Sprintf("timelinebench: %s %s failed", e.Codec, e.Op)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
// This supports errors.Is() for checking the cause.
func (e *Error) Is(target error) bool {
	return e.Cause != nil && errors.Is(e.Cause, target)
}

// NewParseError wraps a library parse failure.
func NewParseError(codec string, cause error) *Error {
	return &Error{Codec: codec, Op: "parse", Cause: cause}
}

// NewSerializeError wraps a library serialize failure.
func NewSerializeError(codec string, cause error) *Error {
	return &Error{Codec: codec, Op: "serialize", Cause: cause}
}
