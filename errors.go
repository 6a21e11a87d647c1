package ucdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse failure modes. A failed [Parse] returns a
// [*ParseError] that wraps exactly one of these, so callers can branch with
// [errors.Is].
var (
	// ErrMalformedSection reports a section with no unescaped '='.
	ErrMalformedSection = errors.New("section is missing '='")
	// ErrUnknownSection reports a key with no recognized prefix.
	ErrUnknownSection = errors.New("unknown section prefix")
	// ErrDuplicateSection reports a second 't' or 'a' section.
	ErrDuplicateSection = errors.New("duplicate section")
	// ErrMissingSourceType reports a document with no 't' section.
	ErrMissingSourceType = errors.New("missing required type section")
	// ErrInvalidSourceType reports a 't' value with an empty category.
	ErrInvalidSourceType = errors.New("invalid source type")
	// ErrInvalidAccessMode reports an 'a' value outside r, w, rw.
	ErrInvalidAccessMode = errors.New("invalid access mode")

	// ErrInvalidField reports a fields entry that is not name:type or
	// name:type:extra.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidEndpoint reports an endpoints entry that is not path:method.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// A ParseError describes the first violation encountered while parsing a
// document. Err is one of the sentinel errors above; Detail is the offending
// key, value, or raw section text.
type ParseError struct {
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(err error, detail string) *ParseError {
	return &ParseError{Err: err, Detail: detail}
}
