package wacz

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingManifest reports a container without a datapackage.json entry.
	ErrMissingManifest = errors.New("wacz: missing datapackage.json manifest")
	// ErrMalformedManifest reports a manifest entry that is not valid JSON.
	ErrMalformedManifest = errors.New("wacz: malformed datapackage.json manifest")
	// ErrCorruptEntry reports an archive entry whose bytes cannot be read.
	ErrCorruptEntry = errors.New("wacz: corrupt archive entry")
)

// MissingFieldError reports a manifest that lacks a required key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("wacz: manifest is missing required field %q", e.Field)
}

// MalformedTimestampError reports a created timestamp whose leading
// characters do not form a YYYY-MM period token.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("wacz: manifest created timestamp %q does not start with YYYY-MM", e.Value)
}
