package config

import (
	"errors"
	"fmt"
)

// ErrFileUnreadable is matched by errors for files that are missing, are not regular files, or cannot be read.
var ErrFileUnreadable = errors.New("unable to read the provided configuration file")

// ErrParseFailure is matched by errors reported by the Parser.
var ErrParseFailure = errors.New("unable to parse the provided configuration file")

// ErrNoEvaluationKey is returned by assertions on a session that has no bound key.
var ErrNoEvaluationKey = errors.New("no evaluation keys found, cannot proceed with check")

// ErrRequired is wrapped by violations of IsRequired.
var ErrRequired = errors.New("value is required")

// ErrType is wrapped by violations of the type assertions.
var ErrType = errors.New("value has an unexpected type")

// ErrNotAllowed is wrapped by violations of IsOneOf.
var ErrNotAllowed = errors.New("value is not allowed")

// ErrKeyNotFound is returned when decoding a key that does not resolve.
var ErrKeyNotFound = errors.New("key not found")

// ErrDecodeUnsupported is returned when the file's Parser cannot decode into Go values.
var ErrDecodeUnsupported = errors.New("parser does not support decoding")

// FileError describes a configuration file that could not be located or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %v", ErrFileUnreadable, e.Err)
}

// Unwrap exposes both ErrFileUnreadable and the underlying cause.
func (e *FileError) Unwrap() []error {
	return []error{ErrFileUnreadable, e.Err}
}

// ParseError carries the parser's diagnostic for a file, unchanged in Err.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrParseFailure and the parser's diagnostic.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}

// ViolationError reports a failed assertion for a key.
type ViolationError struct {
	Key    Key
	Reason string
	Err    error
}

func (e *ViolationError) Error() string {
	return e.Key.String() + " " + e.Reason
}

func (e *ViolationError) Unwrap() error {
	return e.Err
}
