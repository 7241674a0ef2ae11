package config

import (
	"fmt"
	"log/slog"
)

// Parser turns raw configuration data into a generic value tree made of
// map[string]any, []any and scalars. See config/parser/yaml and config/parser/json.
type Parser interface {
	Parse(data []byte) (any, error)
}

// Decoder is implemented by parsers that can convert a node of their tree into a Go value.
type Decoder interface {
	Decode(value any, target any) error
}

// Source checks, canonicalizes and reads configuration files. See config/source/file.
type Source interface {
	// Canonical fails when path is missing, not a regular file, or not readable,
	// and otherwise returns its absolute, symlink-resolved form.
	Canonical(path string) (string, error)
	ReadFile(path string) ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that decodes the section at key, sets defaults, and validates it.
// An empty key decodes the entire document.
func Provider[T any](target *T, key string) func(*Handle) (*T, error) {
	return func(handle *Handle) (*T, error) {
		err := handle.Decode(key, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", handle.Path()), slog.String("key", key))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
