package json

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Parser implements config.Parser and config.Decoder for JSON documents.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns JSON data into a generic value tree.
// Empty input produces an empty mapping.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var tree any

	err := json.Unmarshal(data, &tree)
	if err != nil {
		return nil, err //nolint:wrapcheck // diagnostic is surfaced verbatim
	}

	if tree == nil {
		return map[string]any{}, nil
	}

	return tree, nil
}

// Decode converts a node of a parsed tree into target, honouring json struct tags.
func (p *Parser) Decode(value any, target any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
