package yaml

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Parser implements config.Parser and config.Decoder for YAML documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns YAML data into a generic value tree.
// Empty documents, including comment-only ones, produce an empty mapping.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var tree any

	err := yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, err //nolint:wrapcheck // diagnostic is surfaced verbatim
	}

	if tree == nil {
		return map[string]any{}, nil
	}

	return tree, nil
}

// Decode converts a node of a parsed tree into target, honouring yaml struct tags.
func (p *Parser) Decode(value any, target any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
