// Package yaml provides the YAML parsing collaborator for the config package.
//
// This package uses github.com/goccy/go-yaml to turn a document into a generic
// value tree: mappings become map[string]any, sequences become []any, and
// scalars become string, bool, float64, uint64/int64 or nil. The config
// package walks that tree; it never sees YAML syntax.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data)
//
//	var server ServerConfig
//	err = parser.Decode(tree.(map[string]any)["server"], &server)
//
// Syntax errors are returned unwrapped so the goccy diagnostic (line, column
// and message) reaches the caller verbatim.
package yaml
