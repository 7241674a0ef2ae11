// Package json provides a JSON parsing collaborator for the config package,
// backed by github.com/goccy/go-json.
//
// The store selects it for files ending in .json. Objects become
// map[string]any, arrays become []any and numbers become float64.
package json
