package config

import "strings"

// Key is an ordered list of mapping keys addressing a node in a value tree.
type Key []string

// ParseKey splits a dotted key into segments. A key without dots is a single segment.
func ParseKey(key string) Key {
	return strings.Split(key, ".")
}

// String returns the dotted form of the key.
func (k Key) String() string {
	return strings.Join(k, ".")
}

// Resolve walks tree along key. It reports false as soon as a segment is not
// present or the current node is not a mapping. A present null resolves to
// (nil, true); Handle lookups fold that case into "missing".
func Resolve(tree any, key Key) (any, bool) {
	current := tree

	for _, segment := range key {
		var found bool

		switch node := current.(type) {
		case map[string]any:
			current, found = node[segment]
		case map[any]any:
			current, found = node[segment]
		default:
			return nil, false
		}

		if !found {
			return nil, false
		}
	}

	return current, true
}
