package config

import "fmt"

// Handle gives read access to one parsed configuration file.
// The tree is shared with the Store and other handles; values returned by Get must not be modified.
type Handle struct {
	path    string
	tree    any
	decoder Decoder
}

// Path returns the canonical path of the file.
func (h *Handle) Path() string {
	return h.path
}

// Lookup resolves a dotted key. It reports false when the key is missing or holds null.
func (h *Handle) Lookup(key string) (any, bool) {
	return h.LookupPath(ParseKey(key))
}

// LookupPath is Lookup for an explicit Key.
func (h *Handle) LookupPath(key Key) (any, bool) {
	if h == nil {
		return nil, false
	}

	value, found := Resolve(h.tree, key)
	if !found || value == nil {
		return nil, false
	}

	return value, true
}

// Get returns the value at a dotted key, or fallback when it is missing or null.
func (h *Handle) Get(key string, fallback any) any {
	return h.GetPath(ParseKey(key), fallback)
}

// GetPath is Get for an explicit Key.
func (h *Handle) GetPath(key Key, fallback any) any {
	value, found := h.LookupPath(key)
	if !found {
		return fallback
	}

	return value
}

// String returns the string at key, or fallback when it is missing, null or not a string.
func (h *Handle) String(key string, fallback string) string {
	value, ok := h.Get(key, nil).(string)
	if !ok {
		return fallback
	}

	return value
}

// Int returns the integral number at key, or fallback when it is missing, null or not an integral number.
func (h *Handle) Int(key string, fallback int) int {
	value, ok := toInt(h.Get(key, nil))
	if !ok {
		return fallback
	}

	return value
}

// Float returns the number at key, or fallback when it is missing, null or not a number.
// Numeric strings are not converted.
func (h *Handle) Float(key string, fallback float64) float64 {
	value := h.Get(key, nil)
	if _, isString := value.(string); isString {
		return fallback
	}

	number, ok := toNumber(value)
	if !ok {
		return fallback
	}

	return number
}

// Bool returns the boolean at key, or fallback when it is missing, null or not a boolean.
func (h *Handle) Bool(key string, fallback bool) bool {
	value, ok := h.Get(key, nil).(bool)
	if !ok {
		return fallback
	}

	return value
}

// Decode converts the section at a dotted key into target. An empty key decodes the whole document.
func (h *Handle) Decode(key string, target any) error {
	if key == "" {
		return h.DecodePath(nil, target)
	}

	return h.DecodePath(ParseKey(key), target)
}

// DecodePath is Decode for an explicit Key.
func (h *Handle) DecodePath(key Key, target any) error {
	if h == nil || h.decoder == nil {
		return ErrDecodeUnsupported
	}

	value, found := Resolve(h.tree, key)
	if !found {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	err := h.decoder.Decode(value, target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", key.String(), err)
	}

	return nil
}

// Evaluate binds a dotted key and starts an assertion chain.
func (h *Handle) Evaluate(key string) *Evaluation {
	return h.Session().Evaluate(key)
}

// EvaluatePath is Evaluate for an explicit Key.
func (h *Handle) EvaluatePath(key Key) *Evaluation {
	return h.Session().EvaluatePath(key)
}

// Session returns an unbound evaluation session for this handle.
func (h *Handle) Session() *Evaluation {
	return &Evaluation{handle: h}
}
