// Package normalization maps loosely typed config strings onto enum values.
package normalization

import (
	"fmt"
	"slices"
	"strings"
)

// Normalizer converts case- and whitespace-insensitive strings to values of T.
type Normalizer[T comparable] struct {
	name         string
	values       map[string]T
	defaultValue T
	keys         []string
}

// New creates a normalizer named name (used in messages) over values.
func New[T comparable](name string, values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		name:         name,
		values:       make(map[string]T, len(values)),
		defaultValue: defaultValue,
		keys:         make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	slices.Sort(n.keys)
	return n
}

// Normalize returns the matching value, or the default for unknown input.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// Parse is Normalize but reports unknown input as an error.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.values[clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", n.name, raw, n.keys)
}

// NormalizeWithWarning normalizes raw and describes any fallback or rewrite.
// Empty input silently selects the default.
func (n *Normalizer[T]) NormalizeWithWarning(raw string) (T, string) {
	if strings.TrimSpace(raw) == "" {
		return n.defaultValue, ""
	}
	v, err := n.Parse(raw)
	if err != nil {
		return n.defaultValue, fmt.Sprintf("%v; using default", err)
	}
	if cleaned := clean(raw); cleaned != raw {
		return v, fmt.Sprintf("normalized %s from %q to %q", n.name, raw, cleaned)
	}
	return v, ""
}

// ValidKeys returns the accepted keys, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.keys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
