// Package normalization maps user-supplied spellings of enumerated
// configuration values onto typed constants.
package normalization

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// EnumNormalizer maps the accepted spellings of one configuration field onto T.
// Lookup ignores case and surrounding whitespace.
type EnumNormalizer[T comparable] struct {
	field    string
	values   map[string]T
	fallback T
	keys     []string // sorted, for error messages
}

// NewEnumNormalizer registers every key of values as a spelling for field.
// fallback is returned for empty input and, by Normalize, for unknown input.
func NewEnumNormalizer[T comparable](field string, values map[string]T, fallback T) *EnumNormalizer[T] {
	e := &EnumNormalizer[T]{
		field:    field,
		values:   make(map[string]T, len(values)),
		fallback: fallback,
		keys:     make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		e.values[key] = v
		e.keys = append(e.keys, key)
	}
	slices.Sort(e.keys)
	return e
}

// Field returns the configuration path this normalizer validates.
func (e *EnumNormalizer[T]) Field() string { return e.field }

// Normalize is the lenient lookup used for flags with a sensible fallback.
func (e *EnumNormalizer[T]) Normalize(raw string) T {
	if v, ok := e.values[clean(raw)]; ok {
		return v
	}
	return e.fallback
}

// NormalizeWithValidation is the strict lookup: unknown spellings are a
// config error naming the field and the accepted spellings.
func (e *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	key := clean(raw)
	if key == "" {
		return e.fallback, nil
	}
	if v, ok := e.values[key]; ok {
		return v, nil
	}

	var zero T
	return zero, errors.ConfigError(fmt.Sprintf("invalid %s %q, valid options: %s", e.field, raw, strings.Join(e.keys, ", "))).
		WithContext("field", e.field).
		WithContext("valid", e.ValidValues()).
		Build()
}

// Canonicalize validates raw and, when the stored spelling differs from the
// canonical one (an alias, other case, padding), describes the rewrite.
// Empty input is left to the default appliers and never warns.
func (e *EnumNormalizer[T]) Canonicalize(raw string) (T, string, error) {
	v, err := e.NormalizeWithValidation(raw)
	if err != nil || raw == "" {
		return v, "", err
	}
	canonical := fmt.Sprint(v)
	if canonical == raw {
		return v, "", nil
	}
	return v, fmt.Sprintf("normalized %s from '%s' to '%s'", e.field, raw, canonical), nil
}

// ValidValues returns the accepted spellings, sorted.
func (e *EnumNormalizer[T]) ValidValues() []string {
	return slices.Clone(e.keys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
