package ast

import (
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// ErrAttributeNotFound is returned by Attributes.Lookup for an absent name.
// Compare with errors.Is; the returned error carries the name in its context.
var ErrAttributeNotFound = errors.NotFoundError("attribute not found").Build()

// Attribute is one name=value pair of an HTML node.
type Attribute struct {
	Name  string
	Value Node
}

// Attributes keeps attributes in source order. Names need not be unique.
type Attributes []Attribute

// Get returns the value of the first attribute called name.
func (a Attributes) Get(name string) (Node, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Lookup is Get for callers that need an error: a missing name yields a
// not_found ClassifiedError matching ErrAttributeNotFound.
func (a Attributes) Lookup(name string) (Node, error) {
	if v, ok := a.Get(name); ok {
		return v, nil
	}
	return nil, ErrAttributeNotFound.WithContext(errors.ContextAttribute, name)
}

// Names returns the attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}
