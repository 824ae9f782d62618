package markup

import (
	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// requiredAttrs lists the attributes each generated markdown element needs.
var requiredAttrs = map[string][]string{
	"markdown-a":        {"href"},
	"markdown-img":      {"alt", "src"},
	"markdown-download": {"href"},
}

// CheckAttributes verifies that every generated markdown element carries its
// required attributes and returns the first missing one as a not_found error.
func CheckAttributes(root ast.Node) error {
	var err error
	check := func(tag string, attrs ast.Attributes) {
		for _, name := range requiredAttrs[tag] {
			if _, lerr := attrs.Lookup(name); lerr != nil {
				ce, _ := errors.AsClassified(lerr)
				err = ce.WithContext(errors.ContextConstruct, tag)
				return
			}
		}
	}
	ast.Walk(root, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		switch n := n.(type) {
		case ast.HTMLNode:
			check(n.Tag, n.Attrs)
		case ast.HTMLSelfNode:
			check(n.Tag, n.Attrs)
		}
		return true
	})
	return err
}
