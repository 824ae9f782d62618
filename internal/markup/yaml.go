package markup

import (
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// yamlReport is the machine-readable form of a Result.
type yamlReport struct {
	Name      string `yaml:"name"`
	Complete  bool   `yaml:"complete"`
	Offset    int    `yaml:"offset"`
	Line      int    `yaml:"line"`
	Column    int    `yaml:"column"`
	Remaining string `yaml:"remaining,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Category  string `yaml:"category,omitempty"`
	Root      any    `yaml:"root"`
}

// WriteYAML writes res as a YAML document with the tree in ast.Tree form.
func WriteYAML(w io.Writer, name string, res Result) error {
	doc := yamlReport{
		Name:      name,
		Complete:  res.Complete,
		Offset:    res.Offset,
		Line:      res.Line,
		Column:    res.Column,
		Remaining: res.Remaining,
		Root:      ast.Tree(res.Root),
	}
	if res.Err != nil {
		doc.Error = res.Err.Error()
		doc.Category = string(errors.GetCategory(res.Err))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write yaml report").Build()
	}
	if err := enc.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write yaml report").Build()
	}
	return nil
}
