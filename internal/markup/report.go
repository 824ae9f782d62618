package markup

import (
	"io"
	"strings"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

var rule = strings.Repeat("-", 80) + "\n"

// Report writes the human-readable banner for res: the verdict, the dump of
// the tree built so far and, on failure, the unconsumed input.
func Report(w io.Writer, name string, res Result) error {
	var sb strings.Builder
	sb.WriteString(rule)
	if res.Complete {
		sb.WriteString("Parsing " + name + " succeeded.\n")
	} else {
		sb.WriteString("Parsing " + name + " failed, stopped at\n")
	}
	sb.WriteString(rule)
	dumpErr := ast.Fprint(&sb, res.Root)
	sb.WriteString(rule)
	if !res.Complete {
		sb.WriteString("Remaining input\n")
		sb.WriteString(res.Remaining + "\n")
		sb.WriteString(rule)
		sb.WriteString("!!! " + name + " parsing FAILED!\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write report").Build()
	}
	return dumpErr
}
