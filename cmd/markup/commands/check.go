package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Files    []string `arg:"" name:"file" help:"Input files"`
	Encoding string   `short:"e" help:"Input encoding: utf-8 or latin1 (overrides config); positions count input bytes"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	enc, err := resolveEncoding(c.Encoding, cfg)
	if err != nil {
		return err
	}

	driver, _ := newDriver(cfg, g.Logger)

	var first error
	failed := 0
	for _, path := range c.Files {
		in, err := readInput(g, path, enc)
		if err != nil {
			fmt.Fprintf(g.Stdout, "FAIL %s: %v\n", path, err)
			failed++
			if first == nil {
				first = err
			}
			continue
		}

		res := parseInput(driver, in)
		if res.Complete {
			fmt.Fprintf(g.Stdout, "ok   %s (%s, %d nodes)\n", in.Name, humanize.Bytes(uint64(in.Size)), ast.Count(res.Root))
			continue
		}
		fmt.Fprintf(g.Stdout, "FAIL %s:%d:%d: %v\n", in.Name, res.Line, res.Column, res.Err)
		failed++
		if first == nil {
			first = res.Err
		}
	}

	if failed == 0 {
		return nil
	}
	return errors.WrapError(first, errors.GetCategory(first), fmt.Sprintf("%d of %d inputs failed", failed, len(c.Files))).Build()
}
