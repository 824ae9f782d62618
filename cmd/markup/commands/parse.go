package commands

// ParseCmd implements the 'parse' command.
type ParseCmd struct {
	File     string `arg:"" optional:"" help:"Input file; standard input when omitted or '-'"`
	Encoding string `short:"e" help:"Input encoding: utf-8 or latin1 (overrides config); positions count input bytes"`
	Format   string `short:"f" help:"Output format: tree or yaml (overrides config)"`
}

// Run parses one input and prints its report. A failed parse still prints
// the partial tree; the returned error carries the failure category.
func (p *ParseCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	enc, err := resolveEncoding(p.Encoding, cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(p.Format, cfg)
	if err != nil {
		return err
	}

	in, err := readInput(g, p.File, enc)
	if err != nil {
		return err
	}

	driver, _ := newDriver(cfg, g.Logger)
	res := parseInput(driver, in)
	if err := render(g.Stdout, format, in.Name, res); err != nil {
		return err
	}
	return res.Err
}
