package commands

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"git.home.luguber.info/inful/markup/internal/logfields"
	"git.home.luguber.info/inful/markup/internal/metrics"
	"git.home.luguber.info/inful/markup/internal/source"
	"git.home.luguber.info/inful/markup/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	File     string        `arg:"" help:"Input file to watch"`
	Encoding string        `short:"e" help:"Input encoding: utf-8 or latin1 (overrides config); positions count input bytes"`
	Format   string        `short:"f" help:"Output format: tree or yaml (overrides config)"`
	Listen   string        `help:"Serve /metrics on this address (overrides config, enables metrics)"`
	Debounce time.Duration `default:"200ms" help:"Quiet period before reparsing after a change"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	enc, err := resolveEncoding(w.Encoding, cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(w.Format, cfg)
	if err != nil {
		return err
	}

	listen := cfg.Metrics.Listen
	if w.Listen != "" {
		listen = w.Listen
	}
	if listen != "" {
		cfg.Metrics.Enabled = true
	}
	driver, reg := newDriver(cfg, g.Logger)

	var mu sync.Mutex
	reparse := func(context.Context) {
		mu.Lock()
		defer mu.Unlock()

		in, err := source.Read(w.File, enc)
		if err != nil {
			g.Logger.Warn("Reading input failed", logfields.Path(w.File), logfields.Error(err))
			return
		}
		res := parseInput(driver, in)
		if err := render(g.Stdout, format, in.Name, res); err != nil {
			g.Logger.Warn("Writing report failed", logfields.Path(w.File), logfields.Error(err))
		}
	}

	watcher, err := watch.New(w.File, reparse, watch.WithDebounce(w.Debounce), watch.WithLogger(g.Logger))
	if err != nil {
		return err
	}

	if listen != "" {
		srv := serveMetrics(g, listen, metrics.HTTPHandler(reg))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				g.Logger.Warn("Metrics server shutdown failed", logfields.Error(err))
			}
		}()
	}

	reparse(ctx)
	return watcher.Run(ctx)
}

func serveMetrics(g *Global, addr string, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		g.Logger.Info("Serving metrics", logfields.Listen(addr))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			g.Logger.Error("Metrics server failed", logfields.Listen(addr), logfields.Error(err))
		}
	}()
	return srv
}
