// Package app wires grid loading, the single-entry count and the entry-point
// search into one batch run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/beamgrid/energize"
	"github.com/katalvlaran/beamgrid/grid"
	"github.com/katalvlaran/beamgrid/maximize"
)

// App is one configured run.
type App struct {
	cfg    *Config
	stdin  io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewApp builds an App. Results go to out, diagnostics to logW.
func NewApp(cfg *Config, stdin io.Reader, out, logW io.Writer) *App {
	return &App{
		cfg:    cfg,
		stdin:  stdin,
		out:    out,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run loads the grid and prints two lines: the energized count from the
// configured start, then the best count over all boundary entries.
func (a *App) Run(ctx context.Context) error {
	g, err := a.loadGrid()
	if err != nil {
		a.logger.Error("Failed to load grid.", "error", err)
		return err
	}
	a.logger.Info("Grid loaded.", "height", g.Height, "width", g.Width)

	started := time.Now()
	single, err := energize.Energize(g, a.cfg.Start, energize.WithContext(ctx))
	if err != nil {
		a.logger.Error("Propagation failed.", "start", a.cfg.Start.String(), "error", err)
		return err
	}
	a.logger.Info("Single entry energized.", "start", a.cfg.Start.String(),
		"energized", single.Count(), "states", single.States, "rounds", single.Rounds, "elapsed", time.Since(started))

	started = time.Now()
	best, err := maximize.Max(g,
		maximize.WithContext(ctx),
		maximize.WithWorkers(a.cfg.Workers),
		maximize.WithLogger(a.logger),
	)
	if err != nil {
		a.logger.Error("Entry-point search failed.", "error", err)
		return err
	}
	a.logger.Info("Entry-point search finished.", "entry", best.Entry.String(),
		"energized", best.Count, "candidates", best.Candidates, "elapsed", time.Since(started))

	_, err = fmt.Fprintf(a.out, "%d\n%d\n", single.Count(), best.Count)
	return err
}

func (a *App) loadGrid() (*grid.Grid, error) {
	if a.cfg.InputPath == "" {
		a.logger.Debug("Reading grid from stdin.")
		return grid.Parse(a.stdin)
	}
	f, err := os.Open(a.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	a.logger.Debug("Reading grid from file.", "path", a.cfg.InputPath)
	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.InputPath, err)
	}
	return g, nil
}
