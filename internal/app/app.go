// Package app wires the editor together: configuration, logging, the
// raw terminal, and the interactive loop, with cleanup on every exit
// path.
package app

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/Salmoneer/editor/internal/config"
	"github.com/Salmoneer/editor/internal/editor"
	"github.com/Salmoneer/editor/internal/logger"
	"github.com/Salmoneer/editor/internal/term"
)

// App is the top-level runtime for the editor.
type App struct{}

func New() *App {
	return &App{}
}

// Run owns the session lifecycle. Cleanup failures are folded into the
// returned error: a terminal left unrestored is as real a failure as
// whatever ended the session.
func (a *App) Run() (err error) {
	cfg, cfgErr := config.Load()

	if err := logger.Init(cfg.Log.Debug, cfg.Log.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		err = multierr.Append(err, logger.Close())
	}()
	if cfgErr != nil {
		// Defaults are already in place; a broken config file should
		// not keep the editor from starting.
		logger.Warn("config load failed, using defaults", "error", cfgErr)
	}

	t, err := term.Open(os.Stdin, os.Stdout, term.Options{ReadTimeout: cfg.ReadTimeout()})
	if err != nil {
		logger.Error("terminal setup failed", "error", err)
		return err
	}
	defer func() {
		err = multierr.Append(err, t.Restore())
	}()

	rows, cols, err := t.Size()
	if err != nil {
		logger.Error("terminal size query failed", "error", err)
		return err
	}
	logger.Info("session started", "rows", rows, "cols", cols)

	if err := editor.New(t, t).Run(); err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	return nil
}
