package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/config"
	"github.com/idilsaglam/steps/internal/log"
	"github.com/idilsaglam/steps/internal/session"
	"github.com/idilsaglam/steps/internal/store"
	"github.com/idilsaglam/steps/internal/store/jsonstore"
	"github.com/idilsaglam/steps/internal/store/sqlitestore"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg  *config.Config
	log  *log.Logger
	slot store.Slot
	sess *session.Session
	now  func() time.Time

	closers []io.Closer
}

func openApp(ctx context.Context, opt Options) (*app, error) {
	cfg := opt.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, now: opt.Now}
	if a.now == nil {
		a.now = time.Now
	}

	logger, err := a.openLogger(opt.Stderr)
	if err != nil {
		return nil, err
	}
	a.log = logger

	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		a.close()
		return nil, err
	}

	slot, err := openSlot(cfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	a.slot = slot
	a.closers = append(a.closers, slot)

	a.sess = session.Open(ctx, slot, c, logger)
	return a, nil
}

// openLogger writes to the configured log file: the terminal belongs to the
// UI. If the file cannot be opened, warnings go to stderr instead.
func (a *app) openLogger(stderr io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	f, err := log.OpenFile(a.cfg.LogFile)
	if err != nil {
		fmt.Fprintln(stderr, "log file unavailable, logging to stderr:", err)
		return log.New(log.Config{Level: max(level, slog.LevelWarn), Component: "steps", Output: stderr}), nil
	}
	a.closers = append(a.closers, f)
	l := log.New(log.Config{Level: level, Component: "steps", Output: f})
	log.SetDefault(l)
	return l, nil
}

func openSlot(cfg *config.Config) (store.Slot, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlitestore.Open(cfg.SQLitePath)
	default:
		return jsonstore.Open(cfg.DataDir)
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.log != nil {
			a.log.Warn("close", "error", err)
		}
	}
	a.closers = nil
}
