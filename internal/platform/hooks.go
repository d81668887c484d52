// Package platform holds the per-tick side effects shared by the terminal
// and desktop front ends: config reload, event logging and run persistence.
package platform

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Hooks wraps a running game with the platform services. Nil services are
// skipped. A Hooks value belongs to a single game.
type Hooks struct {
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	configPath string
	game       registry.Game
	saved      bool
}

// NewHooks binds the services to game. configPath is only reloaded when
// watcher is set.
func NewHooks(game registry.Game, store *storage.Store, logger *log.Logger, watcher *config.Watcher, configPath string) *Hooks {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hooks{
		store:      store,
		logger:     logger.With("game", game.ID()),
		watcher:    watcher,
		configPath: configPath,
		game:       game,
	}
}

// Logger returns the game-scoped logger.
func (h *Hooks) Logger() *log.Logger {
	return h.logger
}

// BeforeStep applies a pending config change.
func (h *Hooks) BeforeStep() {
	if h.watcher == nil || h.configPath == "" {
		return
	}
	path, ok := h.watcher.Poll()
	if !ok || filepath.Clean(path) != filepath.Clean(h.configPath) {
		return
	}
	r, ok := h.game.(registry.Reloader)
	if !ok {
		return
	}
	if err := r.Reload(path); err != nil {
		h.logger.Warn("config reload failed, keeping current tuning", "path", path, "err", err)
		return
	}
	h.logger.Info("config reloaded", "path", path)
}

// AfterStep logs the tick's events and saves the run once per game over.
func (h *Hooks) AfterStep(state core.GameState) {
	h.flushLog()

	if !state.GameOver {
		h.saved = false
		return
	}
	if !h.saved {
		h.saveRun(state)
		h.saved = true
	}
}

// flushLog forwards pending game events to the logger.
func (h *Hooks) flushLog() {
	src, ok := h.game.(registry.EventSource)
	if !ok {
		return
	}
	for _, e := range src.DrainLog() {
		switch {
		case e.Warn:
			h.logger.Warn(e.Msg, e.Keyvals...)
		case e.Verbose:
			h.logger.Debug(e.Msg, e.Keyvals...)
		default:
			h.logger.Info(e.Msg, e.Keyvals...)
		}
	}
}

// saveRun persists the finished run. Failures are logged and play continues.
func (h *Hooks) saveRun(state core.GameState) {
	if h.store == nil {
		return
	}

	s, ok := h.game.(registry.Summarizer)
	if !ok {
		if state.Score > 0 {
			if _, err := h.store.SaveScore(h.game.ID(), "P1", state.Score); err != nil {
				h.logger.Error("cannot save score", "err", err)
			}
		}
		return
	}

	run := s.Summary()
	if _, err := h.store.SaveRun(h.game.ID(), run); err != nil {
		h.logger.Error("cannot save run", "err", err)
		return
	}
	h.logger.Info("run saved",
		"outcome", run.Outcome,
		"level", run.Level,
		"p1", run.Score1,
		"p2", run.Score2,
	)
}
