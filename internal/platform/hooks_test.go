package platform

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

type fakeGame struct {
	events   []core.LogEvent
	summary  core.RunSummary
	reloads  []string
	reloadOK bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }
func (g *fakeGame) Summary() core.RunSummary { return g.summary }

func (g *fakeGame) DrainLog() []core.LogEvent {
	out := g.events
	g.events = nil
	return out
}

func (g *fakeGame) Reload(path string) error {
	g.reloads = append(g.reloads, path)
	if !g.reloadOK {
		return errors.New("bad yaml")
	}
	return nil
}

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	l := log.New(buf)
	l.SetLevel(log.DebugLevel)
	return l
}

func TestHooksLogEvents(t *testing.T) {
	var buf bytes.Buffer
	g := &fakeGame{events: []core.LogEvent{
		{Msg: "level 1 started", Keyvals: []any{"level", 1}},
		{Msg: "P1 killed bug (+10)", Keyvals: []any{"points", 10}, Verbose: true},
		{Msg: "config load failed", Keyvals: []any{"path", "x.yaml"}, Warn: true},
	}}
	h := NewHooks(g, nil, newTestLogger(&buf), nil, "")

	h.AfterStep(core.GameState{})

	out := buf.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "level 1 started") {
		t.Errorf("expected info line, got %q", out)
	}
	if !strings.Contains(out, "DEBU") || !strings.Contains(out, "P1 killed bug (+10)") {
		t.Errorf("expected debug line, got %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "config load failed") {
		t.Errorf("expected warn line, got %q", out)
	}
	if !strings.Contains(out, "game=fake") {
		t.Errorf("expected game key, got %q", out)
	}
}

func TestHooksSaveRunOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{summary: core.RunSummary{Outcome: "victory", Level: 5, Score1: 200, Score2: 150}}
	h := NewHooks(g, store, nil, nil, "")

	h.AfterStep(core.GameState{})
	h.AfterStep(core.GameState{GameOver: true})
	h.AfterStep(core.GameState{GameOver: true})

	runs, _ := store.TopRuns("fake", 10)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Total() != 350 {
		t.Errorf("expected team score 350, got %d", runs[0].Total())
	}

	// A new run after restart is saved again.
	h.AfterStep(core.GameState{})
	h.AfterStep(core.GameState{GameOver: true})
	runs, _ = store.TopRuns("fake", 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestHooksReloadWatchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brawler.yaml")
	other := filepath.Join(dir, "other.yaml")

	w, err := config.WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile() failed: %v", err)
	}
	defer w.Close()

	var buf bytes.Buffer
	g := &fakeGame{}
	h := NewHooks(g, nil, newTestLogger(&buf), w, path)

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(other, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	h.BeforeStep()
	if len(g.reloads) != 0 {
		t.Fatalf("unexpected reload of %v", g.reloads)
	}

	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for len(g.reloads) == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
		h.BeforeStep()
	}
	if len(g.reloads) == 0 {
		t.Fatal("expected a reload")
	}
	if !strings.Contains(buf.String(), "config reload failed") {
		t.Errorf("expected reload failure to be logged, got %q", buf.String())
	}
}
