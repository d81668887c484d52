package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

// execute runs the root command with args and restores the flags it set.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagDifficulty = "normal"
		flagConfig = ""
		flagPreset = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestUnknownDifficultyRejected(t *testing.T) {
	_, err := execute(t, "list", "--difficulty", "hrad")
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if !strings.Contains(err.Error(), "hrad") {
		t.Errorf("error should name the bad value, got %v", err)
	}
}

func TestMissingConfigRejected(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "brawler.yaml")
	if _, err := execute(t, "list", "--config", missing); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestListShowsPresetAndConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brawler.yaml")
	if err := os.WriteFile(path, []byte("player:\n  health: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "list", "--difficulty", "hard", "--config", path)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if flagPreset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", flagPreset)
	}
	for _, want := range []string{"brawler", "* hard", config.DifficultyEasy.Hint(), "Config: " + path} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Config: built-in defaults") {
		t.Errorf("expected built-in defaults, got:\n%s", out)
	}
	if !strings.Contains(out, "* normal") {
		t.Errorf("normal should be selected by default:\n%s", out)
	}
}

func TestHelpNamesBossLevels(t *testing.T) {
	levels := config.DefaultBrawlerConfig().Progression.BossLevels
	if len(levels) == 0 {
		t.Fatal("default config has no boss levels")
	}
	for _, l := range levels {
		if !strings.Contains(rootCmd.Long, strconv.Itoa(l)) {
			t.Errorf("help text does not mention boss level %d", l)
		}
	}
	if strings.Contains(rootCmd.Long, "fifth") {
		t.Error("help text still claims a boss every fifth level")
	}
}
