package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/game/types"
	"github.com/arisgz/snake/ui"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)
	return screen
}

func TestHandleTerminalEvent(t *testing.T) {
	screen := newSimScreen(t)
	now := time.Unix(100, 0)

	tests := []struct {
		name        string
		ev          tcell.Event
		keepRunning bool
		pending     []types.Direction
	}{
		{"left arrow queues left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true, []types.Direction{types.Left}},
		{"right arrow queues right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), true, []types.Direction{types.Right}},
		{"down arrow is a reversal", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), true, nil},
		{"other runes are ignored", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true, nil},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false, nil},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := game.NewGameWithOptions(game.Options{Seed: 1, Now: now})
			if got := handleTerminalEvent(screen, g, tc.ev, now); got != tc.keepRunning {
				t.Errorf("keep running = %v, want %v", got, tc.keepRunning)
			}
			pending := g.State().Pending()
			if len(pending) != len(tc.pending) {
				t.Fatalf("pending = %v, want %v", pending, tc.pending)
			}
			for i := range pending {
				if pending[i] != tc.pending[i] {
					t.Errorf("pending[%d] = %s, want %s", i, pending[i], tc.pending[i])
				}
			}
		})
	}
}

func TestHandleTerminalEventRestart(t *testing.T) {
	screen := newSimScreen(t)
	start := time.Unix(100, 0)
	g := game.NewGameWithOptions(game.Options{Seed: 1, Now: start})
	g.Update(start.Add(types.FrameDuration))
	round := g.UUID

	later := start.Add(time.Minute)
	if !handleTerminalEvent(screen, g, tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), later) {
		t.Fatal("restart should keep running")
	}
	if g.UUID == round || g.State().Ticks() != 0 {
		t.Error("r should start a new round")
	}
	if !g.State().LastTick().Equal(later) {
		t.Errorf("new round clock = %v, want %v", g.State().LastTick(), later)
	}
}

func TestPlayTerminalQuitsOnEscape(t *testing.T) {
	screen := newSimScreen(t)
	g := game.NewGameWithOptions(game.Options{Seed: 1})

	done := make(chan struct{})
	go func() {
		playTerminal(screen, g, ui.DefaultStyle(), 5*time.Millisecond)
		close(done)
	}()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not stop on escape")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	cfg := config.LogConfig{Level: "debug", Format: "json", File: path}

	logger, closer, err := newLogger(cfg, slog.LevelDebug, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("round started", "round", "abc")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"round started"`) {
		t.Errorf("expected a JSON record, got %q", data)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger, _, err := newLogger(config.LogConfig{Format: "text"}, slog.LevelInfo, true)
	if err != nil {
		t.Fatal(err)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be below the configured level")
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	cfg := config.LogConfig{Format: "text", File: filepath.Join(t.TempDir(), "missing", "snake.log")}
	if _, _, err := newLogger(cfg, slog.LevelInfo, false); err == nil {
		t.Error("expected an error for an unwritable log path")
	}
}

func TestErrorLoggerReachesStderrInTerminal(t *testing.T) {
	var stderr bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "text"}

	logger, _, err := newLogger(cfg, slog.LevelInfo, true)
	if err != nil {
		t.Fatal(err)
	}
	errorLogger(cfg, true, logger, &stderr).Error("terminal failed", "error", errors.New("open /dev/tty: no such device"))

	out := stderr.String()
	if !strings.Contains(out, "terminal failed") || !strings.Contains(out, "/dev/tty") {
		t.Errorf("expected the failure on stderr, got %q", out)
	}
}

func TestErrorLoggerKeepsConfiguredOutput(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		cfg  config.LogConfig
		term bool
	}{
		{"window", config.LogConfig{Format: "text"}, false},
		{"terminal with log file", config.LogConfig{Format: "json", File: "snake.log"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := errorLogger(tc.cfg, tc.term, logger, &stderr); got != logger {
				t.Error("expected the configured logger")
			}
			if stderr.Len() != 0 {
				t.Errorf("nothing should reach stderr, got %q", stderr.String())
			}
		})
	}
}
