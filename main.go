package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "Food RNG seed (0 = time-based)")
	term := flag.Bool("term", false, "Play in the terminal instead of a window")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog, err := newLogger(cfg.Log, cfg.Derived.LogLevel, *term)
	if err != nil {
		slog.Error("failed to open log", "error", err)
		os.Exit(1)
	}
	defer closeLog.Close()
	slog.SetDefault(logger)

	g := game.NewGameWithOptions(game.Options{Seed: *seed, Logger: logger})
	logger.Info("starting", "seed", g.Seed(), "terminal", *term)

	if *term {
		err = runTerminal(cfg, g)
	} else {
		runWindow(cfg, g)
	}

	stats := g.Session()
	logger.Info("session finished",
		"rounds", stats.Rounds,
		"high_score", stats.HighScore,
		"average_score", stats.AverageScore,
		"scores", g.ScoreHistory(),
	)
	if err != nil {
		errorLogger(cfg.Log, *term, logger, os.Stderr).Error("terminal failed", "error", err)
		closeLog.Close()
		os.Exit(1)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the slog logger described by cfg. Without a log file the
// window logs to stderr; the terminal discards output since stderr shares the
// screen.
func newLogger(cfg config.LogConfig, level slog.Level, term bool) (*slog.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closer = f, f
	case term:
		out = io.Discard
	}

	return slog.New(newHandler(cfg.Format, out, level)), closer, nil
}

// errorLogger returns the logger for a fatal error reported after the screen
// is released. Terminal play without a log file discards its records, so such
// errors go to stderr instead.
func errorLogger(cfg config.LogConfig, term bool, logger *slog.Logger, stderr io.Writer) *slog.Logger {
	if term && cfg.File == "" {
		return slog.New(newHandler(cfg.Format, stderr, slog.LevelError))
	}
	return logger
}

func newHandler(format string, out io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}
