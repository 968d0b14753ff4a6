// Command snapshot plays a scripted game headlessly and writes one frame as PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/game/types"
	"github.com/arisgz/snake/ui"
)

type options struct {
	seed    uint64
	moves   string // One rune per tick: l, r, u, d to turn, anything else to go straight
	elapsed time.Duration
	size    int
	style   ui.Style
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 1, "Food RNG seed")
	moves := flag.String("moves", "", "Per-tick input script, e.g. \"..l..u\"")
	elapsedMs := flag.Int("elapsed", 0, "Milliseconds since the last tick when the frame is taken")
	size := flag.Int("size", 600, "Image width and height in pixels")
	out := flag.String("out", "snapshot.png", "Output PNG path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	opts := options{
		seed:    *seed,
		moves:   *moves,
		elapsed: time.Duration(*elapsedMs) * time.Millisecond,
		size:    *size,
		style:   ui.StyleFromConfig(cfg),
	}
	p, g, err := render(opts)
	if err != nil {
		slog.Error("failed to render", "error", err)
		os.Exit(1)
	}
	defer p.Close()

	if err := p.SavePNG(*out); err != nil {
		slog.Error("failed to save snapshot", "path", *out, "error", err)
		os.Exit(1)
	}
	s := g.State()
	slog.Info("snapshot written",
		"path", *out,
		"ticks", s.Ticks(),
		"score", s.Score(),
		"over", s.IsOver(),
	)
}

// play runs the move script on a fixed clock and returns the game together
// with the time of its last tick.
func play(opts options) (*game.Game, time.Time) {
	now := time.Unix(0, 0)
	g := game.NewGameWithOptions(game.Options{Seed: opts.seed, Now: now})

	for _, m := range opts.moves {
		if g.State().IsOver() {
			break
		}
		switch m {
		case 'l':
			g.EnqueueDirection(types.Left)
		case 'r':
			g.EnqueueDirection(types.Right)
		case 'u':
			g.EnqueueDirection(types.Up)
		case 'd':
			g.EnqueueDirection(types.Down)
		}
		now = now.Add(types.FrameDuration)
		g.Update(now)
	}
	return g, now
}

func render(opts options) (*ui.ImagePainter, *game.Game, error) {
	if opts.size <= 0 {
		return nil, nil, fmt.Errorf("size must be positive, got %d", opts.size)
	}
	if opts.elapsed < 0 || opts.elapsed >= types.FrameDuration {
		return nil, nil, fmt.Errorf("elapsed must be in [0, %v), got %v", types.FrameDuration, opts.elapsed)
	}

	g, last := play(opts)
	p := ui.NewImagePainter(opts.size, opts.size)
	w, h := p.Viewport()
	ui.Project(ui.SceneOf(g), g.Elapsed(last.Add(opts.elapsed)), w, h, opts.style).Paint(p)
	if err := p.Err(); err != nil {
		p.Close()
		return nil, nil, fmt.Errorf("painting frame: %w", err)
	}
	return p, g, nil
}
