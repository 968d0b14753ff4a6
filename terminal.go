package main

import (
	"fmt"
	"time"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/game/types"
	"github.com/arisgz/snake/ui"
	"github.com/gdamore/tcell/v2"
)

func runTerminal(cfg *config.Config, g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	fps := max(cfg.Window.TargetFPS, 1)
	playTerminal(screen, g, ui.StyleFromConfig(cfg), time.Second/time.Duration(fps))
	return nil
}

// playTerminal runs the game loop until Escape or Ctrl-C. Events are read on
// a helper goroutine and handed over a channel so that only this goroutine
// touches the game.
func playTerminal(screen tcell.Screen, g *game.Game, style ui.Style, frame time.Duration) {
	painter := ui.NewTerminalPainter(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !handleTerminalEvent(screen, g, ev, time.Now()) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			g.Update(now)
			drawTerminal(painter, g, style, now)
		}
	}
}

func drawTerminal(p *ui.TerminalPainter, g *game.Game, style ui.Style, now time.Time) {
	p.Begin()
	w, h := p.Viewport()
	ui.Project(ui.SceneOf(g), g.Elapsed(now), w, h, style).Paint(p)
	p.Show()
}

// handleTerminalEvent applies one event and reports whether to keep running.
func handleTerminalEvent(screen tcell.Screen, g *game.Game, ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.EnqueueDirection(types.Left)
		case tcell.KeyRight:
			g.EnqueueDirection(types.Right)
		case tcell.KeyUp:
			g.EnqueueDirection(types.Up)
		case tcell.KeyDown:
			g.EnqueueDirection(types.Down)
		case tcell.KeyRune:
			if r := ev.Rune(); r == 'r' || r == 'R' {
				g.Restart(now)
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
