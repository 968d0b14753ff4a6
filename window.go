package main

import (
	"time"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/game/types"
	"github.com/arisgz/snake/ui"
	"github.com/arisgz/snake/ui/raylib"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var windowKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
}

// runWindow plays in a raylib window until it is closed. Input, ticks and
// drawing all happen on this goroutine.
func runWindow(cfg *config.Config, g *game.Game) {
	if cfg.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	renderer := raylib.NewRenderer(ui.StyleFromConfig(cfg))

	for !rl.WindowShouldClose() {
		for _, k := range windowKeys {
			if rl.IsKeyPressed(k.key) {
				g.EnqueueDirection(k.dir)
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.Restart(time.Now())
		}

		now := time.Now()
		g.Update(now)
		renderer.Draw(g, now)
	}
}
