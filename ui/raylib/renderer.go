// Package raylib draws projected frames into a raylib window. It is the only
// package that links raylib, so the rest of ui stays headless.
package raylib

import (
	"image/color"
	"time"

	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/ui"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the game into the current raylib window.
type Renderer struct {
	style        ui.Style
	painter      Painter
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(style ui.Style) *Renderer {
	r := &Renderer{style: style}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame of g as seen at now.
func (r *Renderer) Draw(g *game.Game, now time.Time) {
	r.UpdateDimensions()
	frame := ui.Project(ui.SceneOf(g), g.Elapsed(now), float32(r.screenWidth), float32(r.screenHeight), r.style)

	rl.BeginDrawing()
	rl.ClearBackground(rlColor(r.style.Background))
	frame.Paint(r.painter)
	rl.EndDrawing()
}

// Painter issues frame primitives as raylib draw calls. It must be used
// between BeginDrawing and EndDrawing.
type Painter struct{}

func (Painter) Viewport() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// FillRect composes per-corner rounding from plain rectangles and circle
// sectors, since raylib only rounds all four corners alike.
func (Painter) FillRect(r ui.Rect, radii ui.CornerRadii, c color.NRGBA) {
	col := rlColor(c)
	rects, sectors := roundedPieces(r, radii)
	for _, piece := range rects {
		rl.DrawRectangleRec(rlRect(piece), col)
	}
	for _, s := range sectors {
		rl.DrawCircleSector(rl.Vector2{X: s.center.X, Y: s.center.Y}, s.radius, s.start, s.end, 8, col)
	}
}

func (Painter) StrokeLine(p0, p1 ui.Vec2, width float32, c color.NRGBA) {
	rl.DrawLineEx(rl.Vector2{X: p0.X, Y: p0.Y}, rl.Vector2{X: p1.X, Y: p1.Y}, width, rlColor(c))
}

func (Painter) FillCircle(center ui.Vec2, radius float32, c color.NRGBA) {
	rl.DrawCircleV(rl.Vector2{X: center.X, Y: center.Y}, radius, rlColor(c))
}

// DrawCaption renders a centered raygui label.
func (p Painter) DrawCaption(text string, center ui.Vec2, size float32, c color.NRGBA) {
	w, _ := p.Viewport()
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, gui.PropertyValue(size))
	gui.SetStyle(gui.LABEL, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rlColor(c)))
	gui.SetStyle(gui.LABEL, gui.TEXT_ALIGNMENT, gui.TEXT_ALIGN_CENTER)
	gui.Label(rl.Rectangle{X: 0, Y: center.Y - size/2, Width: w, Height: size}, text)
}

type sector struct {
	center     ui.Vec2
	radius     float32
	start, end float32
}

// roundedPieces splits a rectangle with per-corner radii into axis-aligned
// rectangles and quarter-circle sectors that together cover it.
func roundedPieces(r ui.Rect, radii ui.CornerRadii) ([]ui.Rect, []sector) {
	if radii.IsZero() {
		return []ui.Rect{r}, nil
	}

	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	left := max(radii.NW, radii.SW)
	right := max(radii.NE, radii.SE)

	rect := func(ax, ay, bx, by float32) ui.Rect {
		return ui.Rect{Min: ui.Vec2{X: ax, Y: ay}, Max: ui.Vec2{X: bx, Y: by}}
	}

	// Middle column spans the full height.
	rects := []ui.Rect{rect(x0+left, y0, x1-right, y1)}

	// Side columns between their corners, plus the strips a smaller corner leaves.
	if left > 0 {
		rects = append(rects, rect(x0, y0+radii.NW, x0+left, y1-radii.SW))
		if radii.NW < left {
			rects = append(rects, rect(x0+radii.NW, y0, x0+left, y0+radii.NW))
		}
		if radii.SW < left {
			rects = append(rects, rect(x0+radii.SW, y1-radii.SW, x0+left, y1))
		}
	}
	if right > 0 {
		rects = append(rects, rect(x1-right, y0+radii.NE, x1, y1-radii.SE))
		if radii.NE < right {
			rects = append(rects, rect(x1-right, y0, x1-radii.NE, y0+radii.NE))
		}
		if radii.SE < right {
			rects = append(rects, rect(x1-right, y1-radii.SE, x1-radii.SE, y1))
		}
	}

	// Angles run clockwise from +x with y pointing down.
	corners := []sector{
		{ui.Vec2{X: x0 + radii.NW, Y: y0 + radii.NW}, radii.NW, 180, 270},
		{ui.Vec2{X: x1 - radii.NE, Y: y0 + radii.NE}, radii.NE, 270, 360},
		{ui.Vec2{X: x1 - radii.SE, Y: y1 - radii.SE}, radii.SE, 0, 90},
		{ui.Vec2{X: x0 + radii.SW, Y: y1 - radii.SW}, radii.SW, 90, 180},
	}
	var sectors []sector
	for _, s := range corners {
		if s.radius > 0 {
			sectors = append(sectors, s)
		}
	}
	return rects, sectors
}

func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func rlRect(r ui.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.Min.X, Y: r.Min.Y, Width: r.Width(), Height: r.Height()}
}
