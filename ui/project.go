package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/arisgz/snake/config"
	"github.com/arisgz/snake/game"
	"github.com/arisgz/snake/game/entity"
	"github.com/arisgz/snake/game/manager"
	"github.com/arisgz/snake/game/types"
)

// Style holds the drawing parameters shared by every painter.
type Style struct {
	Radius       float32
	StrokeWeight float32
	Background   color.NRGBA
	Body         color.NRGBA
	Food         color.NRGBA
	Border       color.NRGBA
	Overlay      color.NRGBA
	Text         color.NRGBA
}

// StyleFromConfig copies the parsed style section.
func StyleFromConfig(cfg *config.Config) Style {
	return Style{
		Radius:       cfg.Style.Radius,
		StrokeWeight: cfg.Style.StrokeWeight,
		Background:   cfg.Derived.Background,
		Body:         cfg.Derived.Body,
		Food:         cfg.Derived.Food,
		Border:       cfg.Derived.Border,
		Overlay:      cfg.Derived.Overlay,
		Text:         cfg.Derived.Text,
	}
}

// DefaultStyle matches the embedded configuration defaults.
func DefaultStyle() Style {
	return StyleFromConfig(config.MustLoad(""))
}

// Scene is the read-only slice of game state the projection needs.
type Scene struct {
	Body    []entity.Segment // Head first
	Food    types.Point
	Growing bool
	Over    bool
	Score   int
	Session manager.SessionStats
}

// SceneOf captures the current round of g.
func SceneOf(g *game.Game) Scene {
	s := g.State()
	return Scene{
		Body:    s.Body(),
		Food:    s.Food(),
		Growing: s.IsGrowing(),
		Over:    s.IsOver(),
		Score:   s.Score(),
		Session: g.Session(),
	}
}

// Project turns a scene into draw primitives for a w×h viewport. elapsed is
// the time since the last tick and only drives the head and tail animation.
// The grid is the largest square anchored at the viewport's top-left corner.
func Project(sc Scene, elapsed time.Duration, w, h float32, style Style) Frame {
	f := Frame{Width: w, Height: h}
	side := min(w, h)
	cell := side / types.GridSize

	f.add(FillRect{Rect: RectFromMinSize(Vec2{}, w, h), Color: style.Background})
	projectOuterBorder(&f, side, style)

	offset := cell - float32(elapsed.Seconds()/types.FrameDuration.Seconds())*cell
	radius := min(style.Radius, cell/2)
	for i, seg := range sc.Body {
		projectSegment(&f, sc, i, seg, cell, offset, radius, style)
	}

	food := cellRect(sc.Food.X, sc.Food.Y, cell)
	f.add(FillCircle{Center: food.Center(), Radius: cell / 2, Color: style.Food})

	if sc.Over {
		projectGameOver(&f, sc, w, h, style)
	}
	return f
}

func cellRect(x, y int, cell float32) Rect {
	return RectFromMinSize(Vec2{X: float32(x) * cell, Y: float32(y) * cell}, cell, cell)
}

// projectOuterBorder strokes the play area just outside its edges.
func projectOuterBorder(f *Frame, side float32, style Style) {
	sw := style.StrokeWeight
	half := sw / 2
	lo, hi := -sw, side+sw
	f.add(StrokeLine{P0: Vec2{lo, -half}, P1: Vec2{hi, -half}, Width: sw, Color: style.Border})
	f.add(StrokeLine{P0: Vec2{lo, side + half}, P1: Vec2{hi, side + half}, Width: sw, Color: style.Border})
	f.add(StrokeLine{P0: Vec2{-half, lo}, P1: Vec2{-half, hi}, Width: sw, Color: style.Border})
	f.add(StrokeLine{P0: Vec2{side + half, lo}, P1: Vec2{side + half, hi}, Width: sw, Color: style.Border})
}

func projectSegment(f *Frame, sc Scene, i int, seg entity.Segment, cell, offset, radius float32, style Style) {
	r := cellRect(seg.X, seg.Y, cell)
	var radii CornerRadii

	switch {
	case i == 0:
		// The head slides in from its trailing edge.
		switch seg.Heading {
		case types.Up:
			r.Min.Y += offset
		case types.Down:
			r.Max.Y -= offset
		case types.Left:
			r.Min.X += offset
		case types.Right:
			r.Max.X -= offset
		}
	case i == len(sc.Body)-1:
		// The tail recedes toward the next segment unless it holds for growth.
		if !sc.Growing {
			shrink := offset - cell
			switch seg.Heading {
			case types.Up:
				r.Max.Y += shrink
			case types.Down:
				r.Min.Y -= shrink
			case types.Left:
				r.Max.X += shrink
			case types.Right:
				r.Min.X -= shrink
			}
		}
	default:
		radii = bendRadii(seg.Bend, radius)
	}
	f.add(FillRect{Rect: r, Radii: radii, Color: style.Body})

	switch {
	case seg.IsBend():
		projectBendBorder(f, r, seg.Bend, radius, style)
	case seg.Heading.IsVertical():
		projectSideBorder(f, r, style)
	default:
		projectEndBorder(f, r, style)
	}
}

func bendRadii(b types.Bend, radius float32) CornerRadii {
	switch b {
	case types.BendTopLeft:
		return CornerRadii{NW: radius}
	case types.BendTopRight:
		return CornerRadii{NE: radius}
	case types.BendBottomLeft:
		return CornerRadii{SW: radius}
	case types.BendBottomRight:
		return CornerRadii{SE: radius}
	}
	return CornerRadii{}
}

// projectSideBorder outlines the left and right edges of a vertical segment.
func projectSideBorder(f *Frame, r Rect, style Style) {
	x0, x1 := r.Min.X-0.5, r.Max.X+0.5
	f.add(StrokeLine{P0: Vec2{x0, r.Min.Y}, P1: Vec2{x0, r.Max.Y}, Width: style.StrokeWeight, Color: style.Background})
	f.add(StrokeLine{P0: Vec2{x1, r.Min.Y}, P1: Vec2{x1, r.Max.Y}, Width: style.StrokeWeight, Color: style.Background})
}

// projectEndBorder outlines the top and bottom edges of a horizontal segment.
func projectEndBorder(f *Frame, r Rect, style Style) {
	y0, y1 := r.Min.Y-0.5, r.Max.Y+0.5
	f.add(StrokeLine{P0: Vec2{r.Min.X, y0}, P1: Vec2{r.Max.X, y0}, Width: style.StrokeWeight, Color: style.Background})
	f.add(StrokeLine{P0: Vec2{r.Min.X, y1}, P1: Vec2{r.Max.X, y1}, Width: style.StrokeWeight, Color: style.Background})
}

// projectBendBorder draws the two outer edges that meet at the rounded
// corner, each stopping short of the arc.
func projectBendBorder(f *Frame, r Rect, b types.Bend, radius float32, style Style) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	ro := radius / 2
	hs := style.StrokeWeight / 2

	var a, c [2]Vec2
	switch b {
	case types.BendTopLeft:
		a = [2]Vec2{{x0 + ro, y0 - hs}, {x1, y0 - hs}}
		c = [2]Vec2{{x0 - hs, y0 + ro}, {x0 - hs, y1}}
	case types.BendBottomLeft:
		a = [2]Vec2{{x0 + ro, y1 + hs}, {x1, y1 + hs}}
		c = [2]Vec2{{x0 - hs, y0}, {x0 - hs, y1 - ro}}
	case types.BendTopRight:
		a = [2]Vec2{{x0, y0 - hs}, {x1 - ro, y0 - hs}}
		c = [2]Vec2{{x1 + hs, y0 + ro}, {x1 + hs, y1}}
	case types.BendBottomRight:
		a = [2]Vec2{{x0, y1 + hs}, {x1 - ro, y1 + hs}}
		c = [2]Vec2{{x1 + hs, y0}, {x1 + hs, y1 - ro}}
	default:
		return
	}
	f.add(StrokeLine{P0: a[0], P1: a[1], Width: style.StrokeWeight, Color: style.Background})
	f.add(StrokeLine{P0: c[0], P1: c[1], Width: style.StrokeWeight, Color: style.Background})
}

// GameOverLines returns the caption text shown after a round ends.
func GameOverLines(sc Scene) []string {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Score: %d", sc.Score),
		"Press R to restart",
	}
	if sc.Session.Rounds > 0 {
		lines = append(lines, fmt.Sprintf("Best: %d  Avg: %.1f  Rounds: %d",
			sc.Session.HighScore, sc.Session.AverageScore, sc.Session.Rounds))
	}
	return lines
}

func projectGameOver(f *Frame, sc Scene, w, h float32, style Style) {
	f.add(FillRect{Rect: RectFromMinSize(Vec2{}, w, h), Color: style.Overlay})

	heading := max(min(w, h)/12, 12)
	label := heading * 0.6
	lines := GameOverLines(sc)

	y := h/2 - heading*float32(len(lines))/2
	for i, text := range lines {
		size := label
		if i < 2 {
			size = heading
		}
		f.add(Caption{Text: text, Center: Vec2{X: w / 2, Y: y + size/2}, Size: size, Color: style.Text})
		y += size * 1.4
	}
}
