package raylib

import (
	"image/color"
	"math"
	"testing"

	"github.com/arisgz/snake/ui"
	gui "github.com/gen2brain/raylib-go/raygui"
)

func (s sector) contains(p ui.Vec2) bool {
	dx, dy := float64(p.X-s.center.X), float64(p.Y-s.center.Y)
	if math.Hypot(dx, dy) > float64(s.radius) {
		return false
	}
	a := math.Atan2(dy, dx) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a >= float64(s.start) && a <= float64(s.end) || s.end == 360 && a == 0
}

// insideRounded is the reference shape: the rectangle minus what each
// rounded corner cuts away.
func insideRounded(r ui.Rect, radii ui.CornerRadii, p ui.Vec2) bool {
	if !r.Contains(p) {
		return false
	}
	corners := []struct {
		k      float32
		cx, cy float32
		in     bool
	}{
		{radii.NW, r.Min.X + radii.NW, r.Min.Y + radii.NW, p.X < r.Min.X+radii.NW && p.Y < r.Min.Y+radii.NW},
		{radii.NE, r.Max.X - radii.NE, r.Min.Y + radii.NE, p.X > r.Max.X-radii.NE && p.Y < r.Min.Y+radii.NE},
		{radii.SE, r.Max.X - radii.SE, r.Max.Y - radii.SE, p.X > r.Max.X-radii.SE && p.Y > r.Max.Y-radii.SE},
		{radii.SW, r.Min.X + radii.SW, r.Max.Y - radii.SW, p.X < r.Min.X+radii.SW && p.Y > r.Max.Y-radii.SW},
	}
	for _, c := range corners {
		if c.k > 0 && c.in && math.Hypot(float64(p.X-c.cx), float64(p.Y-c.cy)) > float64(c.k) {
			return false
		}
	}
	return true
}

func TestRoundedPiecesCoverShape(t *testing.T) {
	r := ui.RectFromMinSize(ui.Vec2{X: 40, Y: 80}, 40, 40)

	tests := []struct {
		name  string
		radii ui.CornerRadii
	}{
		{"square", ui.CornerRadii{}},
		{"one corner", ui.CornerRadii{NW: 10}},
		{"right side uneven", ui.CornerRadii{NE: 5, SE: 10}},
		{"all corners", ui.CornerRadii{NW: 8, NE: 8, SW: 8, SE: 8}},
		{"half cell", ui.CornerRadii{SW: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rects, sectors := roundedPieces(r, tc.radii)
			for y := r.Min.Y - 2; y < r.Max.Y+2; y += 0.5 {
				for x := r.Min.X - 2; x < r.Max.X+2; x += 0.5 {
					p := ui.Vec2{X: x + 0.25, Y: y + 0.25}
					covered := false
					for _, piece := range rects {
						covered = covered || piece.Contains(p)
					}
					for _, s := range sectors {
						covered = covered || s.contains(p)
					}
					if want := insideRounded(r, tc.radii, p); covered != want {
						t.Fatalf("point %+v covered = %v, want %v", p, covered, want)
					}
				}
			}
		})
	}
}

func TestRoundedPiecesSectorsOnlyForRoundedCorners(t *testing.T) {
	_, sectors := roundedPieces(ui.RectFromMinSize(ui.Vec2{}, 30, 30), ui.CornerRadii{NE: 6})
	if len(sectors) != 1 {
		t.Fatalf("expected one sector, got %d", len(sectors))
	}
	s := sectors[0]
	if s.start != 270 || s.end != 360 || s.center != (ui.Vec2{X: 24, Y: 6}) {
		t.Errorf("unexpected NE sector %+v", s)
	}
}

func TestCaptionColorProperty(t *testing.T) {
	v := gui.NewColorPropertyValue(rlColor(color.NRGBA{R: 255, G: 128, B: 1, A: 150}))
	if got := v.AsColor(); got.R != 255 || got.G != 128 || got.B != 1 || got.A != 150 {
		t.Errorf("color lost in style property: %+v", got)
	}
}

func TestRlRect(t *testing.T) {
	got := rlRect(ui.RectFromMinSize(ui.Vec2{X: 3, Y: 4}, 10, 20))
	if got.X != 3 || got.Y != 4 || got.Width != 10 || got.Height != 20 {
		t.Errorf("unexpected rectangle %+v", got)
	}
}
