package ui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalScale is the number of window units per terminal pixel. Each
// terminal cell holds two pixels stacked vertically.
const TerminalScale = 8

const halfBlock = '▀'

type caption struct {
	text  string
	col   int
	row   int
	color color.NRGBA
}

// TerminalPainter rasterizes primitives into a half-block pixel buffer and
// flushes it to a tcell screen. Call Begin before painting a frame and Show
// after it.
type TerminalPainter struct {
	screen   tcell.Screen
	cols     int
	rows     int // Pixel rows, twice the terminal rows
	pix      []color.NRGBA
	captions []caption
}

func NewTerminalPainter(screen tcell.Screen) *TerminalPainter {
	p := &TerminalPainter{screen: screen}
	p.Begin()
	return p
}

// Begin resizes the buffer to the screen and clears it.
func (p *TerminalPainter) Begin() {
	w, h := p.screen.Size()
	p.cols, p.rows = w, h*2
	if cap(p.pix) < p.cols*p.rows {
		p.pix = make([]color.NRGBA, p.cols*p.rows)
	}
	p.pix = p.pix[:p.cols*p.rows]
	for i := range p.pix {
		p.pix[i] = color.NRGBA{A: 255}
	}
	p.captions = p.captions[:0]
}

func (p *TerminalPainter) Viewport() (float32, float32) {
	return float32(p.cols * TerminalScale), float32(p.rows * TerminalScale)
}

// Pixel returns the buffered color at pixel (x, y).
func (p *TerminalPainter) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= p.cols || y >= p.rows {
		return color.NRGBA{}
	}
	return p.pix[y*p.cols+x]
}

// FillRect paints every pixel whose center falls inside the rounded rectangle.
func (p *TerminalPainter) FillRect(r Rect, radii CornerRadii, c color.NRGBA) {
	p.fill(r, c, func(v Vec2) bool { return insideRounded(r, radii, v) })
}

// StrokeLine paints the pixels covered by the line's rectangle. Strokes
// thinner than half a pixel are dropped.
func (p *TerminalPainter) StrokeLine(p0, p1 Vec2, width float32, c color.NRGBA) {
	if width < TerminalScale/2 {
		return
	}
	hw := width / 2
	bounds := Rect{
		Min: Vec2{X: min(p0.X, p1.X) - hw, Y: min(p0.Y, p1.Y) - hw},
		Max: Vec2{X: max(p0.X, p1.X) + hw, Y: max(p0.Y, p1.Y) + hw},
	}
	p.fill(bounds, c, func(v Vec2) bool { return segmentDistance(v, p0, p1) <= hw })
}

func (p *TerminalPainter) FillCircle(center Vec2, radius float32, c color.NRGBA) {
	bounds := Rect{
		Min: Vec2{X: center.X - radius, Y: center.Y - radius},
		Max: Vec2{X: center.X + radius, Y: center.Y + radius},
	}
	p.fill(bounds, c, func(v Vec2) bool {
		dx, dy := v.X-center.X, v.Y-center.Y
		return dx*dx+dy*dy <= radius*radius
	})
}

// DrawCaption queues text for the terminal row holding center.
func (p *TerminalPainter) DrawCaption(text string, center Vec2, _ float32, c color.NRGBA) {
	row := int(center.Y / TerminalScale / 2)
	col := int(center.X/TerminalScale) - len([]rune(text))/2
	p.captions = append(p.captions, caption{text: text, col: max(col, 0), row: row, color: c})
}

// Show writes the buffer and captions to the screen.
func (p *TerminalPainter) Show() {
	for y := 0; y < p.rows/2; y++ {
		for x := 0; x < p.cols; x++ {
			top, bottom := p.pix[2*y*p.cols+x], p.pix[(2*y+1)*p.cols+x]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	for _, c := range p.captions {
		if c.row < 0 || c.row >= p.rows/2 {
			continue
		}
		x := c.col
		for _, r := range c.text {
			if x >= p.cols {
				break
			}
			bg := p.pix[2*c.row*p.cols+x]
			p.screen.SetContent(x, c.row, r, nil, tcell.StyleDefault.Foreground(tcellColor(c.color)).Background(tcellColor(bg)))
			x++
		}
	}
	p.screen.Show()
}

func (p *TerminalPainter) fill(bounds Rect, c color.NRGBA, inside func(Vec2) bool) {
	x0 := max(int(math.Floor(float64(bounds.Min.X/TerminalScale))), 0)
	y0 := max(int(math.Floor(float64(bounds.Min.Y/TerminalScale))), 0)
	x1 := min(int(math.Ceil(float64(bounds.Max.X/TerminalScale))), p.cols)
	y1 := min(int(math.Ceil(float64(bounds.Max.Y/TerminalScale))), p.rows)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := Vec2{X: (float32(x) + 0.5) * TerminalScale, Y: (float32(y) + 0.5) * TerminalScale}
			if inside(center) {
				i := y*p.cols + x
				p.pix[i] = blend(p.pix[i], c)
			}
		}
	}
}

// insideRounded reports whether v lies in r with its corners cut by radii.
func insideRounded(r Rect, radii CornerRadii, v Vec2) bool {
	if !r.Contains(v) {
		return false
	}
	check := func(rad, cx, cy float32, inCorner bool) bool {
		if rad <= 0 || !inCorner {
			return true
		}
		dx, dy := v.X-cx, v.Y-cy
		return dx*dx+dy*dy <= rad*rad
	}
	return check(radii.NW, r.Min.X+radii.NW, r.Min.Y+radii.NW, v.X < r.Min.X+radii.NW && v.Y < r.Min.Y+radii.NW) &&
		check(radii.NE, r.Max.X-radii.NE, r.Min.Y+radii.NE, v.X > r.Max.X-radii.NE && v.Y < r.Min.Y+radii.NE) &&
		check(radii.SW, r.Min.X+radii.SW, r.Max.Y-radii.SW, v.X < r.Min.X+radii.SW && v.Y > r.Max.Y-radii.SW) &&
		check(radii.SE, r.Max.X-radii.SE, r.Max.Y-radii.SE, v.X > r.Max.X-radii.SE && v.Y > r.Max.Y-radii.SE)
}

func segmentDistance(v, a, b Vec2) float32 {
	abx, aby := b.X-a.X, b.Y-a.Y
	avx, avy := v.X-a.X, v.Y-a.Y
	t := float32(0)
	if l := abx*abx + aby*aby; l > 0 {
		t = min(max((avx*abx+avy*aby)/l, 0), 1)
	}
	dx, dy := avx-t*abx, avy-t*aby
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
