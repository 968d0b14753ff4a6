package ui

import "image/color"

// Vec2 is a point in window units, y pointing down.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(origin Vec2, w, h float32) Rect {
	return Rect{Min: origin, Max: Vec2{X: origin.X + w, Y: origin.Y + h}}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// CornerRadii holds one rounding radius per corner.
type CornerRadii struct {
	NW, NE, SW, SE float32
}

func (c CornerRadii) IsZero() bool {
	return c == CornerRadii{}
}

// Painter is the set of draw calls a frame is replayed onto.
type Painter interface {
	Viewport() (w, h float32)
	FillRect(r Rect, radii CornerRadii, c color.NRGBA)
	StrokeLine(p0, p1 Vec2, width float32, c color.NRGBA)
	FillCircle(center Vec2, radius float32, c color.NRGBA)
}

// Captioner is implemented by painters that can render text.
// Painters without it skip caption primitives.
type Captioner interface {
	DrawCaption(text string, center Vec2, size float32, c color.NRGBA)
}

// Primitive is one draw call of a frame.
type Primitive interface {
	paint(p Painter)
}

type FillRect struct {
	Rect  Rect
	Radii CornerRadii
	Color color.NRGBA
}

type StrokeLine struct {
	P0, P1 Vec2
	Width  float32
	Color  color.NRGBA
}

type FillCircle struct {
	Center Vec2
	Radius float32
	Color  color.NRGBA
}

// Caption is a line of text centered on a point.
type Caption struct {
	Text   string
	Center Vec2
	Size   float32
	Color  color.NRGBA
}

func (f FillRect) paint(p Painter)   { p.FillRect(f.Rect, f.Radii, f.Color) }
func (s StrokeLine) paint(p Painter) { p.StrokeLine(s.P0, s.P1, s.Width, s.Color) }
func (f FillCircle) paint(p Painter) { p.FillCircle(f.Center, f.Radius, f.Color) }

func (c Caption) paint(p Painter) {
	if cp, ok := p.(Captioner); ok {
		cp.DrawCaption(c.Text, c.Center, c.Size, c.Color)
	}
}

// Frame is the ordered list of primitives for one rendered frame.
type Frame struct {
	Width, Height float32
	Primitives    []Primitive
}

// Paint replays the frame in order.
func (f Frame) Paint(p Painter) {
	for _, prim := range f.Primitives {
		prim.paint(p)
	}
}

func (f *Frame) add(p Primitive) {
	f.Primitives = append(f.Primitives, p)
}
