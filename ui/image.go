package ui

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// ImagePainter rasterizes primitives into an offscreen image. The first
// rasterizer error is kept and reported by Err; later calls still draw.
type ImagePainter struct {
	dc  *gg.Context
	err error
}

func NewImagePainter(width, height int) *ImagePainter {
	return &ImagePainter{dc: gg.NewContext(width, height)}
}

func (p *ImagePainter) Viewport() (float32, float32) {
	return float32(p.dc.Width()), float32(p.dc.Height())
}

func (p *ImagePainter) FillRect(r Rect, radii CornerRadii, c color.NRGBA) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	if radii.IsZero() {
		p.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	} else {
		nw, ne := float64(radii.NW), float64(radii.NE)
		sw, se := float64(radii.SW), float64(radii.SE)
		p.dc.MoveTo(x0+nw, y0)
		p.dc.LineTo(x1-ne, y0)
		if ne > 0 {
			p.dc.CubicTo(x1-ne+ne*kappa, y0, x1, y0+ne-ne*kappa, x1, y0+ne)
		}
		p.dc.LineTo(x1, y1-se)
		if se > 0 {
			p.dc.CubicTo(x1, y1-se+se*kappa, x1-se+se*kappa, y1, x1-se, y1)
		}
		p.dc.LineTo(x0+sw, y1)
		if sw > 0 {
			p.dc.CubicTo(x0+sw-sw*kappa, y1, x0, y1-sw+sw*kappa, x0, y1-sw)
		}
		p.dc.LineTo(x0, y0+nw)
		if nw > 0 {
			p.dc.CubicTo(x0, y0+nw-nw*kappa, x0+nw-nw*kappa, y0, x0+nw, y0)
		}
		p.dc.ClosePath()
	}
	p.setColor(c)
	p.check(p.dc.Fill())
}

func (p *ImagePainter) StrokeLine(p0, p1 Vec2, width float32, c color.NRGBA) {
	p.setColor(c)
	p.dc.SetLineWidth(float64(width))
	p.dc.DrawLine(float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y))
	p.check(p.dc.Stroke())
}

func (p *ImagePainter) FillCircle(center Vec2, radius float32, c color.NRGBA) {
	p.setColor(c)
	p.dc.DrawCircle(float64(center.X), float64(center.Y), float64(radius))
	p.check(p.dc.Fill())
}

// Image returns the rendered pixels.
func (p *ImagePainter) Image() image.Image {
	return p.dc.Image()
}

func (p *ImagePainter) SavePNG(path string) error {
	return p.dc.SavePNG(path)
}

func (p *ImagePainter) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}

// Err returns the first rasterizer error, if any.
func (p *ImagePainter) Err() error {
	return p.err
}

func (p *ImagePainter) Close() error {
	return p.dc.Close()
}

func (p *ImagePainter) setColor(c color.NRGBA) {
	p.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func (p *ImagePainter) check(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}
