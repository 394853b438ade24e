// seehuhn.de/go/gauge - gauge dials for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package paint draws gauges into raster images.
package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/raster"
	"seehuhn.de/go/gauge/textpath"
)

// Painter draws scenes into *image.RGBA images.
// A Painter is not safe for concurrent use.
type Painter struct {
	// Scale is the number of pixels per scene unit.
	Scale float64

	r      *raster.Rasterizer
	shaper *textpath.Shaper
}

// New returns a Painter which draws one pixel per scene unit.
func New() (*Painter, error) {
	shaper, err := textpath.New()
	if err != nil {
		return nil, err
	}
	return &Painter{
		Scale:  1,
		r:      raster.NewRasterizer(rect.Rect{}),
		shaper: shaper,
	}, nil
}

// Render returns a new image, just large enough to hold the frame of s.
func (p *Painter) Render(s *gauge.Scene) (*image.RGBA, error) {
	w := int(math.Ceil((s.Frame.URx - s.Frame.LLx) * p.Scale))
	h := int(math.Ceil((s.Frame.URy - s.Frame.LLy) * p.Scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := p.Draw(img, s); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw draws s on top of dst.  The top-left corner of the scene frame is
// placed at dst.Bounds().Min.
func (p *Painter) Draw(dst *image.RGBA, s *gauge.Scene) error {
	b := dst.Bounds()
	r := p.r
	r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	r.CTM = matrix.Matrix{
		p.Scale, 0,
		0, p.Scale,
		float64(b.Min.X) - s.Frame.LLx*p.Scale,
		float64(b.Min.Y) - s.Frame.LLy*p.Scale,
	}

	if s.Background != nil {
		f := s.Frame
		bg := (&path.Data{}).
			MoveTo(vec.Vec2{X: f.LLx, Y: f.LLy}).
			LineTo(vec.Vec2{X: f.URx, Y: f.LLy}).
			LineTo(vec.Vec2{X: f.URx, Y: f.URy}).
			LineTo(vec.Vec2{X: f.LLx, Y: f.URy}).
			Close()
		r.FillNonZero(bg, compositor(dst, s.Background))
	}

	r.FillNonZero(s.Track, p.paintCompositor(dst, s, r.CTM))

	switch {
	case s.Indicator != nil:
		r.FillNonZero(s.Indicator.Path(), compositor(dst, s.Indicator.Color))
	case s.Needle != nil:
		n := s.Needle
		r.Width = n.Width
		r.Cap = graphics.LineCapButt
		r.Stroke(n.Path(), compositor(dst, n.Color))
	}

	for _, t := range s.Texts() {
		outline, err := p.shaper.TextOutline(t)
		if err != nil {
			return fmt.Errorf("paint: text %q: %w", t.Content, err)
		}
		r.FillNonZero(outline, compositor(dst, t.Color))
	}
	return nil
}

// paintCompositor returns a raster.EmitFunc for the band of s.  Solid
// paints use a single color, other paints are evaluated at the center of
// every pixel.
func (p *Painter) paintCompositor(dst *image.RGBA, s *gauge.Scene, ctm matrix.Matrix) raster.EmitFunc {
	if solid, ok := s.TrackPaint.(gauge.Solid); ok {
		return compositor(dst, solid.Color)
	}
	inv := ctm.Inv()
	return func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c == 0 {
				continue
			}
			x := xMin + i
			sx, sy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			col := s.TrackPaint.ColorAt(vec.Vec2{X: sx, Y: sy}, s.Center)
			compositor(dst, col)(y, x, coverage[i:i+1])
		}
	}
}

// compositor returns a raster.EmitFunc which paints col onto dst using
// the Porter-Duff "source over" operator, weighted by the coverage.
func compositor(dst *image.RGBA, col color.Color) raster.EmitFunc {
	sr, sg, sb, sa := col.RGBA()
	return func(y, xMin int, coverage []float32) {
		i0 := dst.PixOffset(xMin, y)
		for i, c := range coverage {
			pix := dst.Pix[i0+4*i : i0+4*i+4 : i0+4*i+4]
			a := float32(sa) * c / 0xffff // effective alpha, 0..1
			k := 1 - a
			pix[0] = blend(sr, c, pix[0], k)
			pix[1] = blend(sg, c, pix[1], k)
			pix[2] = blend(sb, c, pix[2], k)
			pix[3] = blend(sa, c, pix[3], k)
		}
	}
}

// blend computes src·c + dst·k for one premultiplied channel, where src
// is a 16-bit value and dst an 8-bit value.
func blend(src uint32, c float32, dst uint8, k float32) uint8 {
	v := float32(src)/0x101*c + float32(dst)*k
	return uint8(min(max(v+0.5, 0), 255))
}

// EncodePNG draws s with the given number of pixels per scene unit and
// writes the image to w in PNG format.
func EncodePNG(w io.Writer, s *gauge.Scene, scale float64) error {
	p, err := New()
	if err != nil {
		return err
	}
	p.Scale = scale
	img, err := p.Render(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
