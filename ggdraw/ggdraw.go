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

// Package ggdraw draws gauges using the gogpu/gg 2D graphics library.
package ggdraw

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/textpath"
)

// Draw replays s onto dc, using the current transformation of dc.
// Texts are drawn as glyph outlines obtained from shaper.
func Draw(dc *gg.Context, s *gauge.Scene, shaper *textpath.Shaper) error {
	dc.SetFillRule(gg.FillRuleNonZero)

	if s.Background != nil {
		f := s.Frame
		dc.SetColor(s.Background)
		dc.DrawRectangle(f.LLx, f.LLy, f.URx-f.LLx, f.URy-f.LLy)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if err := drawTrack(dc, s); err != nil {
		return fmt.Errorf("ggdraw: track: %w", err)
	}

	switch {
	case s.Indicator != nil:
		if err := fill(dc, s.Indicator.Path(), s.Indicator.Color); err != nil {
			return fmt.Errorf("ggdraw: indicator: %w", err)
		}
	case s.Needle != nil:
		n := s.Needle
		dc.SetColor(n.Color)
		dc.SetLineWidth(n.Width)
		dc.SetLineCap(gg.LineCapButt)
		dc.MoveTo(n.Tail.X, n.Tail.Y)
		dc.LineTo(n.Tip.X, n.Tip.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("ggdraw: needle: %w", err)
		}
	}

	for _, t := range s.Texts() {
		outline, err := shaper.TextOutline(t)
		if err != nil {
			return err
		}
		if len(outline.Cmds) == 0 {
			continue
		}
		if err := fill(dc, outline, t.Color); err != nil {
			return fmt.Errorf("ggdraw: text %q: %w", t.Content, err)
		}
	}
	return nil
}

// drawTrack fills the band of s.  Angular gradients map onto a gg sweep
// gradient; other non-solid paints are approximated by slices.
func drawTrack(dc *gg.Context, s *gauge.Scene) error {
	switch p := s.TrackPaint.(type) {
	case gauge.Solid:
		return fill(dc, s.Track, p.Color)
	case *gauge.AngularGradient:
		dc.SetFillBrush(sweepBrush(dc, s.Center, p))
		return fillPath(dc, s.Track)
	}
	pieces, err := s.TrackPieces(0)
	if err != nil {
		return err
	}
	for _, piece := range pieces {
		if err := fill(dc, piece.Path, piece.Color); err != nil {
			return err
		}
	}
	return nil
}

// sweepBrush converts g into a gg brush.  gg evaluates brushes in device
// space, so the center is transformed by the current matrix of dc.
func sweepBrush(dc *gg.Context, center vec.Vec2, g *gauge.AngularGradient) *gg.SweepGradientBrush {
	cx, cy := dc.TransformPoint(center.X, center.Y)
	start := g.StartAngle * math.Pi / 180
	end := g.EndAngle * math.Pi / 180
	if end == start {
		end = start + 2*math.Pi
	}
	b := gg.NewSweepGradientBrush(cx, cy, start).SetEndAngle(end)
	for _, stop := range g.Stops {
		b.AddColorStop(stop.Offset, gg.FromColor(stop.Color))
	}
	return b.SetExtend(gg.ExtendPad)
}

// fill replays p as the current path of dc and fills it with col.
func fill(dc *gg.Context, p *path.Data, col color.Color) error {
	dc.SetColor(col)
	return fillPath(dc, p)
}

// fillPath replays p as the current path of dc and fills it using the
// current brush.
func fillPath(dc *gg.Context, p *path.Data) error {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			dc.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			dc.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdQuadTo:
			c, e := p.Coords[k], p.Coords[k+1]
			dc.QuadraticTo(c.X, c.Y, e.X, e.Y)
			k += 2
		case path.CmdCubeTo:
			c1, c2, e := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			k += 3
		case path.CmdClose:
			dc.ClosePath()
		}
	}
	return dc.Fill()
}

// NewContext returns a gg context just large enough to hold the frame of
// s, at the given number of pixels per scene unit.
func NewContext(s *gauge.Scene, scale float64) *gg.Context {
	w := int(math.Ceil((s.Frame.URx - s.Frame.LLx) * scale))
	h := int(math.Ceil((s.Frame.URy - s.Frame.LLy) * scale))
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	dc.Translate(-s.Frame.LLx, -s.Frame.LLy)
	return dc
}

// RenderPNG draws s using gg and writes the result to w in PNG format.
func RenderPNG(w io.Writer, s *gauge.Scene, scale float64) error {
	shaper, err := textpath.New()
	if err != nil {
		return err
	}
	dc := NewContext(s, scale)
	defer dc.Close()

	if err := Draw(dc, s, shaper); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}
