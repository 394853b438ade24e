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

// Package pdfgauge writes gauges as vector PDF files.
//
// The page has the size of the scene frame, with one PDF point per scene
// unit.  Texts are converted to glyph outlines, so that no fonts need to
// be embedded.  Transparency is not supported: alpha values of the scene
// colors are ignored.  Angular gradients are drawn as a triangle mesh
// shading clipped to the band.  Other non-solid paints are drawn as thin
// slices of the band, each filled with a single color.
package pdfgauge

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/textpath"
)

// WriteFile writes s to the named file, as a single-page PDF document.
func WriteFile(fname string, s *gauge.Scene) error {
	shaper, err := textpath.New()
	if err != nil {
		return err
	}

	// Convert the band and all texts first, so that no partial file is
	// written if this fails.
	gradient, _ := s.TrackPaint.(*gauge.AngularGradient)
	var pieces []gauge.Piece
	if gradient == nil {
		pieces, err = s.TrackPieces(0)
		if err != nil {
			return fmt.Errorf("pdfgauge: track: %w", err)
		}
	}

	type outline struct {
		p   *path.Data
		col color.Color
	}
	var texts []outline
	for _, t := range s.Texts() {
		p, err := shaper.TextOutline(t)
		if err != nil {
			return fmt.Errorf("pdfgauge: text %q: %w", t.Content, err)
		}
		texts = append(texts, outline{p: p, col: t.Color})
	}

	w := s.Frame.URx - s.Frame.LLx
	h := s.Frame.URy - s.Frame.LLy
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF places the origin at the bottom left, scenes at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, -s.Frame.LLx, h + s.Frame.LLy})

	if s.Background != nil {
		page.SetFillColor(toPDF(s.Background))
		page.Rectangle(s.Frame.LLx, s.Frame.LLy, w, h)
		page.Fill()
	}

	// addPath sends p to the page
	addPath := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	// fill sends p to the page and fills it using the nonzero rule
	fill := func(p *path.Data, col color.Color) {
		page.SetFillColor(toPDF(col))
		addPath(p)
		page.Fill()
	}

	if gradient != nil {
		m := s.Metrics
		page.PushGraphicsState()
		addPath(s.Track)
		page.ClipNonZero()
		page.EndPath()
		page.DrawShading(sweepShading(s.Center, (m.Radius-m.IndicationWidth)/2, m.Radius, gradient))
		page.PopGraphicsState()
	}
	for _, piece := range pieces {
		fill(piece.Path, piece.Color)
	}

	switch {
	case s.Indicator != nil:
		fill(s.Indicator.Path(), s.Indicator.Color)
	case s.Needle != nil:
		n := s.Needle
		page.SetStrokeColor(toPDF(n.Color))
		page.SetLineWidth(n.Width)
		page.SetLineCap(graphics.LineCapButt)
		page.MoveTo(n.Tail.X, n.Tail.Y)
		page.LineTo(n.Tip.X, n.Tip.Y)
		page.Stroke()
	}

	for _, t := range texts {
		if len(t.p.Cmds) > 0 {
			fill(t.p, t.col)
		}
	}

	return page.Close()
}

// toPDF converts col to a DeviceRGB color.
func toPDF(col color.Color) pdfcolor.Color {
	c := rgb(col)
	return pdfcolor.DeviceRGB{c[0], c[1], c[2]}
}
