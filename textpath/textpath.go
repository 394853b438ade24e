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

// Package textpath converts text into glyph outlines.
//
// Backends use the outlines to draw the texts of a gauge in the same way
// as all other shapes, so that the output does not depend on the fonts
// installed on the system.
package textpath

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
)

// Shaper lays out single lines of text using one font.
// A Shaper is not safe for concurrent use.
type Shaper struct {
	font *opentype.Font
	buf  sfnt.Buffer
}

// New returns a Shaper for the Go Regular font.
func New() (*Shaper, error) {
	return Parse(goregular.TTF)
}

// Parse returns a Shaper for the given TrueType or OpenType font data.
func Parse(data []byte) (*Shaper, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textpath: parsing font: %w", err)
	}
	return &Shaper{font: f}, nil
}

// VMetrics gives the extent of the font above and below the baseline.
// Both values are positive.
func (s *Shaper) VMetrics(size float64) (ascent, descent float64, err error) {
	m, err := s.font.Metrics(&s.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent), nil
}

// Measure returns the advance width of text at the given font size.
func (s *Shaper) Measure(text string, size float64) (float64, error) {
	var width float64
	err := s.walk(text, size, func(_ sfnt.GlyphIndex, x float64) error {
		width = x
		return nil
	})
	return width, err
}

// walk calls fn for every glyph of text, with the horizontal position of
// the glyph origin.  Finally, fn is called with glyph index 0 and the
// total advance width.
func (s *Shaper) walk(text string, size float64, fn func(idx sfnt.GlyphIndex, x float64) error) error {
	ppem := toFixed(size)
	var x fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range text {
		idx, err := s.font.GlyphIndex(&s.buf, r)
		if err != nil {
			return err
		}
		if i > 0 {
			kern, err := s.font.Kern(&s.buf, prev, idx, ppem, font.HintingNone)
			if err == nil {
				x += kern
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				return err
			}
		}
		if err := fn(idx, fromFixed(x)); err != nil {
			return err
		}
		adv, err := s.font.GlyphAdvance(&s.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		x += adv
		prev = idx
	}
	return fn(0, fromFixed(x))
}

// Outline returns the glyph outlines of text, set at the given font size.
//
// The point anchor is aligned with a reference point of the text box:
// ax = 0, 0.5, 1 select the left edge, the center and the right edge,
// ay = 0, 0.5, 1 select the top (ascent), the middle and the bottom
// (descent) of the text.  The outlines use y-down coordinates and are
// filled using the nonzero rule.
func (s *Shaper) Outline(text string, size float64, anchor vec.Vec2, ax, ay float64) (*path.Data, error) {
	p := &path.Data{}
	if text == "" || size <= 0 {
		return p, nil
	}

	width, err := s.Measure(text, size)
	if err != nil {
		return nil, err
	}
	ascent, descent, err := s.VMetrics(size)
	if err != nil {
		return nil, err
	}
	origin := vec.Vec2{
		X: anchor.X - ax*width,
		Y: anchor.Y + ascent - ay*(ascent+descent),
	}

	ppem := toFixed(size)
	n := len([]rune(text))
	count := 0
	err = s.walk(text, size, func(idx sfnt.GlyphIndex, x float64) error {
		if count == n {
			return nil // final call with the total width
		}
		count++
		segs, err := s.font.LoadGlyph(&s.buf, idx, ppem, nil)
		if err != nil {
			return err
		}
		p = appendGlyph(p, segs, origin.Add(vec.Vec2{X: x}))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TextOutline returns the outlines of t, with the font size reduced as
// needed to fit into t.MaxWidth.
func (s *Shaper) TextOutline(t *gauge.Text) (*path.Data, error) {
	size, err := s.FitSize(t)
	if err != nil {
		return nil, err
	}
	return s.Outline(t.Content, size, t.Anchor, t.AX, t.AY)
}

// FitSize returns the font size used to draw t.
func (s *Shaper) FitSize(t *gauge.Text) (float64, error) {
	width, err := s.Measure(t.Content, t.Size)
	if err != nil {
		return 0, err
	}
	return t.FitSize(width), nil
}

// appendGlyph appends the segments of one glyph, with the glyph origin
// at o, to p.  Every contour is closed explicitly.
func appendGlyph(p *path.Data, segs sfnt.Segments, o vec.Vec2) *path.Data {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: o.X + fromFixed(q.X), Y: o.Y + fromFixed(q.Y)}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	return p
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
