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

package gauge

import (
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is a fully positioned gauge, ready to be drawn by a backend.
// All coordinates use the screen convention: the origin is the top-left
// corner of Frame and y grows downwards.  Frame is the gauge square, whose
// side is the longer of the configured width and height.
type Scene struct {
	Frame   rect.Rect
	Center  vec.Vec2
	Angle   float64 // angle of the value, in radians
	Metrics Metrics
	Style   Style

	// Background is nil for a transparent background.
	Background color.Color

	Track      *path.Data // closed outline of the band, filled nonzero
	TrackPaint Paint

	// Exactly one of Indicator and Needle is set, depending on Style.
	Indicator *Circle
	Needle    *NeedleShape

	// Value is nil for the Needle style.  MinLabel and MaxLabel are nil if
	// the corresponding label is empty.
	Value              *Text
	MinLabel, MaxLabel *Text
}

// Texts returns the non-nil texts of the scene, in drawing order.
func (s *Scene) Texts() []*Text {
	var res []*Text
	for _, t := range []*Text{s.Value, s.MinLabel, s.MaxLabel} {
		if t != nil {
			res = append(res, t)
		}
	}
	return res
}

// Circle is a filled disk.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Color  color.Color
}

// Path returns the outline of the disk.
func (c *Circle) Path() *path.Data {
	return circlePath(c.Center, c.Radius)
}

// NeedleShape is a straight line from Tail to Tip, with butt caps.
type NeedleShape struct {
	Tail, Tip vec.Vec2
	Width     float64
	Color     color.Color
}

// Path returns the center line of the needle, to be stroked with
// line width n.Width.
func (n *NeedleShape) Path() *path.Data {
	return (&path.Data{}).MoveTo(n.Tail).LineTo(n.Tip)
}

// needleWidth is the stroke width of the needle.
const needleWidth = 1.0

// Text is a single line of text.
//
// The point Anchor is aligned with a reference point of the text box:
// AX = 0, 0.5, 1 select the left edge, the center and the right edge,
// AY = 0, 0.5, 1 select the top, the middle and the bottom.
type Text struct {
	Content string
	Anchor  vec.Vec2
	AX, AY  float64
	Size    float64 // font size
	Color   color.Color

	// If MaxWidth is positive, backends reduce the font size so that the
	// text fits into MaxWidth, but not below MinScale·Size.
	MaxWidth float64
	MinScale float64
}

// FitSize returns the font size to use for t, given the width the text
// would have at size t.Size.
func (t *Text) FitSize(width float64) float64 {
	if t.MaxWidth <= 0 || width <= t.MaxWidth {
		return t.Size
	}
	scale := max(t.MaxWidth/width, t.MinScale)
	return t.Size * scale
}

// Layout computes the positions of all parts of a gauge showing value.
//
// The value is not clamped to cfg.Bounds.  Values outside the range place
// the indicator outside the band.  An error is returned if cfg is invalid
// or if value is not finite.
func Layout(cfg Config, value float64) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidValue, value)
	}

	g := cfg.Geometry()
	m := g.Metrics()
	side := m.LongestSide
	frame := rect.Rect{URx: side, URy: side}
	center := vec.Vec2{X: side / 2, Y: side / 2}

	angle, err := AngleForValue(value, cfg.Bounds)
	if err != nil {
		return nil, err
	}
	track, err := BuildArcOutline(frame, g.IndicationWidth)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Frame:      frame,
		Center:     center,
		Angle:      angle,
		Metrics:    m,
		Style:      cfg.Style,
		Background: cfg.Background,
		Track:      track,
		TrackPaint: cfg.foreground(),
	}

	switch cfg.Style {
	case Circular:
		s.Indicator = &Circle{
			Center: m.IndicatorPosition(center, angle),
			Radius: g.IndicationWidth / 2,
			Color:  orDefault(cfg.Indicator, DefaultIndicator),
		}
		s.Value = &Text{
			Content:  fmt.Sprintf(cfg.valueFormat(), value),
			Anchor:   center,
			AX:       0.5,
			AY:       0.5,
			Size:     m.FontSize,
			Color:    orDefault(cfg.Text, DefaultText),
			MaxWidth: m.LongestSide - 2.5*g.IndicationWidth,
			MinScale: 0.1,
		}
	case Needle:
		s.Needle = &NeedleShape{
			Tail:  m.NeedleTail(center, angle),
			Tip:   m.NeedleTip(center, angle),
			Width: needleWidth,
			Color: orDefault(cfg.Needle, DefaultNeedle),
		}
	}

	// The labels sit in two frames of width LongestSide/5 at the bottom
	// of the gauge square, separated by spacers of the same width.
	bottom := frame.URy
	labelColor := orDefault(cfg.Label, DefaultLabel)
	label := func(content string, x float64) *Text {
		if content == "" {
			return nil
		}
		return &Text{
			Content:  content,
			Anchor:   vec.Vec2{X: x, Y: bottom},
			AX:       0.5,
			AY:       1,
			Size:     m.FontSize,
			Color:    labelColor,
			MaxWidth: m.LongestSide / 5,
			MinScale: 0.3,
		}
	}
	s.MinLabel = label(cfg.MinLabel, center.X-0.2*m.LongestSide)
	s.MaxLabel = label(cfg.MaxLabel, center.X+0.2*m.LongestSide)

	return s, nil
}
