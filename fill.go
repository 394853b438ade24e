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
	"seehuhn.de/go/geom/vec"
)

// Paint describes how an area is filled.
//
// ColorAt returns the color at point p, for a gauge centered at center.
// Both points use the coordinates of the scene.
type Paint interface {
	ColorAt(p, center vec.Vec2) color.Color
}

// Solid fills an area with a single color.
type Solid struct {
	Color color.Color
}

// ColorAt implements the [Paint] interface.
func (s Solid) ColorAt(_, _ vec.Vec2) color.Color {
	return s.Color
}

// ColorStop is a color at a given position of a gradient.
// Offset is in the range [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// AngularGradient changes color with the angle around the gauge center.
//
// The angles are in degrees, using the screen convention of the package.
// The gradient runs from StartAngle to EndAngle.  Angles outside this range
// use the color of the nearest end.  If the two angles are equal, the
// gradient covers a full turn.
type AngularGradient struct {
	Stops      []ColorStop
	StartAngle float64
	EndAngle   float64
}

// NewAngularGradient returns a gradient with evenly spaced color stops.
func NewAngularGradient(start, end float64, colors ...color.Color) *AngularGradient {
	g := &AngularGradient{StartAngle: start, EndAngle: end}
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	}
	return g
}

// Validate checks that the gradient has at least one stop and that the
// offsets are sorted and inside [0, 1].
func (g *AngularGradient) Validate() error {
	if len(g.Stops) == 0 {
		return fmt.Errorf("%w: gradient without color stops", ErrInvalidPaint)
	}
	prev := 0.0
	for i, s := range g.Stops {
		if !(s.Offset >= prev && s.Offset <= 1) {
			return fmt.Errorf("%w: color stop %d has offset %g", ErrInvalidPaint, i, s.Offset)
		}
		if s.Color == nil {
			return fmt.Errorf("%w: color stop %d has no color", ErrInvalidPaint, i)
		}
		prev = s.Offset
	}
	if !isFinite(g.StartAngle) || !isFinite(g.EndAngle) {
		return fmt.Errorf("%w: gradient angles %g, %g", ErrInvalidPaint, g.StartAngle, g.EndAngle)
	}
	return nil
}

// ColorAt implements the [Paint] interface.
func (g *AngularGradient) ColorAt(p, center vec.Vec2) color.Color {
	d := p.Sub(center)
	if d.X == 0 && d.Y == 0 {
		return g.Stops[0].Color
	}
	return g.ColorAtAngle(math.Atan2(d.Y, d.X) * 180 / math.Pi)
}

// ColorAtAngle returns the color for the given angle, in degrees.
func (g *AngularGradient) ColorAtAngle(angle float64) color.Color {
	return g.ColorAtOffset(g.offset(angle))
}

// Sweep returns the signed angle covered by the gradient, in degrees.
func (g *AngularGradient) Sweep() float64 {
	sweep := g.EndAngle - g.StartAngle
	if sweep == 0 {
		sweep = 360
	}
	return sweep
}

// offset maps an angle to the position along the gradient, in [0, 1].
func (g *AngularGradient) offset(angle float64) float64 {
	sweep := g.Sweep()
	rel := math.Mod(angle-g.StartAngle, 360)
	if sweep > 0 && rel < 0 {
		rel += 360
	} else if sweep < 0 && rel > 0 {
		rel -= 360
	}
	return min(max(rel/sweep, 0), 1)
}

// ColorAtOffset returns the color at position t along the gradient.
// Values of t outside [0, 1] give the color of the nearest end.
func (g *AngularGradient) ColorAtOffset(t float64) color.Color {
	stops := g.Stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s1.Color
		}
		return lerpColor(s0.Color, s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
	}
	return stops[len(stops)-1].Color
}

// lerpColor interpolates between a and b, in non-premultiplied RGBA.
func lerpColor(a, b color.Color, t float64) color.NRGBA {
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.NRGBA{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: mix(ca.A, cb.A),
	}
}

func validatePaint(p Paint) error {
	switch p := p.(type) {
	case nil:
		return nil
	case Solid:
		if p.Color == nil {
			return fmt.Errorf("%w: solid paint without color", ErrInvalidPaint)
		}
	case *AngularGradient:
		return p.Validate()
	}
	return nil
}

// DefaultTrackSlices is the number of slices used by [Scene.TrackPieces]
// to approximate a non-solid band.
const DefaultTrackSlices = 90

// Piece is a closed path filled with a single color.
type Piece struct {
	Path  *path.Data
	Color color.Color
}

// TrackPieces returns the band as a list of single-colored pieces, for
// backends which can only fill with solid colors.
//
// For a [Solid] paint the result is the whole band.  Otherwise the band is
// cut into n slices along its length, plus the two end caps, and each
// piece gets the color of the paint at the middle of the piece.  If n is
// not positive, DefaultTrackSlices is used.
func (s *Scene) TrackPieces(n int) ([]Piece, error) {
	if solid, ok := s.TrackPaint.(Solid); ok {
		return []Piece{{Path: s.Track, Color: solid.Color}}, nil
	}
	if n <= 0 {
		n = DefaultTrackSlices
	}
	slices, err := SliceArcOutline(s.Frame, s.Metrics.IndicationWidth, n)
	if err != nil {
		return nil, err
	}
	res := make([]Piece, len(slices))
	for i, sl := range slices {
		p := PointOnCircle(s.Center, s.Metrics.IndicatorRadius, sl.Angle)
		res[i] = Piece{Path: sl.Path, Color: s.TrackPaint.ColorAt(p, s.Center)}
	}
	return res, nil
}
