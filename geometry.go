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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultIndicationWidth is the thickness of the gauge band used when no
// other value is configured.
const DefaultIndicationWidth = 6.0

// needleScale is the length of the needle relative to the longest side.
const needleScale = 1 / 2.3

// Geometry describes the drawing box of a gauge.
type Geometry struct {
	Width  float64 // width of the drawing box (>0)
	Height float64 // height of the drawing box (>0)

	// IndicationWidth is the thickness of the gauge band.
	// Must be positive and less than half of max(Width, Height).
	IndicationWidth float64
}

// Validate checks that the band fits into the gauge square.  The gauge is
// always drawn in a square whose side is the longer of Width and Height.
func (g Geometry) Validate() error {
	if !isFinite(g.Width) || !isFinite(g.Height) || g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidGeometry, g.Width, g.Height)
	}
	return checkIndicationWidth(max(g.Width, g.Height), g.IndicationWidth)
}

func checkIndicationWidth(side, w float64) error {
	if !isFinite(w) || w <= 0 {
		return fmt.Errorf("%w: indication width %g", ErrInvalidGeometry, w)
	}
	if w >= side/2 {
		return fmt.Errorf("%w: indication width %g must be less than %g",
			ErrInvalidGeometry, w, side/2)
	}
	return nil
}

// Metrics holds the layout quantities derived from a [Geometry].
type Metrics struct {
	LongestSide     float64 // max(Width, Height), the side of the gauge square
	FontSize        float64 // size of the value text and the labels
	Radius          float64 // LongestSide / 2
	IndicationWidth float64 // thickness of the band

	// IndicatorRadius is the distance between the gauge center and the
	// center line of the band.
	IndicatorRadius float64

	NeedleLength float64
}

// Metrics computes the derived layout quantities for g.
func (g Geometry) Metrics() Metrics {
	longest := max(g.Width, g.Height)
	radius := longest / 2
	fontSize := longest / 5
	return Metrics{
		LongestSide:     longest,
		FontSize:        fontSize,
		Radius:          radius,
		IndicationWidth: g.IndicationWidth,
		IndicatorRadius: radius - g.IndicationWidth/2,
		NeedleLength:    longest * needleScale,
	}
}

// PointOnCircle returns the point at the given angle (in radians) on the
// circle with the given center and radius.
func PointOnCircle(center vec.Vec2, radius, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// IndicatorPosition returns the position of the indicator dot for the
// given angle.  The dot sits on the center line of the band.
func (m Metrics) IndicatorPosition(center vec.Vec2, angle float64) vec.Vec2 {
	return PointOnCircle(center, m.IndicatorRadius, angle)
}

// leftCap returns the center of the cap at the start of the band, in the
// coordinates of the gauge square.
func (m Metrics) leftCap() vec.Vec2 {
	c := vec.Vec2{X: m.Radius, Y: m.Radius}
	return PointOnCircle(c, m.IndicatorRadius, SweepStart*math.Pi/180)
}

// NeedleOffset is the displacement which anchors the needle near the
// center of the gauge.  It is derived from the position of the left cap
// of the band, in the coordinates of the gauge square.
func (m Metrics) NeedleOffset() vec.Vec2 {
	c := m.leftCap()
	return vec.Vec2{X: c.X/2 - m.IndicationWidth, Y: c.Y/2}
}

// needlePoint returns the end of the needle for the given angle.
// The unrotated needle is vertical, centered at -NeedleOffset/2 relative
// to center, and is turned by angle + 90° around center.  The parameter
// dir is -1 for the tip and +1 for the tail.
func (m Metrics) needlePoint(center vec.Vec2, angle, dir float64) vec.Vec2 {
	off := m.NeedleOffset()
	x := -off.X / 2
	y := -off.Y/2 + dir*m.NeedleLength/2
	sin, cos := math.Sincos(angle + math.Pi/2)
	return vec.Vec2{
		X: center.X + x*cos - y*sin,
		Y: center.Y + x*sin + y*cos,
	}
}

// NeedleTip returns the end point of the needle which points at the band,
// for the given angle.
func (m Metrics) NeedleTip(center vec.Vec2, angle float64) vec.Vec2 {
	return m.needlePoint(center, angle, -1)
}

// NeedleTail returns the end point of the needle near the gauge center.
func (m Metrics) NeedleTail(center vec.Vec2, angle float64) vec.Vec2 {
	return m.needlePoint(center, angle, +1)
}
