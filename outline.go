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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// band describes the gauge band inside a drawing box.
type band struct {
	center       vec.Vec2
	outer, inner float64
	capRadius    float64
	mid          float64 // radius of the center line
	a0, a1       float64 // start and end angle, in radians
}

func newBand(box rect.Rect, indicationWidth float64) (*band, error) {
	w := box.URx - box.LLx
	h := box.URy - box.LLy
	if !isFinite(w) || !isFinite(h) || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty bounding box %gx%g", ErrInvalidGeometry, w, h)
	}
	side := min(w, h)
	if err := checkIndicationWidth(side, indicationWidth); err != nil {
		return nil, err
	}
	outer := side / 2
	return &band{
		center:    vec.Vec2{X: box.LLx + w/2, Y: box.LLy + h/2},
		outer:     outer,
		inner:     outer - indicationWidth,
		capRadius: indicationWidth / 2,
		mid:       outer - indicationWidth/2,
		a0:        SweepStart * math.Pi / 180,
		a1:        SweepEnd * math.Pi / 180,
	}, nil
}

// BuildArcOutline returns the closed outline of the gauge band.
//
// The band is centered in box.  Its outer radius is half of the shorter
// side of box, and its thickness is indicationWidth.  [Layout] always
// passes a square box.  The outline runs along the outer edge from -225°
// to +45°, around a semicircular cap to the inner edge, back along the
// inner edge, and around a second cap to the start point.  All arcs are
// represented by cubic Bézier curves.
//
// An error wrapping [ErrInvalidGeometry] is returned if box is empty or
// if indicationWidth is not in the range (0, side/2).
func BuildArcOutline(box rect.Rect, indicationWidth float64) (*path.Data, error) {
	b, err := newBand(box, indicationWidth)
	if err != nil {
		return nil, err
	}
	a0, a1 := b.a0, b.a1

	start := PointOnCircle(b.center, b.outer, a0)
	p := (&path.Data{}).MoveTo(start)
	p = appendArc(p, b.center, b.outer, a0, a1)
	p = appendArc(p, PointOnCircle(b.center, b.mid, a1), b.capRadius, a1, a1+math.Pi)
	p = appendArc(p, b.center, b.inner, a1, a0)
	p = appendArc(p, PointOnCircle(b.center, b.mid, a0), b.capRadius, a0-math.Pi, a0)

	// snap the end of the last cap onto the start point, so that the
	// outline closes exactly
	p.Coords[len(p.Coords)-1] = start

	return p.Close(), nil
}

// ArcSlice is a closed piece of the gauge band.  Angle is the direction,
// in radians, of the middle of the piece as seen from the gauge center.
type ArcSlice struct {
	Path  *path.Data
	Angle float64
}

// SliceArcOutline cuts the gauge band into n annular sectors of equal
// angle, preceded by the cap at the start and followed by the cap at the
// end of the band.  Together, the n+2 slices cover the same area as
// [BuildArcOutline].
func SliceArcOutline(box rect.Rect, indicationWidth float64, n int) ([]ArcSlice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d slices", ErrInvalidGeometry, n)
	}
	b, err := newBand(box, indicationWidth)
	if err != nil {
		return nil, err
	}

	res := make([]ArcSlice, 0, n+2)

	c0 := PointOnCircle(b.center, b.mid, b.a0)
	p := (&path.Data{}).MoveTo(PointOnCircle(c0, b.capRadius, b.a0-math.Pi))
	p = appendArc(p, c0, b.capRadius, b.a0-math.Pi, b.a0)
	res = append(res, ArcSlice{Path: p.Close(), Angle: b.a0})

	step := (b.a1 - b.a0) / float64(n)
	for i := range n {
		s := b.a0 + float64(i)*step
		e := s + step
		if i == n-1 {
			e = b.a1
		}
		p := (&path.Data{}).MoveTo(PointOnCircle(b.center, b.outer, s))
		p = appendArc(p, b.center, b.outer, s, e)
		p = p.LineTo(PointOnCircle(b.center, b.inner, e))
		p = appendArc(p, b.center, b.inner, e, s)
		res = append(res, ArcSlice{Path: p.Close(), Angle: (s + e) / 2})
	}

	c1 := PointOnCircle(b.center, b.mid, b.a1)
	p = (&path.Data{}).MoveTo(PointOnCircle(c1, b.capRadius, b.a1))
	p = appendArc(p, c1, b.capRadius, b.a1, b.a1+math.Pi)
	res = append(res, ArcSlice{Path: p.Close(), Angle: b.a1})

	return res, nil
}

// appendArc appends a circular arc from angle a0 to angle a1 (radians) to p.
// The current point of p must be the start of the arc.  The arc is split
// into pieces of at most 90°, each approximated by a cubic Bézier curve.
func appendArc(p *path.Data, center vec.Vec2, r, a0, a1 float64) *path.Data {
	sweep := a1 - a0
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)

	// length of the control arms for a unit circle
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := range n {
		s := a0 + float64(i)*step
		e := s + step
		if i == n-1 {
			e = a1
		}
		sinS, cosS := math.Sincos(s)
		sinE, cosE := math.Sincos(e)

		p0 := vec.Vec2{X: center.X + r*cosS, Y: center.Y + r*sinS}
		p3 := vec.Vec2{X: center.X + r*cosE, Y: center.Y + r*sinE}
		p1 := vec.Vec2{X: p0.X - k*r*sinS, Y: p0.Y + k*r*cosS}
		p2 := vec.Vec2{X: p3.X + k*r*sinE, Y: p3.Y - k*r*cosE}
		p = p.CubeTo(p1, p2, p3)
	}
	return p
}

// circlePath returns a closed circle, starting at angle 0.
func circlePath(center vec.Vec2, r float64) *path.Data {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: center.X + r, Y: center.Y})
	return appendArc(p, center, r, 0, 2*math.Pi).Close()
}
