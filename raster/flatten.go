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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// subpath describes the range r.pts[start:end] of flattened points.
type subpath struct {
	start, end int
	closed     bool
}

// flatten converts p into polygons, stored in r.pts and r.subpaths.
// Curves are replaced by line segments, such that the distance between
// curve and polygon is at most r.Flatness in device space.
func (r *Rasterizer) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]

	start := -1
	var current vec.Vec2
	finish := func(closed bool) {
		if start >= 0 {
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.pts), closed: closed})
		}
		start = -1
	}
	// open starts a new subpath at the current point, if necessary
	open := func() {
		if start < 0 {
			start = len(r.pts)
			r.pts = append(r.pts, current)
		}
	}
	lineTo := func(q vec.Vec2) {
		r.pts = append(r.pts, q)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			k++
			open()
		case path.CmdLineTo:
			open()
			current = p.Coords[k]
			k++
			lineTo(current)
		case path.CmdQuadTo:
			open()
			c, end := p.Coords[k], p.Coords[k+1]
			k += 2
			// degree elevation
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3.0))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
			r.flattenCubic(current, c1, c2, end, lineTo)
			current = end
		case path.CmdCubeTo:
			open()
			c1, c2, end := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			k += 3
			r.flattenCubic(current, c1, c2, end, lineTo)
			current = end
		case path.CmdClose:
			if start >= 0 {
				current = r.pts[start]
			}
			finish(true)
		}
	}
	finish(false)
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments and calls lineTo for each segment end point.  The number of
// segments is chosen using Wang's formula, with the second differences
// of the control points measured in device space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	d1 := r.deviceDelta(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceDelta(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		n = max(int(math.Ceil(math.Sqrt(0.75*m/r.Flatness))), 1)
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		lineTo(pt)
	}
	lineTo(p3)
}

// deviceDelta applies the linear part of the CTM to v.
func (r *Rasterizer) deviceDelta(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// deviceScale returns the largest factor by which the CTM stretches
// lengths.
func (r *Rasterizer) deviceScale() float64 {
	a, b, c, d := r.CTM[0], r.CTM[1], r.CTM[2], r.CTM[3]
	// largest singular value of [[a c] [b d]]
	s := a*a + b*b + c*c + d*d
	det := a*d - b*c
	return math.Sqrt((s + math.Sqrt(max(s*s-4*det*det, 0))) / 2)
}
