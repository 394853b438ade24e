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
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p with the current line width, cap style
// and join style.
//
// The stroke is decomposed into simple convex pieces: one quadrilateral
// per line segment, plus one polygon for each join and cap.  All pieces
// are oriented the same way and filled together using the nonzero rule,
// which gives their union.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.flatten(p)
	r.clearEdges()

	d := r.Width / 2
	for _, sp := range r.subpaths {
		r.strokeSubpath(r.pts[sp.start:sp.end], sp.closed, d)
	}
	r.sweep(nonZero, emit)
}

func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	// remove repeated points
	clean := make([]vec.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(clean) > 0 && p.Sub(clean[len(clean)-1]).Length() < zeroLengthThreshold {
			continue
		}
		clean = append(clean, p)
	}
	if closed && len(clean) > 1 && clean[0].Sub(clean[len(clean)-1]).Length() < zeroLengthThreshold {
		clean = clean[:len(clean)-1]
	}

	if len(clean) == 1 {
		r.strokeDot(clean[0], d)
		return
	}
	if len(clean) == 2 {
		closed = false
	}

	n := len(clean)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := clean[i], clean[(i+1)%n]
		t := unit(b.Sub(a))
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := clean[(i+n-1)%n]
		next := clean[(i+1)%n]
		r.addJoin(clean[i], unit(clean[i].Sub(prev)), unit(next.Sub(clean[i])), d)
	}

	if !closed {
		r.addCap(clean[0], unit(clean[0].Sub(clean[1])), d)
		r.addCap(clean[n-1], unit(clean[n-1].Sub(clean[n-2])), d)
	}
}

// strokeDot handles subpaths of zero length.  Only round and square caps
// produce visible output.
func (r *Rasterizer) strokeDot(p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisk(p, d)
	case graphics.LineCapSquare:
		r.addPolygon(
			vec.Vec2{X: p.X - d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y - d},
			vec.Vec2{X: p.X + d, Y: p.Y + d},
			vec.Vec2{X: p.X - d, Y: p.Y + d},
		)
	}
}

// addCap adds the cap at the end point p of an open subpath.
// The unit vector t points away from the line.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisk(p, d)
	case graphics.LineCapSquare:
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := t.Mul(d)
		r.addPolygon(p.Add(nrm), p.Add(nrm).Add(ext), p.Sub(nrm).Add(ext), p.Sub(nrm))
	}
}

// addJoin adds the join at vertex p, where the direction changes from the
// unit vector t1 to the unit vector t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisk(p, d)
		return
	}

	// the outer side of the corner is opposite to the turning direction
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(d)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(d)
	if cross > 0 {
		n1 = n1.Mul(-1)
		n2 = n2.Mul(-1)
	}

	if r.Join == graphics.LineJoinMiter {
		// cos(φ/2), where φ is the angle between the two outer normals
		cosHalf := math.Sqrt(max((1+cos)/2, 0))
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			bisector := unit(n1.Add(n2))
			tip := p.Add(bisector.Mul(d / cosHalf))
			r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
			return
		}
	}
	r.addPolygon(p, p.Add(n1), p.Add(n2))
}

// addDisk adds a polygon approximating the disk of radius d around c.
func (r *Rasterizer) addDisk(c vec.Vec2, d float64) {
	dev := d * r.deviceScale()
	n := 8
	if dev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/dev)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	var first, prev vec.Vec2
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		q := vec.Vec2{X: c.X + d*cos, Y: c.Y + d*sin}
		if i == 0 {
			first = q
		} else {
			r.addEdge(prev, q)
		}
		prev = q
	}
	r.addEdge(prev, first)
}

// addPolygon adds a convex polygon, with the vertices given in either
// order, so that it winds in the same direction as the disks.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area == 0 {
		return
	}
	if area > 0 {
		for i, a := range pts {
			r.addEdge(a, pts[(i+1)%len(pts)])
		}
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+len(pts)-1)%len(pts)])
		}
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

const collinearityThreshold = 1e-6
