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

// Package raster converts paths into anti-aliased pixel coverage.
//
// A [Rasterizer] fills paths using the nonzero or the even-odd rule and
// strokes paths with a given line width, cap style and join style.  The
// result is reported row by row, as the fraction of each pixel covered by
// the shape.  Compositing the coverage onto an image is left to the
// caller.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row.  Coverage[i] is the
// coverage of pixel (xMin+i, y), in the range 0 to 1.  The slice is only
// valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer computes the pixel coverage of filled and stroked paths.
// Internal buffers are reused between calls, so a single Rasterizer should
// be used for many paths.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be invertible.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the line width for stroking, in user space units.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins, relative to the line
	// width.  Longer joins are drawn as bevel joins.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	pts      []vec.Vec2 // flattened subpaths, in user space
	subpaths []subpath

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// edge is a non-horizontal line segment in device space, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment runs downwards in the path, -1 otherwise
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle
// and uses the identity CTM and the PDF default line style.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset prepares r for a new image with the given clip rectangle.
// The graphics parameters are set back to their default values.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, evenOdd, emit)
}

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.flatten(p)
	r.clearEdges()
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if len(pts) < 2 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			r.addEdge(pts[i-1], pts[i])
		}
		r.addEdge(pts[len(pts)-1], pts[0])
	}
	r.sweep(rule, emit)
}

func (r *Rasterizer) clearEdges() {
	r.edges = r.edges[:0]
	r.devXMin = math.Inf(+1)
	r.devYMin = math.Inf(+1)
	r.devXMax = math.Inf(-1)
	r.devYMax = math.Inf(-1)
}

// addEdge adds the segment from a to b, given in user space, to the edge
// list.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < horizontalEdgeThreshold {
		return
	}
	e := edge{x0: x0, y0: y0, x1: x1, y1: y1, dir: 1}
	if y1 < y0 {
		e.x0, e.y0, e.x1, e.y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)
	r.edges = append(r.edges, e)

	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, e.y0)
	r.devYMax = max(r.devYMax, e.y1)
}

// Coverage is computed using signed area accumulation.  For every pixel,
// cover holds the signed height of the edge pieces inside the pixel, and
// area holds the part of this height which lies to the right of the
// edges.  Scanning a row from left to right, the coverage of a pixel is
// the sum of cover over all pixels to the left, plus its own area.

// sweep computes the coverage of the current edge list, one scanline at
// a time, using an active edge list.
func (r *Rasterizer) sweep(rule fillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == nonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between the scanlines top and bottom to
// the cover and area buffers.  The return value indicates whether any
// contribution was made.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	yTop := max(top, e.y0)
	yBot := min(bottom, e.y1)
	if yBot <= yTop {
		return false
	}
	xl := e.x0 + e.dxdy*(yTop-e.y0)
	xr := e.x0 + e.dxdy*(yBot-e.y0)
	if xl > xr {
		xl, xr = xr, xl
	}

	pl := int(math.Floor(xl))
	pr := int(math.Floor(xr))
	if pl == pr {
		r.deposit(pl, yBot-yTop, (xl+xr)/2-float64(pl), e.dir, xMin, xMax)
		return true
	}

	// The edge crosses pixel boundaries; split it into one piece per
	// pixel column.
	dydx := (yBot - yTop) / (xr - xl)
	x := xl
	for pix := pl; pix <= pr; pix++ {
		end := min(float64(pix+1), xr)
		if end > x {
			r.deposit(pix, (end-x)*dydx, (x+end)/2-float64(pix), e.dir, xMin, xMax)
		}
		x = end
	}
	return true
}

// deposit records an edge piece of height dy inside pixel column pix.
// The piece crosses the column at relative position frac, on average.
func (r *Rasterizer) deposit(pix int, dy, frac float64, dir float32, xMin, xMax int) {
	c := dir * float32(dy)
	switch {
	case pix >= xMax:
		// right of the clip region, no influence on visible pixels
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	default:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated cover and area into coverage
// values for the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated cover and area into coverage
// values for the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros removes leading and trailing zeros from a coverage row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.  Joins with an angle of
	// less than about 11.5° are beveled.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
)
