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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects the output of a Rasterizer into a w×h array.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	g := newGrid(10, 1)
	r.FillNonZero(triangle, g.emit)

	for x := range 10 {
		expected := float32(2*x+1) / 20
		if got := g.at(x, 0); !near(got, expected) {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, got)
		}
	}
}

func TestFillSquare(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	g := newGrid(10, 10)
	r.FillNonZero(rectPath(2.5, 2.5, 7.5, 7.5), g.emit)

	cases := []struct {
		x, y int
		want float32
	}{
		{0, 0, 0},
		{1, 5, 0},
		{2, 2, 0.25},
		{2, 5, 0.5},
		{5, 2, 0.5},
		{5, 5, 1},
		{7, 7, 0.25},
		{7, 4, 0.5},
		{8, 5, 0},
	}
	for _, c := range cases {
		if got := g.at(c.x, c.y); !near(got, c.want) {
			t.Errorf("pixel (%d,%d): expected %.3f, got %.3f", c.x, c.y, c.want, got)
		}
	}
}

// TestOrientation checks that the winding direction of a simple shape
// does not affect the coverage.
func TestOrientation(t *testing.T) {
	cw := rectPath(1, 1, 5, 5)
	ccw := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 5}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 6, URy: 6})
	g1 := newGrid(6, 6)
	g2 := newGrid(6, 6)
	r.FillNonZero(cw, g1.emit)
	r.FillNonZero(ccw, g2.emit)
	for i := range g1.pix {
		if g1.pix[i] != g2.pix[i] {
			t.Fatalf("pixel %d: %g != %g", i, g1.pix[i], g2.pix[i])
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := rectPath(0, 0, 10, 10)
	p.Cmds = append(p.Cmds, rectPath(3, 3, 7, 7).Cmds...)
	p.Coords = append(p.Coords, rectPath(3, 3, 7, 7).Coords...)

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})

	g := newGrid(10, 10)
	r.FillNonZero(p, g.emit)
	if got := g.at(5, 5); !near(got, 1) {
		t.Errorf("nonzero: center coverage %g, expected 1", got)
	}

	g = newGrid(10, 10)
	r.FillEvenOdd(p, g.emit)
	if got := g.at(5, 5); !near(got, 0) {
		t.Errorf("even-odd: center coverage %g, expected 0", got)
	}
	if got := g.at(1, 1); !near(got, 1) {
		t.Errorf("even-odd: ring coverage %g, expected 1", got)
	}
}

func TestImplicitClose(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 7, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 7})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 7, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 7}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 8, URy: 8})
	g1 := newGrid(8, 8)
	g2 := newGrid(8, 8)
	r.FillNonZero(open, g1.emit)
	r.FillNonZero(closed, g2.emit)
	for i := range g1.pix {
		if !near(g1.pix[i], g2.pix[i]) {
			t.Fatalf("pixel %d: %g != %g", i, g1.pix[i], g2.pix[i])
		}
	}
}

func TestClip(t *testing.T) {
	r := NewRasterizer(rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6})
	r.FillNonZero(rectPath(-10, -10, 20, 20), func(y, xMin int, coverage []float32) {
		if y < 2 || y >= 6 {
			t.Errorf("row %d outside the clip rectangle", y)
		}
		if xMin != 2 || len(coverage) != 4 {
			t.Errorf("row %d: got columns [%d, %d), expected [2, 6)", y, xMin, xMin+len(coverage))
		}
		for _, c := range coverage {
			if !near(c, 1) {
				t.Errorf("row %d: coverage %g, expected 1", y, c)
			}
		}
	})
}

func TestCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Scale(2, 2)
	g := newGrid(10, 10)
	r.FillNonZero(rectPath(1, 1, 3, 3), g.emit)

	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := g.at(x, y); !near(got, want) {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

func TestCurveFlattening(t *testing.T) {
	// a disk of radius 20, using the standard cubic approximation
	const k = 0.5522847498
	c, rad := 25.0, 20.0
	p := (&path.Data{}).MoveTo(vec.Vec2{X: c + rad, Y: c})
	p = p.CubeTo(vec.Vec2{X: c + rad, Y: c + k*rad}, vec.Vec2{X: c + k*rad, Y: c + rad}, vec.Vec2{X: c, Y: c + rad})
	p = p.CubeTo(vec.Vec2{X: c - k*rad, Y: c + rad}, vec.Vec2{X: c - rad, Y: c + k*rad}, vec.Vec2{X: c - rad, Y: c})
	p = p.CubeTo(vec.Vec2{X: c - rad, Y: c - k*rad}, vec.Vec2{X: c - k*rad, Y: c - rad}, vec.Vec2{X: c, Y: c - rad})
	p = p.CubeTo(vec.Vec2{X: c + k*rad, Y: c - rad}, vec.Vec2{X: c + rad, Y: c - k*rad}, vec.Vec2{X: c + rad, Y: c})
	p = p.Close()

	r := NewRasterizer(rect.Rect{URx: 50, URy: 50})
	r.Flatness = 0.01
	var total float64
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		for _, v := range coverage {
			total += float64(v)
		}
	})

	want := math.Pi * rad * rad
	if math.Abs(total-want)/want > 0.005 {
		t.Errorf("disk area %.2f, expected %.2f", total, want)
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 3, Y: 5}).
		LineTo(vec.Vec2{X: 7, Y: 5})

	cases := []struct {
		cap        graphics.LineCapStyle
		left, right int // expected extent of row 4, in full pixels
	}{
		{graphics.LineCapButt, 3, 7},
		{graphics.LineCapSquare, 2, 8},
	}
	for _, c := range cases {
		r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
		r.Width = 2
		r.Cap = c.cap
		g := newGrid(10, 10)
		r.Stroke(line, g.emit)

		for y := range 10 {
			for x := range 10 {
				want := float32(0)
				if (y == 4 || y == 5) && x >= c.left && x < c.right {
					want = 1
				}
				if got := g.at(x, y); !near(got, want) {
					t.Errorf("cap %v, pixel (%d,%d): expected %g, got %g", c.cap, x, y, want, got)
				}
			}
		}
	}
}

func TestStrokeRoundCap(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 40, URy: 20})
	r.Width = 4
	r.Cap = graphics.LineCapRound
	var total float64
	r.Stroke(line, func(y, xMin int, coverage []float32) {
		for _, v := range coverage {
			total += float64(v)
		}
	})

	// rectangle plus two half disks
	want := 20*4 + math.Pi*2*2
	if math.Abs(total-want)/want > 0.02 {
		t.Errorf("stroke area %.2f, expected %.2f", total, want)
	}
}

func TestStrokeJoins(t *testing.T) {
	// a right angle, turning at (10, 10)
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 18})

	area := func(join graphics.LineJoinStyle) float64 {
		r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
		r.Width = 4
		r.Join = join
		var total float64
		r.Stroke(corner, func(y, xMin int, coverage []float32) {
			for _, v := range coverage {
				total += float64(v)
			}
		})
		return total
	}

	// The two butt-ended arms cover 2·(8·4) = 64, minus the overlap
	// 2·2 = 4 at the inner corner.  The join adds a square of 2·2 (miter),
	// a quarter disk (round) or a triangle (bevel) at the outer corner.
	// Round joins use a polygon with few vertices at this size.
	base := 64.0 - 4
	cases := []struct {
		join graphics.LineJoinStyle
		want float64
		tol  float64
	}{
		{graphics.LineJoinMiter, base + 4, 1e-3},
		{graphics.LineJoinRound, base + math.Pi, 0.4},
		{graphics.LineJoinBevel, base + 2, 1e-3},
	}
	for _, c := range cases {
		got := area(c.join)
		if math.Abs(got-c.want) > c.tol {
			t.Errorf("join %v: area %.3f, expected %.3f", c.join, got, c.want)
		}
	}
}

func TestStrokeClosedSquare(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 12, URy: 12})
	r.Width = 2
	g := newGrid(12, 12)
	r.Stroke(rectPath(2, 2, 10, 10), g.emit)

	// miter joins give a solid frame from 1 to 11
	for y := range 12 {
		for x := range 12 {
			want := float32(0)
			if x >= 1 && x < 11 && y >= 1 && y < 11 && (x < 3 || x >= 9 || y < 3 || y >= 9) {
				want = 1
			}
			if got := g.at(x, y); !near(got, want) {
				t.Errorf("pixel (%d,%d): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	emit := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	}
	r.FillNonZero(&path.Data{}, emit)
	r.Stroke(&path.Data{}, emit)

	// a single point with butt caps is invisible
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 5, Y: 5})
	r.Stroke(dot, emit)
}
