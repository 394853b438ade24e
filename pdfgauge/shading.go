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

package pdfgauge

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/shading"

	"seehuhn.de/go/gauge"
)

// ringSectors is the number of sectors used to approximate an angular
// gradient by a triangle mesh.
const ringSectors = 360

// sweepShading returns a Gouraud-shaded triangle mesh which approximates
// g on a ring around center.  The ring covers the radii from inner to
// outer, and is meant to be clipped to the band.
//
// The ring starts at g.StartAngle and runs in the direction of the sweep,
// so that the jump from the end color back to the start color falls on
// the boundary between the last and the first sector.
func sweepShading(center vec.Vec2, inner, outer float64, g *gauge.AngularGradient) *shading.Type4 {
	step := 2 * math.Pi / ringSectors
	// the chords of the outer polygon must stay outside the circle
	outer /= math.Cos(step / 2)

	sweep := g.Sweep()
	dir := math.Copysign(1, sweep)
	start := g.StartAngle * math.Pi / 180

	vertex := func(k int, r float64) shading.Type4Vertex {
		t := float64(k) * 360 / ringSectors / math.Abs(sweep)
		p := gauge.PointOnCircle(center, r, start+dir*float64(k)*step)
		return shading.Type4Vertex{X: p.X, Y: p.Y, Color: rgb(g.ColorAtOffset(t))}
	}

	vertices := make([]shading.Type4Vertex, 0, 6*ringSectors)
	for k := range ringSectors {
		a0, a1 := vertex(k, inner), vertex(k+1, inner)
		b0, b1 := vertex(k, outer), vertex(k+1, outer)
		vertices = append(vertices, a0, b0, b1, a0, b1, a1)
	}

	return &shading.Type4{
		ColorSpace:        pdfcolor.SpaceDeviceRGB,
		BitsPerCoordinate: 16,
		BitsPerComponent:  8,
		BitsPerFlag:       2,
		Decode: []float64{
			center.X - outer, center.X + outer,
			center.Y - outer, center.Y + outer,
			0, 1, 0, 1, 0, 1,
		},
		Vertices:  vertices,
		AntiAlias: true,
	}
}

// rgb returns the DeviceRGB components of col.
func rgb(col color.Color) []float64 {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	return []float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
