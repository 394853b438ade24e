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

package ggdraw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/textpath"
)

func scene(t *testing.T, style gauge.Style) *gauge.Scene {
	t.Helper()
	b, err := gauge.NewBounds(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	s, err := gauge.Layout(gauge.Config{
		Bounds:          b,
		Style:           style,
		Width:           gauge.Scaled{Base: 120},
		Height:          gauge.Scaled{Base: 120},
		IndicationWidth: 12,
		Background:      color.White,
		MinLabel:        "0",
		MaxLabel:        "10",
	}, 7)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// closeTo reports whether a and b differ by at most tol in every channel.
func closeTo(a, b color.Color, tol int) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	d := func(x, y uint32) bool {
		diff := int(x>>8) - int(y>>8)
		return diff >= -tol && diff <= tol
	}
	return d(r1, r2) && d(g1, g2) && d(b1, b2) && d(a1, a2)
}

func TestDraw(t *testing.T) {
	shaper, err := textpath.New()
	if err != nil {
		t.Fatal(err)
	}
	for _, style := range []gauge.Style{gauge.Circular, gauge.Needle} {
		t.Run(style.String(), func(t *testing.T) {
			s := scene(t, style)
			dc := NewContext(s, 1)
			defer dc.Close()
			if err := Draw(dc, s, shaper); err != nil {
				t.Fatal(err)
			}
			img := dc.Image()
			if diff := cmp.Diff(image.Rect(0, 0, 120, 120), img.Bounds()); diff != "" {
				t.Fatalf("image size (-want +got):\n%s", diff)
			}

			// top of the band
			if got := img.At(60, 6); !closeTo(got, gauge.DefaultForeground, 8) {
				t.Errorf("track: got %v, expected %v", got, gauge.DefaultForeground)
			}
			// the gap at the bottom
			if got := img.At(60, 110); !closeTo(got, color.White, 8) {
				t.Errorf("gap: got %v, expected white", got)
			}
		})
	}
}

func TestRenderPNG(t *testing.T) {
	s := scene(t, gauge.Circular)
	buf := &bytes.Buffer{}
	if err := RenderPNG(buf, s, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(image.Rect(0, 0, 240, 240), img.Bounds()); diff != "" {
		t.Errorf("image size (-want +got):\n%s", diff)
	}
}

func TestDrawGradient(t *testing.T) {
	shaper, err := textpath.New()
	if err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for _, paint := range []gauge.Paint{
		gauge.NewAngularGradient(-225, 45, red, blue),
		radialTest{red: red, blue: blue},
	} {
		s := scene(t, gauge.Circular)
		s.TrackPaint = paint
		dc := NewContext(s, 2)
		if err := Draw(dc, s, shaper); err != nil {
			dc.Close()
			t.Fatal(err)
		}
		img := dc.Image()
		dc.Close()

		// 9 o'clock and 3 o'clock, at twice the scene size
		left := color.NRGBAModel.Convert(img.At(12, 120)).(color.NRGBA)
		right := color.NRGBAModel.Convert(img.At(228, 120)).(color.NRGBA)
		if !(left.R > 128 && left.B < 128) {
			t.Errorf("%T: left side of the band is %v, expected mostly red", paint, left)
		}
		if !(right.B > 128 && right.R < 128) {
			t.Errorf("%T: right side of the band is %v, expected mostly blue", paint, right)
		}
	}
}

// radialTest is red left of the center and blue right of it.  It has no
// gg equivalent, so the band is drawn in slices.
type radialTest struct {
	red, blue color.Color
}

func (r radialTest) ColorAt(p, center vec.Vec2) color.Color {
	if p.X < center.X {
		return r.red
	}
	return r.blue
}
