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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	g := Geometry{Width: 200, Height: 100, IndicationWidth: 10}
	got := g.Metrics()
	want := Metrics{
		LongestSide:     200,
		FontSize:        40,
		Radius:          100,
		IndicationWidth: 10,
		IndicatorRadius: 95,
		NeedleLength:    200 / 2.3,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Metrics (-want +got):\n%s", diff)
	}
}

func TestGeometryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		g     Geometry
		valid bool
	}{
		{"OK", Geometry{Width: 100, Height: 100, IndicationWidth: 6}, true},
		{"NonSquare", Geometry{Width: 300, Height: 100, IndicationWidth: 49}, true},
		{"ZeroWidth", Geometry{Width: 0, Height: 100, IndicationWidth: 6}, false},
		{"NegativeHeight", Geometry{Width: 100, Height: -1, IndicationWidth: 6}, false},
		{"NoBand", Geometry{Width: 100, Height: 100, IndicationWidth: 0}, false},
		{"BandFitsLongSide", Geometry{Width: 300, Height: 100, IndicationWidth: 50}, true},
		{"WideBand", Geometry{Width: 300, Height: 100, IndicationWidth: 150}, false},
		{"WideBandTall", Geometry{Width: 100, Height: 300, IndicationWidth: 150}, false},
		{"NaN", Geometry{Width: math.NaN(), Height: 100, IndicationWidth: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.g.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("got %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestNeedleOffset(t *testing.T) {
	t.Parallel()

	m := Geometry{Width: 300, Height: 300, IndicationWidth: 6}.Metrics()
	got := m.NeedleOffset()
	want := vec.Vec2{X: 17.027651582788742, Y: 126.97234841721124}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("NeedleOffset (-want +got):\n%s", diff)
	}
}

func TestNeedleTip(t *testing.T) {
	t.Parallel()

	m := Geometry{Width: 300, Height: 300, IndicationWidth: 6}.Metrics()
	center := vec.Vec2{X: 150, Y: 150}

	tests := []struct {
		deg       float64
		tip, tail vec.Vec2
	}{
		{ // straight up
			deg:  -90,
			tip:  vec.Vec2{X: 141.48617420860563, Y: 21.296434487046554},
			tail: vec.Vec2{X: 141.48617420860563, Y: 151.7312170957422},
		},
		{ // pointing right
			deg:  0,
			tip:  vec.Vec2{X: 278.70356551295345, Y: 141.48617420860563},
			tail: vec.Vec2{X: 148.2687829042578, Y: 141.48617420860563},
		},
	}
	for _, tt := range tests {
		a := tt.deg * math.Pi / 180
		if diff := cmp.Diff(tt.tip, m.NeedleTip(center, a), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("NeedleTip(%g°) (-want +got):\n%s", tt.deg, diff)
		}
		if diff := cmp.Diff(tt.tail, m.NeedleTail(center, a), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("NeedleTail(%g°) (-want +got):\n%s", tt.deg, diff)
		}
	}

	// The needle is offset from the center, so the tip does not reach the
	// center line of the band, and the needle length is L/2.3 at every
	// angle.
	for deg := SweepStart; deg <= SweepEnd; deg += 15 {
		a := deg * math.Pi / 180
		tip := m.NeedleTip(center, a)
		tail := m.NeedleTail(center, a)
		if d := tip.Sub(center).Length(); math.Abs(d-128.98486) > 1e-4 {
			t.Errorf("%g°: tip at distance %g from the center", deg, d)
		}
		if l := tip.Sub(tail).Length(); math.Abs(l-300/2.3) > 1e-9 {
			t.Errorf("%g°: needle length %g", deg, l)
		}
	}
}

func TestIndicatorPosition(t *testing.T) {
	t.Parallel()

	m := Geometry{Width: 100, Height: 100, IndicationWidth: 10}.Metrics()
	got := m.IndicatorPosition(vec.Vec2{X: 50, Y: 50}, -math.Pi/2)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Errorf("top position = %v, want (50, 5)", got)
	}
}
