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
	"math"
	"testing"
)

func TestContentSizeNames(t *testing.T) {
	t.Parallel()

	for _, cs := range contentSizes {
		got, err := ParseContentSize(cs.size.String())
		if err != nil {
			t.Errorf("%s: %v", cs.name, err)
			continue
		}
		if got != cs.size {
			t.Errorf("ParseContentSize(%q) = %v, want %v", cs.name, got, cs.size)
		}
	}

	if _, err := ParseContentSize("huge"); err == nil {
		t.Error("expected an error for an unknown size")
	}
	if got, err := ParseContentSize(" XL "); err != nil || got != SizeExtraLarge {
		t.Errorf("ParseContentSize(\" XL \") = %v, %v", got, err)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points float64
		ctx    ScaleContext
		want   float64
	}{
		{"Standard", 100, ScaleContext{}, 100},
		{"ExtraSmall", 170, ScaleContext{Size: SizeExtraSmall}, 140},
		{"Accessibility5", 17, ScaleContext{Size: SizeAccessibility5}, 53},
		{"Title", 28, ScaleContext{Size: SizeExtraExtraExtraLarge, Style: StyleTitle}, 34},
		{"Caption", 12, ScaleContext{Size: SizeAccessibility1, Style: StyleCaption}, 22},
		{"UnknownStyle", 17, ScaleContext{Size: SizeExtraLarge, Style: TextStyle(99)}, 19},
		{"Zero", 0, ScaleContext{Size: SizeAccessibility3}, 0},
		{"Negative", -10, ScaleContext{}, 0},
		{"NaN", math.NaN(), ScaleContext{}, 0},
		{"Inf", math.Inf(1), ScaleContext{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Scale(tt.points, tt.ctx)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Scale(%g) = %g, want %g", tt.points, got, tt.want)
			}
		})
	}
}

func TestMultiplierOrder(t *testing.T) {
	t.Parallel()

	for style := range pointSizes {
		prev := 0.0
		for _, cs := range contentSizes {
			m := ScaleContext{Size: cs.size, Style: style}.Multiplier()
			if m < prev {
				t.Errorf("style %d: multiplier for %s decreases", style, cs.name)
			}
			prev = m
		}
		if m := (ScaleContext{Style: style}).Multiplier(); m != 1 {
			t.Errorf("style %d: standard multiplier is %g", style, m)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	large := ScaleContext{Size: SizeAccessibility5}   // 53/17
	small := ScaleContext{Size: SizeExtraSmall}       // 14/17
	s := Scaled{Base: 170, Min: 150, Max: 300}

	if got := s.Resolve(ScaleContext{}); got != 170 {
		t.Errorf("standard: got %g, want 170", got)
	}
	if got := s.Resolve(large); got != 300 {
		t.Errorf("large: got %g, want 300", got)
	}
	if got := s.Resolve(small); got != 150 {
		t.Errorf("small: got %g, want 150", got)
	}

	unlimited := Scaled{Base: 170}
	if got := unlimited.Resolve(large); math.Abs(got-530) > 1e-9 {
		t.Errorf("unlimited: got %g, want 530", got)
	}
}
