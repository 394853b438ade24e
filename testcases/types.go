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

// Package testcases is a catalogue of gauge configurations, used to
// export reference geometry and to generate a gallery of rendered gauges.
package testcases

import "seehuhn.de/go/gauge"

// TestCase is a gauge configuration together with the value to show.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Config gauge.Config
	Value  float64
}

// Layout lays out the gauge of tc.
func (tc TestCase) Layout() (*gauge.Scene, error) {
	return gauge.Layout(tc.Config, tc.Value)
}

// bounds returns the range [lo, hi].  It panics if the range is invalid.
func bounds(lo, hi float64) gauge.Bounds {
	b, err := gauge.NewBounds(lo, hi)
	if err != nil {
		panic(err)
	}
	return b
}

// square returns a configuration for a size×size gauge on [0, 100].
func square(style gauge.Style, size, indicationWidth float64) gauge.Config {
	return gauge.Config{
		Bounds:          bounds(0, 100),
		Style:           style,
		Width:           gauge.Scaled{Base: size},
		Height:          gauge.Scaled{Base: size},
		IndicationWidth: indicationWidth,
	}
}
