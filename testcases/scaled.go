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

package testcases

import "seehuhn.de/go/gauge"

// scaledCases exercise non-square boxes and text scaling.
var scaledCases = []TestCase{
	{
		Name: "wide",
		Config: func() gauge.Config {
			cfg := square(gauge.Circular, 200, 12)
			cfg.Width.Base = 300
			return cfg
		}(),
		Value: 40,
	},
	{
		Name: "tall",
		Config: func() gauge.Config {
			cfg := square(gauge.Needle, 120, 8)
			cfg.Height.Base = 180
			return cfg
		}(),
		Value: 60,
	},
	{
		Name: "extra_small",
		Config: func() gauge.Config {
			cfg := withLabels(square(gauge.Circular, 150, 10), "E", "F")
			cfg.Scale = gauge.ScaleContext{Size: gauge.SizeExtraSmall}
			return cfg
		}(),
		Value: 25,
	},
	{
		Name: "accessibility",
		Config: func() gauge.Config {
			cfg := withLabels(square(gauge.Circular, 150, 10), "E", "F")
			cfg.Scale = gauge.ScaleContext{Size: gauge.SizeAccessibility3}
			return cfg
		}(),
		Value: 25,
	},
	{
		Name: "clamped",
		Config: func() gauge.Config {
			cfg := square(gauge.Needle, 150, 10)
			cfg.Scale = gauge.ScaleContext{Size: gauge.SizeAccessibility5, Style: gauge.StyleTitle}
			cfg.Width.Max = 200
			cfg.Height.Max = 200
			return cfg
		}(),
		Value: 90,
	},
}
