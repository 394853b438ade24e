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

// rangeCases use unusual ranges, and values outside of the range.
// Values are never clamped, so the indicator may leave the band.
var rangeCases = []TestCase{
	{
		Name: "negative",
		Config: func() gauge.Config {
			cfg := square(gauge.Circular, 200, 16)
			cfg.Bounds = bounds(-40, -10)
			return cfg
		}(),
		Value: -25,
	},
	{
		Name: "tiny",
		Config: func() gauge.Config {
			cfg := square(gauge.Needle, 200, 16)
			cfg.Bounds = bounds(1e-6, 2e-6)
			return cfg
		}(),
		Value: 1.25e-6,
	},
	{
		Name:   "below",
		Config: square(gauge.Circular, 200, 16),
		Value:  -20,
	},
	{
		Name:   "above",
		Config: square(gauge.Needle, 200, 16),
		Value:  120,
	},
	{
		Name:   "wrapped",
		Config: square(gauge.Circular, 200, 16),
		Value:  200,
	},
}
