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

import (
	"image/color"

	"seehuhn.de/go/gauge"
)

var circularCases = []TestCase{
	{
		Name:   "minimum",
		Config: square(gauge.Circular, 200, 20),
		Value:  0,
	},
	{
		Name:   "middle",
		Config: square(gauge.Circular, 200, 20),
		Value:  50,
	},
	{
		Name:   "maximum",
		Config: square(gauge.Circular, 200, 20),
		Value:  100,
	},
	{
		Name:   "thin_band",
		Config: square(gauge.Circular, 200, 4),
		Value:  30,
	},
	{
		Name:   "labels",
		Config: withLabels(square(gauge.Circular, 200, 16), "0", "100"),
		Value:  72,
	},
	{
		Name: "colors",
		Config: withColors(square(gauge.Circular, 200, 16),
			color.RGBA{R: 0x2E, G: 0xA0, B: 0x43, A: 0xFF},
			color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}),
		Value: 64,
	},
	{
		Name: "gradient",
		Config: func() gauge.Config {
			cfg := withLabels(square(gauge.Circular, 200, 16), "0", "100")
			cfg.Foreground = gauge.NewAngularGradient(130, 360,
				color.RGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF},
				color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF},
				color.RGBA{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF},
				color.RGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF},
				color.RGBA{R: 0xAF, G: 0x52, B: 0xDE, A: 0xFF})
			return cfg
		}(),
		Value: 58,
	},
	{
		Name: "long_value",
		Config: func() gauge.Config {
			cfg := square(gauge.Circular, 120, 12)
			cfg.ValueFormat = "%.6f"
			return cfg
		}(),
		Value: 12.3456789,
	},
}

func withLabels(cfg gauge.Config, lo, hi string) gauge.Config {
	cfg.MinLabel = lo
	cfg.MaxLabel = hi
	return cfg
}

func withColors(cfg gauge.Config, fg, bg color.Color) gauge.Config {
	cfg.Foreground = gauge.Solid{Color: fg}
	cfg.Background = bg
	cfg.Text = color.White
	cfg.Label = color.Gray{Y: 0xB0}
	return cfg
}
