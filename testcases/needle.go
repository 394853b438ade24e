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

var needleCases = []TestCase{
	{
		Name:   "minimum",
		Config: square(gauge.Needle, 200, 20),
		Value:  0,
	},
	{
		Name:   "middle",
		Config: square(gauge.Needle, 200, 20),
		Value:  50,
	},
	{
		Name:   "maximum",
		Config: square(gauge.Needle, 200, 20),
		Value:  100,
	},
	{
		Name:   "labels",
		Config: withLabels(square(gauge.Needle, 160, 10), "min", "max"),
		Value:  33,
	},
	{
		Name:   "small",
		Config: square(gauge.Needle, 40, 3),
		Value:  80,
	},
}
