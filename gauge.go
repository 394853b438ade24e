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

// Package gauge computes the geometry of a gauge dial.
//
// A gauge shows a value inside a range on a circular band which spans 270
// degrees, from -225° to +45°, leaving a 90° gap at the bottom.  Angles
// are measured in screen coordinates: 0° points along the positive x-axis
// and angles grow clockwise, because the y-axis points down.
//
// The package is purely geometric.  [AngleForValue] maps a value to a
// position on the band, [BuildArcOutline] constructs the outline of the
// band, and [Layout] combines both into a [Scene]: a fully positioned set
// of shapes and texts.  Scenes are drawn by the backends in the
// sub-packages paint (raster images), pdfgauge (PDF), ggdraw (gogpu/gg)
// and term (terminal output).
package gauge

import "errors"

// Errors returned when a gauge is configured with values which cannot be
// drawn.  The returned errors wrap one of these and can be tested using
// [errors.Is].
var (
	ErrInvalidBounds   = errors.New("gauge: invalid bounds")
	ErrInvalidGeometry = errors.New("gauge: invalid geometry")
	ErrInvalidValue    = errors.New("gauge: invalid value")
	ErrInvalidPaint    = errors.New("gauge: invalid paint")
	ErrInvalidFormat   = errors.New("gauge: invalid value format")
)

// The angular range covered by the gauge band, in degrees.
const (
	SweepStart = -225.0
	SweepEnd   = 45.0
	Sweep      = SweepEnd - SweepStart
)
