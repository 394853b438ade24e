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
	"fmt"
	"math"
)

// Bounds is the range of values shown by a gauge.
// Use [NewBounds] to construct a valid range; the zero value is invalid.
type Bounds struct {
	lo, hi float64
}

// NewBounds returns the range [lo, hi].
// Both values must be finite and lo must be strictly smaller than hi.
func NewBounds(lo, hi float64) (Bounds, error) {
	b := Bounds{lo: lo, hi: hi}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Min returns the lower end of the range.
func (b Bounds) Min() float64 { return b.lo }

// Max returns the upper end of the range.
func (b Bounds) Max() float64 { return b.hi }

// Validate checks that b describes a non-empty, finite range.
func (b Bounds) Validate() error {
	if !isFinite(b.lo) || !isFinite(b.hi) {
		return fmt.Errorf("%w: [%g, %g] is not finite", ErrInvalidBounds, b.lo, b.hi)
	}
	if b.lo >= b.hi {
		return fmt.Errorf("%w: min %g must be smaller than max %g", ErrInvalidBounds, b.lo, b.hi)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g, %g]", b.lo, b.hi)
}

// Normalize returns the relative position t of value inside b.
// The result is 0 for value == b.Min() and 1 for value == b.Max().
//
// Values outside the range are not clamped: they give t < 0 or t > 1, and
// the corresponding angles lie outside the band.
func Normalize(value float64, b Bounds) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return (value - b.lo) / (b.hi - b.lo), nil
}

// RawDegrees returns the unwrapped angle for value, in degrees.
// The result is SweepStart for b.Min() and SweepEnd for b.Max(), and
// increases strictly with value.
func RawDegrees(value float64, b Bounds) (float64, error) {
	t, err := Normalize(value, b)
	if err != nil {
		return 0, err
	}
	return t*Sweep + SweepStart, nil
}

// Degrees returns the angle for value in degrees.  Angles above 180° are
// wrapped to the equivalent negative angle.  Only values far above
// b.Max() (t > 1.5) are affected by the wrapping.
func Degrees(value float64, b Bounds) (float64, error) {
	deg, err := RawDegrees(value, b)
	if err != nil {
		return 0, err
	}
	if deg > 180 {
		deg -= 360
	}
	return deg, nil
}

// AngleForValue returns the angle, in radians, of the position which
// represents value on the gauge band.  See [Degrees] for the wrapping rules.
func AngleForValue(value float64, b Bounds) (float64, error) {
	deg, err := Degrees(value, b)
	if err != nil {
		return 0, err
	}
	return deg * math.Pi / 180, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
