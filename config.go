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
	"image/color"
	"strings"
)

// Style selects how the value is shown on the gauge.
type Style int

const (
	// Circular draws the band with a dot at the position of the value.
	Circular Style = iota

	// Needle draws the band with a needle which pivots around the center
	// of the gauge and points at the value.
	Needle
)

func (s Style) String() string {
	switch s {
	case Circular:
		return "circular"
	case Needle:
		return "needle"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle converts "circular" or "needle" into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circular", "":
		return Circular, nil
	case "needle":
		return Needle, nil
	default:
		return 0, fmt.Errorf("unknown gauge style %q", s)
	}
}

// Default colors, used for unset fields of [Config].
var (
	DefaultForeground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	DefaultIndicator  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	DefaultNeedle     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	DefaultText       = color.RGBA{R: 0x10, G: 0x15, B: 0x18, A: 0xFF}
	DefaultLabel      = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
)

// DefaultValueFormat is the format used for the value text if
// Config.ValueFormat is empty.
const DefaultValueFormat = "%.0f"

// Config holds everything needed to lay out a gauge, apart from the value
// itself.
type Config struct {
	Bounds Bounds
	Style  Style

	// Width and Height give the size of the drawing box.  Both follow the
	// text scaling preferences in Scale.
	Width, Height Scaled

	// IndicationWidth is the thickness of the band.
	// If zero, DefaultIndicationWidth is used.
	IndicationWidth float64

	// Scale describes the text scaling preferences of the host.
	Scale ScaleContext

	// Foreground fills the band.  If nil, the band is filled with
	// DefaultForeground.
	Foreground Paint

	Indicator  color.Color // the dot, for the Circular style
	Needle     color.Color // the needle, for the Needle style
	Text       color.Color // the value text
	Label      color.Color // the min/max labels
	Background color.Color // nil leaves the background transparent

	// MinLabel and MaxLabel are shown below the two ends of the band.
	// Empty labels are omitted.
	MinLabel, MaxLabel string

	// ValueFormat is the fmt format used for the value.  It must contain
	// exactly one floating point verb, for example "%.1f%%".
	ValueFormat string
}

// Geometry returns the drawing box of the gauge, after applying the
// text scaling preferences.
func (cfg *Config) Geometry() Geometry {
	w := cfg.IndicationWidth
	if w == 0 {
		w = DefaultIndicationWidth
	}
	return Geometry{
		Width:           cfg.Width.Resolve(cfg.Scale),
		Height:          cfg.Height.Resolve(cfg.Scale),
		IndicationWidth: w,
	}
}

// Validate checks that a gauge can be laid out using cfg.
func (cfg *Config) Validate() error {
	if err := cfg.Bounds.Validate(); err != nil {
		return err
	}
	if cfg.Style != Circular && cfg.Style != Needle {
		return fmt.Errorf("gauge: unknown style %d", int(cfg.Style))
	}
	if err := validatePaint(cfg.Foreground); err != nil {
		return err
	}
	if err := checkValueFormat(cfg.valueFormat()); err != nil {
		return err
	}
	return cfg.Geometry().Validate()
}

// checkValueFormat makes sure that format consumes exactly one float64.
func checkValueFormat(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return fmt.Errorf("%w: %q ends in a partial verb", ErrInvalidFormat, format)
		}
		switch c := format[i]; {
		case c == '%':
			// literal percent sign
		case strings.IndexByte("beEfFgGxXv", c) >= 0:
			verbs++
		default:
			return fmt.Errorf("%w: %q uses %%%c", ErrInvalidFormat, format, c)
		}
	}
	if verbs != 1 {
		return fmt.Errorf("%w: %q has %d verbs", ErrInvalidFormat, format, verbs)
	}
	return nil
}

func (cfg *Config) valueFormat() string {
	if cfg.ValueFormat == "" {
		return DefaultValueFormat
	}
	return cfg.ValueFormat
}

func (cfg *Config) foreground() Paint {
	if cfg.Foreground == nil {
		return Solid{Color: DefaultForeground}
	}
	return cfg.Foreground
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}
