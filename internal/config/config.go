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

// Package config reads the gauge settings of the command line tools from
// the environment.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"seehuhn.de/go/gauge"
)

// Config holds the gauge settings.  Command line flags override the
// values read from the environment.
type Config struct {
	Value float64 `env:"GAUGE_VALUE" envDefault:"0"`
	Min   float64 `env:"GAUGE_MIN" envDefault:"0"`
	Max   float64 `env:"GAUGE_MAX" envDefault:"100"`
	Style string  `env:"GAUGE_STYLE" envDefault:"circular"`

	Width           float64 `env:"GAUGE_WIDTH" envDefault:"200"`
	Height          float64 `env:"GAUGE_HEIGHT" envDefault:"200"`
	MinSize         float64 `env:"GAUGE_MIN_SIZE"`
	MaxSize         float64 `env:"GAUGE_MAX_SIZE"`
	IndicationWidth float64 `env:"GAUGE_INDICATION_WIDTH" envDefault:"6"`

	ContentSize string `env:"GAUGE_CONTENT_SIZE" envDefault:"l"`

	MinLabel string `env:"GAUGE_MIN_LABEL"`
	MaxLabel string `env:"GAUGE_MAX_LABEL"`
	Format   string `env:"GAUGE_FORMAT" envDefault:"%.0f"`

	Foreground string `env:"GAUGE_FOREGROUND"`
	Background string `env:"GAUGE_BACKGROUND"`
	Indicator  string `env:"GAUGE_INDICATOR_COLOR"`
	Needle     string `env:"GAUGE_NEEDLE_COLOR"`
	Text       string `env:"GAUGE_TEXT_COLOR"`
	Label      string `env:"GAUGE_LABEL_COLOR"`

	// Gradient lists the colors of an angular gradient for the band.  If
	// it is not empty, it replaces Foreground.  The angles are in degrees.
	Gradient      []string `env:"GAUGE_GRADIENT" envSeparator:","`
	GradientStart float64  `env:"GAUGE_GRADIENT_START" envDefault:"130"`
	GradientEnd   float64  `env:"GAUGE_GRADIENT_END" envDefault:"360"`

	// Scale is the number of pixels per unit for raster output.
	Scale float64 `env:"GAUGE_SCALE" envDefault:"1"`

	// Cols and Rows give the size of terminal output, in character cells.
	Cols int `env:"GAUGE_COLS" envDefault:"40"`
	Rows int `env:"GAUGE_ROWS" envDefault:"20"`
}

// Read returns the settings given by the GAUGE_* environment variables.
// Unset variables take their default values.
func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// Gauge converts the settings into a gauge configuration.
func (c *Config) Gauge() (gauge.Config, error) {
	bounds, err := gauge.NewBounds(c.Min, c.Max)
	if err != nil {
		return gauge.Config{}, err
	}
	style, err := gauge.ParseStyle(c.Style)
	if err != nil {
		return gauge.Config{}, err
	}
	size, err := gauge.ParseContentSize(c.ContentSize)
	if err != nil {
		return gauge.Config{}, err
	}
	fg, err := c.foreground()
	if err != nil {
		return gauge.Config{}, err
	}

	var bg, indicator, needle, text, label color.Color
	for _, col := range []struct {
		name string
		in   string
		out  *color.Color
	}{
		{"background", c.Background, &bg},
		{"indicator", c.Indicator, &indicator},
		{"needle", c.Needle, &needle},
		{"text", c.Text, &text},
		{"label", c.Label, &label},
	} {
		*col.out, err = ParseColor(col.in)
		if err != nil {
			return gauge.Config{}, fmt.Errorf("%s: %w", col.name, err)
		}
	}

	cfg := gauge.Config{
		Bounds:          bounds,
		Style:           style,
		Width:           gauge.Scaled{Base: c.Width, Min: c.MinSize, Max: c.MaxSize},
		Height:          gauge.Scaled{Base: c.Height, Min: c.MinSize, Max: c.MaxSize},
		IndicationWidth: c.IndicationWidth,
		Scale:           gauge.ScaleContext{Size: size},
		Foreground:      fg,
		Background:      bg,
		Indicator:       indicator,
		Needle:          needle,
		Text:            text,
		Label:           label,
		MinLabel:        c.MinLabel,
		MaxLabel:        c.MaxLabel,
		ValueFormat:     c.Format,
	}
	if err := cfg.Validate(); err != nil {
		return gauge.Config{}, err
	}
	return cfg, nil
}

// foreground returns the paint for the band: a gradient if Gradient is
// set, a solid color otherwise, or nil for the default.
func (c *Config) foreground() (gauge.Paint, error) {
	if len(c.Gradient) > 0 {
		var stops []color.Color
		for _, s := range c.Gradient {
			col, err := ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("gradient: %w", err)
			}
			if col == nil {
				return nil, fmt.Errorf("gradient: empty color")
			}
			stops = append(stops, col)
		}
		return gauge.NewAngularGradient(c.GradientStart, c.GradientEnd, stops...), nil
	}
	fg, err := ParseColor(c.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	if fg == nil {
		return nil, nil
	}
	return gauge.Solid{Color: fg}, nil
}

// ParseColor parses a color of the form "#rgb", "#rrggbb" or "#rrggbbaa".
// The empty string gives a nil color, which selects the default.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("invalid color %q: missing '#'", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	c := color.NRGBA{R: uint8(x >> 24), G: uint8(x >> 16), B: uint8(x >> 8), A: uint8(x)}
	return c, nil
}
