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
	"strings"
)

// ContentSize is a user preference for the size of text, as used by
// accessibility settings.  The zero value is the standard size.
type ContentSize int

// The available content sizes, from smallest to largest.
const (
	SizeLarge ContentSize = iota // the standard size
	SizeExtraSmall
	SizeSmall
	SizeMedium
	SizeExtraLarge
	SizeExtraExtraLarge
	SizeExtraExtraExtraLarge
	SizeAccessibility1
	SizeAccessibility2
	SizeAccessibility3
	SizeAccessibility4
	SizeAccessibility5
)

// contentSizes lists the sizes in increasing order, together with their
// short names.
var contentSizes = []struct {
	size ContentSize
	name string
}{
	{SizeExtraSmall, "xs"},
	{SizeSmall, "s"},
	{SizeMedium, "m"},
	{SizeLarge, "l"},
	{SizeExtraLarge, "xl"},
	{SizeExtraExtraLarge, "xxl"},
	{SizeExtraExtraExtraLarge, "xxxl"},
	{SizeAccessibility1, "ax1"},
	{SizeAccessibility2, "ax2"},
	{SizeAccessibility3, "ax3"},
	{SizeAccessibility4, "ax4"},
	{SizeAccessibility5, "ax5"},
}

// rank returns the position of s in contentSizes.
func (s ContentSize) rank() int {
	for i, cs := range contentSizes {
		if cs.size == s {
			return i
		}
	}
	return standardRank
}

const standardRank = 3

func (s ContentSize) String() string {
	for _, cs := range contentSizes {
		if cs.size == s {
			return cs.name
		}
	}
	return fmt.Sprintf("ContentSize(%d)", int(s))
}

// ParseContentSize converts a short name like "xl" or "ax2" into a
// ContentSize.
func ParseContentSize(s string) (ContentSize, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, cs := range contentSizes {
		if cs.name == name {
			return cs.size, nil
		}
	}
	return 0, fmt.Errorf("unknown content size %q", s)
}

// TextStyle selects the scaling curve used by [Scale].
// Different text styles grow at different rates.
type TextStyle int

// The supported text styles.
const (
	StyleBody TextStyle = iota
	StyleHeadline
	StyleLargeTitle
	StyleTitle
	StyleFootnote
	StyleCaption
)

// pointSizes gives the font size of each text style, for each content size
// in the order of contentSizes.
var pointSizes = map[TextStyle][12]float64{
	StyleBody:       {14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53},
	StyleHeadline:   {14, 15, 16, 17, 19, 21, 23, 28, 33, 40, 47, 53},
	StyleLargeTitle: {31, 32, 33, 34, 36, 38, 40, 44, 48, 52, 56, 60},
	StyleTitle:      {25, 26, 27, 28, 30, 32, 34, 38, 43, 48, 53, 58},
	StyleFootnote:   {12, 12, 12, 13, 15, 17, 19, 23, 27, 33, 38, 44},
	StyleCaption:    {11, 11, 11, 12, 14, 16, 18, 22, 26, 32, 37, 43},
}

// ScaleContext describes the text scaling preferences of the host.
// The zero value leaves all sizes unchanged.
type ScaleContext struct {
	Size  ContentSize
	Style TextStyle
}

// Multiplier returns the factor by which sizes are scaled in ctx.
func (ctx ScaleContext) Multiplier() float64 {
	sizes, ok := pointSizes[ctx.Style]
	if !ok {
		sizes = pointSizes[StyleBody]
	}
	return sizes[ctx.Size.rank()] / sizes[standardRank]
}

// Scale converts a size given for the standard content size into the
// corresponding size for ctx.  Non-positive and non-finite sizes give 0.
func Scale(points float64, ctx ScaleContext) float64 {
	if !isFinite(points) || points <= 0 {
		return 0
	}
	return points * ctx.Multiplier()
}

// Scaled is a size which follows the text scaling preferences, optionally
// limited to a range.
type Scaled struct {
	Base float64 // size at the standard content size

	// Min and Max limit the scaled size.  Zero means no limit.
	Min, Max float64
}

// Resolve returns the scaled size for ctx.  The result is
// Scale(s.Base, ctx), clamped to [s.Min, s.Max] where these are non-zero.
func (s Scaled) Resolve(ctx ScaleContext) float64 {
	v := Scale(s.Base, ctx)
	if s.Min > 0 && v < s.Min {
		v = s.Min
	}
	if s.Max > 0 && v > s.Max {
		v = s.Max
	}
	return v
}
