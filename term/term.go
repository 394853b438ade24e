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

// Package term renders gauges as colored braille text for terminals.
//
// Every character cell holds 2×4 braille dots.  The shapes of the scene
// are rasterized at dot resolution, a dot is set where a shape covers at
// least half of it, and each cell takes the color of the topmost shape
// with dots in the cell.  The value text is printed in the middle of the
// gauge and the labels in an extra line below.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/raster"
)

const (
	dotsPerCol = 2
	dotsPerRow = 4

	emptyBraille rune = '⠀'
)

// Renderer converts scenes into strings.
type Renderer struct {
	// Cols and Rows give the size of the gauge in character cells.
	Cols, Rows int

	// Threshold is the minimal coverage for a dot to be set.
	Threshold float32
}

// New returns a Renderer for a gauge of the given size in character cells.
func New(cols, rows int) *Renderer {
	return &Renderer{Cols: cols, Rows: rows, Threshold: 0.5}
}

// cell is one character of the output.
type cell struct {
	r    rune
	col  color.Color
	bold bool
}

// Render returns the gauge as a multi-line string with ANSI colors.
func (tr *Renderer) Render(s *gauge.Scene) (string, error) {
	if tr.Cols <= 0 || tr.Rows <= 0 {
		return "", fmt.Errorf("term: invalid size %dx%d", tr.Cols, tr.Rows)
	}
	w := tr.Cols * dotsPerCol
	h := tr.Rows * dotsPerRow

	// map the frame into the dot grid, keeping the aspect ratio
	fw := s.Frame.URx - s.Frame.LLx
	fh := s.Frame.URy - s.Frame.LLy
	scale := min(float64(w)/fw, float64(h)/fh)
	ctm := matrix.Matrix{
		scale, 0,
		0, scale,
		(float64(w)-fw*scale)/2 - s.Frame.LLx*scale,
		(float64(h)-fh*scale)/2 - s.Frame.LLy*scale,
	}
	toCell := func(x, y float64) (int, int) {
		dx := ctm[0]*x + ctm[4]
		dy := ctm[3]*y + ctm[5]
		return int(math.Floor(dx / dotsPerCol)), int(math.Floor(dy / dotsPerRow))
	}

	grid := make([][]cell, tr.Rows)
	for i := range grid {
		grid[i] = make([]cell, tr.Cols)
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	canvas := drawille.NewCanvas()

	// layer draws one shape and puts its dots on top of the grid
	layer := func(col color.Color, draw func(emit raster.EmitFunc)) {
		canvas.Clear()
		draw(func(y, xMin int, coverage []float32) {
			for i, c := range coverage {
				if c >= tr.Threshold {
					canvas.Set(xMin+i, y)
				}
			}
		})
		for row, line := range canvasRows(&canvas, tr.Cols, tr.Rows) {
			for j, ch := range line {
				if !hasDots(ch) {
					continue
				}
				c := &grid[row][j]
				if hasDots(c.r) {
					ch = combineBraille(c.r, ch)
				}
				c.r = ch
				c.col = col
			}
		}
	}

	fill := func(p *path.Data) func(raster.EmitFunc) {
		return func(emit raster.EmitFunc) {
			r.Reset(r.Clip)
			r.CTM = ctm
			r.FillNonZero(p, emit)
		}
	}

	// terminal cells are coarse, a few slices are enough for gradients
	pieces, err := s.TrackPieces(24)
	if err != nil {
		return "", err
	}
	for _, piece := range pieces {
		layer(piece.Color, fill(piece.Path))
	}
	switch {
	case s.Indicator != nil:
		layer(s.Indicator.Color, fill(s.Indicator.Path()))
	case s.Needle != nil:
		n := s.Needle
		layer(n.Color, func(emit raster.EmitFunc) {
			r.Reset(r.Clip)
			r.CTM = ctm
			// keep the needle visible at low resolutions
			r.Width = max(n.Width, 1/scale)
			r.Cap = graphics.LineCapButt
			r.Stroke(n.Path(), emit)
		})
	}

	if t := s.Value; t != nil {
		col, row := toCell(t.Anchor.X, t.Anchor.Y)
		putText(grid, t.Content, col, row, t.AX, t.Color, true)
	}

	var b strings.Builder
	for i, line := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderLine(line))
	}

	if s.MinLabel != nil || s.MaxLabel != nil {
		labels := make([]cell, tr.Cols)
		for _, t := range []*gauge.Text{s.MinLabel, s.MaxLabel} {
			if t == nil {
				continue
			}
			col, _ := toCell(t.Anchor.X, t.Anchor.Y)
			putText([][]cell{labels}, t.Content, col, 0, t.AX, t.Color, false)
		}
		b.WriteByte('\n')
		b.WriteString(renderLine(labels))
	}

	return b.String(), nil
}

// putText writes text into row of grid, aligned at column col.
// The parameter ax selects the alignment, as for [gauge.Text].
func putText(grid [][]cell, text string, col, row int, ax float64, c color.Color, bold bool) {
	if row < 0 || row >= len(grid) {
		return
	}
	runes := []rune(text)
	start := col - int(math.Round(ax*float64(len(runes))))
	for i, ch := range runes {
		j := start + i
		if j < 0 || j >= len(grid[row]) {
			continue
		}
		grid[row][j] = cell{r: ch, col: c, bold: bold}
	}
}

// renderLine converts a row of cells into a string, combining runs of
// cells with the same style.
func renderLine(line []cell) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		c := line[i]
		if c.col == nil || c.r == 0 {
			b.WriteByte(' ')
			i++
			continue
		}
		j := i
		var run []rune
		for j < len(line) && line[j].col == c.col && line[j].bold == c.bold && line[j].r != 0 {
			run = append(run, line[j].r)
			j++
		}
		style := lipgloss.NewStyle().Foreground(c.col)
		if c.bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(string(run)))
		i = j
	}
	return b.String()
}

// canvasRows returns the content of canvas as exactly rows lines of
// exactly cols runes each.
func canvasRows(canvas *drawille.Canvas, cols, rows int) [][]rune {
	lines := canvas.Rows(0, 0, cols*dotsPerCol, rows*dotsPerRow)
	res := make([][]rune, rows)
	for i := range res {
		var line []rune
		if i < len(lines) {
			line = []rune(lines[i])
		}
		if len(line) > cols {
			line = line[:cols]
		}
		for len(line) < cols {
			line = append(line, ' ')
		}
		res[i] = line
	}
	return res
}

// hasDots reports whether r is a braille character with at least one dot.
func hasDots(r rune) bool {
	return r > emptyBraille && r <= 0x28FF
}

// combineBraille returns the braille character with the dots of a and b.
func combineBraille(a, b rune) rune {
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}
