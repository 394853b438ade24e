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

// Command export writes the geometry of all gauge test cases to
// testdata/testcases.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/xslog"
	"seehuhn.de/go/gauge/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	slog.SetDefault(xslog.NewLogger(os.Stderr, xslog.FromEnv()))

	if err := run(); err != nil {
		slog.Error("export failed", xslog.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s, err := tc.Layout()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc, s))
		}
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	slog.Info("wrote test cases", xslog.Output(outFile), slog.Int("count", len(out.TestCases)))
	return nil
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Style    string        `json:"style"`
	Min      float64       `json:"min"`
	Max      float64       `json:"max"`
	Value    float64       `json:"value"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Degrees  float64       `json:"degrees"`
	Center   []float64     `json:"center"`
	Track    []jsonSegment `json:"track"`
	Dot      []float64     `json:"dot,omitempty"`
	Tip      []float64     `json:"needle_tip,omitempty"`
	Tail     []float64     `json:"needle_tail,omitempty"`
	Texts    []jsonText    `json:"texts,omitempty"`
	FontSize float64       `json:"font_size"`
}

type jsonText struct {
	Content string    `json:"content"`
	Anchor  []float64 `json:"anchor"`
	Size    float64   `json:"size"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, tc testcases.TestCase, s *gauge.Scene) jsonTestCase {
	jtc := jsonTestCase{
		Name:     name,
		Style:    tc.Config.Style.String(),
		Min:      tc.Config.Bounds.Min(),
		Max:      tc.Config.Bounds.Max(),
		Value:    tc.Value,
		Width:    s.Frame.URx - s.Frame.LLx,
		Height:   s.Frame.URy - s.Frame.LLy,
		Degrees:  s.Angle * 180 / math.Pi,
		Center:   point(s.Center),
		Track:    pathToJSON(s.Track),
		FontSize: s.Metrics.FontSize,
	}
	if s.Indicator != nil {
		jtc.Dot = point(s.Indicator.Center)
	}
	if s.Needle != nil {
		jtc.Tip = point(s.Needle.Tip)
		jtc.Tail = point(s.Needle.Tail)
	}
	for _, t := range s.Texts() {
		jtc.Texts = append(jtc.Texts, jsonText{
			Content: t.Content,
			Anchor:  point(t.Anchor),
			Size:    t.Size,
		})
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = point(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}

func point(v vec.Vec2) []float64 {
	return []float64{v.X, v.Y}
}
