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

// Command genpdf generates a gallery of all gauge test cases.
// Each case is written as a PDF file and as a PNG image.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/gauge/internal/xslog"
	"seehuhn.de/go/gauge/paint"
	"seehuhn.de/go/gauge/pdfgauge"
	"seehuhn.de/go/gauge/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/gallery", "output directory")
	scale := flag.Float64("scale", 2, "pixels per unit for the PNG images")
	flag.Parse()

	slog.SetDefault(xslog.NewLogger(os.Stderr, xslog.FromEnv()))

	if err := run(*outDir, *scale); err != nil {
		slog.Error("gallery generation failed", xslog.Error(err))
		os.Exit(1)
	}
}

func run(outDir string, scale float64) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s, err := tc.Layout()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := pdfgauge.WriteFile(pdfPath, s); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			pngPath := filepath.Join(outDir, name+".png")
			f, err := os.Create(pngPath)
			if err != nil {
				return err
			}
			err = paint.EncodePNG(f, s, scale)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("generated", xslog.Output(name), xslog.Value(tc.Value))
		}
	}
	return nil
}
