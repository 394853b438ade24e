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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/ggdraw"
	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/paint"
)

func pngCmd(cfg *config.Config) *cobra.Command {
	var out, backend string
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Draw the gauge as a PNG image",
		Long: "Draws the gauge as a PNG image.  The raster backend uses the " +
			"built-in anti-aliasing rasterizer, the gg backend draws with gogpu/gg.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout(cfg)
			if err != nil {
				return err
			}
			var encode func(w io.Writer) error
			switch backend {
			case "raster":
				encode = func(w io.Writer) error { return paint.EncodePNG(w, s, cfg.Scale) }
			case "gg":
				encode = func(w io.Writer) error { return ggdraw.RenderPNG(w, s, cfg.Scale) }
			default:
				return fmt.Errorf("unknown backend %q (valid: raster, gg)", backend)
			}
			return writeOutput(out, encode)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "gauge.png", "output file, or - for standard output")
	flags.StringVar(&backend, "backend", "raster", "drawing backend (raster or gg)")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "pixels per unit")
	return cmd
}
