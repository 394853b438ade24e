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
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/ggdraw"
	"seehuhn.de/go/gauge/internal/config"
)

func ggCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gg",
		Short: "Draw the gauge as a PNG image, using gogpu/gg",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout(cfg)
			if err != nil {
				return err
			}
			return writeOutput(out, func(w io.Writer) error {
				return ggdraw.RenderPNG(w, s, cfg.Scale)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "gauge.png", "output file, or - for standard output")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "pixels per unit")
	return cmd
}
