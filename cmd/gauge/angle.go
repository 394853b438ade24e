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
	"math"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/config"
)

func angleCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "angle",
		Short: "Print the position of the value on the band",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout(cfg)
			if err != nil {
				return err
			}
			b, err := gauge.NewBounds(cfg.Min, cfg.Max)
			if err != nil {
				return err
			}
			t, err := gauge.Normalize(cfg.Value, b)
			if err != nil {
				return err
			}
			raw, err := gauge.RawDegrees(cfg.Value, b)
			if err != nil {
				return err
			}

			pos := s.Metrics.IndicatorPosition(s.Center, s.Angle)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value:     %g in %v\n", cfg.Value, b)
			fmt.Fprintf(w, "fraction:  %.4f\n", t)
			fmt.Fprintf(w, "raw:       %.4f°\n", raw)
			fmt.Fprintf(w, "angle:     %.4f° (%.6f rad)\n", s.Angle*180/math.Pi, s.Angle)
			fmt.Fprintf(w, "indicator: (%.2f, %.2f)\n", pos.X, pos.Y)
			if t < 0 || t > 1 {
				fmt.Fprintln(w, "note:      the value lies outside the range")
			}
			return nil
		},
	}
}
