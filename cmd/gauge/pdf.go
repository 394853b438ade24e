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
	"log/slog"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/internal/xslog"
	"seehuhn.de/go/gauge/pdfgauge"
)

func pdfCmd(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Draw the gauge as a single-page PDF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout(cfg)
			if err != nil {
				return err
			}
			if err := pdfgauge.WriteFile(out, s); err != nil {
				return err
			}
			slog.Info("wrote output", xslog.Output(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "gauge.pdf", "output file")
	return cmd
}
