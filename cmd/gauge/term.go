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

	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/term"
)

func termCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Draw the gauge on the terminal, using braille characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := layout(cfg)
			if err != nil {
				return err
			}
			out, err := term.New(cfg.Cols, cfg.Rows).Render(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "width in character cells")
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "height in character cells")
	return cmd
}
