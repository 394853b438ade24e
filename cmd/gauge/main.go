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

// Command gauge draws a gauge dial as a PNG image, a PDF file, or on the
// terminal.
//
// Settings are read from the environment (and from a .env file, if
// present) and can be overridden by command line flags.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/gogpu/gg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLogger(os.Stderr, xslog.FromEnv())
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	cfg, err := config.Read()
	if err != nil {
		slog.Error("failed to read config", xslog.Error(err))
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gauge",
		Short: "Draw gauge dials",
		Long: "Draws a gauge which shows a value on a 270° band, " +
			"as a PNG image, a PDF file, or on the terminal.",
	}
	addGaugeFlags(rootCmd, &cfg)

	rootCmd.AddCommand(pngCmd(&cfg))
	rootCmd.AddCommand(pdfCmd(&cfg))
	rootCmd.AddCommand(termCmd(&cfg))
	rootCmd.AddCommand(ggCmd(&cfg))
	rootCmd.AddCommand(angleCmd(&cfg))

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

// addGaugeFlags registers the flags shared by all subcommands.  The
// values from the environment serve as defaults.
func addGaugeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()
	flags.Float64Var(&cfg.Value, "value", cfg.Value, "value shown on the gauge")
	flags.Float64Var(&cfg.Min, "min", cfg.Min, "lower end of the range")
	flags.Float64Var(&cfg.Max, "max", cfg.Max, "upper end of the range")
	flags.StringVar(&cfg.Style, "style", cfg.Style, "gauge style (circular or needle)")
	flags.Float64Var(&cfg.Width, "width", cfg.Width, "width of the gauge")
	flags.Float64Var(&cfg.Height, "height", cfg.Height, "height of the gauge")
	flags.Float64Var(&cfg.IndicationWidth, "indication-width", cfg.IndicationWidth, "thickness of the band")
	flags.StringVar(&cfg.ContentSize, "content-size", cfg.ContentSize, "text size preference (xs, s, m, l, xl, ..., ax5)")
	flags.StringVar(&cfg.MinLabel, "min-label", cfg.MinLabel, "label below the start of the band")
	flags.StringVar(&cfg.MaxLabel, "max-label", cfg.MaxLabel, "label below the end of the band")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "format of the value text")
	flags.StringVar(&cfg.Foreground, "foreground", cfg.Foreground, "color of the band, as #rrggbb")
	flags.StringVar(&cfg.Background, "background", cfg.Background, "background color, as #rrggbb")
	flags.StringVar(&cfg.Indicator, "indicator-color", cfg.Indicator, "color of the indicator dot")
	flags.StringVar(&cfg.Needle, "needle-color", cfg.Needle, "color of the needle")
	flags.StringVar(&cfg.Text, "text-color", cfg.Text, "color of the value text")
	flags.StringVar(&cfg.Label, "label-color", cfg.Label, "color of the min/max labels")
	flags.StringSliceVar(&cfg.Gradient, "gradient", cfg.Gradient, "colors of an angular gradient for the band, replaces --foreground")
	flags.Float64Var(&cfg.GradientStart, "gradient-start", cfg.GradientStart, "start angle of the gradient, in degrees")
	flags.Float64Var(&cfg.GradientEnd, "gradient-end", cfg.GradientEnd, "end angle of the gradient, in degrees")
}

// layout converts the settings into a scene.
func layout(cfg *config.Config) (*gauge.Scene, error) {
	gc, err := cfg.Gauge()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	s, err := gauge.Layout(gc, cfg.Value)
	if err != nil {
		return nil, err
	}
	g := gc.Geometry()
	slog.Debug("layout done",
		xslog.Value(cfg.Value),
		xslog.Style(gc.Style.String()),
		xslog.Size(g.Width, g.Height),
		xslog.Duration(time.Since(start)))
	return s, nil
}

// writeOutput calls write with a writer for fname.  The name "-" selects
// standard output.
func writeOutput(fname string, write func(w io.Writer) error) error {
	if fname == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	err2 := f.Close()
	if err != nil {
		return err
	}
	if err2 != nil {
		return fmt.Errorf("closing %s: %w", fname, err2)
	}
	slog.Info("wrote output", xslog.Output(fname))
	return nil
}
