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

package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Output(fname string) slog.Attr {
	const outputKey = "output"
	return slog.String(outputKey, fname)
}

func Style(style string) slog.Attr {
	const styleKey = "style"
	return slog.String(styleKey, style)
}

func Value(v float64) slog.Attr {
	const valueKey = "value"
	return slog.Float64(valueKey, v)
}

func Size(w, h float64) slog.Attr {
	return slog.Group("size", slog.Float64("width", w), slog.Float64("height", h))
}

func Duration(d time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, d)
}
