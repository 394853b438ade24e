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

// Package xslog configures structured logging for the gauge commands.
package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a log level, as given in the environment.
type Level string

var _ fmt.Stringer = Level("")

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EnvKey is the environment variable which selects the log level.
const EnvKey = "LOG_LEVEL"

// Default is used if EnvKey is unset or invalid.
const Default = LevelWarn

// Parse converts a level name into a Level.  Case is ignored.
func Parse(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	default:
		return "", fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", s)
	}
}

// FromEnv returns the level given in the environment.
func FromEnv() Level {
	level, err := Parse(os.Getenv(EnvKey))
	if err != nil {
		return Default
	}
	return level
}

// ToSlog converts l into a slog.Level.
func (l Level) ToSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (l Level) String() string {
	return string(l)
}

// NewLogger returns a logger which writes JSON records to w.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.ToSlog(),
	}))
}
