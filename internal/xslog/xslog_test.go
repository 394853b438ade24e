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
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q): unexpected error state %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvKey, "debug")
	if got := FromEnv(); got != LevelDebug {
		t.Errorf("FromEnv() = %q, want debug", got)
	}

	t.Setenv(EnvKey, "nonsense")
	if got := FromEnv(); got != Default {
		t.Errorf("FromEnv() = %q, want %q", got, Default)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := NewLogger(buf, LevelInfo)
	logger.Debug("hidden")
	logger.Info("rendered", Output("out.png"), Value(42), Error(errors.New("boom")))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not a single JSON record: %v\n%s", err, buf.String())
	}
	delete(rec, slog.TimeKey)
	want := map[string]any{
		"level":  "INFO",
		"msg":    "rendered",
		"output": "out.png",
		"value":  42.0,
		"error":  "boom",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("log record (-want +got):\n%s", diff)
	}
}
