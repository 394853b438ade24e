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

package gauge

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSourceHeaders checks that every Go file starts with the license
// header, followed by exactly one blank line.
func TestSourceHeaders(t *testing.T) {
	t.Parallel()

	const firstLine = "// seehuhn.de/go/gauge - gauge dials for Go\n"
	const lastLine = "// along with this program.  If not, see <https://www.gnu.org/licenses/>.\n"

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		src := string(data)
		if !strings.HasPrefix(src, firstLine) {
			t.Errorf("%s: missing license header", path)
			return nil
		}
		_, rest, ok := strings.Cut(src, lastLine)
		if !ok {
			t.Errorf("%s: incomplete license header", path)
			return nil
		}
		if !strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\n\n") {
			t.Errorf("%s: license header must be followed by one blank line", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
