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

package testcases

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestAll(t *testing.T) {
	t.Parallel()

	for category, cases := range All {
		seen := make(map[string]bool)
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[tc.Name] = true

			s, err := tc.Layout()
			if err != nil {
				t.Errorf("%s: %v", name, err)
				continue
			}
			if (s.Indicator == nil) == (s.Needle == nil) {
				t.Errorf("%s: expected exactly one of indicator and needle", name)
			}
		}
	}
}
