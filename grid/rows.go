// seehuhn.de/go/glyphedit - a bitmap glyph editor with outline preview
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

package grid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Rows is the row encoding of a grid, top row first.
type Rows []uint64

// Clone returns a copy of r.
func (r Rows) Clone() Rows {
	return slices.Clone(r)
}

// Equal reports whether r and other encode the same bitmap.
func (r Rows) Equal(other Rows) bool {
	return slices.Equal(r, other)
}

// Args returns the rows as decimal strings, for use as the command line
// of the outline generator.
func (r Rows) Args() []string {
	args := make([]string, len(r))
	for i, v := range r {
		args[i] = strconv.FormatUint(v, 10)
	}
	return args
}

// Literal formats the rows as an entry of a C character table,
// for example " {{000,004,000,000,000,000,000,000,000}, 0x },".
// The character code is left for the user to fill in.
func (r Rows) Literal() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = fmt.Sprintf("%03o", v)
	}
	return " {{" + strings.Join(parts, ",") + "}, 0x },"
}
