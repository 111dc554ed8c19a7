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

// Package grid implements the editable bitmap of a glyph.
//
// A Grid is a fixed-size matrix of single-bit cells. Each row is stored as
// an unsigned integer bit field, with column 0 in the most significant of
// the Cols significant bits. This is the same encoding the outline
// generator expects on its command line, so a [Rows] snapshot doubles as
// the generator input and as the key for deciding whether the outline
// needs to be regenerated.
package grid

import "fmt"

// MaxCols is the widest grid which fits the row encoding.
const MaxCols = 64

// Grid is a fixed-size bitmap.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	cols, rows int

	bits  Rows // current state, one bit field per row
	clean Rows // snapshot used for the last completed regeneration
}

// New allocates a grid with all cells clear.
// The new grid is clean with respect to the all-zero snapshot.
func New(cols, rows int) *Grid {
	if cols < 1 || cols > MaxCols || rows < 1 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", cols, rows))
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		bits:  make(Rows, rows),
		clean: make(Rows, rows),
	}
}

// Size returns the number of columns and rows.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Get reports whether cell (x, y) is set.
// It panics if the coordinates are outside the grid.
func (g *Grid) Get(x, y int) bool {
	return g.bits[y]&g.mask(x, y) != 0
}

// Set sets cell (x, y) to v and reports whether the cell changed.
// Setting a cell to the value it already holds is a no-op.
// It panics if the coordinates are outside the grid.
func (g *Grid) Set(x, y int, v bool) (changed bool) {
	bit := g.mask(x, y)
	old := g.bits[y]&bit != 0
	if old == v {
		return false
	}
	g.bits[y] ^= bit
	return true
}

// Clear clears all cells. The function changed, if non-nil, is called for
// every cell which was set before.
func (g *Grid) Clear(changed func(x, y int)) {
	for y := range g.rows {
		for x := range g.cols {
			if g.Set(x, y, false) && changed != nil {
				changed(x, y)
			}
		}
	}
}

// Snapshot returns a copy of the current row encoding.
func (g *Grid) Snapshot() Rows {
	return g.bits.Clone()
}

// Dirty reports whether the grid differs from the snapshot last passed
// to MarkClean.
func (g *Grid) Dirty() bool {
	return !g.bits.Equal(g.clean)
}

// MarkClean records that a regeneration pass completed using the given
// snapshot.
func (g *Grid) MarkClean(snap Rows) {
	if len(snap) != g.rows {
		panic(fmt.Sprintf("grid: snapshot has %d rows, want %d", len(snap), g.rows))
	}
	g.clean = snap.Clone()
}

// mask returns the bit of row y which stores column x.
func (g *Grid) mask(x, y int) uint64 {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d grid", x, y, g.cols, g.rows))
	}
	return 1 << (g.cols - 1 - x)
}
