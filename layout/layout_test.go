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

package layout

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestCanvasSize(t *testing.T) {
	w, h := Default().CanvasSize()
	if w != 380 || h != 328 {
		t.Errorf("CanvasSize() = %d, %d, want 380, 328", w, h)
	}
}

func TestTransform(t *testing.T) {
	l := Default()
	m := l.Transform()

	cases := []struct {
		native, display vec.Vec2
	}{
		// the native origin of the glyph cell is the top-left corner of
		// the preview panel
		{vec.Vec2{X: 100, Y: 700}, vec.Vec2{X: 200, Y: 20}},
		// one cell right and one cell down
		{vec.Vec2{X: 200, Y: 600}, vec.Vec2{X: 232, Y: 52}},
		// bottom-right corner of the glyph cell
		{vec.Vec2{X: 600, Y: -200}, vec.Vec2{X: 360, Y: 308}},
	}
	for _, tc := range cases {
		got := Apply(m, tc.native)
		if math.Abs(got.X-tc.display.X) > 1e-9 || math.Abs(got.Y-tc.display.Y) > 1e-9 {
			t.Errorf("Apply(%v) = %v, want %v", tc.native, got, tc.display)
		}
	}
}

func TestCellAt(t *testing.T) {
	l := Default()

	cases := []struct {
		name   string
		panelX float64
		px, py int
		x, y   int
		ok     bool
	}{
		{"grid_first_cell", l.GridX(), 20, 20, 0, 0, true},
		{"grid_inner", l.GridX(), 20 + 2*32 + 5, 20 + 3*32 + 31, 2, 3, true},
		{"grid_left_of_panel", l.GridX(), 19, 30, 0, 0, false},
		{"grid_right_of_panel", l.GridX(), 20 + 5*32, 30, 0, 0, false},
		{"grid_below_panel", l.GridX(), 30, 20 + 9*32, 0, 0, false},
		{"preview_first_cell", l.PreviewX(), 200, 20, 0, 0, true},
		{"preview_last_cell", l.PreviewX(), 200 + 4*32, 20 + 8*32, 4, 8, true},
		{"preview_from_grid", l.PreviewX(), 30, 30, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := l.CellAt(tc.panelX, tc.px, tc.py)
			if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
				t.Errorf("CellAt(%g, %d, %d) = %d, %d, %t, want %d, %d, %t",
					tc.panelX, tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	got := Default().CellRect(2, 3)
	want := rect.Rect{LLx: 84, LLy: 116, URx: 116, URy: 148}
	if got != want {
		t.Errorf("CellRect(2, 3) = %v, want %v", got, want)
	}
}
