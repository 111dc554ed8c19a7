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

// Package layout holds the fixed geometry of the editor window.
//
// The window shows two panels side by side, separated and surrounded by a
// gutter: the editable grid on the left and the outline preview on the
// right. The preview panel has the same size as the grid panel.
package layout

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Layout describes the editor geometry and the coordinate system of the
// outline generator.
type Layout struct {
	Cols, Rows int // grid size in cells

	Pixel  float64 // display size of one grid cell
	Gutter float64 // margin around and between the panels

	// Left and Top give the native generator coordinates of the top-left
	// corner of the glyph cell. The native Y axis points upwards.
	Left, Top float64

	// Scale converts native units to grid cells.
	Scale float64
}

// Default returns the layout for a 5x9 teletext character cell.
func Default() Layout {
	return Layout{
		Cols:   5,
		Rows:   9,
		Pixel:  32,
		Gutter: 20,
		Left:   100,
		Top:    700,
		Scale:  0.01,
	}
}

// CanvasSize returns the size of the whole editor window.
func (l Layout) CanvasSize() (width, height int) {
	width = int(2*float64(l.Cols)*l.Pixel + 3*l.Gutter)
	height = int(float64(l.Rows)*l.Pixel + 2*l.Gutter)
	return width, height
}

// GridX returns the left edge of the editable grid panel.
func (l Layout) GridX() float64 {
	return l.Gutter
}

// PreviewX returns the left edge of the outline preview panel.
func (l Layout) PreviewX() float64 {
	return 2*l.Gutter + float64(l.Cols)*l.Pixel
}

// PanelXs returns the left edges of both panels, grid panel first.
func (l Layout) PanelXs() []float64 {
	return []float64{l.GridX(), l.PreviewX()}
}

// CellRect returns the display rectangle of cell (x, y) in the grid panel.
// The rectangle uses display coordinates, so LLy is the top edge.
func (l Layout) CellRect(x, y int) rect.Rect {
	x0 := l.Gutter + float64(x)*l.Pixel
	y0 := l.Gutter + float64(y)*l.Pixel
	return rect.Rect{LLx: x0, LLy: y0, URx: x0 + l.Pixel, URy: y0 + l.Pixel}
}

// CellAt maps a pointer position to a cell of the panel starting at
// panelX. The boolean result is false if the position is outside the
// panel.
func (l Layout) CellAt(panelX float64, px, py int) (x, y int, ok bool) {
	x = int(math.Floor((float64(px) - panelX) / l.Pixel))
	y = int(math.Floor((float64(py) - l.Gutter) / l.Pixel))
	if x < 0 || x >= l.Cols || y < 0 || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// Transform returns the map from native generator coordinates to display
// coordinates. The outline lands in the preview panel, and the Y axis is
// flipped since display coordinates grow downwards.
func (l Layout) Transform() matrix.Matrix {
	s := l.Pixel * l.Scale
	return matrix.Matrix{
		s, 0,
		0, -s,
		l.PreviewX() - l.Left*s, l.Top*s + l.Gutter,
	}
}

// Apply maps v through the affine transformation m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
