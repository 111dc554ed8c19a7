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

// Package canvas implements an off-screen display for the glyph editor.
//
// The canvas keeps one shape per set grid cell and one shape per outline
// polygon, mirroring the items a windowing toolkit would manage. Shapes
// are explicitly acquired and released, so that tests can check that no
// shapes leak when the preview is replaced. [Canvas.Render] paints the
// current shapes into an image.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphedit/layout"
	"seehuhn.de/go/glyphedit/outline"
	"seehuhn.de/go/glyphedit/raster"
)

// Colours used for rendering.
var (
	InkColor        color.Color = color.Black
	BackgroundColor color.Color = color.White
	LineColor       color.Color = color.Gray{Y: 0x80}
)

// shape is a drawn item owned by the canvas.
type shape struct {
	id       int
	released bool

	cell rect.Rect       // for grid cells
	poly outline.Polygon // for outline polygons
}

// Canvas is an off-screen display for the editor.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	layout layout.Layout

	cells [][]*shape // indexed by row, then column; nil for clear cells
	polys []*shape   // outline polygons in painting order

	nextID int
	live   int
}

// New returns an empty canvas for the given layout.
func New(l layout.Layout) *Canvas {
	cells := make([][]*shape, l.Rows)
	for y := range cells {
		cells[y] = make([]*shape, l.Cols)
	}
	return &Canvas{layout: l, cells: cells}
}

func (c *Canvas) acquire(s *shape) *shape {
	c.nextID++
	s.id = c.nextID
	c.live++
	return s
}

func (c *Canvas) release(s *shape) {
	if s.released {
		panic(fmt.Sprintf("canvas: shape %d released twice", s.id))
	}
	s.released = true
	c.live--
}

// SetCell shows or hides the filled rectangle of grid cell (x, y).
// Showing a cell which is already shown, or hiding a cell which is not
// shown, is a programming error and panics.
func (c *Canvas) SetCell(x, y int, on bool) {
	s := c.cells[y][x]
	switch {
	case on && s == nil:
		c.cells[y][x] = c.acquire(&shape{cell: c.layout.CellRect(x, y)})
	case !on && s != nil:
		c.release(s)
		c.cells[y][x] = nil
	default:
		panic(fmt.Sprintf("canvas: cell (%d,%d) already in state %t", x, y, on))
	}
}

// ReplacePolygons installs a new set of outline polygons, in painting
// order. The shapes of the previous set are released.
func (c *Canvas) ReplacePolygons(polys []outline.Polygon) {
	old := c.polys
	defer func() {
		for _, s := range old {
			c.release(s)
		}
	}()

	next := make([]*shape, len(polys))
	for i, p := range polys {
		next[i] = c.acquire(&shape{poly: p})
	}
	c.polys = next
}

// Polygons returns the currently displayed polygons in painting order.
func (c *Canvas) Polygons() []outline.Polygon {
	res := make([]outline.Polygon, len(c.polys))
	for i, s := range c.polys {
		res[i] = s.poly
	}
	return res
}

// Live returns the number of shapes which have been acquired and not yet
// released.
func (c *Canvas) Live() int {
	return c.live
}

// Render paints the canvas: the grid lines and set cells in the left
// panel, the outline polygons in the right panel.
func (c *Canvas) Render() *image.RGBA {
	w, h := c.layout.CanvasSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	p := raster.NewPainter(img)
	l := c.layout
	x0, y0 := l.GridX(), l.Gutter
	x1 := x0 + float64(l.Cols)*l.Pixel
	y1 := y0 + float64(l.Rows)*l.Pixel
	for i := range l.Cols + 1 {
		x := x0 + float64(i)*l.Pixel
		p.Rect(rect.Rect{LLx: x, LLy: y0, URx: x + 1, URy: y1 + 1}, LineColor)
	}
	for j := range l.Rows + 1 {
		y := y0 + float64(j)*l.Pixel
		p.Rect(rect.Rect{LLx: x0, LLy: y, URx: x1 + 1, URy: y + 1}, LineColor)
	}

	for _, s := range c.cellShapes() {
		p.Rect(s.cell, InkColor)
	}
	for _, s := range c.polys {
		col := BackgroundColor
		if s.poly.Color == outline.Ink {
			col = InkColor
		}
		p.Fill(s.poly.Path(), raster.NonZero, col)
	}
	return img
}

// WritePNG renders the canvas and writes it as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Render())
}

// cellShapes returns the shapes of all set cells, top row first.
func (c *Canvas) cellShapes() []*shape {
	var res []*shape
	for _, row := range c.cells {
		for _, s := range row {
			if s != nil {
				res = append(res, s)
			}
		}
	}
	return slices.Clip(res)
}
