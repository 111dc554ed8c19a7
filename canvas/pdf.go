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

package canvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/glyphedit/outline"
)

// WritePDF writes the canvas as a single page PDF file, with the set
// cells and the outline polygons as filled vector paths. One display
// pixel maps to one PDF point.
func (c *Canvas) WritePDF(fname string) error {
	w, h := c.layout.CanvasSize()
	paper := &pdf.Rectangle{URx: float64(w), URy: float64(h)}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, display coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	if cells := c.cellShapes(); len(cells) > 0 {
		page.SetFillColor(color.DeviceGray(0))
		for _, s := range cells {
			r := s.cell
			page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		}
		page.Fill()
	}

	for _, s := range c.polys {
		pts := s.poly.Points
		if s.poly.Color == outline.Ink {
			page.SetFillColor(color.DeviceGray(0))
		} else {
			page.SetFillColor(color.DeviceGray(1))
		}
		page.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}
