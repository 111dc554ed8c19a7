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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Painter composites filled paths onto an RGBA image.
type Painter struct {
	Dst *image.RGBA
	r   *Rasteriser
}

// NewPainter returns a Painter for dst, clipped to the bounds of dst.
// Path coordinates are pixel coordinates of dst.
func NewPainter(dst *image.RGBA) *Painter {
	return &Painter{Dst: dst, r: NewRasteriser(clipRect(dst.Bounds()))}
}

// Fill paints the interior of p in colour c, using source-over
// compositing weighted by pixel coverage.
func (pt *Painter) Fill(p *path.Data, rule Rule, c color.Color) {
	src := color.RGBAModel.Convert(c).(color.RGBA)
	dst := pt.Dst
	pt.r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		off := dst.PixOffset(xMin, y)
		for i, cov := range coverage {
			blend(dst.Pix[off+4*i:off+4*i+4], src, cov)
		}
	})
}

// Rect paints an axis-parallel rectangle in colour c.
func (pt *Painter) Rect(r rect.Rect, c color.Color) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
	pt.Fill(p, NonZero, c)
}

// blend composites the premultiplied colour src with the given coverage
// over the pixel px.
func blend(px []byte, src color.RGBA, cov float32) {
	a := float32(src.A) / 255 * cov
	px[0] = mix(src.R, px[0], cov, a)
	px[1] = mix(src.G, px[1], cov, a)
	px[2] = mix(src.B, px[2], cov, a)
	px[3] = mix(src.A, px[3], cov, a)
}

func mix(s, d byte, cov, a float32) byte {
	v := float32(s)*cov + float32(d)*(1-a)
	return byte(min(max(v+0.5, 0), 255))
}

func clipRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}
