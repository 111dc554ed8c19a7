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

// Package raster fills polygonal paths with anti-aliasing.
//
// Only straight path segments are supported. This is all the outline
// preview needs, since the outline generator emits moveto and lineto
// records only.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how the interior of a path is determined.
type Rule int

const (
	NonZero Rule = iota
	EvenOdd
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to pixel coverage values, the fraction of each
// pixel's area covered by the filled path, from 0 (outside) to 1 (inside).
// Internal buffers are reused across calls, so a single Rasteriser should
// be used for all paths of an image.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// smallPathThreshold is the largest bounding box area (in pixels)
	// for which the whole path is accumulated in 2D buffers. Larger paths
	// are processed one scanline at a time using an active edge list.
	smallPathThreshold int

	cover     []float32 // cover change per pixel, reused as output
	area      []float32 // area within pixel
	edges     []edge
	activeIdx []int
	rowUsed   []bool

	bbox struct {
		empty                  bool
		xMin, xMax, yMin, yMax float64
	}
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and the
// identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:                matrix.Identity,
		Clip:               clip,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset sets the clip rectangle and restores the identity transformation,
// keeping the capacity of internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowUsed = r.rowUsed[:0]
}

// Fill computes the coverage of the path p under the given fill rule.
// Open subpaths are closed implicitly. Coverage is passed to emit one row
// at a time; the slice is only valid for the duration of the call.
func (r *Rasteriser) Fill(p *path.Data, rule Rule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectEdges builds the device space edge list of p and returns its
// bounding box, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bbox.empty = true

	var current, start vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			r.addEdge(current, start)
		}
		current = start
		open = false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			open = true
			k++
		case path.CmdQuadTo:
			// not produced by the outline generator; approximate by the chord
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a segment to device space and appends it to the
// edge list. Horizontal segments do not contribute coverage and are
// skipped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	b := &r.bbox
	if b.empty {
		b.xMin, b.xMax = min(x0, x1), max(x0, x1)
		b.yMin, b.yMax = min(y0, y1), max(y0, y1)
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x0, x1)
	b.xMax = max(b.xMax, x0, x1)
	b.yMin = min(b.yMin, y0, y1)
	b.yMax = max(b.yMax, y0, y1)
}

// Coverage accumulation:
//
// For each pixel two values are kept. cover is the signed vertical extent
// of all edges crossing the pixel, area weights this by how far to the
// right within the pixel the crossing is. Integrating a scanline from the
// left, the coverage of pixel i is the cover accumulated over all pixels
// to its left plus area[i]. This is the signed area of the path within
// the pixel, which is then folded according to the fill rule.

// accumulate adds the contribution of edge e within scanline y to the
// buffers, which cover device columns [bxMin, bxMax).
func accumulate(e *edge, y int, cover, area []float32, bxMin, bxMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	switch {
	case pixRight < bxMin:
		// entirely left of the buffer: full coverage from the first pixel on
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= bxMax:
		return
	case pixLeft == pixRight:
		addSegment(e, yTop, yBot, sign, pixLeft, cover, area, bxMin, bxMax)
		return
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		addSegment(e, segTop, segBot, sign, pix, cover, area, bxMin, bxMax)
	}
}

// addSegment adds the part of e between yTop and yBot, which lies within
// pixel column pix.
func addSegment(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bxMin, bxMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bxMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bxMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := e.x0 + e.dxdy*(yMid-e.y0) - float64(pix)
	i := pix - bxMin
	cover[i] += c
	area[i] += c * float32(1-xFrac)
}

// integrate converts accumulated cover and area values of one scanline
// into coverage, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == NonZero {
			cover[i] = min(raw, 1)
		} else {
			mod := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-mod)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmall accumulates all edges into 2D buffers covering the bounding
// box, then integrates row by row.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, rule Rule, emit func(y, xMin int, coverage []float32)) {
	w, h := xMax-xMin, yMax-yMin
	r.cover = grow(r.cover, w*h)
	r.area = grow(r.area, w*h)
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.yMin())), yMin)
		y1 := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w], rule)
		if trimmed, dx := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+dx, trimmed)
		}
	}
}

// fillLarge processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, rule Rule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = grow(r.cover, w)
	r.area = grow(r.area, w)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		used := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= top {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			used = true
			i++
		}
		if !used {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, dx := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+dx, trimmed)
		}
	}
}

// grow returns buf resized to n elements, all zero.
func grow(buf []float32, n int) []float32 {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default bounding box area (in pixels)
	// below which 2D buffers are used.
	smallPathThreshold = 65536
)
