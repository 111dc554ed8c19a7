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

// Package outline converts generator path data into paintable polygons.
//
// The outline generator describes a glyph in the PostScript style: a set
// of disjoint closed paths which go one way around filled areas and the
// other way around holes. A painter which only knows how to fill simple
// polygons cannot use this directly. Instead, [Compose] computes the
// signed area of every path, sorts the paths by decreasing absolute area
// and assigns the ink colour to paths with positive area and the
// background colour to all others. Painting the result back to front
// reproduces the intended fill, since a path nested inside another one
// encloses strictly less area and is therefore painted later.
//
// This relies on the generator producing properly nested paths.
// Overlapping or self-intersecting loops are not handled.
package outline

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphedit/layout"
)

// Color is the fill colour of a polygon.
type Color int

const (
	// Background is used for holes, which are painted over the
	// enclosing filled area.
	Background Color = iota

	// Ink is used for filled areas.
	Ink
)

func (c Color) String() string {
	switch c {
	case Background:
		return "background"
	case Ink:
		return "ink"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ColorOf returns the fill colour for a path with the given signed area,
// measured in display coordinates.
func ColorOf(area float64) Color {
	if area > 0 {
		return Ink
	}
	return Background
}

// ScoredPath is a closed path together with its signed area.
type ScoredPath struct {
	Points []vec.Vec2
	Area   float64
	Color  Color
}

// Polygon is a simple closed polygon ready for painting.
// The closing edge from the last point back to the first is implicit.
type Polygon struct {
	Points []vec.Vec2
	Color  Color
}

// Path returns the polygon as a closed path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p.Points) == 0 {
		return res
	}
	res = res.MoveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		res = res.LineTo(pt)
	}
	return res.Close()
}

// Group splits a record stream into paths. Every MoveTo record starts a
// new path, every LineTo record appends a point to the current path.
// The points are mapped through m. LineTo records which occur before the
// first MoveTo have no path to attach to and are dropped.
func Group(recs []Record, m matrix.Matrix) [][]vec.Vec2 {
	var paths [][]vec.Vec2
	for _, rec := range recs {
		pt := layout.Apply(m, vec.Vec2{X: rec.X, Y: rec.Y})
		switch rec.Op {
		case MoveTo:
			paths = append(paths, []vec.Vec2{pt})
		case LineTo:
			if len(paths) == 0 {
				continue
			}
			last := len(paths) - 1
			paths[last] = append(paths[last], pt)
		}
	}
	return paths
}

// SignedArea returns the area enclosed by the closed path through pts.
//
// For every edge, the vertical extent is multiplied by the mean x value,
// giving the area between the edge and the y-axis. Once the path is
// closed, every piece of the axis has been cancelled by an edge going
// back the other way, and the sum is the enclosed area. The result is
// positive if the path runs counter-clockwise in a coordinate system with
// the y-axis pointing up.
func SignedArea(pts []vec.Vec2) float64 {
	var area float64
	for i, p1 := range pts {
		p0 := pts[(i+len(pts)-1)%len(pts)]
		area += (p1.Y - p0.Y) * (p0.X + p1.X) / 2
	}
	return area
}

// Score computes the signed area and fill colour of every path.
// The areas must be computed in display coordinates: the Y flip of the
// display transform reverses the orientation of all paths.
func Score(paths [][]vec.Vec2) []ScoredPath {
	res := make([]ScoredPath, len(paths))
	for i, pts := range paths {
		a := SignedArea(pts)
		res[i] = ScoredPath{Points: pts, Area: a, Color: ColorOf(a)}
	}
	return res
}

// Compose converts generator records into polygons in painting order.
// The record coordinates are mapped to display coordinates using m.
//
// Paths with fewer than two points, paths whose last point does not
// repeat the first one, and paths enclosing no area are dropped. The
// repeated closing point is removed from the remaining paths. The input records are not modified, and the
// result only depends on the input.
func Compose(recs []Record, m matrix.Matrix) []Polygon {
	scored := Score(Group(recs, m))

	// Paths with equal area cannot be nested in each other, so the order
	// between them does not matter. The stable sort keeps generator order.
	slices.SortStableFunc(scored, func(a, b ScoredPath) int {
		return cmp.Compare(math.Abs(b.Area), math.Abs(a.Area))
	})

	var res []Polygon
	for _, sp := range scored {
		n := len(sp.Points)
		if n < 2 || sp.Points[0] != sp.Points[n-1] || sp.Area == 0 {
			continue
		}
		res = append(res, Polygon{
			Points: slices.Clone(sp.Points[:n-1]),
			Color:  sp.Color,
		})
	}
	return res
}
