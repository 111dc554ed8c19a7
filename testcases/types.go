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

// Package testcases provides outline generator output for testing.
//
// Every test case describes the loops a generator would emit for some
// glyph, in native generator coordinates for the default 5x9 layout.
// Filled areas run clockwise (with the y-axis pointing up), holes run
// counter-clockwise.
package testcases

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// TestCase defines the generator output for a single glyph.
type TestCase struct {
	Name  string // lowercase a-z and _ only
	Loops []Loop // the paths, in generator order

	// Nested is true if the loops form a proper containment hierarchy
	// without degenerate paths.
	Nested bool
}

// Loop is a single path of generator output.
type Loop struct {
	Points []vec.Vec2 // native coordinates

	// Open suppresses the repeated start point at the end of the loop.
	Open bool
}

// Output formats the test case the way the generator prints it: a
// SplineSet block with one "x y m 1" or "x y l 1" line per point,
// surrounded by lines which are not path data.
func (tc TestCase) Output() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "SplineFontDB: 3.0\n")
	fmt.Fprintf(b, "FontName: %s\n", tc.Name)
	fmt.Fprintf(b, "Fore\nSplineSet\n")
	for _, loop := range tc.Loops {
		for i, p := range loop.Points {
			op := "l"
			if i == 0 {
				op = "m"
			}
			fmt.Fprintf(b, " %g %g %s 1\n", p.X, p.Y, op)
		}
		if !loop.Open && len(loop.Points) > 1 {
			p := loop.Points[0]
			fmt.Fprintf(b, " %g %g l 1\n", p.X, p.Y)
		}
	}
	fmt.Fprintf(b, "EndSplineSet\nEndChar\n")
	return b.String()
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box returns an axis-parallel rectangle covering grid cells
// [x0, x1) x [y0, y1), with y counted downwards from the top row.
// Filled boxes run clockwise in native coordinates, holes run
// counter-clockwise.
func box(x0, y0, x1, y1 int, filled bool) Loop {
	left, right := nativeX(x0), nativeX(x1)
	top, bottom := nativeY(y0), nativeY(y1)
	var pts []vec.Vec2
	if filled {
		pts = []vec.Vec2{pt(left, bottom), pt(left, top), pt(right, top), pt(right, bottom)}
	} else {
		pts = []vec.Vec2{pt(left, bottom), pt(right, bottom), pt(right, top), pt(left, top)}
	}
	return Loop{Points: pts}
}

// nativeX converts a grid column boundary to native coordinates.
func nativeX(x int) float64 {
	return 100 + 100*float64(x)
}

// nativeY converts a grid row boundary to native coordinates.
func nativeY(y int) float64 {
	return 700 - 100*float64(y)
}
