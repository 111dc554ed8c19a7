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

package testcases

import "seehuhn.de/go/geom/vec"

var basicCases = []TestCase{
	{
		Name:   "single_pixel",
		Loops:  []Loop{box(2, 3, 3, 4, true)},
		Nested: true,
	},
	{
		Name:   "vertical_bar",
		Loops:  []Loop{box(2, 0, 3, 9, true)},
		Nested: true,
	},
	{
		Name:   "two_dots",
		Loops:  []Loop{box(0, 0, 1, 1, true), box(4, 8, 5, 9, true)},
		Nested: true,
	},
	{
		Name: "triangle",
		Loops: []Loop{{Points: []vec.Vec2{
			pt(100, -200), pt(100, 700), pt(600, -200),
		}}},
		Nested: true,
	},
}

var nestedCases = []TestCase{
	{
		Name:   "ring",
		Loops:  []Loop{box(0, 0, 5, 9, true), box(1, 1, 4, 8, false)},
		Nested: true,
	},
	{
		// the generator is free to emit the hole first
		Name:   "ring_hole_first",
		Loops:  []Loop{box(1, 1, 4, 8, false), box(0, 0, 5, 9, true)},
		Nested: true,
	},
	{
		Name: "target",
		Loops: []Loop{
			box(2, 4, 3, 5, true),
			box(1, 1, 4, 8, false),
			box(0, 0, 5, 9, true),
		},
		Nested: true,
	},
	{
		Name: "eight",
		Loops: []Loop{
			box(0, 0, 5, 4, true),
			box(1, 1, 4, 3, false),
			box(0, 5, 5, 9, true),
			box(1, 6, 4, 8, false),
		},
		Nested: true,
	},
}

var degenerateCases = []TestCase{
	{
		Name: "lone_move",
		Loops: []Loop{
			{Points: []vec.Vec2{pt(300, 300)}},
			box(2, 3, 3, 4, true),
		},
	},
	{
		Name: "open_path",
		Loops: []Loop{
			{Points: []vec.Vec2{pt(100, 700), pt(600, 700), pt(600, -200)}, Open: true},
			box(2, 3, 3, 4, true),
		},
	},
	{
		Name: "zero_area",
		Loops: []Loop{
			{Points: []vec.Vec2{pt(100, 300), pt(600, 300)}},
			box(2, 3, 3, 4, true),
		},
	},
}
