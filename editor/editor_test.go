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

package editor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphedit/canvas"
	"seehuhn.de/go/glyphedit/generator"
	"seehuhn.de/go/glyphedit/grid"
	"seehuhn.de/go/glyphedit/layout"
	"seehuhn.de/go/glyphedit/outline"
)

// cellGenerator emits one filled square per set cell, in native
// coordinates of the default layout.
type cellGenerator struct {
	cols  int
	calls []grid.Rows
	err   error
}

func (g *cellGenerator) Generate(rows grid.Rows) ([]outline.Record, error) {
	g.calls = append(g.calls, rows.Clone())
	if g.err != nil {
		return nil, g.err
	}
	var recs []outline.Record
	for y, row := range rows {
		for x := range g.cols {
			if row&(1<<(g.cols-1-x)) == 0 {
				continue
			}
			x0, y0 := 100+100*float64(x), 700-100*float64(y)
			x1, y1 := x0+100, y0-100
			recs = append(recs,
				outline.Record{Op: outline.MoveTo, X: x0, Y: y0},
				outline.Record{Op: outline.LineTo, X: x1, Y: y0},
				outline.Record{Op: outline.LineTo, X: x1, Y: y1},
				outline.Record{Op: outline.LineTo, X: x0, Y: y1},
				outline.Record{Op: outline.LineTo, X: x0, Y: y0},
			)
		}
	}
	return recs, nil
}

func newTestEditor() (*Editor, *canvas.Canvas, *cellGenerator) {
	l := layout.Default()
	c := canvas.New(l)
	gen := &cellGenerator{cols: l.Cols}
	return New(l, c, gen), c, gen
}

// gridPoint returns a display position inside cell (x, y) of the grid
// panel of the default layout.
func gridPoint(x, y int) (int, int) {
	return 20 + 32*x + 5, 20 + 32*y + 5
}

// previewPoint returns a display position inside cell (x, y) of the
// preview panel of the default layout.
func previewPoint(x, y int) (int, int) {
	return 200 + 32*x + 5, 20 + 32*y + 5
}

func TestPressSingleCell(t *testing.T) {
	e, c, gen := newTestEditor()

	if err := e.Press(gridPoint(2, 3)); err != nil {
		t.Fatal(err)
	}
	e.Release()

	want := grid.Rows{0, 0, 0, 0b00100, 0, 0, 0, 0, 0}
	if d := cmp.Diff(want, e.Grid().Snapshot()); d != "" {
		t.Errorf("snapshot (-want +got):\n%s", d)
	}
	if len(gen.calls) != 1 || e.Passes() != 1 {
		t.Fatalf("%d generator calls, %d passes, want 1", len(gen.calls), e.Passes())
	}

	wantPolys := []outline.Polygon{{
		Points: []vec.Vec2{{X: 264, Y: 116}, {X: 296, Y: 116}, {X: 296, Y: 148}, {X: 264, Y: 148}},
		Color:  outline.Ink,
	}}
	if d := cmp.Diff(wantPolys, c.Polygons(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("polygons (-want +got):\n%s", d)
	}
}

func TestOnePassPerSnapshot(t *testing.T) {
	e, c, gen := newTestEditor()

	steps := []struct {
		name       string
		do         func() error
		wantPasses int
	}{
		{"press", func() error { return e.Press(gridPoint(0, 0)) }, 1},
		{"drag_same_cell", func() error { return e.Drag(gridPoint(0, 0)) }, 1},
		{"drag_next_cell", func() error { return e.Drag(gridPoint(1, 0)) }, 2},
		{"drag_back", func() error { return e.Drag(gridPoint(0, 0)) }, 2},
		{"drag_outside", func() error { return e.Drag(5, 5) }, 2},
		{"drag_third_cell", func() error { return e.Drag(gridPoint(1, 1)) }, 3},
		{"regenerate", e.Regenerate, 3},
	}
	for _, s := range steps {
		if err := s.do(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if e.Passes() != s.wantPasses || len(gen.calls) != s.wantPasses {
			t.Errorf("%s: %d passes, %d calls, want %d",
				s.name, e.Passes(), len(gen.calls), s.wantPasses)
		}
	}

	if got := c.Live(); got != 6 {
		t.Errorf("%d live shapes, want 6 (3 cells, 3 polygons)", got)
	}
}

func TestDragErases(t *testing.T) {
	e, _, _ := newTestEditor()
	for x := range 5 {
		e.set(x, 4, true)
	}

	// pressing a set cell starts an erasing drag
	if err := e.Press(gridPoint(0, 4)); err != nil {
		t.Fatal(err)
	}
	if err := e.Drag(gridPoint(1, 4)); err != nil {
		t.Fatal(err)
	}
	e.Release()

	// after release, motion is ignored
	if err := e.Drag(gridPoint(2, 4)); err != nil {
		t.Fatal(err)
	}

	if got := e.Grid().Snapshot()[4]; got != 0b00111 {
		t.Errorf("row 4 = %05b, want 00111", got)
	}
}

func TestDragWithoutPress(t *testing.T) {
	e, _, gen := newTestEditor()
	if err := e.Drag(gridPoint(1, 1)); err != nil {
		t.Fatal(err)
	}
	if e.Grid().Get(1, 1) || len(gen.calls) != 0 {
		t.Error("drag without press changed the grid")
	}
}

func TestPressPreviewPanel(t *testing.T) {
	e, _, _ := newTestEditor()

	if err := e.Press(previewPoint(4, 8)); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().Get(4, 8) {
		t.Fatal("press on the preview panel did not toggle the cell")
	}

	// the drag stays in the coordinate system of the preview panel
	if err := e.Drag(gridPoint(3, 8)); err != nil {
		t.Fatal(err)
	}
	if e.Grid().Get(3, 8) {
		t.Error("drag painted in the grid panel")
	}
	if err := e.Drag(previewPoint(3, 8)); err != nil {
		t.Fatal(err)
	}
	if !e.Grid().Get(3, 8) {
		t.Error("drag in the preview panel did not paint")
	}
}

func TestPressOutside(t *testing.T) {
	e, _, gen := newTestEditor()
	for _, p := range [][2]int{{0, 0}, {10, 100}, {190, 100}, {379, 327}, {100, 315}} {
		if err := e.Press(p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}
	if e.Grid().Dirty() || len(gen.calls) != 0 {
		t.Error("press outside the panels changed the grid")
	}
}

func TestGeneratorFailure(t *testing.T) {
	e, c, gen := newTestEditor()
	if err := e.Press(gridPoint(0, 0)); err != nil {
		t.Fatal(err)
	}
	before := c.Polygons()

	errBroken := errors.New("broken")
	gen.err = errBroken
	err := e.Press(gridPoint(4, 0))
	if !errors.Is(err, errBroken) {
		t.Fatalf("got error %v, want %v", err, errBroken)
	}
	if d := cmp.Diff(before, c.Polygons()); d != "" {
		t.Errorf("preview changed after failure (-before +after):\n%s", d)
	}
	if !e.Grid().Dirty() {
		t.Error("grid marked clean after failed pass")
	}
	if e.Passes() != 1 {
		t.Errorf("%d passes, want 1", e.Passes())
	}

	// the next regeneration retries with the same bitmap
	gen.err = nil
	if err := e.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if e.Passes() != 2 || len(c.Polygons()) != 2 {
		t.Errorf("%d passes and %d polygons, want 2 and 2", e.Passes(), len(c.Polygons()))
	}
	if d := cmp.Diff(gen.calls[1], gen.calls[2]); d != "" {
		t.Errorf("retry used a different bitmap:\n%s", d)
	}
}

func TestDump(t *testing.T) {
	e, _, _ := newTestEditor()
	buf := &bytes.Buffer{}
	e.Out = buf

	e.Grid().Set(2, 3, true)
	e.Grid().Set(0, 8, true)
	e.Grid().Set(4, 8, true)
	quit, err := e.Execute(CmdDump)
	if err != nil || quit {
		t.Fatalf("Execute(CmdDump) = %t, %v", quit, err)
	}

	want := " {{000,000,000,004,000,000,000,000,021}, 0x },\n"
	if got := buf.String(); got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestClear(t *testing.T) {
	e, c, _ := newTestEditor()
	if err := e.Press(gridPoint(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := e.Drag(gridPoint(1, 2)); err != nil {
		t.Fatal(err)
	}
	e.Release()

	quit, err := e.Execute(CmdClear)
	if err != nil || quit {
		t.Fatalf("Execute(CmdClear) = %t, %v", quit, err)
	}
	if d := cmp.Diff(make(grid.Rows, 9), e.Grid().Snapshot()); d != "" {
		t.Errorf("snapshot after clear (-want +got):\n%s", d)
	}
	if len(c.Polygons()) != 0 || c.Live() != 0 {
		t.Errorf("%d polygons and %d live shapes after clear", len(c.Polygons()), c.Live())
	}
	if e.Passes() != 3 {
		t.Errorf("%d passes, want 3", e.Passes())
	}
}

func TestKeyCommand(t *testing.T) {
	cases := []struct {
		key  rune
		want Command
	}{
		{' ', CmdDump},
		{'c', CmdClear},
		{'C', CmdClear},
		{'q', CmdQuit},
		{'Q', CmdQuit},
		{'\x11', CmdQuit},
		{'x', CmdNone},
		{'\n', CmdNone},
	}
	for _, tc := range cases {
		if got := KeyCommand(tc.key); got != tc.want {
			t.Errorf("KeyCommand(%q) = %s, want %s", tc.key, got, tc.want)
		}
	}
}

func TestQuit(t *testing.T) {
	e, _, gen := newTestEditor()
	quit, err := e.Execute(CmdQuit)
	if err != nil || !quit {
		t.Errorf("Execute(CmdQuit) = %t, %v", quit, err)
	}
	quit, err = e.Execute(CmdNone)
	if err != nil || quit {
		t.Errorf("Execute(CmdNone) = %t, %v", quit, err)
	}
	if len(gen.calls) != 0 {
		t.Error("commands ran the generator")
	}
}

func TestCommandGenerator(t *testing.T) {
	// generator.Func satisfies the interface used by the editor
	var calls int
	gen := generator.Func(func(grid.Rows) ([]outline.Record, error) {
		calls++
		return nil, nil
	})
	e := New(layout.Default(), canvas.New(layout.Default()), gen)
	if err := e.Press(gridPoint(0, 0)); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("%d calls, want 1", calls)
	}
}
