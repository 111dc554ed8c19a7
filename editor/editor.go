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

// Package editor implements the presentation layer of the glyph editor.
//
// An [Editor] connects the bitmap grid, a [Display] and an outline
// generator. Pointer events paint cells, key commands dump or clear the
// grid, and every change of the bitmap triggers a regeneration of the
// outline preview.
package editor

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/glyphedit/generator"
	"seehuhn.de/go/glyphedit/grid"
	"seehuhn.de/go/glyphedit/layout"
	"seehuhn.de/go/glyphedit/outline"
)

// Display shows the grid cells and the outline preview.
type Display interface {
	// SetCell shows or hides the filled rectangle of grid cell (x, y).
	// It is only called when the cell state actually changes.
	SetCell(x, y int, on bool)

	// ReplacePolygons replaces the whole outline preview. The polygons
	// are given in painting order.
	ReplacePolygons(polys []outline.Polygon)
}

// Editor holds the state of one editing session.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	// Out receives the output of the dump command.
	Out io.Writer

	layout  layout.Layout
	grid    *grid.Grid
	display Display
	gen     generator.Generator

	dragging  bool
	dragPanel float64 // left edge of the panel where the drag started
	dragValue bool

	passes int
}

// New returns an editor with an empty grid of the size given by l.
func New(l layout.Layout, d Display, gen generator.Generator) *Editor {
	return &Editor{
		Out:     os.Stdout,
		layout:  l,
		grid:    grid.New(l.Cols, l.Rows),
		display: d,
		gen:     gen,
	}
}

// Grid returns the bitmap being edited.
func (e *Editor) Grid() *grid.Grid {
	return e.grid
}

// Passes returns the number of completed regeneration passes.
func (e *Editor) Passes() int {
	return e.passes
}

// Press handles a pointer press at display position (px, py).
// The press may hit the grid panel or the preview panel; either way the
// cell under the pointer is toggled, and the new state is painted by
// subsequent drags. Presses outside both panels are ignored.
func (e *Editor) Press(px, py int) error {
	for _, panelX := range e.layout.PanelXs() {
		x, y, ok := e.layout.CellAt(panelX, px, py)
		if !ok {
			continue
		}
		e.dragging = true
		e.dragPanel = panelX
		e.dragValue = !e.grid.Get(x, y)
		e.set(x, y, e.dragValue)
		return e.Regenerate()
	}
	e.dragging = false
	return nil
}

// Drag handles pointer motion with the button held down. Cells of the
// panel where the drag started are set to the value chosen by the press.
func (e *Editor) Drag(px, py int) error {
	if !e.dragging {
		return nil
	}
	x, y, ok := e.layout.CellAt(e.dragPanel, px, py)
	if !ok {
		return nil
	}
	e.set(x, y, e.dragValue)
	return e.Regenerate()
}

// Release ends a drag.
func (e *Editor) Release() {
	e.dragging = false
}

func (e *Editor) set(x, y int, v bool) {
	if e.grid.Set(x, y, v) {
		e.display.SetCell(x, y, v)
	}
}

// Command is an editor command bound to a key.
type Command int

// These are the editor commands.
const (
	CmdNone Command = iota
	CmdDump
	CmdClear
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdDump:
		return "dump"
	case CmdClear:
		return "clear"
	case CmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// KeyCommand returns the command bound to the key r.
// Unbound keys give CmdNone.
func KeyCommand(r rune) Command {
	switch r {
	case ' ':
		return CmdDump
	case 'c', 'C':
		return CmdClear
	case 'q', 'Q', '\x11': // ^Q
		return CmdQuit
	default:
		return CmdNone
	}
}

// Execute runs a command. The result quit is true if the editor
// should terminate.
func (e *Editor) Execute(cmd Command) (quit bool, err error) {
	switch cmd {
	case CmdNone:
		return false, nil
	case CmdDump:
		_, err := fmt.Fprintln(e.Out, e.grid.Snapshot().Literal())
		return false, err
	case CmdClear:
		e.grid.Clear(func(x, y int) {
			e.display.SetCell(x, y, false)
		})
		return false, e.Regenerate()
	case CmdQuit:
		return true, nil
	default:
		panic(fmt.Sprintf("editor: unknown command %d", int(cmd)))
	}
}

// Regenerate updates the outline preview if the grid changed since the
// last successful pass.
//
// If the generator fails, the preview is left unchanged and the grid
// stays dirty, so that the next edit tries again.
func (e *Editor) Regenerate() error {
	if !e.grid.Dirty() {
		return nil
	}
	snap := e.grid.Snapshot()

	recs, err := e.gen.Generate(snap)
	if err != nil {
		Logger().Warn("outline generation failed", "rows", snap.Args(), "err", err)
		return fmt.Errorf("regenerate outline: %w", err)
	}

	polys := outline.Compose(recs, e.layout.Transform())
	e.display.ReplacePolygons(polys)
	e.grid.MarkClean(snap)
	e.passes++

	Logger().Debug("outline regenerated",
		"pass", e.passes, "records", len(recs), "polygons", len(polys))
	return nil
}
