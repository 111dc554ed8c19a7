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

// Command glyphedit edits a bitmap glyph and previews its outline.
//
// The editor reads pointer and key events from standard input, one per
// line:
//
//	press X Y     pointer press at display position (X, Y)
//	drag X Y      pointer motion with the button held down
//	release       pointer release
//	key C         key press; C is a character, "space" or "^Q"
//	dump          print the grid as a source literal
//	clear         clear the grid
//	quit          exit
//
// After every change of the preview, the window contents are written to
// the files given by -png and -pdf.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/glyphedit/canvas"
	"seehuhn.de/go/glyphedit/editor"
	"seehuhn.de/go/glyphedit/generator"
	"seehuhn.de/go/glyphedit/grid"
	"seehuhn.de/go/glyphedit/layout"
)

func main() {
	def := layout.Default()
	var (
		bedstead = flag.String("bedstead", "./bedstead", "outline generator program")
		pngOut   = flag.String("png", "", "write the window as a PNG image to `file`")
		pdfOut   = flag.String("pdf", "", "write the window as a PDF document to `file`")
		cols     = flag.Int("cols", def.Cols, "grid width in cells")
		rows     = flag.Int("rows", def.Rows, "grid height in cells")
		pixel    = flag.Float64("pixel", def.Pixel, "display size of a grid cell")
		gutter   = flag.Float64("gutter", def.Gutter, "margin around the panels")
		verbose  = flag.Bool("v", false, "log debug information")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	l := def
	l.Cols, l.Rows = *cols, *rows
	l.Pixel, l.Gutter = *pixel, *gutter
	if l.Cols < 1 || l.Cols > grid.MaxCols || l.Rows < 1 || l.Pixel <= 0 || l.Gutter < 0 {
		fmt.Fprintf(os.Stderr, "glyphedit: invalid grid geometry %dx%d\n", l.Cols, l.Rows)
		os.Exit(2)
	}

	c := canvas.New(l)
	e := editor.New(l, c, &generator.Command{Path: *bedstead})

	changed := func() error {
		if *pngOut != "" {
			if err := writePNG(c, *pngOut); err != nil {
				return err
			}
		}
		if *pdfOut != "" {
			if err := c.WritePDF(*pdfOut); err != nil {
				return fmt.Errorf("writing %s: %w", *pdfOut, err)
			}
		}
		return nil
	}

	quit, err := runScript(os.Stdin, e, changed)
	if err != nil {
		editor.Logger().Error("glyphedit stopped", "err", err)
		os.Exit(1)
	}
	if quit {
		os.Exit(0)
	}
}

func writePNG(c *canvas.Canvas, fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = c.WritePNG(fd)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
