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

// Package generator runs the external outline generator.
//
// The generator is invoked with one decimal argument per grid row, top row
// first, and prints the outline of the glyph to standard output. The call
// blocks until the generator exits. There is no timeout: a generator which
// hangs blocks the caller.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"seehuhn.de/go/glyphedit/grid"
	"seehuhn.de/go/glyphedit/outline"
)

// Generator converts a bitmap into outline path records.
type Generator interface {
	Generate(rows grid.Rows) ([]outline.Record, error)
}

// Func adapts an ordinary function to the Generator interface.
type Func func(rows grid.Rows) ([]outline.Record, error)

// Generate calls f(rows).
func (f Func) Generate(rows grid.Rows) ([]outline.Record, error) {
	return f(rows)
}

// Command runs an external program as the outline generator.
type Command struct {
	// Path is the program to run.
	Path string

	// Args are passed to the program before the row values.
	Args []string

	// Dir is the working directory of the program.
	// If empty, the current directory is used.
	Dir string
}

// Generate runs the program for the given bitmap and parses its output.
func (c *Command) Generate(rows grid.Rows) ([]outline.Record, error) {
	args := append(append([]string(nil), c.Args...), rows.Args()...)
	cmd := exec.Command(c.Path, args...)
	cmd.Dir = c.Dir
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Path:   c.Path,
				Code:   exitErr.ExitCode(),
				Stderr: lastLine(stderr.String()),
			}
		}
		return nil, fmt.Errorf("running %s: %w", c.Path, err)
	}

	recs, err := outline.Parse(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("%s output: %w", c.Path, err)
	}
	return recs, nil
}

// ExitError is returned when the generator exits with a non-zero status.
type ExitError struct {
	Path   string
	Code   int
	Stderr string // last line of the error output, if any
}

func (err *ExitError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", err.Path, err.Code)
	if err.Stderr != "" {
		msg += ": " + err.Stderr
	}
	return msg
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return s
}
