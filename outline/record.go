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

package outline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op is the operator of a path record.
type Op int

const (
	MoveTo Op = iota
	LineTo
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "m"
	case LineTo:
		return "l"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Record is one path command emitted by the outline generator.
// X and Y are in native generator coordinates, with Y pointing up.
type Record struct {
	Op   Op
	X, Y float64
}

// Parse reads generator output and returns the path records it contains.
//
// A line is a path record if it has at least three whitespace-separated
// fields and the third field is "m" or "l". All other lines are ignored,
// since the generator emits other material around the path data. An error
// is returned if reading fails, or if a path record has coordinates which
// are not numbers.
func Parse(r io.Reader) ([]Record, error) {
	var recs []Record

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		words := strings.Fields(sc.Text())
		if len(words) < 3 {
			continue
		}

		var op Op
		switch words[2] {
		case "m":
			op = MoveTo
		case "l":
			op = LineTo
		default:
			continue
		}

		x, err := strconv.ParseFloat(words[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid x coordinate: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(words[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid y coordinate: %w", lineNo, err)
		}
		recs = append(recs, Record{Op: op, X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
