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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/glyphedit/editor"
)

// eventKind identifies a line of the event script.
type eventKind int

const (
	evPress eventKind = iota
	evDrag
	evRelease
	evCommand
)

// event is a single parsed line of the event script.
type event struct {
	kind eventKind
	x, y int            // pointer position for evPress and evDrag
	cmd  editor.Command // for evCommand
}

// parseEvent parses one line of the event script. Blank lines and lines
// starting with '#' give ok == false.
func parseEvent(line string) (ev event, ok bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return event{}, false, nil
	}

	switch words[0] {
	case "press", "drag":
		if len(words) != 3 {
			return event{}, false, fmt.Errorf("%s: want 2 coordinates, got %d", words[0], len(words)-1)
		}
		x, err := strconv.Atoi(words[1])
		if err != nil {
			return event{}, false, fmt.Errorf("%s: invalid x coordinate: %w", words[0], err)
		}
		y, err := strconv.Atoi(words[2])
		if err != nil {
			return event{}, false, fmt.Errorf("%s: invalid y coordinate: %w", words[0], err)
		}
		kind := evPress
		if words[0] == "drag" {
			kind = evDrag
		}
		return event{kind: kind, x: x, y: y}, true, nil
	case "release":
		return event{kind: evRelease}, true, nil
	case "key":
		if len(words) != 2 {
			return event{}, false, errors.New("key: want a single key")
		}
		r, err := parseKey(words[1])
		if err != nil {
			return event{}, false, err
		}
		return event{kind: evCommand, cmd: editor.KeyCommand(r)}, true, nil
	case "dump":
		return event{kind: evCommand, cmd: editor.CmdDump}, true, nil
	case "clear":
		return event{kind: evCommand, cmd: editor.CmdClear}, true, nil
	case "quit":
		return event{kind: evCommand, cmd: editor.CmdQuit}, true, nil
	default:
		return event{}, false, fmt.Errorf("unknown event %q", words[0])
	}
}

// parseKey decodes the key name of a "key" event. Names are single
// characters, "space", or "^X" for control characters.
func parseKey(name string) (rune, error) {
	if name == "space" {
		return ' ', nil
	}
	if len(name) == 2 && name[0] == '^' && name[1] >= '@' && name[1] <= '_' {
		return rune(name[1] - '@'), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, nil
	}
	return 0, fmt.Errorf("key: invalid key name %q", name)
}

// runScript feeds the events read from r to the editor. The function
// changed is called after each event which regenerated the outline.
// Generator failures are logged and the script continues.
func runScript(r io.Reader, e *editor.Editor, changed func() error) (quit bool, err error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		ev, ok, err := parseEvent(sc.Text())
		if err != nil {
			return false, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}

		before := e.Passes()
		switch ev.kind {
		case evPress:
			err = e.Press(ev.x, ev.y)
		case evDrag:
			err = e.Drag(ev.x, ev.y)
		case evRelease:
			e.Release()
		case evCommand:
			quit, err = e.Execute(ev.cmd)
		}
		if err != nil {
			editor.Logger().Error("event failed", "line", lineNo, "err", err)
		}
		if quit {
			return true, nil
		}

		if e.Passes() != before && changed != nil {
			if err := changed(); err != nil {
				return false, err
			}
		}
	}
	return false, sc.Err()
}
