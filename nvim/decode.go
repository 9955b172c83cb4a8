// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: nvim/decode.go
// Summary: Decodes raw redraw notification payloads into command values.
// Notes: All type sniffing of the wire format lives here. A malformed tuple
//        is logged and skipped; the rest of the batch still applies.

package nvim

import (
	"log"

	"neoview/grid"
	"neoview/redraw"
)

// Decode turns the updates of one redraw notification into a command batch.
// Each update is [name, args...] with one args tuple per repetition of the
// event. Unknown event names and malformed tuples are skipped.
func Decode(updates [][]interface{}) []redraw.Command {
	var batch []redraw.Command
	for _, update := range updates {
		if len(update) == 0 {
			continue
		}
		name, ok := update[0].(string)
		if !ok {
			log.Printf("Nvim: redraw update with non-string name: %v", update[0])
			continue
		}
		dec, ok := decoders[name]
		if !ok {
			log.Printf("Nvim: unhandled redraw event %q", name)
			continue
		}
		for _, raw := range update[1:] {
			args, ok := raw.([]interface{})
			if !ok {
				log.Printf("Nvim: %s args are not an array: %v", name, raw)
				continue
			}
			cmd, err := dec(args)
			if err != nil {
				log.Printf("Nvim: malformed %s args: %v", name, err)
				continue
			}
			batch = append(batch, cmd)
		}
	}
	return batch
}

type decoder func(args []interface{}) (redraw.Command, error)

var decoders = map[string]decoder{
	"grid_resize":        decodeGridResize,
	"grid_clear":         decodeGridClear,
	"grid_destroy":       decodeGridDestroy,
	"grid_cursor_goto":   decodeGridCursorGoto,
	"grid_line":          decodeGridLine,
	"grid_scroll":        decodeGridScroll,
	"hl_attr_define":     decodeHlAttrDefine,
	"default_colors_set": decodeDefaultColorsSet,
	"set_scroll_region":  decodeSetScrollRegion,
	"eol_clear":          decodeEolClear,
	"flush":              decodeFlush,
}

func decodeGridResize(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_resize", args, 3)
	if err != nil {
		return nil, err
	}
	return redraw.GridResize{
		Grid:    a.uint(0),
		Columns: a.int(1),
		Rows:    a.int(2),
	}, a.err
}

func decodeGridClear(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_clear", args, 1)
	if err != nil {
		return nil, err
	}
	return redraw.GridClear{Grid: a.uint(0)}, a.err
}

func decodeGridDestroy(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_destroy", args, 1)
	if err != nil {
		return nil, err
	}
	return redraw.GridDestroy{Grid: a.uint(0)}, a.err
}

func decodeGridCursorGoto(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_cursor_goto", args, 3)
	if err != nil {
		return nil, err
	}
	return redraw.GridCursorGoto{
		Grid: a.uint(0),
		Row:  a.int(1),
		Col:  a.int(2),
	}, a.err
}

// decodeGridLine handles the [text], [text, hl_id], and
// [text, hl_id, repeat] cell forms. An omitted hl_id decodes to -1 so the
// interpreter knows to carry the previous run's highlight.
func decodeGridLine(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_line", args, 4)
	if err != nil {
		return nil, err
	}
	cmd := redraw.GridLine{
		Grid:     a.uint(0),
		Row:      a.int(1),
		ColStart: a.int(2),
	}
	rawCells := a.array(3)
	if a.err != nil {
		return nil, a.err
	}

	cmd.Cells = make([]redraw.CellRun, 0, len(rawCells))
	for _, rawCell := range rawCells {
		cell, ok := rawCell.([]interface{})
		if !ok || len(cell) == 0 {
			return nil, errorf("grid_line cell is not a non-empty array: %v", rawCell)
		}
		text, ok := cell[0].(string)
		if !ok {
			return nil, errorf("grid_line cell text is not a string: %v", cell[0])
		}
		run := redraw.CellRun{Text: text, HlID: -1, Repeat: 1}
		if len(cell) > 1 {
			id, ok := toInt64(cell[1])
			if !ok {
				return nil, errorf("grid_line cell hl_id is not an integer: %v", cell[1])
			}
			run.HlID = id
		}
		if len(cell) > 2 {
			repeat, ok := toInt64(cell[2])
			if !ok {
				return nil, errorf("grid_line cell repeat is not an integer: %v", cell[2])
			}
			run.Repeat = int(repeat)
		}
		cmd.Cells = append(cmd.Cells, run)
	}
	return cmd, nil
}

func decodeGridScroll(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("grid_scroll", args, 7)
	if err != nil {
		return nil, err
	}
	// The bot/right bounds arrive exclusive; the model works inclusive.
	return redraw.GridScroll{
		Grid:  a.uint(0),
		Top:   a.int(1),
		Bot:   a.int(2) - 1,
		Left:  a.int(3),
		Right: a.int(4) - 1,
		Rows:  a.int(5),
	}, a.err
}

func decodeHlAttrDefine(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("hl_attr_define", args, 2)
	if err != nil {
		return nil, err
	}
	cmd := redraw.HlAttrDefine{ID: a.uint(0)}
	if a.err != nil {
		return nil, a.err
	}
	attrs, ok := args[1].(map[string]interface{})
	if !ok {
		return nil, errorf("hl_attr_define attrs are not a map: %v", args[1])
	}
	cmd.Attrs = attrs
	return cmd, nil
}

func decodeDefaultColorsSet(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("default_colors_set", args, 3)
	if err != nil {
		return nil, err
	}
	return redraw.DefaultColorsSet{
		Fg: a.uint(0),
		Bg: a.uint(1),
		Sp: a.uint(2),
	}, a.err
}

func decodeSetScrollRegion(args []interface{}) (redraw.Command, error) {
	a, err := newArgs("set_scroll_region", args, 4)
	if err != nil {
		return nil, err
	}
	// Legacy event, always the primary grid.
	return redraw.SetScrollRegion{
		Grid:  grid.DefaultGridID,
		Top:   a.int(0),
		Bot:   a.int(1),
		Left:  a.int(2),
		Right: a.int(3),
	}, a.err
}

func decodeEolClear(args []interface{}) (redraw.Command, error) {
	return redraw.EolClear{Grid: grid.DefaultGridID}, nil
}

func decodeFlush(args []interface{}) (redraw.Command, error) {
	return redraw.Flush{}, nil
}
