// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: nvim/decode_test.go
// Summary: Redraw payload decoding, including malformed input recovery.

package nvim

import (
	"testing"

	"neoview/grid"
	"neoview/redraw"
)

func TestDecodeGridLineForms(t *testing.T) {
	batch := Decode([][]interface{}{
		{"grid_line", []interface{}{
			int64(1), int64(2), int64(0),
			[]interface{}{
				[]interface{}{"a", int64(5)},
				[]interface{}{"b"},
				[]interface{}{" ", int64(0), int64(3)},
			},
		}},
	})

	if len(batch) != 1 {
		t.Fatalf("expected one command, got %d", len(batch))
	}
	line, ok := batch[0].(redraw.GridLine)
	if !ok {
		t.Fatalf("wrong command type %T", batch[0])
	}
	if line.Grid != 1 || line.Row != 2 || line.ColStart != 0 {
		t.Fatalf("header fields wrong: %+v", line)
	}
	want := []redraw.CellRun{
		{Text: "a", HlID: 5, Repeat: 1},
		{Text: "b", HlID: -1, Repeat: 1},
		{Text: " ", HlID: 0, Repeat: 3},
	}
	if len(line.Cells) != len(want) {
		t.Fatalf("cells = %+v", line.Cells)
	}
	for i, run := range line.Cells {
		if run != want[i] {
			t.Fatalf("cell %d = %+v, want %+v", i, run, want[i])
		}
	}
}

func TestDecodeGridScrollBoundsBecomeInclusive(t *testing.T) {
	batch := Decode([][]interface{}{
		{"grid_scroll", []interface{}{
			int64(1), int64(0), int64(10), int64(0), int64(20), int64(3), int64(0),
		}},
	})

	scroll, ok := batch[0].(redraw.GridScroll)
	if !ok {
		t.Fatalf("wrong command type %T", batch[0])
	}
	if scroll.Top != 0 || scroll.Bot != 9 || scroll.Left != 0 || scroll.Right != 19 {
		t.Fatalf("bounds not converted: %+v", scroll)
	}
	if scroll.Rows != 3 {
		t.Fatalf("rows = %d", scroll.Rows)
	}
}

func TestDecodeMalformedTupleIsSkipped(t *testing.T) {
	batch := Decode([][]interface{}{
		{"grid_cursor_goto",
			[]interface{}{int64(1)},                      // missing row/col
			[]interface{}{int64(1), "x", int64(0)},       // wrong type
			[]interface{}{int64(1), int64(3), int64(4)}}, // valid
	})

	if len(batch) != 1 {
		t.Fatalf("only the valid tuple should decode, got %d commands", len(batch))
	}
	move, ok := batch[0].(redraw.GridCursorGoto)
	if !ok || move.Row != 3 || move.Col != 4 {
		t.Fatalf("valid tuple mangled: %+v", batch[0])
	}
}

func TestDecodeUnknownEventIsSkipped(t *testing.T) {
	batch := Decode([][]interface{}{
		{"win_viewport", []interface{}{int64(1)}},
		{"flush", []interface{}{}},
	})

	if len(batch) != 1 {
		t.Fatalf("unknown events should not abort the batch, got %d", len(batch))
	}
	if _, ok := batch[0].(redraw.Flush); !ok {
		t.Fatalf("flush lost: %T", batch[0])
	}
}

func TestDecodeRepeatedArgsTuples(t *testing.T) {
	batch := Decode([][]interface{}{
		{"grid_resize",
			[]interface{}{int64(1), int64(80), int64(24)},
			[]interface{}{int64(2), int64(40), int64(10)}},
	})

	if len(batch) != 2 {
		t.Fatalf("each args tuple is one command, got %d", len(batch))
	}
	first := batch[0].(redraw.GridResize)
	if first.Grid != 1 || first.Columns != 80 || first.Rows != 24 {
		t.Fatalf("first resize = %+v", first)
	}
	second := batch[1].(redraw.GridResize)
	if second.Grid != 2 {
		t.Fatalf("second resize = %+v", second)
	}
}

func TestDecodeLegacyEvents(t *testing.T) {
	batch := Decode([][]interface{}{
		{"set_scroll_region", []interface{}{int64(1), int64(10), int64(0), int64(79)}},
		{"eol_clear", []interface{}{}},
	})

	region, ok := batch[0].(redraw.SetScrollRegion)
	if !ok || region.Grid != grid.DefaultGridID || region.Bot != 10 {
		t.Fatalf("set_scroll_region = %+v", batch[0])
	}
	if _, ok := batch[1].(redraw.EolClear); !ok {
		t.Fatalf("eol_clear = %T", batch[1])
	}
}

func TestDecodeHlAttrDefine(t *testing.T) {
	batch := Decode([][]interface{}{
		{"hl_attr_define", []interface{}{
			int64(7),
			map[string]interface{}{"bold": true},
			map[string]interface{}{},
			[]interface{}{},
		}},
		{"default_colors_set", []interface{}{
			int64(0xFFFFFF), int64(0x000000), int64(0xFF0000), int64(-1), int64(-1),
		}},
	})

	def, ok := batch[0].(redraw.HlAttrDefine)
	if !ok || def.ID != 7 || def.Attrs["bold"] != true {
		t.Fatalf("hl_attr_define = %+v", batch[0])
	}
	colors, ok := batch[1].(redraw.DefaultColorsSet)
	if !ok || colors.Fg != 0xFFFFFF || colors.Bg != 0 || colors.Sp != 0xFF0000 {
		t.Fatalf("default_colors_set = %+v", batch[1])
	}
}
