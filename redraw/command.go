// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: redraw/command.go
// Summary: The closed set of mutation commands decoded from the RPC stream.
// Notes: Decoding happens once at the transport boundary; the interpreter
//        switches over these types exhaustively.

package redraw

// Command is one decoded mutation. The set is closed: every implementation
// lives in this file and the interpreter handles all of them.
type Command interface {
	isCommand()
}

// GridResize reallocates a grid to new dimensions.
type GridResize struct {
	Grid    uint64
	Columns int
	Rows    int
}

// GridClear blanks every cell of a grid.
type GridClear struct {
	Grid uint64
}

// GridDestroy removes a grid from the registry.
type GridDestroy struct {
	Grid uint64
}

// GridCursorGoto moves a grid's cursor.
type GridCursorGoto struct {
	Grid uint64
	Row  int
	Col  int
}

// CellRun is one (text, highlight, repeat) triple of a GridLine. HlID < 0
// means "inherit the previous run's highlight" (sticky id).
type CellRun struct {
	Text   string
	HlID   int64
	Repeat int
}

// GridLine writes a run of cells left to right starting at ColStart.
type GridLine struct {
	Grid     uint64
	Row      int
	ColStart int
	Cells    []CellRun
}

// GridScroll shifts rows within the given region by Rows.
type GridScroll struct {
	Grid  uint64
	Top   int
	Bot   int
	Left  int
	Right int
	Rows  int
}

// SetScrollRegion changes a grid's active scroll region without scrolling.
type SetScrollRegion struct {
	Grid  uint64
	Top   int
	Bot   int
	Left  int
	Right int
}

// EolClear blanks from the cursor to the end of its row.
type EolClear struct {
	Grid uint64
}

// HlAttrDefine replaces a highlight table entry.
type HlAttrDefine struct {
	ID    uint64
	Attrs map[string]interface{}
}

// DefaultColorsSet announces the default foreground/background/special
// colors as packed 24-bit values.
type DefaultColorsSet struct {
	Fg uint64
	Bg uint64
	Sp uint64
}

// Flush marks the end of a coherent batch; the accumulated repaint may be
// presented after it.
type Flush struct{}

func (GridResize) isCommand()      {}
func (GridClear) isCommand()       {}
func (GridDestroy) isCommand()     {}
func (GridCursorGoto) isCommand()  {}
func (GridLine) isCommand()        {}
func (GridScroll) isCommand()      {}
func (SetScrollRegion) isCommand() {}
func (EolClear) isCommand()        {}
func (HlAttrDefine) isCommand()    {}
func (DefaultColorsSet) isCommand() {}
func (Flush) isCommand()           {}
