// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: redraw/interpreter.go
// Summary: Applies decoded command batches to the grid registry and folds
//          the per-command repaint modes into one Event.
// Usage: Called on the UI goroutine only; commands apply in stream order and
//        the Event is final only after the whole batch.

package redraw

import (
	"log"

	"github.com/mattn/go-runewidth"

	"neoview/grid"
	"neoview/highlight"
)

// Interpreter owns the mutable mirror state: every live grid and the
// highlight table.
type Interpreter struct {
	Grids      *grid.Map
	Highlights *highlight.Map
}

// NewInterpreter wires an interpreter over fresh registries.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		Grids:      grid.NewMap(),
		Highlights: highlight.NewMap(),
	}
}

// ApplyBatch applies every command in order and returns the folded repaint
// event. No repaint happens mid-batch; intermediate states may be
// incoherent.
func (in *Interpreter) ApplyBatch(batch []Command) *Event {
	ev := NewEvent()
	for _, cmd := range batch {
		in.apply(cmd, ev)
	}
	return ev
}

func (in *Interpreter) apply(cmd Command, ev *Event) {
	switch c := cmd.(type) {
	case GridResize:
		g := in.Grids.GetOrCreate(c.Grid)
		g.Resize(c.Columns, c.Rows, in.Highlights.Default())
		ev.Join(c.Grid, All())

	case GridClear:
		g := in.Grids.GetOrCreate(c.Grid)
		g.Model().Clear(in.Highlights.Default())
		ev.Join(c.Grid, All())

	case GridDestroy:
		in.Grids.Destroy(c.Grid)
		// The presentation layer invalidates everything when a grid
		// disappears; no region to report here.

	case GridCursorGoto:
		g := in.Grids.GetOrCreate(c.Grid)
		if changed, ok := g.Model().SetCursor(c.Row, c.Col); ok {
			ev.Join(c.Grid, AreaList(changed))
		}

	case GridLine:
		g := in.Grids.GetOrCreate(c.Grid)
		if rect, ok := in.putLine(g.Model(), c); ok {
			ev.Join(c.Grid, Area(rect))
		}

	case GridScroll:
		g := in.Grids.GetOrCreate(c.Grid)
		m := g.Model()
		if m.Empty() {
			// The grid has not been sized yet; nothing to move.
			return
		}
		m.SetScrollRegion(c.Top, c.Bot, c.Left, c.Right)
		rect := m.Scroll(c.Rows, in.Highlights.Default())
		ev.Join(c.Grid, Area(rect))

	case SetScrollRegion:
		g := in.Grids.GetOrCreate(c.Grid)
		g.Model().SetScrollRegion(c.Top, c.Bot, c.Left, c.Right)

	case EolClear:
		g := in.Grids.GetOrCreate(c.Grid)
		m := g.Model()
		if m.Empty() {
			return
		}
		rect := m.EolClear(in.Highlights.Default())
		ev.Join(c.Grid, Area(rect))

	case HlAttrDefine:
		in.Highlights.Set(c.ID, highlight.FromAttrs(c.Attrs))
		// Cells holding the old record keep it until the backend resends
		// their lines; nothing to repaint yet.

	case DefaultColorsSet:
		in.Highlights.SetDefaults(
			highlight.FromIndexed(c.Fg),
			highlight.FromIndexed(c.Bg),
			highlight.FromIndexed(c.Sp),
		)
		ev.JoinAll()

	case Flush:
		// Batch boundary; the loop presents after ApplyBatch returns.

	default:
		log.Printf("Redraw: unhandled command %T", cmd)
	}
}

// putLine writes the cell runs of a GridLine. A highlight id is sticky: once
// seen it carries to later runs that omit one. Empty text is the explicit
// continuation slot after a wide character and is skipped, because the wide
// write already claimed it.
func (in *Interpreter) putLine(m *grid.Model, c GridLine) (grid.Rect, bool) {
	if c.Row < 0 || c.Row >= m.Rows || c.ColStart < 0 || c.ColStart >= m.Columns {
		return grid.Rect{}, false
	}
	m.MoveCursor(c.Row, c.ColStart)

	changed := grid.Point(c.Row, c.ColStart)
	hlID := int64(highlight.DefaultID)

	for _, run := range c.Cells {
		if run.HlID >= 0 {
			hlID = run.HlID
		}
		if run.Text == "" {
			continue
		}
		repeat := run.Repeat
		if repeat < 1 {
			repeat = 1
		}
		hl := in.Highlights.Get(uint64(hlID))
		wide := runewidth.StringWidth(run.Text) == 2
		for i := 0; i < repeat; i++ {
			changed = changed.Union(m.Put(run.Text, wide, hl))
		}
	}
	return changed, true
}
