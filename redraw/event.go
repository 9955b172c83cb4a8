// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: redraw/event.go
// Summary: Per-batch repaint result, folded from every command's Mode.

package redraw

// Event accumulates the repaint work of one command batch. Either everything
// repaints, or each touched grid carries its own folded Mode.
type Event struct {
	// RepaintAll forces a full-surface redraw regardless of per-grid state.
	RepaintAll bool

	// Grids holds the folded repaint mode per grid id.
	Grids map[uint64]Mode
}

// NewEvent returns an empty (nothing to repaint) event.
func NewEvent() *Event {
	return &Event{Grids: make(map[uint64]Mode)}
}

// AllEvent returns an event that repaints everything.
func AllEvent() *Event {
	ev := NewEvent()
	ev.RepaintAll = true
	return ev
}

// JoinAll escalates the whole event to a full repaint.
func (e *Event) JoinAll() {
	e.RepaintAll = true
}

// Join folds a grid-scoped mode into the event. Nothing modes are dropped;
// once RepaintAll is set per-grid detail is irrelevant.
func (e *Event) Join(gridID uint64, mode Mode) {
	if mode.Kind() == KindNothing || e.RepaintAll {
		return
	}
	if prev, ok := e.Grids[gridID]; ok {
		e.Grids[gridID] = prev.Join(mode)
		return
	}
	e.Grids[gridID] = mode
}

// Merge folds another event's repaint work into this one, so the results of
// several batches can present as a single paint.
func (e *Event) Merge(other *Event) {
	if other.RepaintAll {
		e.JoinAll()
		return
	}
	for id, mode := range other.Grids {
		e.Join(id, mode)
	}
}

// Empty reports whether the event requests no repainting at all.
func (e *Event) Empty() bool {
	return !e.RepaintAll && len(e.Grids) == 0
}
