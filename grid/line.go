// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/line.go
// Summary: One fixed-width row of cells plus its shaped-item cache.
// Usage: Mutated by the command interpreter, consumed by the shape cache.
// Notes: The item cache is only valid while no cell in the line is dirty.

package grid

import "neoview/highlight"

// Span is an inclusive cell range produced by itemization.
type Span struct {
	Start int
	End   int
}

// Line holds the cells of one grid row. items is indexed by the starting
// cell of each run; cellToItem maps every column to the start cell of the
// item covering it, or -1.
type Line struct {
	Cells []Cell

	items      []*Item
	cellToItem []int

	// Dirty is set when any cell changed since the last shape pass.
	Dirty bool
}

// NewLine allocates a blank line of the given width.
func NewLine(columns int, def *highlight.Highlight) *Line {
	l := &Line{
		Cells:      make([]Cell, columns),
		items:      make([]*Item, columns),
		cellToItem: make([]int, columns),
		Dirty:      true,
	}
	for i := range l.Cells {
		l.Cells[i] = newCell(def)
		l.cellToItem[i] = -1
	}
	return l
}

// Width returns the number of columns.
func (l *Line) Width() int {
	return len(l.Cells)
}

// CopyFrom copies the inclusive column range [left, right] from src,
// including the item cache so an undisturbed scrolled row needs no reshape.
// Items are cloned because the cache mutates items in place on reshape. A
// run straddling the range boundary only half-copies, so its cells drop out
// of the cache and come out dirty for the next shape pass.
func (l *Line) CopyFrom(src *Line, left, right int) {
	for col := left; col <= right; col++ {
		l.Cells[col] = src.Cells[col]
		head := src.cellToItem[col]
		if head >= 0 && (head < left || src.items[head] == nil || src.items[head].End > right) {
			l.cellToItem[col] = -1
			l.items[col] = nil
			l.Cells[col].Dirty = true
			l.Dirty = true
			continue
		}
		l.cellToItem[col] = head
		if it := src.items[col]; it != nil {
			clone := *it
			l.items[col] = &clone
		} else {
			l.items[col] = nil
		}
	}
	l.Dirty = l.Dirty || src.Dirty
}

// Clear blanks the inclusive column range [left, right].
func (l *Line) Clear(left, right int, def *highlight.Highlight) {
	for col := left; col <= right; col++ {
		l.Cells[col].Clear(def)
	}
	l.Dirty = true
}

// ClearItemCache drops every cached run, forcing a full reshape of the line.
func (l *Line) ClearItemCache() {
	for i := range l.items {
		l.items[i] = nil
		l.cellToItem[i] = -1
	}
	l.Dirty = true
}

// MarkDirty marks a single cell dirty.
func (l *Line) MarkDirty(col int) {
	l.Cells[col].Dirty = true
	l.Dirty = true
}

// CellToItem returns the start cell of the item covering col, or -1.
func (l *Line) CellToItem(col int) int {
	if col < 0 || col >= len(l.cellToItem) {
		return -1
	}
	return l.cellToItem[col]
}

// ItemAt returns the item covering col, or nil.
func (l *Line) ItemAt(col int) *Item {
	idx := l.CellToItem(col)
	if idx < 0 {
		return nil
	}
	return l.items[idx]
}

// ItemLenFrom returns how many cells the item covering col extends from col,
// at least 1 so rect extension stays well defined on bare cells.
func (l *Line) ItemLenFrom(col int) int {
	it := l.ItemAt(col)
	if it == nil || it.End < col {
		return 1
	}
	return it.End - col + 1
}

// IsDoubleWidth reports whether the cell at col is followed by a
// continuation cell, meaning it renders two columns wide.
func (l *Line) IsDoubleWidth(col int) bool {
	next := col + 1
	if next >= len(l.Cells) {
		return false
	}
	return l.Cells[next].DoubleWidth
}

func (l *Line) setCellToEmpty(col int) bool {
	if l.items[col] == nil && l.cellToItem[col] < 0 {
		return false
	}
	l.items[col] = nil
	l.cellToItem[col] = -1
	l.Cells[col].Dirty = true
	return true
}

func (l *Line) setCellToItem(span Span) bool {
	startIdx := l.CellToItem(span.Start)
	endIdx := l.CellToItem(span.End)

	cached := -1
	if startIdx >= 0 && l.items[startIdx] != nil {
		cached = l.items[startIdx].Width()
	}

	// A run that moved or changed length invalidates the whole span.
	if startIdx != span.Start || endIdx < 0 || cached != span.End-span.Start+1 {
		l.initializeItem(span)
		return true
	}

	// Same geometry: refresh only when a cell inside the run changed.
	for col := span.Start; col <= span.End; col++ {
		if l.Cells[col].Dirty {
			l.items[span.Start].SetGlyphs(nil, nil)
			l.Cells[span.Start].Dirty = true
			return true
		}
	}
	return false
}

func (l *Line) initializeItem(span Span) {
	for col := span.Start; col <= span.End; col++ {
		l.Cells[col].Dirty = true
		l.cellToItem[col] = span.Start
	}
	for col := span.Start + 1; col <= span.End; col++ {
		l.items[col] = nil
	}
	l.items[span.Start] = &Item{Start: span.Start, End: span.End}
}

// ReconcileItems aligns the item cache with a fresh itemization of the line.
// Cells belonging to moved, resized, or stale runs come out dirty so the
// shape pass knows what to reshape.
func (l *Line) ReconcileItems(spans []Span) {
	next := 0
	col := 0
	for col < len(l.Cells) {
		var changed bool
		switch {
		case next >= len(spans) || col < spans[next].Start:
			changed = l.setCellToEmpty(col)
			col++
		case col == spans[next].Start:
			span := spans[next]
			changed = l.setCellToItem(span)
			col = span.End + 1
			next++
		default:
			// Itemizer handed us an overlapping span; skip it rather
			// than corrupt the index.
			next++
		}
		l.Dirty = l.Dirty || changed
	}
}

// DirtyItems returns the items whose runs contain at least one dirty cell,
// in column order. The shape pass reshapes exactly these.
func (l *Line) DirtyItems() []*Item {
	var out []*Item
	for col := 0; col < len(l.Cells); col++ {
		it := l.items[col]
		if it == nil || it.Start != col {
			continue
		}
		for c := it.Start; c <= it.End; c++ {
			if l.Cells[c].Dirty {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// ClearDirty resets every per-cell dirty flag and the line flag after a
// shape pass.
func (l *Line) ClearDirty() {
	for i := range l.Cells {
		l.Cells[i].Dirty = false
	}
	l.Dirty = false
}
