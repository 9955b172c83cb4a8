// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/line_test.go
// Summary: Item-cache reconciliation against fresh itemizations.

package grid

import (
	"testing"

	"neoview/highlight"
)

func reconciledLine(t *testing.T, columns int, spans []Span) *Line {
	t.Helper()
	line := NewLine(columns, highlight.New())
	line.ReconcileItems(spans)
	for _, it := range line.DirtyItems() {
		it.SetGlyphs("shaped", nil)
	}
	line.ClearDirty()
	return line
}

func TestReconcileItemsCreatesRuns(t *testing.T) {
	line := NewLine(10, highlight.New())
	line.ReconcileItems([]Span{{Start: 0, End: 2}, {Start: 4, End: 6}})

	dirty := line.DirtyItems()
	if len(dirty) != 2 {
		t.Fatalf("expected 2 dirty items, got %d", len(dirty))
	}
	if dirty[0].Start != 0 || dirty[0].End != 2 {
		t.Fatalf("first item = %+v", dirty[0])
	}
	if line.CellToItem(5) != 4 {
		t.Fatalf("cell 5 should map to item start 4, got %d", line.CellToItem(5))
	}
	if line.CellToItem(3) != -1 {
		t.Fatalf("gap cell should map to no item")
	}
}

func TestReconcileItemsKeepsCleanRuns(t *testing.T) {
	spans := []Span{{Start: 0, End: 2}, {Start: 4, End: 6}}
	line := reconciledLine(t, 10, spans)

	line.ReconcileItems(spans)
	if dirty := line.DirtyItems(); len(dirty) != 0 {
		t.Fatalf("unchanged spans should leave no dirty items, got %d", len(dirty))
	}
	if line.ItemAt(0).Glyphs != "shaped" {
		t.Fatalf("clean run lost its shaped payload")
	}
}

func TestReconcileItemsInvalidatesChangedCell(t *testing.T) {
	spans := []Span{{Start: 0, End: 2}, {Start: 4, End: 6}}
	line := reconciledLine(t, 10, spans)

	line.Cells[5].Dirty = true
	line.ReconcileItems(spans)

	dirty := line.DirtyItems()
	if len(dirty) != 1 {
		t.Fatalf("expected only the touched run dirty, got %d", len(dirty))
	}
	if dirty[0].Start != 4 {
		t.Fatalf("wrong run invalidated: %+v", dirty[0])
	}
	if line.ItemAt(0).Glyphs != "shaped" {
		t.Fatalf("untouched run lost its shaped payload")
	}
}

func TestReconcileItemsInvalidatesMovedRun(t *testing.T) {
	line := reconciledLine(t, 10, []Span{{Start: 0, End: 2}})

	line.ReconcileItems([]Span{{Start: 1, End: 3}})
	dirty := line.DirtyItems()
	if len(dirty) != 1 || dirty[0].Start != 1 || dirty[0].End != 3 {
		t.Fatalf("moved run should reshape at its new position, got %+v", dirty)
	}
	if line.CellToItem(0) != -1 {
		t.Fatalf("vacated cell still maps to an item")
	}
}

func TestItemLenFrom(t *testing.T) {
	line := reconciledLine(t, 10, []Span{{Start: 2, End: 5}})
	if got := line.ItemLenFrom(3); got != 3 {
		t.Fatalf("ItemLenFrom(3) = %d, want 3", got)
	}
	if got := line.ItemLenFrom(8); got != 1 {
		t.Fatalf("bare cell should report length 1, got %d", got)
	}
}

func TestExtendByItemsCoversWholeRuns(t *testing.T) {
	m := NewModel(3, 10, highlight.New())
	m.Line(1).ReconcileItems([]Span{{Start: 2, End: 5}})

	got := Point(1, 3).ExtendByItems(m)
	want := NewRect(1, 1, 2, 5)
	if got != want {
		t.Fatalf("ExtendByItems = %+v, want %+v", got, want)
	}
}

func TestExtendByItemsWidensForDoubleWidth(t *testing.T) {
	def := highlight.New()
	m := NewModel(2, 10, def)
	m.MoveCursor(0, 3)
	m.Put("世", true, def)

	// Right edge on the lead cell drags the continuation in.
	got := NewRect(0, 0, 1, 3).ExtendByItems(m)
	if got.Right < 4 {
		t.Fatalf("right edge should include the continuation cell, got %+v", got)
	}

	// Left edge on the continuation cell drags the lead in.
	got = NewRect(0, 0, 4, 6).ExtendByItems(m)
	if got.Left > 3 {
		t.Fatalf("left edge should include the lead cell, got %+v", got)
	}
}

func TestCopyFromClonesItems(t *testing.T) {
	def := highlight.New()
	src := reconciledLine(t, 10, []Span{{Start: 0, End: 3}})
	dst := NewLine(10, def)

	dst.CopyFrom(src, 0, 9)
	dst.ItemAt(0).SetGlyphs("reshaped", nil)
	if src.ItemAt(0).Glyphs == "reshaped" {
		t.Fatalf("copied line aliases the source's items")
	}
}

func TestCopyFromDropsBoundaryStraddlingRuns(t *testing.T) {
	def := highlight.New()
	src := reconciledLine(t, 10, []Span{{Start: 0, End: 3}, {Start: 4, End: 6}})
	dst := NewLine(10, def)
	dst.ClearDirty()

	// The run over cells 0-3 straddles the copy's left edge; its cells lose
	// their cache mapping and come out dirty. The fully contained run over
	// 4-6 survives.
	dst.CopyFrom(src, 1, 9)

	for col := 1; col <= 3; col++ {
		if dst.CellToItem(col) != -1 {
			t.Fatalf("cell %d maps to a half-copied run: %d", col, dst.CellToItem(col))
		}
		if dst.ItemAt(col) != nil {
			t.Fatalf("cell %d still carries a half-copied item", col)
		}
		if !dst.Cells[col].Dirty {
			t.Fatalf("cell %d of a dropped run should be dirty", col)
		}
	}
	if !dst.Dirty {
		t.Fatalf("dropping a run should dirty the line")
	}

	if dst.CellToItem(5) != 4 {
		t.Fatalf("contained run lost its mapping: %d", dst.CellToItem(5))
	}
	if it := dst.ItemAt(4); it == nil || it.Glyphs != "shaped" {
		t.Fatalf("contained run lost its shaped payload: %+v", it)
	}
}

func TestCopyFromDropsRunPastRightEdge(t *testing.T) {
	def := highlight.New()
	src := reconciledLine(t, 10, []Span{{Start: 6, End: 9}})
	dst := NewLine(10, def)

	dst.CopyFrom(src, 0, 7)
	for col := 6; col <= 7; col++ {
		if dst.CellToItem(col) != -1 || dst.ItemAt(col) != nil {
			t.Fatalf("cell %d kept a run extending past the copy range", col)
		}
	}
}
