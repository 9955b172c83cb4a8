// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/shape.go
// Summary: The lazy shape pass: rebuild item caches for dirty lines only.

package render

import (
	"errors"
	"log"

	"neoview/grid"
	"neoview/highlight"
)

var errRunOutOfRange = errors.New("render: shape run out of range")

// ShapeDirty reshapes every dirty line of the model: flatten to styled text,
// itemize, reconcile the line's item cache, shape the runs that actually
// changed, and clear the dirty flags. Clean lines are not touched.
func ShapeDirty(m *grid.Model, hl *highlight.Map, shaper Shaper) {
	for _, line := range m.Lines() {
		if !line.Dirty {
			continue
		}
		styled := NewStyledLine(line, hl)
		runs := shaper.Itemize(styled)

		spans := make([]grid.Span, 0, len(runs))
		for _, run := range runs {
			if span, ok := styled.CellRange(run.Offset, run.Length); ok {
				spans = append(spans, span)
			}
		}
		line.ReconcileItems(spans)

		for _, item := range line.DirtyItems() {
			offset, length, ok := styled.ByteRange(grid.Span{Start: item.Start, End: item.End})
			if !ok {
				item.SetGlyphs(nil, nil)
				continue
			}
			glyphs, ink, err := shaper.Shape(styled, ByteRun{Offset: offset, Length: length})
			if err != nil {
				// The run keeps its columns; it just renders blank.
				log.Printf("Render: shaping failed for cells %d-%d: %v", item.Start, item.End, err)
				item.SetGlyphs(nil, nil)
				continue
			}
			item.SetGlyphs(glyphs, ink)
		}

		line.ClearDirty()
	}
}

// ShapeAll invalidates every cached run first, then reshapes, for font or
// metric changes.
func ShapeAll(m *grid.Model, hl *highlight.Map, shaper Shaper) {
	m.ClearItemCaches()
	ShapeDirty(m, hl, shaper)
}
