// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/cell.go
// Summary: The smallest renderable unit of a mirrored editor grid.

package grid

import "neoview/highlight"

// Cell is one character position. Ch is a string so combining sequences stay
// in a single cell. Hl is a shared pointer into the highlight table and must
// not be mutated through the cell.
type Cell struct {
	Ch string
	Hl *highlight.Highlight

	// DoubleWidth marks the zero-content continuation cell that follows a
	// wide character.
	DoubleWidth bool

	// Dirty is set on every content or style change and cleared when the
	// shape cache consumes the line.
	Dirty bool
}

func newCell(hl *highlight.Highlight) Cell {
	return Cell{Ch: " ", Hl: hl, Dirty: true}
}

// Clear blanks the cell with the given default highlight.
func (c *Cell) Clear(def *highlight.Highlight) {
	c.Ch = " "
	c.Hl = def
	c.DoubleWidth = false
	c.Dirty = true
}

// IsBlank reports whether the cell renders as empty space.
func (c *Cell) IsBlank() bool {
	return c.Ch == " " || c.Ch == ""
}
