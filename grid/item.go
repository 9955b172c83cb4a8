// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/item.go
// Summary: Shaped glyph runs cached per line and their ink extents.

package grid

// GlyphString is the shaper-owned payload for one run. The model never looks
// inside it; it only caches it between repaints.
type GlyphString interface{}

// InkRect is the inked bounding box of a shaped run in fractional pixel
// units, relative to the top-left corner of the run's logical cell box.
// Negative X/Y mean ink spills left of/above the logical box.
type InkRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// InkOverflow is the per-edge amount ink exceeds the logical box. Every field
// is >= 0; ink inside the box never shrinks a repaint rectangle.
type InkOverflow struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Item is one shaped run covering the inclusive cell range [Start, End] of a
// line. Glyphs and Ink stay nil until the shape cache fills them; a run whose
// shaping failed keeps nil Glyphs but still occupies its columns.
type Item struct {
	Start int
	End   int

	Glyphs GlyphString
	Ink    *InkRect
}

// Width returns the run's width in cells.
func (it *Item) Width() int {
	return it.End - it.Start + 1
}

// SetGlyphs installs the shaped payload and its ink extents.
func (it *Item) SetGlyphs(glyphs GlyphString, ink *InkRect) {
	it.Glyphs = glyphs
	it.Ink = ink
}

// Overflow computes the ink overflow against the run's logical box for the
// given cell metrics. It returns nil when the ink fits, the common case.
func (it *Item) Overflow(lineHeight, charWidth float64) *InkOverflow {
	if it.Ink == nil {
		return nil
	}
	logicalW := float64(it.Width()) * charWidth

	var o InkOverflow
	if it.Ink.X < 0 {
		o.Left = -it.Ink.X
	}
	if it.Ink.Y < 0 {
		o.Top = -it.Ink.Y
	}
	if over := it.Ink.X + it.Ink.Width - logicalW; over > 0 {
		o.Right = over
	}
	if over := it.Ink.Y + it.Ink.Height - lineHeight; over > 0 {
		o.Bottom = over
	}
	if o == (InkOverflow{}) {
		return nil
	}
	return &o
}
