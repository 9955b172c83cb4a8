// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Shared highlight records and the id-indexed highlight table.
// Usage: Cells hold *Highlight pointers handed out by Map; entries are
//        replaced, never mutated, so stale readers stay consistent.

package highlight

import "log"

// DefaultID is the table entry used when a lookup misses.
const DefaultID = 0

// Highlight is one style record. Instances are shared between many cells and
// must never be modified after construction; Map.Set installs a replacement
// instead.
type Highlight struct {
	Italic    bool
	Bold      bool
	Underline bool
	Undercurl bool
	Reverse   bool

	Foreground *Color
	Background *Color
	Special    *Color
}

// New returns an empty highlight with every attribute unset.
func New() *Highlight {
	return &Highlight{}
}

// FromAttrs builds a highlight from a decoded attribute map. Unknown keys are
// logged and ignored so newer backends stay usable.
func FromAttrs(attrs map[string]interface{}) *Highlight {
	hl := New()
	for key, val := range attrs {
		switch key {
		case "foreground":
			if v, ok := asUint(val); ok {
				c := FromIndexed(v)
				hl.Foreground = &c
			}
		case "background":
			if v, ok := asUint(val); ok {
				c := FromIndexed(v)
				hl.Background = &c
			}
		case "special":
			if v, ok := asUint(val); ok {
				c := FromIndexed(v)
				hl.Special = &c
			}
		case "reverse", "standout":
			hl.Reverse = true
		case "bold":
			hl.Bold = true
		case "italic":
			hl.Italic = true
		case "underline":
			hl.Underline = true
		case "undercurl":
			hl.Undercurl = true
		default:
			log.Printf("Highlight: unknown attribute %q", key)
		}
	}
	return hl
}

func asUint(val interface{}) (uint64, bool) {
	switch v := val.(type) {
	case uint64:
		return v, true
	case int64:
		if v >= 0 {
			return uint64(v), true
		}
	case int:
		if v >= 0 {
			return uint64(v), true
		}
	case uint:
		return uint64(v), true
	}
	return 0, false
}

// Map is the id-indexed highlight table plus the default colors announced by
// the backend. It is owned by the UI goroutine and needs no locking.
type Map struct {
	highlights map[uint64]*Highlight

	fg Color
	bg Color
	sp Color
}

// NewMap returns a table with conventional terminal defaults until the
// backend sends default_colors_set.
func NewMap() *Map {
	return &Map{
		highlights: make(map[uint64]*Highlight),
		fg:         White,
		bg:         Black,
		sp:         Red,
	}
}

// SetDefaults installs the default foreground/background/special colors.
func (m *Map) SetDefaults(fg, bg, sp Color) {
	m.fg = fg
	m.bg = bg
	m.sp = sp
}

// DefaultFg returns the default foreground color.
func (m *Map) DefaultFg() Color { return m.fg }

// DefaultBg returns the default background color.
func (m *Map) DefaultBg() Color { return m.bg }

// DefaultSp returns the default special (underline/undercurl) color.
func (m *Map) DefaultSp() Color { return m.sp }

// Set replaces the table entry for id. The previous instance is left intact
// for cells still holding it.
func (m *Map) Set(id uint64, hl *Highlight) {
	if hl == nil {
		hl = New()
	}
	m.highlights[id] = hl
}

// Get resolves a highlight id. A miss falls back to the default entry, and a
// missing default entry to an empty highlight, so Get never fails.
func (m *Map) Get(id uint64) *Highlight {
	if hl, ok := m.highlights[id]; ok {
		return hl
	}
	if hl, ok := m.highlights[DefaultID]; ok {
		return hl
	}
	return New()
}

// Default returns the table's id 0 entry via the same total lookup.
func (m *Map) Default() *Highlight {
	return m.Get(DefaultID)
}

// CellColors resolves the effective foreground and background for a cell
// highlight, honoring reverse video and nil fallbacks to the defaults.
func (m *Map) CellColors(hl *Highlight) (fg, bg Color) {
	fg, bg = m.fg, m.bg
	if hl != nil {
		if hl.Foreground != nil {
			fg = *hl.Foreground
		}
		if hl.Background != nil {
			bg = *hl.Background
		}
		if hl.Reverse {
			fg, bg = bg, fg
		}
	}
	return fg, bg
}

// SpecialColor resolves the underline color for a cell highlight.
func (m *Map) SpecialColor(hl *Highlight) Color {
	if hl != nil && hl.Special != nil {
		return *hl.Special
	}
	return m.sp
}
