// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: redraw/mode.go
// Summary: Per-command repaint accumulator over {Nothing, Area, AreaList, All}.

package redraw

import "neoview/grid"

// ModeKind orders the lattice: Nothing is the identity of Join, All absorbs
// everything.
type ModeKind int

const (
	KindNothing ModeKind = iota
	KindArea
	KindAreaList
	KindAll
)

// Mode describes what one command changed. The zero value is Nothing.
type Mode struct {
	kind  ModeKind
	rects *grid.RectVec
}

// Nothing reports no change.
func Nothing() Mode {
	return Mode{}
}

// All requests a full repaint.
func All() Mode {
	return Mode{kind: KindAll}
}

// Area requests a repaint of a single rectangle.
func Area(r grid.Rect) Mode {
	return Mode{kind: KindArea, rects: grid.NewRectVec(r)}
}

// AreaList requests a repaint of a coalesced rectangle set.
func AreaList(v *grid.RectVec) Mode {
	if v == nil || len(v.List) == 0 {
		return Nothing()
	}
	return Mode{kind: KindAreaList, rects: v}
}

// Kind returns the lattice position.
func (m Mode) Kind() ModeKind {
	return m.kind
}

// Rects returns the changed rectangles for Area and AreaList modes.
func (m Mode) Rects() *grid.RectVec {
	return m.rects
}

// Join folds another mode in: Nothing is neutral, All absorbs, and area
// modes merge their rectangles through the coalescing set.
func (m Mode) Join(other Mode) Mode {
	switch {
	case m.kind == KindNothing:
		return other
	case other.kind == KindNothing:
		return m
	case m.kind == KindAll || other.kind == KindAll:
		return All()
	}

	merged := m.rects.Clone()
	merged.JoinVec(other.rects)
	return Mode{kind: KindAreaList, rects: merged}
}
