// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/metrics.go
// Summary: Cell metrics supplied by the surface for grid-to-pixel mapping.

package render

// CellMetrics describes the surface's cell box in its own fractional units.
// A character-cell terminal surface uses 1x1; a pixel surface reports real
// font metrics.
type CellMetrics struct {
	LineHeight float64
	CharWidth  float64
	Ascent     float64

	UnderlinePosition  float64
	UnderlineThickness float64
}

// TerminalMetrics is the unit metrics of a character-cell surface.
func TerminalMetrics() CellMetrics {
	return CellMetrics{LineHeight: 1, CharWidth: 1, Ascent: 1}
}
