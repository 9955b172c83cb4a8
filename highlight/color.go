// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/color.go
// Summary: Color type shared by the highlight table and the render surface.

package highlight

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with float64 channels in [0.0, 1.0]. Values are
// compared with ==, so every construction path must produce exact channel
// values for the same source color.
type Color struct {
	colorful.Color
}

var (
	Black = Color{colorful.Color{R: 0.0, G: 0.0, B: 0.0}}
	White = Color{colorful.Color{R: 1.0, G: 1.0, B: 1.0}}
	Red   = Color{colorful.Color{R: 1.0, G: 0.0, B: 0.0}}
)

// FromIndexed converts a packed 24-bit color (0xRRGGBB) as sent by the
// backend editor into channel values.
func FromIndexed(packed uint64) Color {
	r := uint8(packed >> 16)
	g := uint8(packed >> 8)
	b := uint8(packed)
	return Color{colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

// Tcell converts the color for the terminal surface.
func (c Color) Tcell() tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim returns the color blended toward black, used for inactive cursor
// rendering.
func (c Color) Dim(amount float64) Color {
	return Color{c.BlendRgb(Black.Color, amount)}
}
