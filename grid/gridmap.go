// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/gridmap.go
// Summary: Registry of concurrent editor viewports keyed by grid id.

package grid

import "neoview/highlight"

// DefaultGridID is the backend's implicit primary grid.
const DefaultGridID uint64 = 1

// Grid wraps one model with its registry-level lifecycle.
type Grid struct {
	model *Model
}

// NewGrid returns an empty grid; the first resize allocates its model.
func NewGrid() *Grid {
	return &Grid{model: NewModel(0, 0, highlight.New())}
}

// Model exposes the underlying cell model to the renderer.
func (g *Grid) Model() *Model {
	return g.model
}

// CurPoint is the cursor cell as a rectangle.
func (g *Grid) CurPoint() Rect {
	return g.model.CurPoint()
}

// GetCursor returns the cursor position.
func (g *Grid) GetCursor() (row, col int) {
	return g.model.GetCursor()
}

// Resize discards and reallocates the model when dimensions changed. The
// cursor resets to the origin. Content is not preserved; the backend resends
// it after announcing the resize.
func (g *Grid) Resize(columns, rows int, def *highlight.Highlight) {
	if g.model.Columns == columns && g.model.Rows == rows {
		return
	}
	g.model = NewModel(rows, columns, def)
}

// Map registers every live grid by id. Grids are created lazily on first
// reference and destroyed explicitly.
type Map struct {
	grids map[uint64]*Grid
}

// NewMap returns an empty registry.
func NewMap() *Map {
	return &Map{grids: make(map[uint64]*Grid)}
}

// Current returns the default grid, creating it if needed.
func (m *Map) Current() *Grid {
	return m.GetOrCreate(DefaultGridID)
}

// Get returns the grid for id, or nil.
func (m *Map) Get(id uint64) *Grid {
	return m.grids[id]
}

// GetOrCreate returns the grid for id, allocating an empty one on first use.
func (m *Map) GetOrCreate(id uint64) *Grid {
	if g, ok := m.grids[id]; ok {
		return g
	}
	g := NewGrid()
	m.grids[id] = g
	return g
}

// Destroy removes a grid from the registry.
func (m *Map) Destroy(id uint64) {
	delete(m.grids, id)
}

// Each visits every live grid.
func (m *Map) Each(fn func(id uint64, g *Grid)) {
	for id, g := range m.grids {
		fn(id, g)
	}
}

// ClearItemCaches invalidates the shaped-run caches of every grid, for font
// or metric changes.
func (m *Map) ClearItemCaches() {
	for _, g := range m.grids {
		g.model.ClearItemCaches()
	}
}
