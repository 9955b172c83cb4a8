// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/model.go
// Summary: The mirrored cell model for one editor viewport.
// Usage: Mutated only by the command interpreter on the UI goroutine.
// Notes: The backend and this mirror can briefly disagree on size during a
//        resize; every operation clamps instead of failing.

package grid

import "neoview/highlight"

// Model mirrors the remote editor's grid of cells along with the cursor and
// the active scroll region.
type Model struct {
	Rows    int
	Columns int

	curRow int
	curCol int

	lines []*Line

	// Scroll region bounds, inclusive. Defaults to the full grid.
	top   int
	bot   int
	left  int
	right int
}

// NewModel allocates a blank model. def is the highlight blank cells carry.
func NewModel(rows, columns int, def *highlight.Highlight) *Model {
	m := &Model{
		Rows:    rows,
		Columns: columns,
		lines:   make([]*Line, rows),
		bot:     rows - 1,
		right:   columns - 1,
	}
	for i := range m.lines {
		m.lines[i] = NewLine(columns, def)
	}
	return m
}

// Line returns the line at row. The caller must stay within bounds.
func (m *Model) Line(row int) *Line {
	return m.lines[row]
}

// Lines returns all rows for iteration by the shape cache and painter.
func (m *Model) Lines() []*Line {
	return m.lines
}

// LimitTo clamps a rectangle to the model bounds in place.
func (m *Model) LimitTo(r *Rect) {
	if r.Left >= m.Columns {
		r.Left = m.Columns - 1
	}
	if r.Right >= m.Columns {
		r.Right = m.Columns - 1
	}
	if r.Top >= m.Rows {
		r.Top = m.Rows - 1
	}
	if r.Bot >= m.Rows {
		r.Bot = m.Rows - 1
	}
}

// FullRect covers the whole model.
func (m *Model) FullRect() Rect {
	return NewRect(0, m.Rows-1, 0, m.Columns-1)
}

// CurPoint is the 1x1 rectangle under the cursor.
func (m *Model) CurPoint() Rect {
	return Point(m.curRow, m.curCol)
}

// GetCursor returns the cursor position, always inside bounds.
func (m *Model) GetCursor() (row, col int) {
	return m.curRow, m.curCol
}

// SetCursor moves the cursor and returns the regions of both the old and new
// cursor cells so each repaints with the right emphasis. An out-of-bounds
// target is refused.
func (m *Model) SetCursor(row, col int) (*RectVec, bool) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Columns {
		return nil, false
	}
	changed := NewRectVec(m.CurPoint())
	m.curRow = row
	m.curCol = col
	changed.Join(m.CurPoint())
	return changed, true
}

// MoveCursor positions the cursor for a put run without producing a repaint
// region. Out-of-bounds targets are clamped.
func (m *Model) MoveCursor(row, col int) {
	m.curRow = clamp(row, 0, m.Rows-1)
	m.curCol = clamp(col, 0, m.Columns-1)
}

// Put writes one character at the cursor and advances it, clamped at the last
// column. wide marks a character occupying two columns; the following cell
// becomes its continuation. The returned rect spans the written cell and the
// cursor's final position.
func (m *Model) Put(text string, wide bool, hl *highlight.Highlight) Rect {
	changed := m.CurPoint()
	line := m.lines[m.curRow]

	cell := &line.Cells[m.curCol]
	cell.Ch = text
	cell.Hl = hl
	cell.DoubleWidth = false
	cell.Dirty = true
	line.Dirty = true

	m.curCol++
	if wide && m.curCol < m.Columns {
		cont := &line.Cells[m.curCol]
		cont.Ch = ""
		cont.Hl = hl
		cont.DoubleWidth = true
		cont.Dirty = true
		m.curCol++
	}
	if m.curCol >= m.Columns {
		m.curCol = m.Columns - 1
	}

	return changed.Union(m.CurPoint())
}

// Empty reports whether the model has no cells yet. A lazily created grid
// stays empty until its first resize; every mutation must no-op on it.
func (m *Model) Empty() bool {
	return m.Rows == 0 || m.Columns == 0
}

// SetScrollRegion sets the inclusive bounds scroll operates on, clamped to
// the model.
func (m *Model) SetScrollRegion(top, bot, left, right int) {
	if m.Empty() {
		return
	}
	m.top = clamp(top, 0, m.Rows-1)
	m.bot = clamp(bot, m.top, m.Rows-1)
	m.left = clamp(left, 0, m.Columns-1)
	m.right = clamp(right, m.left, m.Columns-1)
}

// ScrollRegion returns the active scroll region.
func (m *Model) ScrollRegion() (top, bot, left, right int) {
	return m.top, m.bot, m.left, m.right
}

func (m *Model) copyRow(row, offset, left, right int) {
	m.lines[row].CopyFrom(m.lines[row+offset], left, right)
}

// Scroll shifts the scroll region's rows by count: positive moves content up
// (rows read from below), negative moves it down. Vacated rows are blanked
// with def. The returned rect covers the whole region, since every row in it
// moved.
func (m *Model) Scroll(count int, def *highlight.Highlight) Rect {
	if m.Empty() {
		return Rect{}
	}
	top, bot, left, right := m.top, m.bot, m.left, m.right

	if count > 0 {
		if count > bot-top+1 {
			count = bot - top + 1
		}
		// Top-down so source rows below are read before being overwritten.
		for row := top; row <= bot-count; row++ {
			m.copyRow(row, count, left, right)
		}
		m.clearRegion(bot-count+1, bot, left, right, def)
	} else if count < 0 {
		if -count > bot-top+1 {
			count = -(bot - top + 1)
		}
		// Bottom-up for the same reason in the other direction.
		for row := bot; row >= top-count; row-- {
			m.copyRow(row, count, left, right)
		}
		m.clearRegion(top, top-count-1, left, right, def)
	}

	return NewRect(top, bot, left, right)
}

// Clear blanks the whole model.
func (m *Model) Clear(def *highlight.Highlight) {
	m.clearRegion(0, m.Rows-1, 0, m.Columns-1, def)
}

// EolClear blanks from the cursor to the end of its row and returns the
// covered span.
func (m *Model) EolClear(def *highlight.Highlight) Rect {
	if m.Empty() {
		return Rect{}
	}
	m.clearRegion(m.curRow, m.curRow, m.curCol, m.Columns-1, def)
	return NewRect(m.curRow, m.curRow, m.curCol, m.Columns-1)
}

func (m *Model) clearRegion(top, bot, left, right int, def *highlight.Highlight) {
	for row := top; row <= bot; row++ {
		m.lines[row].Clear(left, right, def)
	}
}

// ClearItemCaches invalidates every cached shaped run, for font or metric
// changes.
func (m *Model) ClearItemCaches() {
	for _, line := range m.lines {
		line.ClearItemCache()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
