// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/rect.go
// Summary: Inclusive rectangles over grid coordinates, the currency of
//          dirty-region tracking.

package grid

// Rect is an inclusive rectangle in (row, column) grid space. Top <= Bot and
// Left <= Right always hold; constructors normalize swapped bounds.
type Rect struct {
	Top   int
	Bot   int
	Left  int
	Right int
}

// NewRect builds a rectangle, swapping bounds if they arrive reversed.
func NewRect(top, bot, left, right int) Rect {
	if bot < top {
		top, bot = bot, top
	}
	if right < left {
		left, right = right, left
	}
	return Rect{Top: top, Bot: bot, Left: left, Right: right}
}

// Point is the 1x1 rectangle at (row, col).
func Point(row, col int) Rect {
	return Rect{Top: row, Bot: row, Left: col, Right: col}
}

// Contains reports whether other lies fully inside r.
func (r Rect) Contains(other Rect) bool {
	return r.Top <= other.Top && r.Bot >= other.Bot &&
		r.Left <= other.Left && r.Right >= other.Right
}

func (r Rect) rowsOverlap(other Rect) bool {
	return r.Top <= other.Bot && r.Bot >= other.Top
}

func (r Rect) colsOverlap(other Rect) bool {
	return r.Left <= other.Right && r.Right >= other.Left
}

// Touches reports whether the rectangles overlap or share an edge so that a
// bounding-box merge cannot under-cover: overlapping in both axes, or
// edge-adjacent in one axis while overlapping in the other.
func (r Rect) Touches(other Rect) bool {
	if r.rowsOverlap(other) && r.colsOverlap(other) {
		return true
	}
	rowAdjacent := r.Top == other.Bot+1 || other.Top == r.Bot+1
	colAdjacent := r.Left == other.Right+1 || other.Left == r.Right+1
	if rowAdjacent && r.colsOverlap(other) {
		return true
	}
	if colAdjacent && r.rowsOverlap(other) {
		return true
	}
	return false
}

// Union grows r to the bounding box of both rectangles.
func (r Rect) Union(other Rect) Rect {
	if other.Top < r.Top {
		r.Top = other.Top
	}
	if other.Left < r.Left {
		r.Left = other.Left
	}
	if other.Bot > r.Bot {
		r.Bot = other.Bot
	}
	if other.Right > r.Right {
		r.Right = other.Right
	}
	return r
}

// Extend grows each edge by the given margins, clamping top/left at zero.
func (r Rect) Extend(top, bot, left, right int) Rect {
	r.Top -= top
	if r.Top < 0 {
		r.Top = 0
	}
	r.Left -= left
	if r.Left < 0 {
		r.Left = 0
	}
	r.Bot += bot
	r.Right += right
	return r
}

// ExtendByItems widens the rectangle so no shaped run is cut in half: the
// left edge moves to the start of any item it lands inside, the right edge to
// the end of the item under it, and one extra column is taken on either side
// when a double-width pair sits on the boundary.
func (r Rect) ExtendByItems(m *Model) Rect {
	left, right := r.Left, r.Right

	for row := r.Top; row <= r.Bot && row < m.Rows; row++ {
		line := m.Line(row)

		if idx := line.CellToItem(r.Left); idx >= 0 && idx < left {
			left = idx
		}
		if end := r.Right + line.ItemLenFrom(r.Right) - 1; end > right {
			right = end
		}

		// A wide character straddling the boundary drags its partner in.
		if r.Left > 0 && line.Cells[r.Left].DoubleWidth {
			if r.Left-1 < left {
				left = r.Left - 1
			}
		}
		if line.IsDoubleWidth(r.Right) {
			if r.Right+1 > right {
				right = r.Right + 1
			}
		}
	}

	out := r
	out.Left = left
	out.Right = right
	m.LimitTo(&out)
	return out
}

// PixelRect is a redraw request in surface coordinates.
type PixelRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ToArea converts the rectangle to surface coordinates given cell metrics.
func (r Rect) ToArea(lineHeight, charWidth float64) PixelRect {
	return PixelRect{
		X:      r.Left * int(charWidth),
		Y:      r.Top * int(lineHeight),
		Width:  (r.Right - r.Left + 1) * int(charWidth),
		Height: (r.Bot - r.Top + 1) * int(lineHeight),
	}
}

// ToAreaExtendInk converts to surface coordinates and grows each edge by the
// ink overflow recorded on boundary items, so glyph ink that spills outside
// its logical cell box is never clipped by a partial redraw.
func (r Rect) ToAreaExtendInk(m *Model, lineHeight, charWidth float64) PixelRect {
	area := r.ToArea(lineHeight, charWidth)

	var growLeft, growRight, growTop, growBot float64
	for row := r.Top; row <= r.Bot && row < m.Rows; row++ {
		line := m.Line(row)
		for _, it := range []*Item{line.ItemAt(r.Left), line.ItemAt(r.Right)} {
			if it == nil {
				continue
			}
			o := it.Overflow(lineHeight, charWidth)
			if o == nil {
				continue
			}
			if o.Left > growLeft {
				growLeft = o.Left
			}
			if o.Right > growRight {
				growRight = o.Right
			}
			if o.Top > growTop {
				growTop = o.Top
			}
			if o.Bottom > growBot {
				growBot = o.Bottom
			}
		}
	}

	area.X -= ceil(growLeft)
	area.Y -= ceil(growTop)
	area.Width += ceil(growLeft) + ceil(growRight)
	area.Height += ceil(growTop) + ceil(growBot)
	if area.X < 0 {
		area.Width += area.X
		area.X = 0
	}
	if area.Y < 0 {
		area.Height += area.Y
		area.Y = 0
	}
	return area
}

// FromArea maps a surface-space rectangle back to the grid cells it covers.
func FromArea(lineHeight, charWidth, x1, y1, x2, y2 float64) Rect {
	if x2 > 0 {
		x2--
	}
	if y2 > 0 {
		y2--
	}
	return NewRect(
		int(y1/lineHeight),
		int(y2/lineHeight),
		int(x1/charWidth),
		int(x2/charWidth),
	)
}

func ceil(f float64) int {
	n := int(f)
	if f > float64(n) {
		n++
	}
	return n
}
