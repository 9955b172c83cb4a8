// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/styled.go
// Summary: Flattens a line of cells into shapeable text plus style spans.

package render

import (
	"neoview/grid"
	"neoview/highlight"
)

// AttrSpan styles a byte range [Start, End) of a StyledLine's text.
type AttrSpan struct {
	Start int
	End   int

	Bold       bool
	Italic     bool
	Foreground *highlight.Color
}

func (a AttrSpan) sameStyle(b AttrSpan) bool {
	if a.Bold != b.Bold || a.Italic != b.Italic {
		return false
	}
	if (a.Foreground == nil) != (b.Foreground == nil) {
		return false
	}
	return a.Foreground == nil || *a.Foreground == *b.Foreground
}

// StyledLine is one grid line flattened for the shaping engine: the
// concatenated cell text, byte-to-cell mapping in both directions, and the
// style spans the shaper may break runs on.
type StyledLine struct {
	Text string

	// CellToByte maps each byte of Text to the cell it came from.
	CellToByte []int

	// FirstByte maps each cell to the first byte of its text, -1 for
	// continuation cells.
	FirstByte []int

	Attrs []AttrSpan
}

// NewStyledLine flattens line, skipping double-width continuation cells so
// the text holds each character exactly once.
func NewStyledLine(line *grid.Line, hl *highlight.Map) *StyledLine {
	s := &StyledLine{
		FirstByte: make([]int, line.Width()),
	}

	var text []byte
	var cur AttrSpan
	haveSpan := false

	for col := range line.Cells {
		cell := &line.Cells[col]
		s.FirstByte[col] = -1
		if cell.DoubleWidth {
			continue
		}

		start := len(text)
		text = append(text, cell.Ch...)
		s.FirstByte[col] = start
		for i := start; i < len(text); i++ {
			s.CellToByte = append(s.CellToByte, col)
		}

		next := AttrSpan{Start: start, End: len(text)}
		if cell.Hl != nil {
			next.Bold = cell.Hl.Bold
			next.Italic = cell.Hl.Italic
			next.Foreground = cell.Hl.Foreground
		}
		switch {
		case !haveSpan:
			cur = next
			haveSpan = true
		case cur.sameStyle(next):
			cur.End = next.End
		default:
			s.Attrs = append(s.Attrs, cur)
			cur = next
		}
	}
	if haveSpan {
		s.Attrs = append(s.Attrs, cur)
	}

	s.Text = string(text)
	return s
}

// CellRange returns the inclusive cell span covered by the byte range
// [offset, offset+length).
func (s *StyledLine) CellRange(offset, length int) (grid.Span, bool) {
	if length <= 0 || offset < 0 || offset+length > len(s.CellToByte) {
		return grid.Span{}, false
	}
	return grid.Span{
		Start: s.CellToByte[offset],
		End:   s.CellToByte[offset+length-1],
	}, true
}

// ByteRange returns the byte range of the inclusive cell span, skipping
// continuation cells at the edges.
func (s *StyledLine) ByteRange(span grid.Span) (offset, length int, ok bool) {
	start := -1
	for col := span.Start; col <= span.End && col < len(s.FirstByte); col++ {
		if s.FirstByte[col] >= 0 {
			start = s.FirstByte[col]
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	end := len(s.Text)
	for col := span.End + 1; col < len(s.FirstByte); col++ {
		if s.FirstByte[col] >= 0 {
			end = s.FirstByte[col]
			break
		}
	}
	return start, end - start, true
}
