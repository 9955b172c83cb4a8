// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/paint.go
// Summary: Cell painting with a style cache keyed by resolved attributes.

package screen

import (
	"github.com/gdamore/tcell/v2"

	"neoview/grid"
	"neoview/highlight"
)

type styleKey struct {
	fg, bg    tcell.Color
	bold      bool
	italic    bool
	underline bool
	reverse   bool
}

func (s *Screen) style(hl *highlight.Highlight) tcell.Style {
	fg, bg := s.interp.Highlights.CellColors(hl)
	key := styleKey{fg: fg.Tcell(), bg: bg.Tcell()}
	if hl != nil {
		key.bold = hl.Bold
		key.italic = hl.Italic
		key.underline = hl.Underline || hl.Undercurl
	}

	if st, ok := s.styleCache[key]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(key.fg).
		Background(key.bg).
		Bold(key.bold).
		Italic(key.italic).
		Underline(key.underline)
	s.styleCache[key] = st
	return st
}

// paintRect redraws the inclusive cell rectangle from the model. Wide
// characters paint once at their left cell; tcell owns the continuation
// column.
func (s *Screen) paintRect(m *grid.Model, r grid.Rect) {
	for row := r.Top; row <= r.Bot && row < m.Rows; row++ {
		line := m.Line(row)
		for col := r.Left; col <= r.Right && col < m.Columns; col++ {
			cell := &line.Cells[col]
			if cell.DoubleWidth {
				continue
			}
			mainc, combc := splitCell(cell.Ch)
			s.tc.SetContent(col, row, mainc, combc, s.style(cell.Hl))
		}
	}
}

// splitCell separates a cell's content into the base rune and its combining
// runes for SetContent.
func splitCell(ch string) (rune, []rune) {
	if ch == "" {
		return ' ', nil
	}
	runes := []rune(ch)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}
