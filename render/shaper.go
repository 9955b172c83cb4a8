// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/shaper.go
// Summary: The shaping capability boundary and the monospace implementation.
// Notes: A shaping failure must leave the run's columns indexable; callers
//        render the run blank instead of skipping cells.

package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"neoview/grid"
)

// ByteRun is a shapeable byte range of a StyledLine's text.
type ByteRun struct {
	Offset int
	Length int
}

// Shaper turns line text into positioned glyph runs and reports their ink
// extents relative to the run's logical cell box.
type Shaper interface {
	// Itemize splits the text into runs the engine can shape as units.
	// Whitespace belongs to no run; those cells stay itemless and blank.
	Itemize(line *StyledLine) []ByteRun

	// Shape produces the glyph payload and ink rectangle for one run. A nil
	// ink rectangle means the ink fits the logical box exactly.
	Shape(line *StyledLine, run ByteRun) (grid.GlyphString, *grid.InkRect, error)
}

// MonoGlyphs is the shaped payload of the monospace shaper: the terminal
// surface draws cell text directly, so the payload only records the run.
type MonoGlyphs struct {
	Text  string
	Cells int
}

// MonoShaper shapes for a character-cell surface. Runs break at whitespace
// and around non-ASCII grapheme clusters, mirroring how a complex-text
// engine would isolate them; ink always fits the cell box.
type MonoShaper struct {
	Metrics CellMetrics
}

// NewMonoShaper returns a shaper for the given metrics.
func NewMonoShaper(metrics CellMetrics) *MonoShaper {
	return &MonoShaper{Metrics: metrics}
}

func isASCIIWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return len(s) > 0
}

// Itemize walks grapheme clusters: consecutive ASCII non-blank clusters
// coalesce into word runs, every non-ASCII cluster becomes its own run, and
// blanks separate runs.
func (m *MonoShaper) Itemize(line *StyledLine) []ByteRun {
	var runs []ByteRun
	wordStart := -1
	offset := 0

	flush := func(end int) {
		if wordStart >= 0 {
			runs = append(runs, ByteRun{Offset: wordStart, Length: end - wordStart})
			wordStart = -1
		}
	}

	g := uniseg.NewGraphemes(line.Text)
	for g.Next() {
		cluster := g.Str()
		size := len(cluster)
		switch {
		case isBlank(cluster):
			flush(offset)
		case isASCIIWord(cluster):
			if wordStart < 0 {
				wordStart = offset
			}
		default:
			flush(offset)
			runs = append(runs, ByteRun{Offset: offset, Length: size})
		}
		offset += size
	}
	flush(offset)
	return runs
}

// Shape measures the run; on a character-cell surface the ink is the logical
// box, so the ink rectangle is nil.
func (m *MonoShaper) Shape(line *StyledLine, run ByteRun) (grid.GlyphString, *grid.InkRect, error) {
	if run.Offset < 0 || run.Offset+run.Length > len(line.Text) {
		return nil, nil, errRunOutOfRange
	}
	text := line.Text[run.Offset : run.Offset+run.Length]
	return MonoGlyphs{
		Text:  text,
		Cells: runewidth.StringWidth(text),
	}, nil, nil
}
