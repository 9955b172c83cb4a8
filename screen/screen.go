// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: Owns the tcell surface and the single UI goroutine event loop.
// Usage: The transport pushes decoded batches into Batches(); everything
//        that touches grids, highlights, or the surface happens in Run.
// Notes: Grids need no locking because only this loop ever touches them.

package screen

import (
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"neoview/grid"
	"neoview/redraw"
	"neoview/render"
)

// InputSink receives user input and size changes for forwarding to the
// backend editor.
type InputSink interface {
	SendInput(keys string) error
	ResizeUI(columns, rows int) error
}

// Screen drives the terminal surface from decoded command batches.
type Screen struct {
	tc      tcell.Screen
	interp  *redraw.Interpreter
	shaper  render.Shaper
	metrics render.CellMetrics
	sink    InputSink

	batches chan []redraw.Command
	quit    chan struct{}

	closeOnce sync.Once

	styleCache map[styleKey]tcell.Style
}

// New initializes the terminal and returns a ready screen.
func New(sink InputSink) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(tcell.StyleDefault)
	return NewWith(tc, sink), nil
}

// NewWith wraps an already initialized tcell screen; tests hand in a
// simulation screen.
func NewWith(tc tcell.Screen, sink InputSink) *Screen {
	metrics := render.TerminalMetrics()
	return &Screen{
		tc:         tc,
		interp:     redraw.NewInterpreter(),
		shaper:     render.NewMonoShaper(metrics),
		metrics:    metrics,
		sink:       sink,
		batches:    make(chan []redraw.Command, 8),
		quit:       make(chan struct{}),
		styleCache: make(map[styleKey]tcell.Style),
	}
}

// Batches is the handoff from the transport goroutine. Batches apply in the
// order they are sent.
func (s *Screen) Batches() chan<- []redraw.Command {
	return s.batches
}

// Interpreter exposes the mirror state for tests and the initial attach.
func (s *Screen) Interpreter() *redraw.Interpreter {
	return s.interp
}

// Size returns the surface size in cells.
func (s *Screen) Size() (columns, rows int) {
	w, h := s.tc.Size()
	return w, h
}

// Close tears the terminal down once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.tc.Fini()
	})
}

// Run is the UI loop. It returns when Close is called or the surface dies.
func (s *Screen) Run() error {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := s.tc.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-s.quit:
				return
			}
		}
	}()

	for {
		select {
		case <-s.quit:
			return nil

		case batch := <-s.batches:
			// Drain whatever queued up and fold the events, so a single
			// paint covers everything that arrived.
			ev := s.interp.ApplyBatch(batch)
			for {
				select {
				case batch = <-s.batches:
					ev.Merge(s.interp.ApplyBatch(batch))
					continue
				default:
				}
				break
			}
			s.present(ev)

		case ev := <-events:
			s.handleEvent(ev)
		}
	}
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		s.tc.Sync()
		if s.sink != nil {
			if err := s.sink.ResizeUI(w, h); err != nil {
				log.Printf("Screen: resize forward failed: %v", err)
			}
		}
	case *tcell.EventKey:
		if s.sink == nil {
			return
		}
		keys := translateKey(tev)
		if keys == "" {
			return
		}
		if err := s.sink.SendInput(keys); err != nil {
			log.Printf("Screen: input forward failed: %v", err)
		}
	}
}

// present shapes what the batch dirtied and repaints exactly the folded
// regions. Nothing paints before this point, so mid-batch states never
// reach the surface.
func (s *Screen) present(ev *redraw.Event) {
	if ev.Empty() {
		return
	}

	g := s.interp.Grids.Current()
	m := g.Model()
	render.ShapeDirty(m, s.interp.Highlights, s.shaper)

	if ev.RepaintAll {
		s.paintRect(m, m.FullRect())
	} else {
		for id, mode := range ev.Grids {
			if id != grid.DefaultGridID {
				// Only the primary grid is composited onto the surface;
				// other grids stay mirrored for when the backend focuses
				// them.
				continue
			}
			switch mode.Kind() {
			case redraw.KindAll:
				s.paintRect(m, m.FullRect())
			case redraw.KindArea, redraw.KindAreaList:
				for _, r := range mode.Rects().List {
					m.LimitTo(&r)
					s.paintRect(m, r.ExtendByItems(m))
				}
			}
		}
	}

	row, col := m.GetCursor()
	s.tc.ShowCursor(col, row)
	s.tc.Show()
}
