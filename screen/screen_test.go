// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen_test.go
// Summary: UI loop behavior against a simulation surface.

package screen

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"neoview/grid"
	"neoview/redraw"
)

type recordingSink struct {
	inputs  chan string
	resizes chan [2]int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		inputs:  make(chan string, 8),
		resizes: make(chan [2]int, 8),
	}
}

func (s *recordingSink) SendInput(keys string) error {
	s.inputs <- keys
	return nil
}

func (s *recordingSink) ResizeUI(columns, rows int) error {
	s.resizes <- [2]int{columns, rows}
	return nil
}

func startTestScreen(t *testing.T, sink InputSink) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(20, 5)

	scr := NewWith(sim, sink)
	go func() {
		if err := scr.Run(); err != nil {
			t.Errorf("ui loop: %v", err)
		}
	}()
	t.Cleanup(scr.Close)
	return scr, sim
}

func waitForCell(t *testing.T, sim tcell.SimulationScreen, col, row int, want rune) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		cells, width, _ := sim.GetContents()
		if len(cells) > row*width+col {
			runes := cells[row*width+col].Runes
			if len(runes) > 0 && runes[0] == want {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("cell (%d,%d) never became %q", col, row, want)
}

func TestBatchReachesSurface(t *testing.T) {
	scr, sim := startTestScreen(t, nil)

	scr.Batches() <- []redraw.Command{
		redraw.GridResize{Grid: grid.DefaultGridID, Columns: 20, Rows: 5},
		redraw.GridLine{
			Grid: grid.DefaultGridID, Row: 1, ColStart: 2,
			Cells: []redraw.CellRun{
				{Text: "h", HlID: 0},
				{Text: "i", HlID: -1},
			},
		},
		redraw.Flush{},
	}

	waitForCell(t, sim, 2, 1, 'h')
	waitForCell(t, sim, 3, 1, 'i')
}

func TestScrollRepaintsRegion(t *testing.T) {
	scr, sim := startTestScreen(t, nil)

	scr.Batches() <- []redraw.Command{
		redraw.GridResize{Grid: grid.DefaultGridID, Columns: 20, Rows: 5},
		redraw.GridLine{
			Grid: grid.DefaultGridID, Row: 3, ColStart: 0,
			Cells: []redraw.CellRun{{Text: "m", HlID: 0, Repeat: 5}},
		},
		redraw.Flush{},
	}
	waitForCell(t, sim, 0, 3, 'm')

	scr.Batches() <- []redraw.Command{
		redraw.GridScroll{Grid: grid.DefaultGridID, Top: 0, Bot: 4, Left: 0, Right: 19, Rows: 2},
		redraw.Flush{},
	}
	waitForCell(t, sim, 0, 1, 'm')
	waitForCell(t, sim, 0, 3, ' ')
}

func TestKeyEventsReachSink(t *testing.T) {
	sink := newRecordingSink()
	_, sim := startTestScreen(t, sink)

	sim.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	select {
	case got := <-sink.inputs:
		if got != "g" {
			t.Fatalf("forwarded input = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("input never reached the sink")
	}

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	select {
	case got := <-sink.inputs:
		if got != "<CR>" {
			t.Fatalf("forwarded key = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("special key never reached the sink")
	}
}
