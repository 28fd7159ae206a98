package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"threshold-life/internal/config"
	"threshold-life/internal/logger"
	"threshold-life/internal/sims/life"
)

func newTestSession(t *testing.T, threshold, rows, cols int) (*Session, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.New(threshold, rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{Level: logger.DebugLevel, Writer: &buf, NoColor: true})
	return New(cfg, config.Display{CellSize: 10, Interval: time.Second}, log), &buf
}

func TestTickRespectsPause(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 5)
	if !s.Tick() || s.Board().Generation() != 1 {
		t.Fatal("unpaused tick should step")
	}
	if !s.TogglePause() {
		t.Fatal("toggle should pause")
	}
	if s.Tick() || s.Board().Generation() != 1 {
		t.Fatal("paused tick must not step")
	}
	s.StepOnce()
	if s.Board().Generation() != 2 {
		t.Fatal("StepOnce should step while paused")
	}
	if s.TogglePause() {
		t.Fatal("second toggle should resume")
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py   int
		row, col int
		ok       bool
	}{
		{px: 0, py: 0, row: 0, col: 0, ok: true},
		{px: 19, py: 9, row: 0, col: 1, ok: true},
		{px: 49, py: 69, row: 6, col: 4, ok: true},
		{px: 50, py: 0, ok: false},
		{px: 0, py: 70, ok: false},
		{px: -1, py: 0, ok: false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(tc.px, tc.py, 10, 7, 5)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Errorf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)",
				tc.px, tc.py, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestClickSetsCellAlive(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 6)
	if !s.Click(25, 41) {
		t.Fatal("click on the board should be accepted")
	}
	if s.Board().Cell(4, 2) != life.Alive {
		t.Fatal("clicked cell should be alive")
	}
	if s.Click(60, 0) || s.Click(0, 50) {
		t.Fatal("clicks off the board must be ignored")
	}
	if s.Board().Population() != 1 {
		t.Fatalf("expected one live cell, got %d", s.Board().Population())
	}
}

func TestRestartReplacesBoard(t *testing.T) {
	s, buf := newTestSession(t, 3, 5, 5)
	s.Board().SetCell(2, 2, life.Alive)
	s.SetPaused(true)
	oldBoard, oldRun := s.Board(), s.RunID()

	next, _ := config.New(5, 8, 7)
	s.Restart(next)

	if s.Board() == oldBoard || s.RunID() == oldRun {
		t.Fatal("restart must build a new board with a new run id")
	}
	if s.Board().Size().Rows != 8 || s.Board().Size().Cols != 7 || s.Board().Population() != 0 {
		t.Fatal("new board must be empty with the new dimensions")
	}
	if s.Paused() {
		t.Fatal("a restarted board starts running")
	}
	if s.Restarts() != 1 {
		t.Fatalf("expected 1 restart, got %d", s.Restarts())
	}
	if !strings.Contains(buf.String(), "restarting with 5 @ 8x7") {
		t.Fatalf("restart not logged: %q", buf.String())
	}
}

func TestRestartWithSameConfigWipes(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 5)
	s.Board().SetCell(1, 1, life.Alive)
	s.Restart(s.Config())
	if s.Board().Population() != 0 {
		t.Fatal("restart always wipes the board")
	}
}

type stubConfigurer struct {
	cfg     config.Config
	err     error
	sawStop bool
	s       *Session
}

func (c *stubConfigurer) Run(current config.Config) (config.Config, error) {
	c.sawStop = c.s.Paused()
	return c.cfg, c.err
}

func TestReconfigureAppliesNewConfig(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 5)
	next, _ := config.New(2, 6, 6)
	c := &stubConfigurer{cfg: next, s: s}

	if err := s.Reconfigure(c); err != nil {
		t.Fatalf("Reconfigure failed: %v", err)
	}
	if !c.sawStop {
		t.Fatal("board must be paused while options are open")
	}
	if s.Config() != next || s.Paused() {
		t.Fatalf("expected running board with %v, got %v paused=%v", next, s.Config(), s.Paused())
	}
}

func TestReconfigureKeepsBoardOnError(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 5)
	s.Board().SetCell(0, 0, life.Alive)
	board := s.Board()

	err := s.Reconfigure(&stubConfigurer{err: errors.New("canceled"), s: s})
	if err == nil {
		t.Fatal("expected error")
	}
	if s.Board() != board || board.Cell(0, 0) != life.Alive {
		t.Fatal("failed options must keep the active board")
	}
	if s.Paused() {
		t.Fatal("pause state should be restored")
	}
}

func TestReseed(t *testing.T) {
	s, _ := newTestSession(t, 3, 10, 10)
	s.Reseed(9, 0.5)
	a := s.Board().CopyCells(nil)
	s.Reseed(9, 0.5)
	b := s.Board().CopyCells(nil)
	if s.Board().Population() == 0 {
		t.Fatal("reseed should populate the board")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("reseed with the same seed should be deterministic")
		}
	}
}

func TestClickCellBounds(t *testing.T) {
	s, _ := newTestSession(t, 3, 5, 5)
	if !s.ClickCell(4, 4) {
		t.Fatal("corner cell should be accepted")
	}
	if s.ClickCell(5, 0) || s.ClickCell(0, -1) {
		t.Fatal("off-board cells must be ignored")
	}
	if s.Board().Population() != 1 {
		t.Fatalf("expected one live cell, got %d", s.Board().Population())
	}
}
