// Package session owns the active board on behalf of a driver: it gates
// stepping on the pause flag, maps pointer positions to cells and replaces the
// board when the configuration changes.
package session

import (
	"github.com/google/uuid"

	"threshold-life/internal/config"
	"threshold-life/internal/logger"
	"threshold-life/internal/sims/life"
)

// Session is single-owner: all calls must come from the driver's loop.
type Session struct {
	cfg      config.Config
	disp     config.Display
	board    *life.Board
	runID    uuid.UUID
	paused   bool
	log      logger.Logger
	baseLog  logger.Logger
	restarts int
}

// New builds a session with a fresh board for cfg.
func New(cfg config.Config, disp config.Display, log logger.Logger) *Session {
	if log == nil {
		log = logger.Default()
	}
	s := &Session{disp: disp, baseLog: log}
	s.replace(cfg)
	return s
}

func (s *Session) replace(cfg config.Config) {
	s.cfg = cfg
	s.board = life.New(cfg)
	s.runID = uuid.New()
	s.paused = false
	s.log = s.baseLog.WithField("run", s.runID.String()[:8])
	s.log.WithFields(map[string]interface{}{
		"threshold": cfg.BirthThreshold(),
		"grid":      cfg.GridSize(),
	}).Info("board created")
}

// Board returns the active board. It is replaced by Restart, so callers must
// not hold on to it across a restart.
func (s *Session) Board() *life.Board { return s.board }

// Config returns the configuration of the active board.
func (s *Session) Config() config.Config { return s.cfg }

// Display returns the driver settings.
func (s *Session) Display() config.Display { return s.disp }

// RunID identifies the active board in logs.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Restarts counts how often the board was replaced.
func (s *Session) Restarts() int { return s.restarts }

// Paused reports whether ticks are currently ignored.
func (s *Session) Paused() bool { return s.paused }

// SetPaused sets the pause flag.
func (s *Session) SetPaused(p bool) {
	if s.paused != p {
		s.log.Debugf("paused=%v", p)
	}
	s.paused = p
}

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.SetPaused(!s.paused)
	return s.paused
}

// Tick advances one generation unless paused and reports whether it did.
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	s.board.Step()
	return true
}

// StepOnce advances one generation regardless of the pause flag.
func (s *Session) StepOnce() {
	s.board.Step()
}

// CellAt maps a pointer position in pixels to a cell using the configured
// cell size. ok is false when the position is off the board.
func (s *Session) CellAt(px, py int) (row, col int, ok bool) {
	return CellAt(px, py, s.disp.CellSize, s.cfg.Rows(), s.cfg.Cols())
}

// CellAt divides a pixel position by the cell size and reports whether the
// result lies on a rows x cols board.
func CellAt(px, py, cellSize, rows, cols int) (row, col int, ok bool) {
	if px < 0 || py < 0 || cellSize <= 0 {
		return 0, 0, false
	}
	row, col = py/cellSize, px/cellSize
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// Click brings the cell under (px, py) to life. Clicks off the board are
// ignored and reported as false.
func (s *Session) Click(px, py int) bool {
	row, col, ok := s.CellAt(px, py)
	if !ok {
		return false
	}
	return s.ClickCell(row, col)
}

// ClickCell brings (row, col) to life if it lies on the board.
func (s *Session) ClickCell(row, col int) bool {
	if row < 0 || col < 0 || row >= s.cfg.Rows() || col >= s.cfg.Cols() {
		return false
	}
	s.board.SetCell(row, col, life.Alive)
	return true
}

// Restart discards the active board and builds an empty one for cfg. The
// board is always replaced, even when cfg equals the current configuration.
func (s *Session) Restart(cfg config.Config) {
	s.restarts++
	s.log.Infof("restarting with %s", cfg)
	s.replace(cfg)
}

// Reseed replaces the board with a random soup of the same configuration.
func (s *Session) Reseed(seed int64, density float64) {
	s.Restart(s.cfg)
	s.board.Randomize(seed, density)
}

// Configurer produces a new configuration, typically by prompting the user.
type Configurer interface {
	Run(current config.Config) (config.Config, error)
}

// Reconfigure pauses the board, asks c for a new configuration and restarts
// with it. On error the active board is kept and the previous pause state is
// restored.
func (s *Session) Reconfigure(c Configurer) error {
	wasPaused := s.paused
	s.SetPaused(true)
	cfg, err := c.Run(s.cfg)
	if err != nil {
		s.log.Warnf("options not applied: %v", err)
		s.SetPaused(wasPaused)
		return err
	}
	s.Restart(cfg)
	return nil
}
