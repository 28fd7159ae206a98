package config

import (
	"fmt"
	"time"
)

// Driver defaults: 20px cells, one generation per second.
const (
	DefaultCellSize = 20
	DefaultInterval = time.Second
)

// Display holds the settings a driver needs on top of the engine Config.
type Display struct {
	CellSize int
	Interval time.Duration
}

// DefaultDisplay returns the standard driver settings.
func DefaultDisplay() Display {
	return Display{CellSize: DefaultCellSize, Interval: DefaultInterval}
}

// Validate checks both settings are positive.
func (d Display) Validate() error {
	if d.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", d.CellSize)
	}
	if d.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", d.Interval)
	}
	return nil
}
