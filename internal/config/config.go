package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bounds for the engine configuration.
const (
	MinBirthThreshold = 1
	MaxBirthThreshold = 8
	MinGridDimension  = 5

	DefaultBirthThreshold = 3
	DefaultRows           = 20
	DefaultCols           = 20
)

const (
	fieldThreshold = "birth threshold"
	fieldGrid      = "grid size"

	msgThresholdNotInt = "neighbors for multiplication should be an integer"
	msgThresholdRange  = "neighbors for multiplication should be between 1 and 8"
	msgGridFormat      = "size should be in the format 'axb' where a and b are integers"
	msgGridTooSmall    = "both rows and columns should be at least 5"
	msgGridTooLarge    = "the grid has too many cells"
)

// Config holds the rule and grid parameters an engine is built from. The zero
// value is invalid; obtain one from Default or New.
type Config struct {
	birthThreshold int
	rows           int
	cols           int
}

// Default returns the standard 20x20 board with the classic birth threshold.
func Default() Config {
	return Config{birthThreshold: DefaultBirthThreshold, rows: DefaultRows, cols: DefaultCols}
}

// New validates the values and returns a Config holding them.
func New(birthThreshold, rows, cols int) (Config, error) {
	if err := CheckBirthThreshold(birthThreshold); err != nil {
		return Config{}, err
	}
	if err := checkGrid(rows, cols, ""); err != nil {
		return Config{}, err
	}
	return Config{birthThreshold: birthThreshold, rows: rows, cols: cols}, nil
}

// BirthThreshold is the live-neighbor count that turns a dead cell alive.
func (c Config) BirthThreshold() int { return c.birthThreshold }

// Rows returns the grid height in cells.
func (c Config) Rows() int { return c.rows }

// Cols returns the grid width in cells.
func (c Config) Cols() int { return c.cols }

// GridSize renders the dimensions in the "<rows>x<cols>" input format.
func (c Config) GridSize() string { return fmt.Sprintf("%dx%d", c.rows, c.cols) }

func (c Config) String() string {
	return fmt.Sprintf("%d @ %s", c.birthThreshold, c.GridSize())
}

// Validate reports whether every field is within range.
func (c Config) Validate() error {
	if err := CheckBirthThreshold(c.birthThreshold); err != nil {
		return err
	}
	return checkGrid(c.rows, c.cols, "")
}

// ValidateBirthThreshold parses raw and checks it lies in [1, 8].
func ValidateBirthThreshold(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: fieldThreshold, Input: raw, Kind: ErrNotAnInteger, Msg: msgThresholdNotInt}
	}
	if err := checkThreshold(n, raw); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckBirthThreshold is the numeric counterpart of ValidateBirthThreshold.
func CheckBirthThreshold(n int) error {
	return checkThreshold(n, strconv.Itoa(n))
}

func checkThreshold(n int, raw string) error {
	if n < MinBirthThreshold || n > MaxBirthThreshold {
		return &ValidationError{Field: fieldThreshold, Input: raw, Kind: ErrOutOfRange, Msg: msgThresholdRange}
	}
	return nil
}

// ValidateGridSize parses raw in the form "<rows>x<cols>" and checks both
// dimensions are at least 5.
func ValidateGridSize(raw string) (rows, cols int, err error) {
	parts := strings.Split(raw, "x")
	if len(parts) != 2 {
		return 0, 0, &ValidationError{Field: fieldGrid, Input: raw, Kind: ErrBadFormat, Msg: msgGridFormat}
	}
	rows, errRows := strconv.Atoi(strings.TrimSpace(parts[0]))
	cols, errCols := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errRows != nil || errCols != nil {
		return 0, 0, &ValidationError{Field: fieldGrid, Input: raw, Kind: ErrBadFormat, Msg: msgGridFormat}
	}
	if err := checkGrid(rows, cols, raw); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

func checkGrid(rows, cols int, raw string) error {
	if rows < MinGridDimension || cols < MinGridDimension {
		if raw == "" {
			raw = fmt.Sprintf("%dx%d", rows, cols)
		}
		return &ValidationError{Field: fieldGrid, Input: raw, Kind: ErrTooSmall, Msg: msgGridTooSmall}
	}
	if cols > math.MaxInt/rows {
		if raw == "" {
			raw = fmt.Sprintf("%dx%d", rows, cols)
		}
		return &ValidationError{Field: fieldGrid, Input: raw, Kind: ErrOutOfRange, Msg: msgGridTooLarge}
	}
	return nil
}
