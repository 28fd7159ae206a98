// Package options runs the interactive flow that turns raw user input into a
// new engine configuration. Retries happen here; the validators in package
// config are pure.
package options

import (
	"errors"
	"strconv"

	"threshold-life/internal/config"
)

var (
	// ErrCanceled is returned when the user backs out of a prompt.
	ErrCanceled = errors.New("options canceled")
	// ErrTooManyAttempts is returned once a field was rejected MaxAttempts times.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// DefaultMaxAttempts bounds how often a single field is asked again.
const DefaultMaxAttempts = 5

const (
	promptThreshold = "Enter the number of neighbors for multiplication"
	promptGrid      = "Enter the size of the board (format 'axb')"
)

// Prompter asks the user for one raw value and reports rejected input.
// Ask returns ErrCanceled when the user aborts.
type Prompter interface {
	Ask(message, def string) (string, error)
	Reject(err error)
}

// Flow collects a birth threshold and a grid size, asking again on invalid
// input until MaxAttempts is reached.
type Flow struct {
	Prompter    Prompter
	MaxAttempts int
}

// NewFlow returns a Flow using p and the default attempt bound.
func NewFlow(p Prompter) *Flow {
	return &Flow{Prompter: p, MaxAttempts: DefaultMaxAttempts}
}

type gridSize struct{ rows, cols int }

// Run asks for every option, offering the values of current as defaults, and
// returns the resulting configuration. current is never modified.
func (f *Flow) Run(current config.Config) (config.Config, error) {
	threshold, err := ask(f, promptThreshold, strconv.Itoa(current.BirthThreshold()), config.ValidateBirthThreshold)
	if err != nil {
		return config.Config{}, err
	}
	size, err := ask(f, promptGrid, current.GridSize(), func(raw string) (gridSize, error) {
		rows, cols, err := config.ValidateGridSize(raw)
		return gridSize{rows, cols}, err
	})
	if err != nil {
		return config.Config{}, err
	}
	return config.New(threshold, size.rows, size.cols)
}

func ask[T any](f *Flow, message, def string, parse func(string) (T, error)) (T, error) {
	var zero T
	attempts := f.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	for i := 0; i < attempts; i++ {
		raw, err := f.Prompter.Ask(message, def)
		if err != nil {
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		f.Prompter.Reject(err)
	}
	return zero, ErrTooManyAttempts
}
