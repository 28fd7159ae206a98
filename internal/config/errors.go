package config

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Match them with errors.Is.
var (
	ErrNotAnInteger = errors.New("not an integer")
	ErrOutOfRange   = errors.New("out of range")
	ErrBadFormat    = errors.New("bad format")
	ErrTooSmall     = errors.New("too small")
)

// ValidationError reports why a raw option value was rejected.
type ValidationError struct {
	Field string
	Input string
	Kind  error
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// Message returns the text meant for the person who typed the value.
func (e *ValidationError) Message() string { return e.Msg }

// UserMessage extracts a presentable message from err.
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message()
	}
	return err.Error()
}
