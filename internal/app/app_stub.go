//go:build !ebiten

package app

import (
	"errors"

	"threshold-life/internal/session"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag: go run -tags ebiten ./cmd/life gui")

// Run reports that the GUI is not compiled in.
func Run(*session.Session, session.Configurer) error {
	return ErrNoGUI
}
