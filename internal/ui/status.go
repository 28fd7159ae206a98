package ui

import (
	"fmt"
	"strings"

	"threshold-life/internal/session"
)

// Hint lines shown under the board.
const (
	KeyHints    = "space pause  n step  o options  r restart  q quit"
	GUIKeyHints = "click cell  space pause  n step  o options  r restart  s soup  q quit"
)

// Panel text metrics for basicfont.Face7x13.
const (
	glyphWidth   = 7
	panelPadding = 6
)

// PanelWidth returns the pixel width of a status panel under a board that is
// boardWidth pixels wide. The panel never gets narrower than the key hints.
func PanelWidth(boardWidth int) int {
	return max(boardWidth, len(GUIKeyHints)*glyphWidth+2*panelPadding)
}

// StatusLine summarises the session in a single line.
func StatusLine(s *session.Session) string {
	b := s.Board()
	parts := []string{
		fmt.Sprintf("gen %d", b.Generation()),
		fmt.Sprintf("pop %d", b.Population()),
		fmt.Sprintf("birth %d", s.Config().BirthThreshold()),
		s.Config().GridSize(),
	}
	if s.Paused() {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}
