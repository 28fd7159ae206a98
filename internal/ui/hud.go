//go:build ebiten

package ui

import (
	"image/color"

	"threshold-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the pixel height of the status panel below the board.
const HUDHeight = 36

// HUD renders the status panel under the simulation view.
type HUD struct {
	panel *ebiten.Image
	width int
}

// NewHUD returns a HUD panel that is width pixels wide.
func NewHUD(width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, HUDHeight)}
}

// Draw paints the panel at vertical offset y.
func (h *HUD) Draw(screen *ebiten.Image, s *session.Session, y int) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, StatusLine(s), face, panelPadding, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(h.panel, GUIKeyHints, face, panelPadding, 30, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
