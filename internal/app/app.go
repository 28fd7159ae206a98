//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"threshold-life/internal/core"
	"threshold-life/internal/options"
	"threshold-life/internal/render"
	"threshold-life/internal/session"
	"threshold-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	flow    session.Configurer
	painter *render.GridPainter
	hud     *ui.HUD
	cadence *core.FixedStep
	cells   []uint8

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game driving sess. flow runs when the options key is
// pressed; a nil flow disables the key.
func New(sess *session.Session, flow session.Configurer) *Game {
	g := &Game{
		sess:     sess,
		flow:     flow,
		cadence:  core.NewFixedStep(sess.Display().Interval),
		onColor:  color.Black,
		offColor: color.White,
	}
	g.rebuild()
	return g
}

func (g *Game) rebuild() {
	cfg := g.sess.Config()
	scale := g.sess.Display().CellSize
	g.painter = render.NewGridPainter(cfg.Rows(), cfg.Cols(), scale)
	w, _ := g.painter.Size()
	g.hud = ui.NewHUD(ui.PanelWidth(w))
	g.cadence.Reset()
}

// WindowSize returns the window size needed for the current board and its
// status panel.
func (g *Game) WindowSize() (int, int) {
	w, h := g.painter.Size()
	return ui.PanelWidth(w), h + ui.HUDHeight
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Restart(g.sess.Config())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sess.Reseed(time.Now().UnixNano(), 0.3)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sess.Click(ebiten.CursorPosition())
	}
	if g.flow != nil && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		// Blocks the frame loop like a modal dialog while the terminal prompts.
		err := g.sess.Reconfigure(g.flow)
		if err != nil && !errors.Is(err, options.ErrCanceled) && !errors.Is(err, options.ErrTooManyAttempts) {
			return err
		}
		if err == nil {
			g.rebuild()
			ebiten.SetWindowSize(g.WindowSize())
		}
	}

	if g.cadence.ShouldStep() {
		g.sess.Tick()
	}
	return nil
}

// Draw renders the board and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.cells = g.sess.Board().CopyCells(g.cells)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor)
	_, h := g.painter.Size()
	g.hud.Draw(screen, g.sess, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// Run opens the window and blocks until it is closed.
func Run(sess *session.Session, flow session.Configurer) error {
	game := New(sess, flow)
	ebiten.SetWindowTitle("threshold-life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
