// Package tui drives a session in the terminal with tcell. Each cell is two
// columns wide so the board keeps a roughly square aspect.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"threshold-life/internal/core"
	"threshold-life/internal/options"
	"threshold-life/internal/session"
	"threshold-life/internal/ui"
)

const (
	cellWidth = 2
	frameRate = 30 * time.Millisecond
)

var (
	styleAlive  = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleDead   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNotice = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Run opens the terminal screen and drives sess until the user quits or ctx
// is done.
func Run(ctx context.Context, sess *session.Session, flow session.Configurer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	d := newDriver(screen, sess, flow)
	return d.loop(ctx)
}

type driver struct {
	screen  tcell.Screen
	sess    *session.Session
	flow    session.Configurer
	cadence *core.FixedStep
	cells   []uint8
	notice  string
}

func newDriver(screen tcell.Screen, sess *session.Session, flow session.Configurer) *driver {
	return &driver{
		screen:  screen,
		sess:    sess,
		flow:    flow,
		cadence: core.NewFixedStep(sess.Display().Interval),
	}
}

func (d *driver) loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			done, err := d.handle(ev)
			if err != nil || done {
				return err
			}
			d.draw()
		case <-ticker.C:
			if d.cadence.ShouldStep() && d.sess.Tick() {
				d.draw()
			}
		}
	}
}

// handle applies one terminal event and reports whether the driver should stop.
func (d *driver) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			d.sess.TogglePause()
		case 'n':
			d.sess.StepOnce()
		case 'r':
			d.sess.Restart(d.sess.Config())
			d.notice = ""
		case 'o':
			return false, d.reconfigure()
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			d.sess.ClickCell(y, x/cellWidth)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false, nil
}

func (d *driver) reconfigure() error {
	if d.flow == nil {
		return nil
	}
	if err := d.screen.Suspend(); err != nil {
		return fmt.Errorf("suspending screen: %w", err)
	}
	err := d.sess.Reconfigure(d.flow)
	if rerr := d.screen.Resume(); rerr != nil {
		return fmt.Errorf("resuming screen: %w", rerr)
	}
	switch {
	case err == nil:
		d.notice = ""
		d.cadence.Reset()
		d.screen.Clear()
		return nil
	case errors.Is(err, options.ErrCanceled), errors.Is(err, options.ErrTooManyAttempts):
		d.notice = "options not applied: " + err.Error()
		return nil
	default:
		return err
	}
}

func (d *driver) draw() {
	d.screen.Clear()
	size := d.sess.Board().Size()
	d.cells = d.sess.Board().CopyCells(d.cells)
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			style := styleDead
			if d.cells[row*size.Cols+col] != 0 {
				style = styleAlive
			}
			for i := 0; i < cellWidth; i++ {
				d.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}
	putString(d.screen, 0, size.Rows, ui.StatusLine(d.sess), styleStatus)
	putString(d.screen, 0, size.Rows+1, ui.KeyHints+"  click cell", styleHint)
	if d.notice != "" {
		putString(d.screen, 0, size.Rows+2, d.notice, styleNotice)
	}
	d.screen.Show()
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
