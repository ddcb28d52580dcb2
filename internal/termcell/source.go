// Package termcell is the tcell front-end: it reads keys from a
// tcell.Screen and paints session RenderModels onto it.
package termcell

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/modus/session"
)

var (
	// ErrClosed is returned by Source.Next once the screen is finalized.
	ErrClosed = errors.New("termcell: screen closed")
	// ErrInterrupted is returned by Source.Next for Ctrl+C.
	ErrInterrupted = errors.New("termcell: interrupted")
)

// Source adapts tcell events to session.InputSource. A goroutine pumps
// PollEvent into a channel so Next can honor context cancellation.
type Source struct {
	screen   tcell.Screen
	events   chan tcell.Event
	stop     chan struct{}
	onResize func(width, height int)
}

// NewSource starts polling screen. onResize, if set, is called from Next
// with the new screen size.
func NewSource(screen tcell.Screen, onResize func(width, height int)) *Source {
	s := &Source{
		screen:   screen,
		events:   make(chan tcell.Event, 64),
		stop:     make(chan struct{}),
		onResize: onResize,
	}
	go s.pump()
	return s
}

func (s *Source) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
	}
}

// Close stops the pump. The screen itself is left to the caller.
func (s *Source) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

// Next returns the next key. Resize events are reported through onResize
// and surface as a KeyUnknown event so the caller repaints.
func (s *Source) Next(ctx context.Context) (session.InputEvent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return session.InputEvent{}, err
		}
		select {
		case <-ctx.Done():
			return session.InputEvent{}, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return session.InputEvent{}, ErrClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return session.InputEvent{}, ErrInterrupted
				}
				return KeyEvent(ev), nil
			case *tcell.EventResize:
				if s.onResize != nil {
					w, h := ev.Size()
					s.onResize(w, h)
				}
				return session.KeyEvent(session.KeyUnknown), nil
			}
		}
	}
}

// KeyEvent classifies a tcell key event.
func KeyEvent(ev *tcell.EventKey) session.InputEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return session.KeyEvent(session.KeyUnknown)
		}
		return session.RuneEvent(ev.Rune())
	case tcell.KeyTab:
		return session.RuneEvent('\t')
	case tcell.KeyLeft:
		return session.KeyEvent(session.KeyLeft)
	case tcell.KeyRight:
		return session.KeyEvent(session.KeyRight)
	case tcell.KeyUp:
		return session.KeyEvent(session.KeyUp)
	case tcell.KeyDown:
		return session.KeyEvent(session.KeyDown)
	case tcell.KeyHome, tcell.KeyCtrlA:
		return session.KeyEvent(session.KeyHome)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return session.KeyEvent(session.KeyEnd)
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return session.KeyEvent(session.KeyPageUp)
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		return session.KeyEvent(session.KeyPageDown)
	case tcell.KeyEnter:
		return session.KeyEvent(session.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return session.KeyEvent(session.KeyBackspace)
	case tcell.KeyDelete:
		return session.KeyEvent(session.KeyDelete)
	case tcell.KeyEscape:
		return session.KeyEvent(session.KeyEscape)
	default:
		return session.KeyEvent(session.KeyUnknown)
	}
}
