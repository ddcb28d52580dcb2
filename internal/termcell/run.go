package termcell

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/modus/session"
)

// Run drives sess on an initialized screen until the session quits, the
// context ends or the user presses Ctrl+C. The bottom screen row is the
// status line; the session gets the rest and is resized with the screen.
func Run(ctx context.Context, screen tcell.Screen, sess *session.Session, theme Theme) error {
	w, h := screen.Size()
	sess.Resize(w, h-1)

	src := NewSource(screen, func(w, h int) {
		sess.Resize(w, h-1)
		screen.Sync()
	})
	defer src.Close()

	err := sess.Run(ctx, src, NewRenderer(screen, theme))
	if errors.Is(err, ErrInterrupted) {
		return nil
	}
	return err
}
