package ui

import (
	"chat-term/domain"
	"chat-term/errors"
	"context"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Editor turns key events into a confirmed line.
// Rejected keys ring the terminal bell and leave the draft unchanged.
type Editor struct {
	screen  tcell.Screen
	input   *InputPane
	maxSize int
	onBell  func(err error)
}

func NewEditor(screen tcell.Screen, input *InputPane, maxSize int, onBell func(err error)) *Editor {
	if onBell == nil {
		onBell = func(error) {}
	}
	return &Editor{screen: screen, input: input, maxSize: maxSize, onBell: onBell}
}

// ReadLine blocks until Enter is pressed and returns the draft, possibly empty.
// It returns errors.ErrInterrupted on Ctrl-C and ctx.Err() once ctx is
// cancelled and an interrupt event wakes it up.
func (e *Editor) ReadLine(ctx context.Context) (string, error) {
	draft := domain.NewDraft(e.maxSize)
	e.input.Begin()
	defer e.input.End()

	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		e.input.Render(draft.Runes(), draft.Cursor())

		switch ev := e.screen.PollEvent().(type) {
		case nil:
			return "", errors.ErrScreenClosed
		case *tcell.EventInterrupt:
			// Only used to re-check ctx
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			confirmed, err := apply(draft, ev)
			switch {
			case confirmed:
				return draft.String(), nil
			case err == errors.ErrInterrupted:
				return "", err
			case err != nil:
				e.bell(err)
			}
		}
	}
}

func (e *Editor) bell(err error) {
	e.onBell(err)
	_ = e.screen.Beep()
}

// apply maps one key to a draft operation.
func apply(draft *domain.Draft, ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyLF:
		return true, nil
	case tcell.KeyCtrlC:
		return false, errors.ErrInterrupted
	case tcell.KeyLeft:
		return false, draft.Left()
	case tcell.KeyRight:
		return false, draft.Right()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return false, draft.Backspace()
	case tcell.KeyDelete:
		return false, draft.Delete()
	case tcell.KeyRune:
		if unicode.IsPrint(ev.Rune()) {
			return false, draft.Insert(ev.Rune())
		}
	}
	return false, errors.ErrUnknownKey
}
