// Package ui draws the chat on a full-screen terminal.
// The upper pane is the transcript, the lower pane the input line.
// Every screen mutation and flush happens under a single display lock,
// so a flush never shows a half-drawn transcript row.
package ui

import (
	"chat-term/errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"
)

const (
	transcriptShare = 0.8
	minInputRows    = 3 // border + one line
	minColumns      = 4
)

// OpenScreen switches the terminal to raw mode without echo.
// The caller owns the screen and must Close the Display built on it.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot create screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

type Display struct {
	screen     tcell.Screen
	mu         *sync.Mutex
	Transcript *Transcript
	Input      *InputPane
	closeOnce  sync.Once
}

// NewDisplay splits the screen 80/20 and draws both borders once.
// The geometry is fixed for the lifetime of the session.
func NewDisplay(screen tcell.Screen, selfLabel string) (*Display, error) {
	width, height := screen.Size()
	top := int(float64(height) * transcriptShare)
	bottom := lo.Max([]int{height - top, minInputRows})
	top = height - bottom
	if top < minInputRows || width < minColumns {
		return nil, fmt.Errorf("%w: %dx%d", errors.ErrTerminalTooSmall, width, height)
	}

	mu := &sync.Mutex{}
	d := &Display{
		screen:     screen,
		mu:         mu,
		Transcript: newTranscript(newPane(screen, mu, 0, 0, width, top), selfLabel),
		Input:      newInputPane(newPane(screen, mu, 0, top, width, bottom), selfLabel),
	}

	mu.Lock()
	d.Transcript.drawBorder()
	d.Input.drawBorder()
	d.Input.drawPrompt()
	screen.Show()
	mu.Unlock()
	return d, nil
}

// Interrupt wakes up a goroutine blocked on PollEvent.
func (d *Display) Interrupt() {
	_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close restores the terminal. Safe to call more than once.
func (d *Display) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.screen.Fini()
	})
}
