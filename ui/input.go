package ui

import (
	"chat-term/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// InputPane shows the draft on a single line after a "[label] " prompt.
// When the draft is wider than the line, the visible window follows the cursor.
type InputPane struct {
	pane
	prompt        []rune
	offset        int // first visible rune of the draft
	cursorVisible bool
	savedCursor   bool
}

func newInputPane(p pane, selfLabel string) *InputPane {
	return &InputPane{pane: p, prompt: []rune(domain.FormatLine(selfLabel, ""))}
}

// Begin shows the cursor and remembers whether it was visible before.
func (in *InputPane) Begin() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.savedCursor = in.cursorVisible
	in.cursorVisible = true
}

// End restores the cursor visibility saved by Begin.
func (in *InputPane) End() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.cursorVisible = in.savedCursor
	if !in.cursorVisible {
		in.screen.HideCursor()
		in.screen.Show()
	}
}

// Render draws the draft followed by a placeholder cell and places the
// terminal cursor at the logical cursor position.
func (in *InputPane) Render(draft []rune, cursor int) {
	in.mu.Lock()
	defer in.mu.Unlock()

	line := append(draft[:len(draft):len(draft)], ' ')
	start := in.drawPrompt()
	available := in.width - start
	in.scrollTo(line, cursor, available)

	col := start
	for i := in.offset; i < len(line); i++ {
		w := runewidth.RuneWidth(line[i])
		if col+w > in.width {
			break
		}
		if i == cursor && in.cursorVisible {
			in.screen.ShowCursor(in.x+col, in.y)
		}
		col = in.put(col, 0, line[i:i+1], tcell.StyleDefault)
	}
	in.screen.Show()
}

// scrollTo moves the visible window so that the cursor cell fits.
func (in *InputPane) scrollTo(line []rune, cursor, available int) {
	if cursor < in.offset {
		in.offset = cursor
	}
	for in.offset < cursor && runewidth.StringWidth(string(line[in.offset:cursor+1])) > available {
		in.offset++
	}
}

// Clear empties the line and leaves only the prompt.
func (in *InputPane) Clear() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.offset = 0
	in.drawPrompt()
	in.screen.Show()
}

// drawPrompt blanks the line, writes the prompt and returns the next column.
func (in *InputPane) drawPrompt() int {
	in.clearRow(0)
	return in.put(0, 0, in.prompt, tcell.StyleDefault.Bold(true))
}
