package ui

import (
	"chat-term/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"
)

type transcriptRow struct {
	text  []rune
	style tcell.Style
}

// Transcript is the append-only history pane.
// It keeps only the rows currently visible: older rows scroll off the top.
type Transcript struct {
	pane
	selfLabel string
	rows      []transcriptRow
}

func newTranscript(p pane, selfLabel string) *Transcript {
	return &Transcript{pane: p, selfLabel: selfLabel}
}

// Append renders "[label] body" and flushes it to the terminal.
// Appends from different goroutines never interleave.
func (t *Transcript) Append(label, body string) {
	style := lo.Ternary(
		label == t.selfLabel,
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
		tcell.StyleDefault.Foreground(tcell.ColorTeal),
	)

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range t.wrap(domain.FormatLine(label, body)) {
		t.rows = append(t.rows, transcriptRow{text: row, style: style})
	}
	if overflow := len(t.rows) - t.height; overflow > 0 {
		t.rows = append([]transcriptRow(nil), t.rows[overflow:]...)
	}
	t.redraw()
	t.screen.Show()
}

func (t *Transcript) redraw() {
	for i := 0; i < t.height; i++ {
		t.clearRow(i)
		if i < len(t.rows) {
			t.put(0, i, t.rows[i].text, t.rows[i].style)
		}
	}
}

// Lines returns the visible rows as plain text.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Map(t.rows, func(row transcriptRow, _ int) string {
		return string(row.text)
	})
}
