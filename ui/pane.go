package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// pane is a bordered rectangle. x, y, width and height describe the
// interior, which is the outer size minus the border on each side.
// Callers hold mu while drawing.
type pane struct {
	screen tcell.Screen
	mu     *sync.Mutex
	outerX int
	outerY int
	outerW int
	outerH int
	x      int
	y      int
	width  int
	height int
}

func newPane(screen tcell.Screen, mu *sync.Mutex, x, y, width, height int) pane {
	return pane{
		screen: screen,
		mu:     mu,
		outerX: x,
		outerY: y,
		outerW: width,
		outerH: height,
		x:      x + 1,
		y:      y + 1,
		width:  width - 2,
		height: height - 2,
	}
}

func (p pane) drawBorder() {
	style := tcell.StyleDefault
	right := p.outerX + p.outerW - 1
	bottom := p.outerY + p.outerH - 1
	for col := p.outerX + 1; col < right; col++ {
		p.screen.SetContent(col, p.outerY, tcell.RuneHLine, nil, style)
		p.screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := p.outerY + 1; row < bottom; row++ {
		p.screen.SetContent(p.outerX, row, tcell.RuneVLine, nil, style)
		p.screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	p.screen.SetContent(p.outerX, p.outerY, tcell.RuneULCorner, nil, style)
	p.screen.SetContent(right, p.outerY, tcell.RuneURCorner, nil, style)
	p.screen.SetContent(p.outerX, bottom, tcell.RuneLLCorner, nil, style)
	p.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// clearRow blanks one interior row.
func (p pane) clearRow(row int) {
	for col := 0; col < p.width; col++ {
		p.screen.SetContent(p.x+col, p.y+row, ' ', nil, tcell.StyleDefault)
	}
}

// put writes runes from column col of an interior row, clipped at the
// right edge. It returns the column after the last rune written.
func (p pane) put(col, row int, runes []rune, style tcell.Style) int {
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > p.width {
			break
		}
		p.screen.SetContent(p.x+col, p.y+row, r, nil, style)
		col += w
	}
	return col
}

// wrap cuts text into rows no wider than the interior.
// Embedded newlines start a new row, other control runes are dropped.
func (p pane) wrap(text string) [][]rune {
	var rows [][]rune
	var current []rune
	col := 0
	for _, r := range text {
		switch {
		case r == '\n':
			rows = append(rows, current)
			current, col = nil, 0
			continue
		case r == '\t':
			r = ' '
		case r < ' ' || r == 0x7f:
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > p.width && len(current) > 0 {
			rows = append(rows, current)
			current, col = nil, 0
		}
		current = append(current, r)
		col += w
	}
	return append(rows, current)
}
