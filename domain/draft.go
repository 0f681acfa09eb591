package domain

import (
	"chat-term/errors"
	"slices"
	"unicode/utf8"
)

// Draft is the line being edited before it is sent.
// The cursor always stays in [0, len(content)] and the UTF-8 size of the
// content never exceeds maxSize, so a confirmed draft fits in one datagram.
// Every rejected operation returns an error and leaves the draft untouched.
type Draft struct {
	content []rune
	cursor  int
	size    int // encoded size in bytes
	maxSize int
}

func NewDraft(maxSize int) *Draft {
	return &Draft{maxSize: maxSize}
}

func (d *Draft) Insert(r rune) error {
	n := utf8.RuneLen(r)
	if n < 0 {
		return errors.ErrUnknownKey
	}
	if d.size+n > d.maxSize {
		return errors.ErrInputOverflow
	}
	d.content = slices.Insert(d.content, d.cursor, r)
	d.cursor++
	d.size += n
	return nil
}

func (d *Draft) Left() error {
	if d.cursor == 0 {
		return errors.ErrInvalidCursorMove
	}
	d.cursor--
	return nil
}

func (d *Draft) Right() error {
	if d.cursor == len(d.content) {
		return errors.ErrInvalidCursorMove
	}
	d.cursor++
	return nil
}

// Backspace removes the rune before the cursor.
func (d *Draft) Backspace() error {
	if d.cursor == 0 {
		return errors.ErrInvalidCursorMove
	}
	d.size -= utf8.RuneLen(d.content[d.cursor-1])
	d.content = slices.Delete(d.content, d.cursor-1, d.cursor)
	d.cursor--
	return nil
}

// Delete removes the rune under the cursor.
func (d *Draft) Delete() error {
	if d.cursor == len(d.content) {
		return errors.ErrInvalidCursorMove
	}
	d.size -= utf8.RuneLen(d.content[d.cursor])
	d.content = slices.Delete(d.content, d.cursor, d.cursor+1)
	return nil
}

func (d *Draft) Cursor() int { return d.cursor }

func (d *Draft) Len() int { return len(d.content) }

func (d *Draft) Size() int { return d.size }

// Runes returns a copy of the content.
func (d *Draft) Runes() []rune { return slices.Clone(d.content) }

func (d *Draft) String() string { return string(d.content) }
