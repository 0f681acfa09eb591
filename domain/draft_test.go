package domain

import (
	"chat-term/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDraft_Insert_KeepsInsertionOrderAtCursor(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(2000)

	for _, r := range "world" {
		req.NoError(draft.Insert(r))
	}
	// Given the cursor moved back to the start
	for range 5 {
		req.NoError(draft.Left())
	}
	// When inserting in front of the existing content
	for _, r := range "hello " {
		req.NoError(draft.Insert(r))
	}

	// Then the runes land at their respective cursor positions
	req.Equal("hello world", draft.String())
	req.Equal(6, draft.Cursor())
	req.Equal(11, draft.Len())
}

func TestDraft_Scenario_InsertAfterLeftArrow(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(2000)

	req.NoError(draft.Insert('h'))
	req.NoError(draft.Insert('i'))
	req.NoError(draft.Left())
	req.NoError(draft.Insert('o'))

	req.Equal("hoi", draft.String())
	req.Equal(2, draft.Cursor())
}

func TestDraft_Insert_RejectsOverflow(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(3)

	for _, r := range "abc" {
		req.NoError(draft.Insert(r))
	}

	// When the draft is full
	err := draft.Insert('d')

	// Then nothing changes and the overflow is signalled
	req.ErrorIs(err, errors.ErrInputOverflow)
	req.Equal("abc", draft.String())
	req.Equal(3, draft.Cursor())
}

func TestDraft_Insert_CountsEncodedBytes(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(4)

	req.NoError(draft.Insert('é')) // 2 bytes
	req.NoError(draft.Insert('a'))
	req.Equal(3, draft.Size())

	req.ErrorIs(draft.Insert('é'), errors.ErrInputOverflow)
	req.NoError(draft.Insert('b'))
	req.Equal("éab", draft.String())
	req.Equal(4, draft.Size())
}

func TestDraft_CursorMoves_RejectedAtEdges(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(10)

	// Given an empty draft, both moves are rejected
	req.ErrorIs(draft.Left(), errors.ErrInvalidCursorMove)
	req.ErrorIs(draft.Right(), errors.ErrInvalidCursorMove)
	req.Equal(0, draft.Cursor())

	req.NoError(draft.Insert('x'))
	req.ErrorIs(draft.Right(), errors.ErrInvalidCursorMove)
	req.Equal(1, draft.Cursor())

	req.NoError(draft.Left())
	req.ErrorIs(draft.Left(), errors.ErrInvalidCursorMove)
	req.Equal(0, draft.Cursor())
	req.Equal("x", draft.String())
}

func TestDraft_Backspace(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(10)

	req.ErrorIs(draft.Backspace(), errors.ErrInvalidCursorMove)

	for _, r := range "abcd" {
		req.NoError(draft.Insert(r))
	}
	req.NoError(draft.Left())
	req.NoError(draft.Backspace())

	req.Equal("abd", draft.String())
	req.Equal(2, draft.Cursor())
	req.Equal(3, draft.Size())

	req.NoError(draft.Left())
	req.NoError(draft.Left())
	req.ErrorIs(draft.Backspace(), errors.ErrInvalidCursorMove)
	req.Equal("abd", draft.String())
}

func TestDraft_Delete(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(10)

	req.ErrorIs(draft.Delete(), errors.ErrInvalidCursorMove)

	for _, r := range "abcd" {
		req.NoError(draft.Insert(r))
	}
	// At the end of the draft there is nothing under the cursor
	req.ErrorIs(draft.Delete(), errors.ErrInvalidCursorMove)

	req.NoError(draft.Left())
	req.NoError(draft.Left())
	req.NoError(draft.Delete())

	req.Equal("abd", draft.String())
	req.Equal(2, draft.Cursor())
}

func TestDraft_RunesReturnsCopy(t *testing.T) {
	req := require.New(t)
	draft := NewDraft(10)
	req.NoError(draft.Insert('a'))

	runes := draft.Runes()
	runes[0] = 'z'

	req.Equal("a", draft.String())
}
