// Package moderation masks forbidden words in received messages.
// Matching runs on a normalized copy of the text: lower case, leet speak
// folded back to letters, punctuation and spaces skipped. Masking is then
// applied to the original runes, so spacing and accents are preserved.
package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

type Moderator struct {
	matcher    *goahocorasick.Machine
	censorRune rune
}

// folded is the searchable form of a text. positions[i] is the index in
// the original runes of folded rune i.
type folded struct {
	runes     []rune
	positions []int
}

// NewModerator builds the automaton. Words made only of noise are skipped.
func NewModerator(words []string, censorRune rune) (*Moderator, error) {
	patterns := lo.FilterMap(words, func(word string, _ int) ([]rune, bool) {
		pattern := fold([]rune(word)).runes
		return pattern, len(pattern) > 0
	})

	if len(patterns) == 0 {
		return &Moderator{censorRune: censorRune}, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censorRune: censorRune}, nil
}

// ParseWords splits a comma separated list and drops blank entries.
func ParseWords(list string) []string {
	return lo.Compact(lo.Map(strings.Split(list, ","), func(word string, _ int) string {
		return strings.TrimSpace(word)
	}))
}

// Censor returns the masked text and the folded words found, in order.
func (m *Moderator) Censor(text string) (string, []string) {
	original := []rune(text)
	f := fold(original)
	if m.matcher == nil || len(f.runes) == 0 {
		return text, nil
	}

	matches := m.matcher.MultiPatternSearch(f.runes, false)
	if len(matches) == 0 {
		return text, nil
	}

	var words []string
	for _, match := range matches {
		end := match.Pos + len(match.Word)
		if match.Pos < 0 || end > len(f.positions) {
			continue
		}
		for i := f.positions[match.Pos]; i <= f.positions[end-1]; i++ {
			original[i] = m.censorRune
		}
		words = append(words, string(match.Word))
	}
	return string(original), words
}

func fold(input []rune) folded {
	f := folded{
		runes:     make([]rune, 0, len(input)),
		positions: make([]int, 0, len(input)),
	}
	for i, r := range input {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.positions = append(f.positions, i)
	}
	return f
}

// unleet maps common leet speak characters back to letters.
func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
