package corpus

import (
	"context"
	"strings"
)

// Match is the first page containing the needle, reduced to a bounded
// leading excerpt.
type Match struct {
	DocName string
	PageNum int
	Excerpt string
}

// Scanner searches a Source by case-insensitive substring containment.
// No ranking: the first page that contains the needle wins, and the walk
// order of the Source makes the result deterministic.
type Scanner struct {
	source       Source
	excerptRunes int
}

func NewScanner(source Source, excerptRunes int) *Scanner {
	if excerptRunes <= 0 {
		excerptRunes = 700
	}
	return &Scanner{
		source:       source,
		excerptRunes: excerptRunes,
	}
}

func (s *Scanner) FindFirst(ctx context.Context, needle string) (*Match, error) {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return nil, nil
	}

	var match *Match
	err := s.source.Walk(ctx, func(page Page) (bool, error) {
		if !strings.Contains(strings.ToLower(page.Text), needle) {
			return false, nil
		}
		match = &Match{
			DocName: page.DocName,
			PageNum: page.PageNum,
			Excerpt: s.excerpt(page.Text),
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *Scanner) excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= s.excerptRunes {
		return text
	}
	return string(runes[:s.excerptRunes]) + "…"
}
