package corpus

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	pages []Page
	err   error
}

func (s *sliceSource) Walk(_ context.Context, visit func(Page) (bool, error)) error {
	if s.err != nil {
		return s.err
	}
	for _, p := range s.pages {
		stop, err := visit(p)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

func TestFindFirstReturnsFirstContainingPage(t *testing.T) {
	scanner := NewScanner(&sliceSource{pages: []Page{
		{DocName: "a.pdf", PageNum: 1, Text: "вводная страница"},
		{DocName: "a.pdf", PageNum: 2, Text: "здесь встречается предельное состояние"},
		{DocName: "b.pdf", PageNum: 1, Text: "и здесь тоже предельное состояние"},
	}}, 700)

	match, err := scanner.FindFirst(context.Background(), "предельное состояние")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "a.pdf", match.DocName)
	assert.Equal(t, 2, match.PageNum)
}

func TestFindFirstIsCaseInsensitive(t *testing.T) {
	scanner := NewScanner(&sliceSource{pages: []Page{
		{DocName: "a.pdf", PageNum: 1, Text: "Комбинации Воздействий по EN 1990"},
	}}, 700)

	tests := []string{
		"комбинации воздействий",
		"КОМБИНАЦИИ ВОЗДЕЙСТВИЙ",
		"Комбинации Воздействий",
	}
	for _, needle := range tests {
		match, err := scanner.FindFirst(context.Background(), needle)
		require.NoError(t, err)
		require.NotNil(t, match, "needle %q", needle)
	}
}

func TestFindFirstNoMatch(t *testing.T) {
	scanner := NewScanner(&sliceSource{pages: []Page{
		{DocName: "a.pdf", PageNum: 1, Text: "ничего похожего"},
	}}, 700)

	match, err := scanner.FindFirst(context.Background(), "частные коэффициенты")

	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestFindFirstEmptyNeedle(t *testing.T) {
	src := &sliceSource{pages: []Page{{DocName: "a.pdf", PageNum: 1, Text: "текст"}}}
	scanner := NewScanner(src, 700)

	for _, needle := range []string{"", "   "} {
		match, err := scanner.FindFirst(context.Background(), needle)
		require.NoError(t, err)
		assert.Nil(t, match, "blank needle must not match everything")
	}
}

func TestFindFirstPropagatesSourceError(t *testing.T) {
	scanner := NewScanner(&sliceSource{err: errors.New("unreadable")}, 700)

	match, err := scanner.FindFirst(context.Background(), "что угодно")

	assert.Error(t, err)
	assert.Nil(t, match)
}

func TestExcerptIsRuneBounded(t *testing.T) {
	// 50 Cyrillic runes, each 2 bytes: a byte-based cut would split a rune.
	long := strings.Repeat("я", 50)
	scanner := NewScanner(&sliceSource{pages: []Page{
		{DocName: "a.pdf", PageNum: 1, Text: long},
	}}, 10)

	match, err := scanner.FindFirst(context.Background(), "яя")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, strings.Repeat("я", 10)+"…", match.Excerpt)
}

func TestExcerptShortTextUnchanged(t *testing.T) {
	scanner := NewScanner(&sliceSource{pages: []Page{
		{DocName: "a.pdf", PageNum: 1, Text: "  короткий текст  "},
	}}, 700)

	match, err := scanner.FindFirst(context.Background(), "короткий")

	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "короткий текст", match.Excerpt, "short pages are trimmed, not truncated")
}
