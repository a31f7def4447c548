package treesitter

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorOffset(t *testing.T) {
	t.Parallel()

	content := "ab\ncdef\ng"
	tests := []struct {
		name   string
		line   int
		column int
		want   int
	}{
		{name: "start", line: 0, column: 0, want: 0},
		{name: "middle of second line", line: 1, column: 2, want: 5},
		{name: "column past end of line clamps", line: 0, column: 10, want: 2},
		{name: "last line", line: 2, column: 1, want: 9},
		{name: "line past end clamps", line: 7, column: 0, want: len(content)},
		{name: "negative column clamps to line start", line: 1, column: -4, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cursorOffset(content, tt.line, tt.column))
		})
	}
}

func TestCursorOffsetKeepsRuneBoundaries(t *testing.T) {
	t.Parallel()

	// "é" is two bytes, "世" is three.
	content := "aé世\nb"
	tests := []struct {
		name   string
		column int
		want   int
	}{
		{name: "inside two byte rune", column: 2, want: 1},
		{name: "after two byte rune", column: 3, want: 3},
		{name: "inside three byte rune", column: 5, want: 3},
		{name: "end of line", column: 6, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cursorOffset(content, 0, tt.column)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(content[:got]))
		})
	}
}

func TestExtractNegativeColumnDoesNotPanic(t *testing.T) {
	t.Parallel()

	got, err := NewExtractor().Extract(context.Background(), domain.CompletionRequest{
		Path:    "notes.txt",
		Content: "héllo",
		Column:  -1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionContext{Suffix: "héllo"}, got)
}

func TestLanguageFromPath(t *testing.T) {
	t.Parallel()

	lang, ok := LanguageFromPath("src/App.TSX")
	require.True(t, ok)
	assert.Equal(t, LangTSX, lang)

	_, ok = LanguageFromPath("notes.txt")
	assert.False(t, ok)
}

func TestExtractUnknownLanguageKeepsPrefixAndSuffix(t *testing.T) {
	t.Parallel()

	got, err := NewExtractor().Extract(context.Background(), domain.CompletionRequest{
		Path:    "notes.txt",
		Content: "hello world",
		Line:    0,
		Column:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CompletionContext{Prefix: "hello", Suffix: " world"}, got)
}

func TestExtractSetsLanguage(t *testing.T) {
	t.Parallel()

	got, err := NewExtractor().Extract(context.Background(), domain.CompletionRequest{
		Path:    "main.go",
		Content: "package main\n",
		Line:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "go", got.Language)
	assert.Equal(t, "package main\n", got.Prefix)
	assert.Empty(t, got.Suffix)
}

func TestExtractCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor().Extract(ctx, domain.CompletionRequest{Path: "a.go"})
	require.ErrorIs(t, err, context.Canceled)
}
