package treesitter

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
)

type Language string

const (
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
)

var extensions = map[string]Language{
	".go":  LangGo,
	".js":  LangJavaScript,
	".jsx": LangJavaScript,
	".mjs": LangJavaScript,
	".cjs": LangJavaScript,
	".ts":  LangTypeScript,
	".tsx": LangTSX,
	".py":  LangPython,
}

func LanguageFromPath(path string) (Language, bool) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// Extractor splits a buffer at the cursor and names the function that
// encloses it.
type Extractor struct{}

var _ ports.ContextExtractor = (*Extractor)(nil)

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(ctx context.Context, req domain.CompletionRequest) (domain.CompletionContext, error) {
	if err := ctx.Err(); err != nil {
		return domain.CompletionContext{}, err
	}

	offset := cursorOffset(req.Content, req.Line, req.Column)
	completionCtx := domain.CompletionContext{
		Prefix: req.Content[:offset],
		Suffix: req.Content[offset:],
	}

	lang, ok := LanguageFromPath(req.Path)
	if !ok {
		return completionCtx, nil
	}
	completionCtx.Language = string(lang)

	scope, err := enclosingScope(ctx, []byte(req.Content), lang, uint32(offset))
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedSyntax) {
			return completionCtx, nil
		}
		return domain.CompletionContext{}, err
	}
	completionCtx.Scope = scope

	return completionCtx, nil
}

// cursorOffset converts a zero-based line and byte column into an offset
// into content, clamping both to the buffer. A column inside a multi-byte
// rune moves back to the start of that rune.
func cursorOffset(content string, line, column int) int {
	offset := 0
	for i := 0; i < line; i++ {
		next := strings.IndexByte(content[offset:], '\n')
		if next < 0 {
			return len(content)
		}
		offset += next + 1
	}

	end := len(content)
	if next := strings.IndexByte(content[offset:], '\n'); next >= 0 {
		end = offset + next
	}
	if column < 0 {
		column = 0
	}
	if column > end-offset {
		column = end - offset
	}

	pos := offset + column
	for pos > offset && pos < len(content) && !utf8.RuneStart(content[pos]) {
		pos--
	}
	return pos
}
