//go:build !cgo

package treesitter

import (
	"context"
	"fmt"

	"github.com/bnema/assistant-shell/internal/domain"
)

func enclosingScope(_ context.Context, _ []byte, lang Language, _ uint32) (string, error) {
	return "", fmt.Errorf("%w: %s parsing requires cgo", domain.ErrUnsupportedSyntax, lang)
}
