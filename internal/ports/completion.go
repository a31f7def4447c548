package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

type ContextExtractor interface {
	Extract(ctx context.Context, req domain.CompletionRequest) (domain.CompletionContext, error)
}

type CompletionProvider interface {
	Complete(ctx context.Context, completionCtx domain.CompletionContext) (string, error)
}
