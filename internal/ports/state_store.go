package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

// StateStore persists the application state. Load returns
// domain.ErrStateNotFound before the first Save.
type StateStore interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}
