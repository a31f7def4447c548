package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

type VersionControl interface {
	Info(ctx context.Context, path string) error
	Status(ctx context.Context, path string) ([]domain.SVNStatusEntry, error)
	Add(ctx context.Context, path string) error
	Update(ctx context.Context, path string) error
	Commit(ctx context.Context, message string, paths []string) error
}
