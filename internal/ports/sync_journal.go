package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

type SyncJournal interface {
	Record(ctx context.Context, record domain.SyncRecord) error
	Recent(ctx context.Context, limit int) ([]domain.SyncRecord, error)
}
