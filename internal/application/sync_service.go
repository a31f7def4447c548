package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/fsutil"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

var syncWriteOptions = fsutil.WriteOptions{
	FileMode:    0o644,
	DirMode:     0o755,
	TempPattern: ".ashell-sync-*.tmp",
}

// SyncService writes files pushed by editor plugins into the workspace and
// announces them with a sync action.
type SyncService struct {
	root       string
	journal    ports.SyncJournal
	dispatcher ports.ActionDispatcher
	clock      ports.Clock
	recent     *fsutil.RecentWrites
	logger     zerolog.Logger
}

func NewSyncService(root string, journal ports.SyncJournal, dispatcher ports.ActionDispatcher, clock ports.Clock, logger zerolog.Logger) *SyncService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SyncService{
		root:       filepath.Clean(root),
		journal:    journal,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

// TrackWrites marks every applied path in recent before it lands on disk, so
// the working copy watcher does not announce the same file a second time.
func (s *SyncService) TrackWrites(recent *fsutil.RecentWrites) *SyncService {
	s.recent = recent
	return s
}

func (s *SyncService) Root() string {
	return s.root
}

func (s *SyncService) Apply(ctx context.Context, req domain.SyncRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := req.CleanPath()
	if err != nil {
		return err
	}
	target := filepath.Join(s.root, relPath)

	s.recent.Mark(filepath.ToSlash(relPath))
	if err := fsutil.WriteFileAtomic(target, []byte(req.Content), syncWriteOptions); err != nil {
		return fmt.Errorf("write synced file: %w", err)
	}

	if s.journal != nil {
		record := domain.SyncRecord{Path: filepath.ToSlash(relPath), Bytes: len(req.Content), SyncedAt: s.clock.Now()}
		if err := s.journal.Record(ctx, record); err != nil {
			return fmt.Errorf("record sync: %w", err)
		}
	}

	s.logger.Debug().Str("path", relPath).Int("bytes", len(req.Content)).Msg("file synced")

	if s.dispatcher == nil {
		return nil
	}
	return s.dispatcher.Dispatch(domain.NewActionMessage(domain.ActionSync, filepath.ToSlash(relPath)))
}

func (s *SyncService) History(ctx context.Context, limit int) ([]domain.SyncRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	records, err := s.journal.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load sync history: %w", err)
	}
	return records, nil
}
