package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

const defaultSVNTimeout = 30 * time.Second

// SVNService keeps the workspace working copy in step with synced files. It
// owns the sync action handler.
type SVNService struct {
	root    string
	vcs     ports.VersionControl
	logger  zerolog.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

var _ ports.Service = (*SVNService)(nil)

func NewSVNService(root string, vcs ports.VersionControl, logger zerolog.Logger) *SVNService {
	return &SVNService{
		root:    filepath.Clean(root),
		vcs:     vcs,
		logger:  logger,
		timeout: defaultSVNTimeout,
		pending: map[string]struct{}{},
	}
}

func (s *SVNService) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(domain.ServiceSVN)
}

func (s *SVNService) Init(ctx context.Context) error {
	if err := s.vcs.Info(ctx, s.root); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrNotWorkingCopy, s.root, err)
	}
	return nil
}

// Register installs the sync handler on registry.
func (s *SVNService) Register(registry *ActionRegistry) {
	registry.Register(domain.ActionSync, s.HandleSync)
}

func (s *SVNService) HandleSync(msg domain.ActionMessage) error {
	relPath, err := domain.SyncRequest{Path: msg.Data}.CleanPath()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	target := filepath.Join(s.root, relPath)
	entries, err := s.vcs.Status(ctx, target)
	if err != nil {
		return fmt.Errorf("svn status for sync: %w", err)
	}

	for _, entry := range entries {
		if entry.State != domain.SVNUnversioned {
			continue
		}
		if err := s.vcs.Add(ctx, target); err != nil {
			return fmt.Errorf("svn add synced file: %w", err)
		}
		s.logger.Info().Str("path", relPath).Msg("scheduled synced file for addition")
		break
	}

	s.mu.Lock()
	s.pending[filepath.ToSlash(relPath)] = struct{}{}
	s.mu.Unlock()

	return nil
}

func (s *SVNService) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.pending))
	for path := range s.pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (s *SVNService) Status(ctx context.Context) ([]domain.SVNStatusEntry, error) {
	entries, err := s.vcs.Status(ctx, s.root)
	if err != nil {
		return nil, fmt.Errorf("svn status: %w", err)
	}

	for i := range entries {
		if rel, err := filepath.Rel(s.root, entries[i].Path); err == nil && !strings.HasPrefix(rel, "..") {
			entries[i].Path = filepath.ToSlash(rel)
		}
	}
	return entries, nil
}

func (s *SVNService) Update(ctx context.Context) error {
	if err := s.vcs.Update(ctx, s.root); err != nil {
		return fmt.Errorf("svn update: %w", err)
	}
	return nil
}

// Commit commits every pending synced path and clears the pending set.
func (s *SVNService) Commit(ctx context.Context, message string) ([]string, error) {
	paths := s.Pending()
	if len(paths) == 0 {
		return nil, domain.ErrNothingToCommit
	}
	return s.CommitPaths(ctx, message, paths)
}

// CommitChanged commits every added, modified, deleted or replaced entry
// reported by svn status.
func (s *SVNService) CommitChanged(ctx context.Context, message string) ([]string, error) {
	entries, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry.State {
		case domain.SVNAdded, domain.SVNModified, domain.SVNDeleted, domain.SVNReplaced:
			paths = append(paths, entry.Path)
		}
	}
	if len(paths) == 0 {
		return nil, domain.ErrNothingToCommit
	}
	return s.CommitPaths(ctx, message, paths)
}

// CommitPaths commits paths relative to the working copy root and drops them
// from the pending set.
func (s *SVNService) CommitPaths(ctx context.Context, message string, paths []string) ([]string, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("commit message is required")
	}
	if len(paths) == 0 {
		return nil, domain.ErrNothingToCommit
	}

	targets := make([]string, 0, len(paths))
	for _, path := range paths {
		targets = append(targets, filepath.Join(s.root, filepath.FromSlash(path)))
	}
	if err := s.vcs.Commit(ctx, message, targets); err != nil {
		return nil, fmt.Errorf("svn commit: %w", err)
	}

	s.mu.Lock()
	for _, path := range paths {
		delete(s.pending, filepath.ToSlash(path))
	}
	s.mu.Unlock()

	s.logger.Info().Int("paths", len(paths)).Msg("committed files")
	return paths, nil
}
