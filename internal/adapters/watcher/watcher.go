package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/fsutil"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDebounce = 500 * time.Millisecond

var skippedDirs = map[string]struct{}{
	".svn":         {},
	".git":         {},
	"node_modules": {},
}

const syncTempPrefix = ".ashell-sync-"

// Watcher publishes a sync action for every file created or written under
// root, batching bursts of events.
type Watcher struct {
	root      string
	publisher ports.ActionPublisher
	debounce  time.Duration
	logger    zerolog.Logger
	recent    *fsutil.RecentWrites
	ready     chan struct{}
}

func New(root string, publisher ports.ActionPublisher, debounce time.Duration, logger zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		root:      filepath.Clean(root),
		publisher: publisher,
		debounce:  debounce,
		logger:    logger,
		ready:     make(chan struct{}),
	}
}

// IgnoreRecent skips files this process marked in recent, such as those
// written by the sync endpoint, which already announced them.
func (w *Watcher) IgnoreRecent(recent *fsutil.RecentWrites) *Watcher {
	w.recent = recent
	return w
}

// Ready is closed once every directory under root is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	close(w.ready)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := map[string]struct{}{}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			relPath, ok := w.relevant(event.Name)
			if !ok {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if err := w.addTree(fsw, event.Name); err != nil {
					w.logger.Warn().Err(err).Str("path", relPath).Msg("watch new directory")
				}
				continue
			}

			pending[relPath] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.flush(ctx, pending)
			pending = map[string]struct{}{}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) flush(ctx context.Context, pending map[string]struct{}) {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := w.publisher.Publish(ctx, domain.NewActionMessage(domain.ActionSync, path)); err != nil {
			w.logger.Error().Err(err).Str("path", path).Msg("publish sync action")
		}
	}
	w.logger.Debug().Int("files", len(paths)).Msg("published working copy changes")
}

// relevant returns the slash-separated path relative to root unless the path
// is inside a skipped directory, is a sync temp file or was just written by
// this process.
func (w *Watcher) relevant(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts {
		if _, skip := skippedDirs[part]; skip {
			return "", false
		}
	}
	if strings.HasPrefix(parts[len(parts)-1], syncTempPrefix) {
		return "", false
	}

	slashed := filepath.ToSlash(rel)
	if w.recent.Recent(slashed) {
		w.logger.Debug().Str("path", slashed).Msg("skip self-written file")
		return "", false
	}
	return slashed, true
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if _, skip := skippedDirs[entry.Name()]; skip && path != w.root {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
