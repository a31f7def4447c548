package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/fsutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []domain.ActionMessage
}

func (p *recordingPublisher) Publish(_ context.Context, msg domain.ActionMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	paths := make([]string, 0, len(p.messages))
	for _, msg := range p.messages {
		paths = append(paths, msg.Data)
	}
	return paths
}

func startWatcher(t *testing.T, root string, publisher *recordingPublisher) {
	t.Helper()
	runWatcher(t, New(root, publisher, 50*time.Millisecond, zerolog.Nop()))
}

func runWatcher(t *testing.T, w *Watcher) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	select {
	case <-w.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher not ready")
	}
}

func TestWatcherPublishesSyncForChangedFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	publisher := &recordingPublisher{}
	startWatcher(t, root, publisher)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# readme\n"), 0o644))

	require.Eventually(t, func() bool {
		return len(publisher.paths()) >= 2
	}, 3*time.Second, 20*time.Millisecond)

	assert.ElementsMatch(t, []string{"README.md", "src/main.go"}, publisher.paths())
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	for _, msg := range publisher.messages {
		assert.Equal(t, domain.ActionSync, msg.Action)
	}
}

func TestWatcherSkipsMetadataAndTempFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".svn"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "pkg"), 0o755))

	publisher := &recordingPublisher{}
	startWatcher(t, root, publisher)

	require.NoError(t, os.WriteFile(filepath.Join(root, ".svn", "wc.db"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "pkg", "index.js"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".ashell-sync-123.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "kept.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool {
		return len(publisher.paths()) >= 1
	}, 3*time.Second, 20*time.Millisecond)
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, []string{"kept.txt"}, publisher.paths())
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	publisher := &recordingPublisher{}
	startWatcher(t, root, publisher)

	dir := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(dir, 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.go"), []byte("package pkg\n"), 0o644))

	require.Eventually(t, func() bool {
		for _, path := range publisher.paths() {
			if path == "pkg/util.go" {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
}

func TestRelevantRejectsOutsideRoot(t *testing.T) {
	t.Parallel()

	w := New("/ws", &recordingPublisher{}, 0, zerolog.Nop())

	_, ok := w.relevant("/elsewhere/file")
	assert.False(t, ok)
	_, ok = w.relevant("/ws")
	assert.False(t, ok)

	rel, ok := w.relevant("/ws/a/b.txt")
	require.True(t, ok)
	assert.Equal(t, "a/b.txt", rel)
}

type countingDispatcher struct {
	mu    sync.Mutex
	paths []string
}

func (d *countingDispatcher) Dispatch(msg domain.ActionMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paths = append(d.paths, msg.Data)
	return nil
}

func TestWatcherSkipsFilesAppliedBySyncService(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	recent := fsutil.NewRecentWrites(time.Minute)

	publisher := &recordingPublisher{}
	runWatcher(t, New(root, publisher, 50*time.Millisecond, zerolog.Nop()).IgnoreRecent(recent))

	dispatcher := &countingDispatcher{}
	syncer := application.NewSyncService(root, nil, dispatcher, nil, zerolog.Nop()).TrackWrites(recent)

	require.NoError(t, syncer.Apply(context.Background(), domain.SyncRequest{Path: "src/synced.go", Content: "package src\n"}))
	require.NoError(t, os.WriteFile(filepath.Join(root, "manual.go"), []byte("package main\n"), 0o644))

	require.Eventually(t, func() bool {
		return len(publisher.paths()) >= 1
	}, 3*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, []string{"manual.go"}, publisher.paths())
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	assert.Equal(t, []string{"src/synced.go"}, dispatcher.paths, "sync service announces its own write exactly once")
}

func TestRelevantSkipsRecentlyWrittenPaths(t *testing.T) {
	t.Parallel()

	recent := fsutil.NewRecentWrites(time.Minute)
	recent.Mark("a/b.txt")
	w := New("/ws", &recordingPublisher{}, 0, zerolog.Nop()).IgnoreRecent(recent)

	_, ok := w.relevant("/ws/a/b.txt")
	assert.False(t, ok)

	rel, ok := w.relevant("/ws/a/c.txt")
	require.True(t, ok)
	assert.Equal(t, "a/c.txt", rel)
}
