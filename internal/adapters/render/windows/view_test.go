package windows

import (
	"testing"
	"time"

	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWindowKinds(t *testing.T) {
	output, err := RenderWindowKinds()
	require.NoError(t, err)

	assert.Contains(t, output, "kinds: 4")
	assert.Contains(t, output, "main")
	assert.Contains(t, output, "1080x720")
	assert.Contains(t, output, "projectId")
	assert.Contains(t, output, "per project")
	assert.Contains(t, output, "main pages: chat, completion, history, svn")
}

func TestRenderOpenWindows(t *testing.T) {
	output, err := RenderOpenWindows([]application.WindowHandle{
		{ID: "win-1", Window: domain.NewMainWindow(), Route: "/main/svn"},
		{ID: "win-2", Window: domain.NewProjectWindow("alpha"), Route: "/projectId/alpha"},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "windows: 2")
	assert.Contains(t, output, "Assistant")
	assert.Contains(t, output, "/main/svn")
	assert.Contains(t, output, "Project alpha")
	assert.Contains(t, output, "win-2")
}

func TestRenderOpenWindowsEmpty(t *testing.T) {
	output, err := RenderOpenWindows(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No windows open.")
}

func TestRenderSVNStatus(t *testing.T) {
	output, err := RenderSVNStatus([]domain.SVNStatusEntry{
		{Path: "src/main.go", State: domain.SVNModified},
		{Path: "notes.txt", State: domain.SVNUnversioned},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "changes: 2")
	assert.Contains(t, output, "modified")
	assert.Contains(t, output, "src/main.go")
	assert.Contains(t, output, "unversioned")

	clean, err := RenderSVNStatus(nil)
	require.NoError(t, err)
	assert.Contains(t, clean, "Working copy is clean.")
}

func TestRenderSyncHistory(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	output, err := RenderSyncHistory([]domain.SyncRecord{
		{ID: 2, Path: "b.txt", Bytes: 2048, SyncedAt: now.Add(-90 * time.Minute)},
		{ID: 1, Path: "a.txt", Bytes: 12, SyncedAt: now.Add(-10 * time.Second)},
	}, now)
	require.NoError(t, err)

	assert.Contains(t, output, "records: 2")
	assert.Contains(t, output, "1h ago")
	assert.Contains(t, output, "2.0 KiB")
	assert.Contains(t, output, "just now")
	assert.Contains(t, output, "12 B")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "unknown", relativeTime(now, time.Time{}))
	assert.Equal(t, "5m ago", relativeTime(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "3d ago", relativeTime(now, now.Add(-72*time.Hour)))
}
