package svn

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatusParsesFirstColumn(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			assert.Equal(t, []string{"status", "--non-interactive", "/ws"}, args)
			return strings.Join([]string{
				"?       /ws/new.go",
				"M       /ws/main.go",
				"A  +    /ws/copied.go",
				"!       /ws/gone.txt",
				"",
				"Performing status on external item at '/ws/vendor':",
				"X       /ws/vendor",
				"",
			}, "\n"), "", nil
		},
	}

	entries, err := client.Status(context.Background(), "/ws")
	require.NoError(t, err)
	assert.Equal(t, []domain.SVNStatusEntry{
		{Path: "/ws/new.go", State: domain.SVNUnversioned},
		{Path: "/ws/main.go", State: domain.SVNModified},
		{Path: "/ws/copied.go", State: domain.SVNAdded},
		{Path: "/ws/gone.txt", State: domain.SVNMissing},
		{Path: "/ws/vendor", State: domain.SVNNormal},
	}, entries)
}

func TestClientStatusCleanWorkingCopyIsEmpty(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "", nil
		},
	}

	entries, err := client.Status(context.Background(), "/ws/main.go")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClientAddUsesParents(t *testing.T) {
	t.Parallel()

	called := false
	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"add", "--non-interactive", "--parents", "/ws/src/new.go"}, args)
			return "A         /ws/src/new.go\n", "", nil
		},
	}

	require.NoError(t, client.Add(context.Background(), "/ws/src/new.go"))
	assert.True(t, called)
}

func TestClientCommitPassesMessageAndPaths(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			assert.Equal(t, []string{"commit", "--non-interactive", "-m", "sync", "--", "/ws/a", "/ws/b"}, args)
			return "Committed revision 42.\n", "", nil
		},
	}

	require.NoError(t, client.Commit(context.Background(), "sync", []string{"/ws/a", "/ws/b"}))
	require.ErrorIs(t, client.Commit(context.Background(), "sync", nil), domain.ErrNothingToCommit)
}

func TestClientInfoReturnsClearError(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "svn: E155007: '/tmp/x' is not a working copy", errors.New("exit status 1")
		},
	}

	err := client.Info(context.Background(), "/tmp/x")
	require.Error(t, err)
	assert.ErrorContains(t, err, "svn info /tmp/x")
	assert.ErrorContains(t, err, "E155007")
}

func TestClientUpdatePropagatesUnavailable(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			return "", "", ErrUnavailable
		},
	}

	err := client.Update(context.Background(), "/ws")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClientHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	client := &Client{
		run: func(ctx context.Context, args ...string) (string, string, error) {
			t.Fatal("run should not be called")
			return "", "", nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Status(ctx, "/ws")
	require.ErrorIs(t, err, context.Canceled)
}
