package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutInsertsUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(_ context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "--multiline", "--force", "ashell/completion/api_key"}, args)
			assert.Equal(t, "sk-test\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "completion/api_key", "sk-test"))
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(_ context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "ashell/completion/api_key"}, args)
			assert.Empty(t, input)
			return "sk-test\r\nurl: https://api.example.test\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "completion/api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", value)
}

func TestStoreGetMapsMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			return "", "Error: ashell/completion/api_key is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "completion/api_key")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialMissing)
}

func TestStoreGetReportsCommandFailure(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), "completion/api_key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCredentialMissing)
	assert.ErrorContains(t, err, "pass show ashell/completion/api_key")
	assert.ErrorContains(t, err, "decryption failed")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(_ context.Context, _ string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "--force", "ashell/completion/api_key"}, args)
			return "", "Error: ashell/completion/api_key is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Delete(context.Background(), "completion/api_key"))
}

func TestStoreRejectsEmptyName(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		t.Fatal("pass must not run for an empty name")
		return "", "", nil
	}}

	_, err := store.Get(context.Background(), " / ")
	require.Error(t, err)
}
