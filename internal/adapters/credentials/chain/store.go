// Package chain reads and writes credentials through a primary backend and
// falls back to a second one when the primary fails.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/assistant-shell/internal/adapters/credentials/file"
	passstore "github.com/bnema/assistant-shell/internal/adapters/credentials/pass"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
)

type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassWithFileFallback prefers pass and keeps files under fileRoot when
// pass is missing or fails.
func NewPassWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, name string, value string) error {
	err := s.primary.Put(ctx, name, value)
	if err == nil || isContextErr(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, name, value)
	if fallbackErr == nil {
		return nil
	}
	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

// Get reports domain.ErrCredentialMissing only when neither backend could
// produce the value and the fallback says it has none.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	value, err := s.primary.Get(ctx, name)
	if err == nil || isContextErr(err) {
		return value, err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, name)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrCredentialMissing) || errors.Is(fallbackErr, domain.ErrCredentialMissing) {
		return "", fmt.Errorf("%w: %s", domain.ErrCredentialMissing, name)
	}
	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes name from both backends so no stale copy survives.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.primary.Delete(ctx, name)
	if isContextErr(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, name)
	if err != nil && fallbackErr != nil {
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
