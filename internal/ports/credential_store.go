package ports

import "context"

// CredentialStore keeps named secrets such as provider API keys. Get returns
// domain.ErrCredentialMissing when name has never been stored.
type CredentialStore interface {
	Get(ctx context.Context, name string) (string, error)
	Put(ctx context.Context, name string, value string) error
	Delete(ctx context.Context, name string) error
}
