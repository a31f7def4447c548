package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

// Service is a process service started once by the bootstrap.
type Service interface {
	Descriptor() domain.Service
	Init(ctx context.Context) error
}

type ActionPublisher interface {
	Publish(ctx context.Context, msg domain.ActionMessage) error
}

type ActionDispatcher interface {
	Dispatch(msg domain.ActionMessage) error
}
