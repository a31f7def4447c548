package ports

import (
	"context"

	"github.com/bnema/assistant-shell/internal/domain"
)

type WindowSpec struct {
	ID     string
	Title  string
	Route  string
	Bounds domain.Bounds
	Show   bool
}

// WindowHost performs native window operations on behalf of the window manager.
type WindowHost interface {
	Create(ctx context.Context, spec WindowSpec) error
	Focus(ctx context.Context, id string) error
	Navigate(ctx context.Context, id string, route string) error
	Destroy(ctx context.Context, id string) error
}
