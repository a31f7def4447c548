package headless

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

// WindowState is what a native host would be showing for one window.
type WindowState struct {
	ID      string
	Title   string
	Route   string
	Bounds  domain.Bounds
	Visible bool
	Focused bool
}

// Host is a window host without a display. It keeps the state a native
// host would render so that serve and tests can observe it.
type Host struct {
	logger zerolog.Logger

	mu      sync.Mutex
	windows map[string]*WindowState
	order   []string
}

var _ ports.WindowHost = (*Host)(nil)

func NewHost(logger zerolog.Logger) *Host {
	return &Host{logger: logger, windows: map[string]*WindowState{}}
}

func (h *Host) Create(ctx context.Context, spec ports.WindowSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.windows[spec.ID]; exists {
		return fmt.Errorf("window %s already exists", spec.ID)
	}

	h.windows[spec.ID] = &WindowState{
		ID:      spec.ID,
		Title:   spec.Title,
		Route:   spec.Route,
		Bounds:  spec.Bounds,
		Visible: spec.Show,
	}
	h.order = append(h.order, spec.ID)
	if spec.Show {
		h.focusLocked(spec.ID)
	}

	h.logger.Debug().Str("window", spec.ID).Str("route", spec.Route).Msg("window created")
	return nil
}

func (h *Host) Focus(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.windows[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	state.Visible = true
	h.focusLocked(id)
	return nil
}

func (h *Host) Navigate(ctx context.Context, id string, route string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.windows[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	state.Route = route

	h.logger.Debug().Str("window", id).Str("route", route).Msg("window navigated")
	return nil
}

func (h *Host) Destroy(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.windows[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	delete(h.windows, id)
	for i, existing := range h.order {
		if existing == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return nil
}

func (h *Host) Window(id string) (WindowState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.windows[id]
	if !ok {
		return WindowState{}, false
	}
	return *state, true
}

// Windows returns every window in creation order.
func (h *Host) Windows() []WindowState {
	h.mu.Lock()
	defer h.mu.Unlock()

	states := make([]WindowState, 0, len(h.order))
	for _, id := range h.order {
		states = append(states, *h.windows[id])
	}
	return states
}

// Focused returns the id of the focused window, if any.
func (h *Host) Focused() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]string, 0, len(h.windows))
	for id := range h.windows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if h.windows[id].Focused {
			return id, true
		}
	}
	return "", false
}

func (h *Host) focusLocked(id string) {
	for existing, state := range h.windows {
		state.Focused = existing == id
	}
}
