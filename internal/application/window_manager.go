package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type WindowHandle struct {
	ID       string
	Window   domain.Window
	Route    string
	OpenedAt time.Time
}

// WindowManager owns the set of open windows. Singleton kinds are focused
// instead of opened twice.
type WindowManager struct {
	host   ports.WindowHost
	config *ConfigService
	clock  ports.Clock
	logger zerolog.Logger
	newID  func() string

	mu    sync.Mutex
	byKey map[string]*WindowHandle
	byID  map[string]*WindowHandle
}

func NewWindowManager(host ports.WindowHost, config *ConfigService, clock ports.Clock, logger zerolog.Logger) *WindowManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WindowManager{
		host:   host,
		config: config,
		clock:  clock,
		logger: logger,
		newID:  uuid.NewString,
		byKey:  map[string]*WindowHandle{},
		byID:   map[string]*WindowHandle{},
	}
}

func (m *WindowManager) Open(ctx context.Context, window domain.Window) (WindowHandle, error) {
	if !window.Type().Valid() {
		return WindowHandle{}, fmt.Errorf("%w: %q", domain.ErrUnknownWindow, window.Type())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byKey[window.Key()]; ok {
		if err := m.host.Focus(ctx, existing.ID); err != nil {
			return WindowHandle{}, fmt.Errorf("focus %s window: %w", window.Type(), err)
		}
		return *existing, nil
	}

	spec := ports.WindowSpec{
		ID:     m.newID(),
		Title:  window.Title(),
		Route:  window.Route(),
		Bounds: window.Type().DefaultBounds(),
		Show:   true,
	}
	if window.Type() == domain.WindowMain && m.config != nil {
		cfg, err := m.config.Get(ctx)
		if err != nil {
			return WindowHandle{}, fmt.Errorf("load main window config: %w", err)
		}
		if bounds := cfg.MainBounds(); bounds.Width > 0 && bounds.Height > 0 {
			spec.Bounds = bounds
		}
		spec.Show = cfg.Window.Main.Show
	}

	if err := m.host.Create(ctx, spec); err != nil {
		return WindowHandle{}, fmt.Errorf("create %s window: %w", window.Type(), err)
	}

	handle := &WindowHandle{
		ID:       spec.ID,
		Window:   window,
		Route:    spec.Route,
		OpenedAt: m.clock.Now(),
	}
	m.byKey[window.Key()] = handle
	m.byID[handle.ID] = handle

	m.logger.Info().Str("window", window.Key()).Str("id", handle.ID).Msg("window opened")
	return *handle, nil
}

func (m *WindowManager) Focus(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	return m.host.Focus(ctx, id)
}

// Navigate switches the main window to page, opening it when necessary.
func (m *WindowManager) Navigate(ctx context.Context, page domain.MainWindowPageType) (WindowHandle, error) {
	if !page.Valid() {
		return WindowHandle{}, fmt.Errorf("unsupported main window page %q", page)
	}

	handle, err := m.Open(ctx, domain.NewMainWindow())
	if err != nil {
		return WindowHandle{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.host.Navigate(ctx, handle.ID, page.Route()); err != nil {
		return WindowHandle{}, fmt.Errorf("navigate main window: %w", err)
	}
	if current, ok := m.byID[handle.ID]; ok {
		current.Route = page.Route()
		return *current, nil
	}
	return handle, nil
}

func (m *WindowManager) Close(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	if err := m.host.Destroy(ctx, id); err != nil {
		return fmt.Errorf("destroy %s window: %w", handle.Window.Type(), err)
	}

	delete(m.byID, id)
	delete(m.byKey, handle.Window.Key())
	m.logger.Info().Str("window", handle.Window.Key()).Str("id", id).Msg("window closed")
	return nil
}

func (m *WindowManager) CloseAll(ctx context.Context) error {
	var errs []error
	for _, handle := range m.List() {
		if err := m.Close(ctx, handle.ID); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close windows: %w", errors.Join(errs...))
	}
	return nil
}

func (m *WindowManager) Lookup(id string) (WindowHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle, ok := m.byID[id]
	if !ok {
		return WindowHandle{}, fmt.Errorf("%w: %s", domain.ErrWindowNotFound, id)
	}
	return *handle, nil
}

func (m *WindowManager) List() []WindowHandle {
	m.mu.Lock()
	handles := make([]WindowHandle, 0, len(m.byID))
	for _, handle := range m.byID {
		handles = append(handles, *handle)
	}
	m.mu.Unlock()

	sort.Slice(handles, func(i, j int) bool {
		if handles[i].OpenedAt.Equal(handles[j].OpenedAt) {
			return handles[i].Window.Key() < handles[j].Window.Key()
		}
		return handles[i].OpenedAt.Before(handles[j].OpenedAt)
	})
	return handles
}
