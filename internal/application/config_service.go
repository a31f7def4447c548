package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
)

type ConfigService struct {
	store    ports.StateStore
	platform ports.Platform
}

func NewConfigService(store ports.StateStore, platform ports.Platform) *ConfigService {
	return &ConfigService{store: store, platform: platform}
}

// Seed persists the default configuration on first run and returns the
// stored state.
func (s *ConfigService) Seed(ctx context.Context) (domain.Config, bool, error) {
	cfg, err := s.store.Load(ctx)
	if err == nil {
		return cfg, false, nil
	}
	if !errors.Is(err, domain.ErrStateNotFound) {
		return domain.Config{}, false, fmt.Errorf("load state: %w", err)
	}

	cfg = domain.DefaultConfig(s.release())

	if err := s.store.Save(ctx, cfg); err != nil {
		return domain.Config{}, false, fmt.Errorf("save seeded state: %w", err)
	}

	return cfg, true, nil
}

// Reset overwrites the stored state with the first-run defaults.
func (s *ConfigService) Reset(ctx context.Context) (domain.Config, error) {
	cfg := domain.DefaultConfig(s.release())
	if err := s.store.Save(ctx, cfg); err != nil {
		return domain.Config{}, fmt.Errorf("save default state: %w", err)
	}
	return cfg, nil
}

func (s *ConfigService) Get(ctx context.Context) (domain.Config, error) {
	cfg, _, err := s.Seed(ctx)
	return cfg, err
}

func (s *ConfigService) SetMainWindowBounds(ctx context.Context, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid main window bounds %dx%d", width, height)
	}

	return s.update(ctx, "save main window bounds", func(cfg *domain.Config) error {
		cfg.Window.Main.Width = width
		cfg.Window.Main.Height = height
		return nil
	})
}

func (s *ConfigService) SetMainWindowShown(ctx context.Context, show bool) error {
	return s.update(ctx, "save main window visibility", func(cfg *domain.Config) error {
		cfg.Window.Main.Show = show
		return nil
	})
}

func (s *ConfigService) SetZoomFix(ctx context.Context, enabled bool) error {
	return s.update(ctx, "save zoom fix", func(cfg *domain.Config) error {
		cfg.Compatibility.ZoomFix = enabled
		return nil
	})
}

func (s *ConfigService) AddProject(ctx context.Context, id, path string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("project id is required")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("project path is required")
	}

	return s.update(ctx, "save project", func(cfg *domain.Config) error {
		cfg.Project[id] = domain.ProjectConfig{Path: path}
		return nil
	})
}

func (s *ConfigService) RemoveProject(ctx context.Context, id string) error {
	return s.update(ctx, "remove project", func(cfg *domain.Config) error {
		if _, ok := cfg.Project[id]; !ok {
			return fmt.Errorf("project %q not found", id)
		}
		delete(cfg.Project, id)
		return nil
	})
}

func (s *ConfigService) release() string {
	if s.platform == nil {
		return ""
	}
	return s.platform.Release()
}

func (s *ConfigService) update(ctx context.Context, op string, mutate func(*domain.Config) error) error {
	current, _, err := s.Seed(ctx)
	if err != nil {
		return err
	}

	cfg := current.Clone()
	if err := mutate(&cfg); err != nil {
		return err
	}

	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
