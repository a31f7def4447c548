package application

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

// AppService seeds persisted state and brings up the main window.
type AppService struct {
	config  *ConfigService
	windows *WindowManager
	logger  zerolog.Logger
}

var _ ports.Service = (*AppService)(nil)

func NewAppService(config *ConfigService, windows *WindowManager, logger zerolog.Logger) *AppService {
	return &AppService{config: config, windows: windows, logger: logger}
}

func (s *AppService) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(domain.ServiceApp)
}

func (s *AppService) Init(ctx context.Context) error {
	_, seeded, err := s.config.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded {
		s.logger.Info().Msg("seeded default configuration")
	}

	if _, err := s.windows.Open(ctx, domain.NewMainWindow()); err != nil {
		return fmt.Errorf("open main window: %w", err)
	}
	return nil
}

// UpdaterService only validates its feed; checking for and applying updates
// happens outside the shell.
type UpdaterService struct {
	feedURL string
	logger  zerolog.Logger
}

var _ ports.Service = (*UpdaterService)(nil)

func NewUpdaterService(feedURL string, logger zerolog.Logger) *UpdaterService {
	return &UpdaterService{feedURL: strings.TrimSpace(feedURL), logger: logger}
}

func (s *UpdaterService) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(domain.ServiceUpdater)
}

func (s *UpdaterService) Init(context.Context) error {
	if s.feedURL == "" {
		return domain.ErrUpdaterDisabled
	}

	parsed, err := url.Parse(s.feedURL)
	if err != nil {
		return fmt.Errorf("parse updater feed url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("updater feed url must use http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("updater feed url host is required")
	}

	s.logger.Debug().Str("feed", s.feedURL).Msg("updater feed configured")
	return nil
}

func (s *UpdaterService) FeedURL() string {
	return s.feedURL
}
