package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

const defaultCompletionTimeout = 45 * time.Second

// CompletionService owns the completion:generate handler.
type CompletionService struct {
	extractor ports.ContextExtractor
	provider  ports.CompletionProvider
	clock     ports.Clock
	logger    zerolog.Logger
	timeout   time.Duration

	mu   sync.RWMutex
	last *domain.Completion
}

var _ ports.Service = (*CompletionService)(nil)

func NewCompletionService(extractor ports.ContextExtractor, provider ports.CompletionProvider, clock ports.Clock, logger zerolog.Logger) *CompletionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CompletionService{
		extractor: extractor,
		provider:  provider,
		clock:     clock,
		logger:    logger,
		timeout:   defaultCompletionTimeout,
	}
}

func (s *CompletionService) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(domain.ServiceCompletion)
}

func (s *CompletionService) Init(context.Context) error {
	if s.extractor == nil {
		return fmt.Errorf("completion context extractor is not configured")
	}
	if s.provider == nil {
		return fmt.Errorf("completion provider is not configured")
	}
	return nil
}

func (s *CompletionService) Register(registry *ActionRegistry) {
	registry.Register(domain.ActionCompletionGenerate, s.HandleGenerate)
}

func (s *CompletionService) HandleGenerate(msg domain.ActionMessage) error {
	req, err := DecodeCompletionRequest(msg.Data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err = s.Generate(ctx, req)
	return err
}

// Generate returns the completion for req itself; concurrent callers never
// observe each other's results. Last only reflects the most recent run.
func (s *CompletionService) Generate(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	if s.extractor == nil || s.provider == nil {
		return domain.Completion{}, domain.ErrNoCompleter
	}
	if err := ValidateCompletionRequest(req); err != nil {
		return domain.Completion{}, err
	}

	completionCtx, err := s.extractor.Extract(ctx, req)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("extract completion context: %w", err)
	}

	text, err := s.provider.Complete(ctx, completionCtx)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("generate completion: %w", err)
	}

	completion := domain.Completion{
		Path:        req.Path,
		Language:    completionCtx.Language,
		Scope:       completionCtx.Scope,
		Text:        text,
		GeneratedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.last = &completion
	s.mu.Unlock()

	s.logger.Debug().Str("path", req.Path).Str("scope", completionCtx.Scope).Msg("completion generated")
	return completion, nil
}

func (s *CompletionService) Last() (domain.Completion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return domain.Completion{}, false
	}
	return *s.last, true
}

func DecodeCompletionRequest(data string) (domain.CompletionRequest, error) {
	var req domain.CompletionRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return domain.CompletionRequest{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if err := ValidateCompletionRequest(req); err != nil {
		return domain.CompletionRequest{}, err
	}
	return req, nil
}

func ValidateCompletionRequest(req domain.CompletionRequest) error {
	if strings.TrimSpace(req.Path) == "" {
		return fmt.Errorf("%w: path is required", domain.ErrInvalidPayload)
	}
	if req.Line < 0 || req.Column < 0 {
		return fmt.Errorf("%w: negative position", domain.ErrInvalidPayload)
	}
	return nil
}
