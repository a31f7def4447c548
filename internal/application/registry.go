package application

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
)

type ActionHandler func(msg domain.ActionMessage) error

// UnhandledPolicy decides what Dispatch does with an action nobody registered.
type UnhandledPolicy string

const (
	UnhandledIgnore UnhandledPolicy = "ignore"
	UnhandledLog    UnhandledPolicy = "log"
	UnhandledFail   UnhandledPolicy = "fail"
)

func (p UnhandledPolicy) Valid() bool {
	switch p {
	case UnhandledIgnore, UnhandledLog, UnhandledFail:
		return true
	default:
		return false
	}
}

func ParseUnhandledPolicy(raw string) (UnhandledPolicy, error) {
	if raw == "" {
		return UnhandledLog, nil
	}
	policy := UnhandledPolicy(raw)
	if !policy.Valid() {
		return "", fmt.Errorf("unsupported unhandled action policy %q", raw)
	}
	return policy, nil
}

// ActionRegistry maps each action to exactly one handler. Registering an
// action again replaces its handler.
type ActionRegistry struct {
	mu       sync.RWMutex
	handlers map[domain.ActionKind]ActionHandler
	policy   UnhandledPolicy
	logger   zerolog.Logger
}

var _ ports.ActionDispatcher = (*ActionRegistry)(nil)

type RegistryOption func(*ActionRegistry)

func WithUnhandledPolicy(policy UnhandledPolicy) RegistryOption {
	return func(r *ActionRegistry) {
		if policy.Valid() {
			r.policy = policy
		}
	}
}

func WithRegistryLogger(logger zerolog.Logger) RegistryOption {
	return func(r *ActionRegistry) {
		r.logger = logger
	}
}

func NewActionRegistry(opts ...RegistryOption) *ActionRegistry {
	registry := &ActionRegistry{
		handlers: map[domain.ActionKind]ActionHandler{},
		policy:   UnhandledLog,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

func (r *ActionRegistry) Register(action domain.ActionKind, handler ActionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[action] = handler
}

// Dispatch runs the handler registered for msg.Action on the calling
// goroutine. The handler's error is returned unchanged.
func (r *ActionRegistry) Dispatch(msg domain.ActionMessage) error {
	r.mu.RLock()
	handler, ok := r.handlers[msg.Action]
	r.mu.RUnlock()

	if !ok || handler == nil {
		return r.unhandled(msg)
	}

	return handler(msg)
}

func (r *ActionRegistry) Registered(action domain.ActionKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[action]
	return ok && handler != nil
}

func (r *ActionRegistry) Actions() []domain.ActionKind {
	r.mu.RLock()
	actions := make([]domain.ActionKind, 0, len(r.handlers))
	for action := range r.handlers {
		actions = append(actions, action)
	}
	r.mu.RUnlock()

	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

func (r *ActionRegistry) Policy() UnhandledPolicy {
	return r.policy
}

func (r *ActionRegistry) unhandled(msg domain.ActionMessage) error {
	switch r.policy {
	case UnhandledFail:
		return fmt.Errorf("%w: %q", domain.ErrUnhandledAction, msg.Action)
	case UnhandledLog:
		r.logger.Warn().Str("action", string(msg.Action)).Msg("no handler registered for action")
		return nil
	default:
		return nil
	}
}
