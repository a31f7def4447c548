package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
)

const (
	DefaultListenAddr = "127.0.0.1:3790"
	maxBodyBytes      = 16 << 20
)

type SyncApplier interface {
	Apply(ctx context.Context, req domain.SyncRequest) error
}

type CompletionGenerator interface {
	Generate(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error)
}

type WindowLister interface {
	List() []application.WindowHandle
}

// Dependencies are the application collaborators reached from HTTP routes.
// Windows is optional.
type Dependencies struct {
	Sync        SyncApplier
	Publisher   ports.ActionPublisher
	Dispatcher  ports.ActionDispatcher
	Completions CompletionGenerator
	Windows     WindowLister
}

// Server is the local backend that editor plugins and the renderer talk to.
type Server struct {
	addr   string
	deps   Dependencies
	logger zerolog.Logger

	handler  http.Handler
	server   *http.Server
	listener net.Listener
	errCh    chan error

	startOnce sync.Once
	closeOnce sync.Once
}

var _ ports.Service = (*Server)(nil)

func NewServer(addr string, deps Dependencies, logger zerolog.Logger) *Server {
	if addr == "" {
		addr = DefaultListenAddr
	}

	s := &Server{
		addr:   addr,
		deps:   deps,
		logger: logger,
		errCh:  make(chan error, 1),
	}
	s.handler = s.routes()
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) Descriptor() domain.Service {
	return domain.NewServiceDescriptor(domain.ServiceBackend)
}

// Init binds the listener and starts serving in the background.
func (s *Server) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Start()
}

func (s *Server) Start() error {
	var startErr error
	started := false
	s.startOnce.Do(func() {
		started = true

		listener, err := net.Listen("tcp", s.addr)
		if err != nil {
			startErr = fmt.Errorf("listen backend server: %w", err)
			return
		}
		s.listener = listener

		go func() {
			if serveErr := s.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				s.errCh <- serveErr
			}
			close(s.errCh)
		}()

		s.logger.Info().Str("addr", listener.Addr().String()).Msg("backend server listening")
	})
	if !started {
		return errors.New("backend server already started")
	}
	return startErr
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Err reports a serve failure and is closed when serving stops.
func (s *Server) Err() <-chan error {
	return s.errCh
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.closeOnce.Do(func() {
		if s.listener == nil {
			return
		}
		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("shutdown backend server: %w", err)
			return
		}
		s.logger.Info().Msg("backend server stopped")
	})
	return shutdownErr
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/sync", s.handleSync)
	r.Post("/actions", s.handleAction)
	r.Post("/completion", s.handleCompletion)
	if s.deps.Windows != nil {
		r.Get("/windows", s.handleWindows)
	}

	return gzhttp.GzipHandler(r)
}
