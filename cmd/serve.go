package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/assistant-shell/internal/adapters/completion/openai"
	"github.com/bnema/assistant-shell/internal/adapters/completion/treesitter"
	"github.com/bnema/assistant-shell/internal/adapters/httpapi"
	"github.com/bnema/assistant-shell/internal/adapters/ipc"
	"github.com/bnema/assistant-shell/internal/adapters/watcher"
	"github.com/bnema/assistant-shell/internal/adapters/window/headless"
	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/fsutil"
	"github.com/bnema/assistant-shell/internal/logging"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(app *app) *cobra.Command {
	var listen string
	var root string
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the shell backend",
		Long:  "Seed configuration, open the main window, initialize services in order and serve the local backend until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen != "" {
				app.cfg.Set(keyServerListen, listen)
			}
			if root != "" {
				app.cfg.Set(keyWorkspaceRoot, root)
			}
			if noWatch {
				app.cfg.Set(keyWatcherEnabled, false)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sh, err := newShell(ctx, app)
			if err != nil {
				return err
			}
			if err := sh.start(ctx); err != nil {
				sh.close()
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ashell listening on http://%s\n", sh.server.Addr())
			return sh.wait()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "backend listen address (default from server.listen)")
	cmd.Flags().StringVar(&root, "root", "", "workspace root synced files are written under (default: working directory)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not watch the workspace for changes")

	return cmd
}

// shell holds every long-lived component of a running backend.
type shell struct {
	logger     zerolog.Logger
	root       string
	watch      bool
	debounce   time.Duration
	recent     *fsutil.RecentWrites
	registry   *application.ActionRegistry
	host       *headless.Host
	windows    *application.WindowManager
	journal    ports.SyncJournal
	closeStore func() error
	bus        *ipc.Bus
	server     *httpapi.Server
	app        *application.AppService
	updater    *application.UpdaterService
	svn        *application.SVNService
	completion *application.CompletionService
	report     application.InitReport

	group *errgroup.Group
}

func newShell(ctx context.Context, app *app) (*shell, error) {
	root, err := app.workspaceRoot()
	if err != nil {
		return nil, err
	}

	policy, err := application.ParseUnhandledPolicy(app.cfg.GetString(keyUnhandledAction))
	if err != nil {
		return nil, err
	}

	journal, err := app.openJournal()
	if err != nil {
		return nil, err
	}

	logger := app.logger
	registry := application.NewActionRegistry(
		application.WithUnhandledPolicy(policy),
		application.WithRegistryLogger(logging.Component(logger, "registry")),
	)
	host := headless.NewHost(logging.Component(logger, "window"))
	windows := application.NewWindowManager(host, app.config, nil, logging.Component(logger, "window"))

	completion := application.NewCompletionService(
		treesitter.NewExtractor(),
		openai.NewProvider(openai.Config{
			APIKey:  app.completionAPIKey(ctx),
			BaseURL: app.cfg.GetString(keyCompletionURL),
			Model:   app.cfg.GetString(keyCompletionModel),
		}),
		nil,
		logging.Component(logger, "completion"),
	)
	recent := fsutil.NewRecentWrites(0)
	sync := application.NewSyncService(root, journal, registry, nil, logging.Component(logger, "sync")).TrackWrites(recent)
	bus := ipc.NewBus(logging.Component(logger, "bus"))

	server := httpapi.NewServer(app.cfg.GetString(keyServerListen), httpapi.Dependencies{
		Sync:        sync,
		Publisher:   bus,
		Dispatcher:  registry,
		Completions: completion,
		Windows:     windows,
	}, logging.Component(logger, "http"))

	debounce := app.cfg.GetDuration(keyWatcherDebounce)
	if debounce <= 0 {
		debounce = watcher.DefaultDebounce
	}

	return &shell{
		logger:     logger,
		root:       root,
		watch:      app.cfg.GetBool(keyWatcherEnabled),
		debounce:   debounce,
		recent:     recent,
		registry:   registry,
		host:       host,
		windows:    windows,
		journal:    journal,
		closeStore: journal.Close,
		bus:        bus,
		server:     server,
		app:        application.NewAppService(app.config, windows, logging.Component(logger, "app")),
		updater:    application.NewUpdaterService(app.cfg.GetString(keyUpdaterFeed), logging.Component(logger, "updater")),
		svn:        application.NewSVNService(root, app.vcs, logging.Component(logger, "svn")),
		completion: completion,
	}, nil
}

// start brings services up in order: app, updater, svn and completion, then
// the action bus, then the backend server. Handlers are registered only for
// services that initialized.
func (s *shell) start(ctx context.Context) error {
	boot := application.NewBootstrap(nil, logging.Component(s.logger, "bootstrap"))

	report, err := boot.Run(ctx,
		application.Required(s.app),
		application.Optional(s.updater),
		application.Optional(s.svn),
		application.Optional(s.completion),
	)
	s.report = report
	if err != nil {
		return err
	}

	if report.Err(domain.ServiceSVN) == nil {
		s.svn.Register(s.registry)
	}
	if report.Err(domain.ServiceCompletion) == nil {
		s.completion.Register(s.registry)
	}

	group, gctx := errgroup.WithContext(ctx)
	s.group = group

	if err := s.bus.Start(gctx, s.registry); err != nil {
		return err
	}

	backend, err := boot.Run(gctx, application.Required(s.server))
	s.report.Results = append(s.report.Results, backend.Results...)
	if err != nil {
		return err
	}

	if s.watch && report.Err(domain.ServiceSVN) == nil {
		w := watcher.New(s.root, s.bus, s.debounce, logging.Component(s.logger, "watcher")).IgnoreRecent(s.recent)
		group.Go(func() error {
			return w.Run(gctx)
		})
	}

	group.Go(func() error {
		select {
		case err, ok := <-s.server.Err():
			if ok && err != nil {
				return fmt.Errorf("backend server: %w", err)
			}
			return nil
		case <-gctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.server.Shutdown(shutdownCtx)
		}
	})

	group.Go(func() error {
		<-gctx.Done()
		if err := s.windows.CloseAll(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("close windows")
		}
		return nil
	})

	s.logger.Info().
		Str("root", s.root).
		Int("optional_failures", len(report.Failed())).
		Msg("shell started")
	return nil
}

// wait blocks until the shell stops and releases its resources.
func (s *shell) wait() error {
	var err error
	if s.group != nil {
		err = s.group.Wait()
	}
	s.close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *shell) close() {
	if err := s.bus.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("close action bus")
	}
	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			s.logger.Warn().Err(err).Msg("close sync journal")
		}
	}
}
