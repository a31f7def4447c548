package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	credentialchain "github.com/bnema/assistant-shell/internal/adapters/credentials/chain"
	credentialfile "github.com/bnema/assistant-shell/internal/adapters/credentials/file"
	credentialpass "github.com/bnema/assistant-shell/internal/adapters/credentials/pass"
	sqlitejournal "github.com/bnema/assistant-shell/internal/adapters/journal/sqlite"
	"github.com/bnema/assistant-shell/internal/adapters/platform"
	tomlstore "github.com/bnema/assistant-shell/internal/adapters/store/toml"
	svnadapter "github.com/bnema/assistant-shell/internal/adapters/svn"
	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/logging"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "ASHELL"

const (
	keyWorkspaceRoot    = "workspace.root"
	keyServerListen     = "server.listen"
	keyLogLevel         = "log.level"
	keyLogFile          = "log.file"
	keyLogConsole       = "log.console"
	keyCompletionURL    = "completion.base_url"
	keyCompletionModel  = "completion.model"
	keyCompletionAPIKey = "completion.api_key"
	keyUpdaterFeed      = "updater.feed_url"
	keyUnhandledAction  = "unhandled_action"
	keyWatcherDebounce  = "watcher.debounce"
	keyWatcherEnabled   = "watcher.enabled"
	keyCredentials      = "credentials.backend"
	keyCredentialsDir   = "credentials.dir"
)

const completionKeyCredential = "completion/api_key"

type app struct {
	cfg        *viper.Viper
	logger     zerolog.Logger
	logCloser  io.Closer
	platform   ports.Platform
	store      ports.StateStore
	statePath  string
	config     *application.ConfigService
	vcs        ports.VersionControl
	creds      ports.CredentialStore
	httpClient *http.Client
	now        func() time.Time
}

var newLogger = logging.New

func wireApp() (*app, error) {
	cfg := newConfig()

	store, err := tomlstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	logger, closer, err := newLogger(logging.Config{
		Level:   cfg.GetString(keyLogLevel),
		File:    cfg.GetString(keyLogFile),
		Console: cfg.GetBool(keyLogConsole),
	})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	creds, err := newCredentialStore(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	host := platform.New()

	return &app{
		cfg:        cfg,
		logger:     logger,
		logCloser:  closer,
		platform:   host,
		store:      store,
		statePath:  store.Path(),
		config:     application.NewConfigService(store, host),
		vcs:        svnadapter.NewClient(),
		creds:      creds,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		now:        time.Now,
	}, nil
}

// newConfig declares every key with its default. The state store reads
// ~/.ashell/config.toml into it; ASHELL_* variables override both.
func newConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		cfg.SetDefault(keyLogFile, filepath.Join(home, ".ashell", "logs", "main.log"))
		cfg.SetDefault(keyCredentialsDir, filepath.Join(home, ".ashell", "credentials"))
	}
	cfg.SetDefault(keyServerListen, "127.0.0.1:3790")
	cfg.SetDefault(keyLogLevel, logging.DefaultLevel)
	cfg.SetDefault(keyLogConsole, false)
	cfg.SetDefault(keyCompletionModel, "gpt-4o-mini")
	cfg.SetDefault(keyUnhandledAction, string(application.UnhandledLog))
	cfg.SetDefault(keyWatcherDebounce, 500*time.Millisecond)
	cfg.SetDefault(keyWatcherEnabled, true)
	cfg.SetDefault(keyCredentials, "auto")

	return cfg
}

func (a *app) workspaceRoot() (string, error) {
	root := a.cfg.GetString(keyWorkspaceRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve workspace root: %w", err)
	}
	return abs, nil
}

// newCredentialStore selects the credential backend: auto tries pass first
// and falls back to files.
func newCredentialStore(cfg *viper.Viper) (ports.CredentialStore, error) {
	dir := cfg.GetString(keyCredentialsDir)

	switch backend := strings.ToLower(cfg.GetString(keyCredentials)); backend {
	case "auto", "":
		store, err := credentialchain.NewPassWithFileFallback(dir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "pass":
		return credentialpass.NewStore(), nil
	case "file":
		return credentialfile.NewStore(dir), nil
	default:
		return nil, fmt.Errorf("unsupported credentials backend %q (want auto, pass or file)", backend)
	}
}

// completionAPIKey resolves the provider key from configuration, then the
// credential store, then OPENAI_API_KEY.
func (a *app) completionAPIKey(ctx context.Context) string {
	if key := a.cfg.GetString(keyCompletionAPIKey); key != "" {
		return key
	}

	key, err := a.creds.Get(ctx, completionKeyCredential)
	switch {
	case err == nil && key != "":
		return key
	case err != nil && !errors.Is(err, domain.ErrCredentialMissing):
		a.logger.Warn().Err(err).Msg("read completion api key from credential store")
	}
	return os.Getenv("OPENAI_API_KEY")
}

func (a *app) openJournal() (*sqlitejournal.Journal, error) {
	journal, err := sqlitejournal.NewJournal(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open sync journal: %w", err)
	}
	return journal, nil
}

func (a *app) serverURL(path string) string {
	return "http://" + a.cfg.GetString(keyServerListen) + path
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
