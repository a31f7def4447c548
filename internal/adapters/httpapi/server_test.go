package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	root      string
	registry  *application.ActionRegistry
	publisher *mocks.MockActionPublisher
	server    *Server
	synced    []string
}

func newTestEnv(t *testing.T, extractor *mocks.MockContextExtractor, provider *mocks.MockCompletionProvider) *testEnv {
	t.Helper()

	env := &testEnv{
		root:      t.TempDir(),
		registry:  application.NewActionRegistry(application.WithUnhandledPolicy(application.UnhandledFail)),
		publisher: mocks.NewMockActionPublisher(t),
	}
	env.registry.Register(domain.ActionSync, func(msg domain.ActionMessage) error {
		env.synced = append(env.synced, msg.Data)
		return nil
	})

	completions := application.NewCompletionService(extractor, provider, nil, zerolog.Nop())
	if extractor != nil {
		completions.Register(env.registry)
	}

	env.server = NewServer("127.0.0.1:0", Dependencies{
		Sync:        application.NewSyncService(env.root, nil, env.registry, nil, zerolog.Nop()),
		Publisher:   env.publisher,
		Dispatcher:  env.registry,
		Completions: completions,
	}, zerolog.Nop())
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestSyncWritesFileAndDispatches(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodPost, "/sync", `{"content":"hello","path":"docs/readme.md"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	data, err := os.ReadFile(filepath.Join(env.root, "docs", "readme.md"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, []string{"docs/readme.md"}, env.synced)
}

func TestSyncRejectsBadRequests(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)

	rec := env.do(t, http.MethodPost, "/sync", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "decode request body")

	rec = env.do(t, http.MethodPost, "/sync", `{"content":"x","path":"../escape"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), domain.ErrInvalidSyncPath.Error())
	assert.Empty(t, env.synced)
}

func TestActionsPublishesOnBus(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	env.publisher.EXPECT().
		Publish(mock.Anything, domain.NewActionMessage(domain.ActionSync, "a/b.txt")).
		Return(nil).Once()

	rec := env.do(t, http.MethodPost, "/actions", `{"action":"sync","data":"a/b.txt"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestActionsRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodPost, "/actions", `{"action":"reboot","data":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "unknown action")
}

func TestActionsPublishFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	env.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("bus closed")).Once()

	rec := env.do(t, http.MethodPost, "/actions", `{"action":"sync","data":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCompletionGeneratesAndReturnsResult(t *testing.T) {
	t.Parallel()

	extractor := mocks.NewMockContextExtractor(t)
	provider := mocks.NewMockCompletionProvider(t)
	req := domain.CompletionRequest{Path: "main.go", Content: "package main\n", Line: 1}
	extractor.EXPECT().Extract(mock.Anything, req).Return(domain.CompletionContext{Language: "go"}, nil).Once()
	provider.EXPECT().Complete(mock.Anything, domain.CompletionContext{Language: "go"}).Return("func main() {}", nil).Once()

	env := newTestEnv(t, extractor, provider)
	rec := env.do(t, http.MethodPost, "/completion", `{"path":"main.go","content":"package main\n","line":1,"column":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var completion domain.Completion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&completion))
	assert.Equal(t, "main.go", completion.Path)
	assert.Equal(t, "go", completion.Language)
	assert.Equal(t, "func main() {}", completion.Text)
}

func TestCompletionReturnsOwnResultWhenBusRequestsInterleave(t *testing.T) {
	t.Parallel()

	extractor := mocks.NewMockContextExtractor(t)
	provider := mocks.NewMockCompletionProvider(t)
	extractor.EXPECT().Extract(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, req domain.CompletionRequest) (domain.CompletionContext, error) {
			return domain.CompletionContext{Language: "go", Prefix: req.Path}, nil
		})

	env := newTestEnv(t, extractor, provider)
	busGenerate := func(path string) {
		data, err := json.Marshal(domain.CompletionRequest{Path: path})
		require.NoError(t, err)
		require.NoError(t, env.registry.Dispatch(domain.NewActionMessage(domain.ActionCompletionGenerate, string(data))))
	}

	provider.EXPECT().Complete(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, cc domain.CompletionContext) (string, error) {
			if cc.Prefix == "mine.go" {
				// a bus request finishes while this one is in flight
				busGenerate("other.go")
			}
			return "completion for " + cc.Prefix, nil
		})

	busGenerate("stale.go")

	rec := env.do(t, http.MethodPost, "/completion", `{"path":"mine.go"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var completion domain.Completion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&completion))
	assert.Equal(t, "mine.go", completion.Path)
	assert.Equal(t, "completion for mine.go", completion.Text)
}

func TestCompletionRejectsInvalidRequest(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, mocks.NewMockContextExtractor(t), mocks.NewMockCompletionProvider(t))
	rec := env.do(t, http.MethodPost, "/completion", `{"path":"main.go","column":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompletionWithoutHandlerIsNotImplemented(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodPost, "/completion", `{"path":"main.go"}`)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	rec := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWindowsRouteListsOpenWindows(t *testing.T) {
	t.Parallel()

	host := mocks.NewMockWindowHost(t)
	host.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	windows := application.NewWindowManager(host, nil, nil, zerolog.Nop())
	_, err := windows.Open(context.Background(), domain.NewSettingWindow())
	require.NoError(t, err)

	server := NewServer("127.0.0.1:0", Dependencies{Windows: windows}, zerolog.Nop())
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/windows", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []WindowResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "setting", body[0].Kind)
	assert.Equal(t, "/setting", body[0].Route)
}

func TestServerLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, nil)
	require.NoError(t, env.server.Init(context.Background()))
	assert.Equal(t, domain.ServiceBackend, env.server.Descriptor().Type())
	require.Error(t, env.server.Start())

	resp, err := http.Get("http://" + env.server.Addr() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, env.server.Shutdown(ctx))

	select {
	case err, ok := <-env.server.Err():
		assert.False(t, ok, "unexpected serve error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve loop did not stop")
	}
}
