package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, reply string, capture *map[string]any) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProviderCompleteSendsContext(t *testing.T) {
	t.Parallel()

	var body map[string]any
	server := newChatServer(t, "\treturn nil\n", &body)

	provider := NewProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Model: "test-model"})
	text, err := provider.Complete(context.Background(), domain.CompletionContext{
		Language: "go",
		Scope:    "run",
		Prefix:   "func run() error {\n",
		Suffix:   "}\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "\treturn nil\n", text)

	assert.Equal(t, "test-model", body["model"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	user, ok := messages[1].(map[string]any)
	require.True(t, ok)
	content, _ := user["content"].(string)
	assert.Contains(t, content, "Language: go")
	assert.Contains(t, content, "Enclosing scope: run")
	assert.Contains(t, content, "func run() error {\n<CURSOR>}\n")
}

func TestProviderStripsMarkdownFences(t *testing.T) {
	t.Parallel()

	server := newChatServer(t, "```go\nreturn nil\n```", nil)
	provider := NewProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})

	text, err := provider.Complete(context.Background(), domain.CompletionContext{Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, "return nil", text)
}

func TestProviderReportsAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(server.Close)

	provider := NewProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	_, err := provider.Complete(context.Background(), domain.CompletionContext{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "openai chat completion")
}

func TestNewProviderDefaults(t *testing.T) {
	t.Parallel()

	provider := NewProvider(Config{})
	assert.Equal(t, DefaultModel, provider.model)
	assert.Equal(t, defaultMaxTokens, provider.maxTokens)
}
