package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	goopenai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 256
)

const systemPrompt = "You are a code completion engine. Reply with only the code that belongs at the cursor, " +
	"without explanations or markdown fences."

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Provider asks an OpenAI-compatible chat endpoint for the text at the cursor.
type Provider struct {
	client    *goopenai.Client
	model     string
	maxTokens int
}

var _ ports.CompletionProvider = (*Provider)(nil)

func NewProvider(cfg Config) *Provider {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Provider{
		client:    goopenai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (p *Provider) Complete(ctx context.Context, completionCtx domain.CompletionContext) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: buildPrompt(completionCtx)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion returned no choices")
	}

	return stripFences(resp.Choices[0].Message.Content), nil
}

func buildPrompt(completionCtx domain.CompletionContext) string {
	var b strings.Builder
	language := completionCtx.Language
	if language == "" {
		language = "plain text"
	}
	fmt.Fprintf(&b, "Language: %s\n", language)
	if completionCtx.Scope != "" {
		fmt.Fprintf(&b, "Enclosing scope: %s\n", completionCtx.Scope)
	}
	b.WriteString("Complete the code at <CURSOR>.\n\n")
	b.WriteString(completionCtx.Prefix)
	b.WriteString("<CURSOR>")
	b.WriteString(completionCtx.Suffix)
	return b.String()
}

func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return ""
	}
	lines = lines[1:]
	if last := len(lines) - 1; strings.TrimSpace(lines[last]) == "```" {
		lines = lines[:last]
	}
	return strings.Join(lines, "\n")
}
