package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// Client wraps chat completions for summary generation. An answer with no
// usable candidate text is returned as an empty string, not an error.
type Client struct {
	client openaigo.Client
	model  string
	log    *slog.Logger
}

func New(cfg *config.OpenAIConfig) *Client {
	log := slog.Default()
	log.Debug("creating openai client",
		slog.String("base_url", cfg.BaseURL),
		slog.String("model", cfg.SummaryModel))

	client := openaigo.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")),
		option.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		option.WithRequestTimeout(cfg.RequestTimeout),
	)

	return &Client{
		client: client,
		model:  cfg.SummaryModel,
		log:    log,
	}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, document string, maxTokens int64) (string, error) {
	c.log.Info("Complete called", slog.Int("document_length", len(document)))

	resp, err := c.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(systemPrompt),
			openaigo.UserMessage(document),
		},
		MaxTokens: openaigo.Int(maxTokens),
	})
	if err != nil {
		c.log.Error("chat completion failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", entity.ErrRemote, err)
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("chat completion returned no choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
