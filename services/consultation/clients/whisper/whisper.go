package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// Client wraps the OpenAI audio transcription endpoint. One request per audio
// file, no retries; failures surface as entity.ErrRemote.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

func New(cfg *config.OpenAIConfig) *Client {
	log := slog.Default()
	log.Debug("creating whisper client",
		slog.String("base_url", cfg.BaseURL),
		slog.String("model", cfg.TranscribeModel),
		slog.Bool("api_key_set", cfg.APIKey != ""))
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.TranscribeModel,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log: log,
	}
}

func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename, mimetype string) (string, error) {
	c.log.Info("Transcribe called", slog.String("filename", filename), slog.String("mimetype", mimetype))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to copy audio data: %w", err)
	}
	if err := writer.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("HTTP request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", entity.ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("transcription API request failed",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(respBody)))
		return "", fmt.Errorf("%w: transcription API returned status %d: %s", entity.ErrRemote, resp.StatusCode, string(respBody))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Error("failed to decode response", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: failed to decode transcription response: %v", entity.ErrRemote, err)
	}

	c.log.Info("transcription succeeded", slog.Int("text_length", len(result.Text)))
	return result.Text, nil
}
