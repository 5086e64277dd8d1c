package openai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

func newClient(baseURL string) *Client {
	return New(&config.OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		SummaryModel:   "gpt-4",
		RequestTimeout: 5 * time.Second,
	})
}

func completionBody(content string) string {
	return `{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"model": "gpt-4",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": ` + mustQuote(content) + `},
				"finish_reason": "stop"
			}
		]
	}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		MaxTokens int64 `json:"max_tokens"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("a concise summary")))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	content, err := client.Complete(t.Context(), "system prompt", "the document", 1024)
	require.NoError(t, err)
	require.Equal(t, "a concise summary", content)

	require.Equal(t, "gpt-4", gotBody.Model)
	require.EqualValues(t, 1024, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 2)
	require.Equal(t, "system", gotBody.Messages[0].Role)
	require.Equal(t, "system prompt", gotBody.Messages[0].Content)
	require.Equal(t, "user", gotBody.Messages[1].Role)
	require.Equal(t, "the document", gotBody.Messages[1].Content)
}

func TestCompleteEmptyChoicesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "model": "gpt-4", "choices": []}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	content, err := client.Complete(t.Context(), "system prompt", "the document", 1024)
	require.NoError(t, err)
	require.Equal(t, "", content)
}

func TestCompleteAPIFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	_, err := client.Complete(t.Context(), "system prompt", "the document", 1024)
	require.ErrorIs(t, err, entity.ErrRemote)
}
