package whisper

import (
	"bytes"
	"io"
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
		APIKey:          "test-key",
		BaseURL:         baseURL,
		TranscribeModel: "whisper-1",
		RequestTimeout:  5 * time.Second,
	})
}

func TestTranscribeSendsMultipartRequest(t *testing.T) {
	var gotAuth, gotModel, gotFilename string
	var gotAudio []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotAudio, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "hello from whisper"}`))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	text, err := client.Transcribe(t.Context(), bytes.NewReader([]byte("audio bytes")), "visit.mp3", "audio/mpeg")
	require.NoError(t, err)
	require.Equal(t, "hello from whisper", text)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "whisper-1", gotModel)
	require.Equal(t, "visit.mp3", gotFilename)
	require.Equal(t, []byte("audio bytes"), gotAudio)
}

func TestTranscribeNonOKStatusIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	_, err := client.Transcribe(t.Context(), bytes.NewReader([]byte("audio")), "visit.mp3", "audio/mpeg")
	require.ErrorIs(t, err, entity.ErrRemote)
	require.ErrorContains(t, err, "429")
}

func TestTranscribeTransportFailureIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newClient(srv.URL)
	_, err := client.Transcribe(t.Context(), bytes.NewReader([]byte("audio")), "visit.mp3", "audio/mpeg")
	require.ErrorIs(t, err, entity.ErrRemote)
}

func TestTranscribeMalformedResponseIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newClient(srv.URL)
	_, err := client.Transcribe(t.Context(), bytes.NewReader([]byte("audio")), "visit.mp3", "audio/mpeg")
	require.ErrorIs(t, err, entity.ErrRemote)
}
