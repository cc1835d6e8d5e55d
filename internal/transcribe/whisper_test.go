package transcribe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake-audio"), 0o644))
	return path
}

func newTestWhisper(t *testing.T, handler http.HandlerFunc) *WhisperClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewWhisperClient(WhisperConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	return client
}

func TestWhisperClient_Transcribe(t *testing.T) {
	client := newTestWhisper(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "trip.mp3", header.Filename)

		fmt.Fprint(w, `{"text": "Five nights in Lisbon with my family"}`)
	})

	text, err := client.Transcribe(context.Background(), writeAudioFixture(t))
	require.NoError(t, err)
	assert.Equal(t, "Five nights in Lisbon with my family", text)
}

func TestWhisperClient_MissingFile(t *testing.T) {
	client := newTestWhisper(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Transcribe(context.Background(), "/does/not/exist.mp3")
	require.Error(t, err)
	assert.Equal(t, types.TRANSCRIBE_FILE_MISSING, types.ErrorCodeOf(err))
}

func TestWhisperClient_BackendError(t *testing.T) {
	client := newTestWhisper(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Transcribe(context.Background(), writeAudioFixture(t))
	require.Error(t, err)
	assert.Equal(t, types.TRANSCRIBE_FAILED, types.ErrorCodeOf(err))
}
