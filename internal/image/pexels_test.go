package image

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPexelsClient_Lookup(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "key-123", r.Header.Get("Authorization"))
			assert.Equal(t, "Paris, France", r.URL.Query().Get("query"))
			json.NewEncoder(w).Encode(map[string]any{
				"photos": []map[string]any{
					{"src": map[string]string{"large": srv.URL + "/photo.jpg"}},
				},
			})
		case "/photo.jpg":
			w.Write([]byte("jpeg-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client, err := NewPexelsClient(PexelsConfig{
		APIKey:  "key-123",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)

	result, err := client.Lookup(context.Background(), "Paris, France")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/photo.jpg", result.URL)
	assert.Equal(t, []byte("jpeg-bytes"), result.Data)
}

func TestPexelsClient_NoPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"photos": []}`)
	}))
	defer srv.Close()

	client, err := NewPexelsClient(PexelsConfig{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "nowhere")
	require.Error(t, err)
}

func TestNewPexelsClient_RequiresKey(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "")

	_, err := NewPexelsClient(PexelsConfig{})
	require.Error(t, err)
}
