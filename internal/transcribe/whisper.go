package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

const (
	defaultWhisperBaseURL = "https://api.openai.com/v1"
	defaultWhisperModel   = "whisper-1"
)

// WhisperConfig configures the Whisper transcription client.
type WhisperConfig struct {
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Model   string        `mapstructure:"model" yaml:"model"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// WhisperClient implements Transcriber against the OpenAI audio
// transcription endpoint.
type WhisperClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewWhisperClient creates a Whisper client. The API key falls back to the
// OPENAI_API_KEY environment variable.
func NewWhisperClient(cfg WhisperConfig) (*WhisperClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, types.NewError(types.TRANSCRIBE_FAILED, "whisper: missing API key")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultWhisperBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultWhisperModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &WhisperClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the backend identifier
func (c *WhisperClient) Name() string {
	return "whisper"
}

// Transcribe uploads the audio file and returns the transcript text.
func (c *WhisperClient) Transcribe(ctx context.Context, path string) (string, error) {
	audio, err := os.Open(path)
	if err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FILE_MISSING,
			fmt.Sprintf("cannot open audio file %q", path), err)
	}
	defer audio.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: build upload", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: read audio", err)
	}
	if err := writer.WriteField("model", c.model); err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: build upload", err)
	}
	if err := writer.Close(); err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: build upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", types.NewError(types.TRANSCRIBE_FAILED,
			fmt.Sprintf("whisper: status %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", types.WrapError(types.TRANSCRIBE_FAILED, "whisper: parse response", err)
	}

	return parsed.Text, nil
}
