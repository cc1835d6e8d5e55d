package transcribe

import (
	"context"
)

// Transcriber converts an audio recording into text. A failed transcription
// is fatal to the current planning request; there is no retry.
type Transcriber interface {
	// Name returns the backend identifier (e.g., "whisper")
	Name() string

	// Transcribe reads the audio file at path and returns its transcript.
	Transcribe(ctx context.Context, path string) (string, error)
}
