// Package transcriber turns sealed sample buffers into text segments.
// Backends: a local whisper.cpp server (default) and the hosted Groq
// whisper API. Knobs like model size, compute device and precision are
// forwarded as-is; the engine behind the API validates them.
package transcriber

import (
	"context"
	"net/http"
	"time"
)

// Request carries one session's audio and the hints that shape the output.
type Request struct {
	Samples    []int16
	SampleRate int
	Language   string // optional language hint; empty = auto-detect
	Prompt     string // priming text biasing the model toward punctuation
}

type Transcriber interface {
	Name() string
	// Transcribe returns the recognized text as ordered segments. An empty
	// slice (or segments that join to "") means no speech was recognized.
	Transcribe(ctx context.Context, req Request) ([]string, error)
}

// Options selects and configures a backend.
type Options struct {
	ServerURL string // whisper.cpp server endpoint
	Model     string
	Device    string
	Compute   string
	GroqKey   string // non-empty selects the hosted backend
}

// New picks the hosted backend when an API key is present, otherwise the
// local whisper.cpp server.
func New(opts Options) Transcriber {
	if opts.GroqKey != "" {
		return NewGroq(opts.GroqKey)
	}
	return NewWhisperd(opts.ServerURL, opts.Model, opts.Device, opts.Compute)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 120 * time.Second}
}
