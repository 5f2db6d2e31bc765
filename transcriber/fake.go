package transcriber

import (
	"context"
	"sync"
	"time"
)

// Fake returns canned segments after an optional delay and records every
// request it sees, so tests can drive the controller without a network.
type Fake struct {
	Segments []string
	Err      error
	Delay    time.Duration

	mu       sync.Mutex
	requests []Request
}

func NewFake(segments []string, err error) *Fake {
	return &Fake{Segments: segments, Err: err}
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Transcribe(ctx context.Context, req Request) ([]string, error) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Segments, nil
}

// Requests returns the requests seen so far, in completion order.
func (f *Fake) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}
