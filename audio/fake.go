package audio

import "sync"

// FakeContext hands out FakeCapture streams for tests. Each capture delivers
// the configured chunks to its callback when started; further chunks can be
// injected with Emit.
type FakeContext struct {
	Chunks [][]byte

	mu       sync.Mutex
	captures []*FakeCapture
}

func NewFakeContext(chunks ...[]byte) *FakeContext {
	return &FakeContext{Chunks: chunks}
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) { return nil, nil }
func (f *FakeContext) Close()                         {}

func (f *FakeContext) NewCapture(_ *DeviceInfo, _ CaptureConfig, cb DataCallback) (CaptureDevice, error) {
	c := &FakeCapture{chunks: f.Chunks, cb: cb}
	f.mu.Lock()
	f.captures = append(f.captures, c)
	f.mu.Unlock()
	return c, nil
}

// Captures returns every capture handed out so far, in creation order.
func (f *FakeContext) Captures() []*FakeCapture {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*FakeCapture(nil), f.captures...)
}

type FakeCapture struct {
	chunks [][]byte
	cb     DataCallback

	mu      sync.Mutex
	started bool
	stopped bool
	closed  bool
}

func (c *FakeCapture) Start() error {
	c.mu.Lock()
	c.started = true
	c.mu.Unlock()
	for _, chunk := range c.chunks {
		c.cb(chunk, uint32(len(chunk)/2))
	}
	return nil
}

// Emit delivers one more PCM chunk, as if the driver called back mid-session.
func (c *FakeCapture) Emit(data []byte) {
	c.cb(data, uint32(len(data)/2))
}

func (c *FakeCapture) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
}

func (c *FakeCapture) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *FakeCapture) DeviceName() string { return "fake" }

func (c *FakeCapture) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

func (c *FakeCapture) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
