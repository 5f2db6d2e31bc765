//go:build linux

package chord

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const (
	evKey = 1
	keyA  = 30
	keyZ  = 44
)

// input_event is 24 bytes on 64-bit Linux:
// timeval (16 bytes) + type (2) + code (2) + value (4)
const inputEventSize = 24

type evdevSource struct {
	events chan Event
	files  []*os.File
	stop   chan struct{}
	once   sync.Once
}

// NewSource creates a key-event source that reads /dev/input directly.
// Requires the user to be in the 'input' group.
func NewSource() Source {
	return &evdevSource{events: make(chan Event, 64)}
}

func (s *evdevSource) Open() error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	s.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		s.files = append(s.files, f)
		go s.readEvents(f)
	}

	if len(s.files) == 0 {
		return fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}

	return nil
}

func (s *evdevSource) readEvents(f *os.File) {
	buf := make([]byte, inputEventSize*16)

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))

			if evType != evKey {
				continue
			}
			// value 2 is auto-repeat; the detector only wants real edges
			if evValue != 0 && evValue != 1 {
				continue
			}

			select {
			case s.events <- Event{Code: evCode, Pressed: evValue == 1}:
			case <-s.stop:
				return
			}
		}
	}
}

func (s *evdevSource) Events() <-chan Event {
	return s.events
}

func (s *evdevSource) Close() {
	s.once.Do(func() {
		if s.stop != nil {
			close(s.stop)
		}
		for _, f := range s.files {
			f.Close()
		}
	})
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, filepath.Join("/dev/input", e.Name()))
		}
	}
	return keyboards, nil
}

// isKeyboard reports whether the device advertises both KEY_A and KEY_Z,
// which separates real keyboards from headset buttons and power keys. Only
// the endpoints are tested; some layouts route codes in between elsewhere.
func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	caps := strings.TrimSpace(string(data))
	return hasKey(caps, keyA) && hasKey(caps, keyZ)
}

// hasKey parses a sysfs key capability bitmap (space-separated 64-bit hex
// words, highest word first) and reports whether the key code's bit is set.
func hasKey(caps string, code int) bool {
	fields := strings.Fields(caps)
	if len(fields) == 0 {
		return false
	}
	words := make([]uint64, len(fields))
	for i, f := range fields {
		w, err := strconv.ParseUint(f, 16, 64)
		if err != nil {
			return false
		}
		// sysfs prints the highest word first; store lowest-first
		words[len(fields)-1-i] = w
	}
	idx := code / 64
	return idx < len(words) && words[idx]&(1<<(code%64)) != 0
}
