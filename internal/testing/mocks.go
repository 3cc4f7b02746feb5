// Package testing holds fakes shared by the package tests.
package testing

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/keymap"
)

// MockHook is an input.Hook fed by the test.
type MockHook struct {
	platform keymap.Platform
	events   chan input.Event
	once     sync.Once
	closed   bool
}

func (h *MockHook) Events() <-chan input.Event { return h.events }
func (h *MockHook) Platform() keymap.Platform  { return h.platform }

func (h *MockHook) Close() error {
	h.once.Do(func() {
		h.closed = true
		close(h.events)
	})
	return nil
}

// Closed reports whether Close was called.
func (h *MockHook) Closed() bool { return h.closed }

// Send queues events; the buffer holds 64 of them.
func (h *MockHook) Send(events ...input.Event) {
	for _, ev := range events {
		h.events <- ev
	}
}

// CreateMockHook returns an open hook that is closed when the test ends.
func CreateMockHook(t *testing.T, platform keymap.Platform) *MockHook {
	t.Helper()
	h := &MockHook{platform: platform, events: make(chan input.Event, 64)}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// MockOpener registers nothing; it wraps h as an input.Opener.
func MockOpener(h *MockHook) input.Opener {
	return func(*slog.Logger) (input.Hook, error) { return h, nil }
}
