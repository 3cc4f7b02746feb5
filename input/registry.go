package input

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/yukinoda/KmCaster/keymap"
)

// ErrUnknownBackend is returned by Open for names nobody registered.
var ErrUnknownBackend = errors.New("unknown input backend")

// Hook is a running global input hook.
type Hook interface {
	// Events delivers input until Close is called; the channel is then closed.
	Events() <-chan Event
	// Platform tells which raw code space Rawcode values belong to.
	Platform() keymap.Platform
	Close() error
}

// Opener starts a hook. It fails when the hook cannot be registered with the
// operating system.
type Opener func(logger *slog.Logger) (Hook, error)

var (
	backends   = make(map[string]Opener)
	backendsMu sync.RWMutex
)

// Register makes a backend available by name. It is called from backend
// package init() functions; names are case-insensitive.
func Register(name string, open Opener) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[strings.ToLower(name)] = open
}

// Open starts the named backend.
func Open(name string, logger *slog.Logger) (Hook, error) {
	backendsMu.RLock()
	open, ok := backends[strings.ToLower(name)]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	h, err := open(logger)
	if err != nil {
		return nil, fmt.Errorf("open %s hook: %w", name, err)
	}
	return h, nil
}

// Backends lists registered backend names in sorted order.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
