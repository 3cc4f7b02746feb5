//go:build !windows && !linux

package overlay

import "fmt"

// TODO: macOS needs an NSWindow level change through cgo for topmost and
// moving; only Windows and X11 are handled.
func openPlatformWindow(ctx any) (platformWindow, error) {
	return nil, fmt.Errorf("%w for %T", errNoNativeWindow, ctx)
}
