//go:build windows

package overlay

import (
	"fmt"
	"unsafe"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procGetCursorPos  = user32.NewProc("GetCursorPos")
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

// HWND_TOPMOST is (HWND)-1.
const hwndTopmost = ^uintptr(0)

type win32Window struct {
	hwnd uintptr
}

func openPlatformWindow(ctx any) (platformWindow, error) {
	c, ok := ctx.(driver.WindowsWindowContext)
	if !ok || c.HWND == 0 {
		return nil, errNoNativeWindow
	}
	return &win32Window{hwnd: c.HWND}, nil
}

func (w *win32Window) Raise() error {
	return call(procSetWindowPos, w.hwnd, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func (w *win32Window) Position() (int, int, error) {
	var r windows.Rect
	if err := call(procGetWindowRect, w.hwnd, uintptr(unsafe.Pointer(&r))); err != nil {
		return 0, 0, err
	}
	return int(r.Left), int(r.Top), nil
}

func (w *win32Window) Pointer() (int, int, error) {
	var p struct{ X, Y int32 }
	if err := call(procGetCursorPos, uintptr(unsafe.Pointer(&p))); err != nil {
		return 0, 0, err
	}
	return int(p.X), int(p.Y), nil
}

func (w *win32Window) MoveTo(x, y int) error {
	return call(procSetWindowPos, w.hwnd, 0, uintptr(x), uintptr(y), 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
}

func (w *win32Window) Close() error { return nil }

// call treats a zero return as failure, as the user32 window functions do.
func call(p *windows.LazyProc, args ...uintptr) error {
	r, _, err := p.Call(args...)
	if r == 0 {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}
