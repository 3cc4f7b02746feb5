//go:build linux

package overlay

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// x11Window asks the window manager through EWMH; Wayland compositors do not
// let clients stack or place their own windows.
type x11Window struct {
	xu  *xgbutil.XUtil
	win *xwindow.Window
}

func openPlatformWindow(ctx any) (platformWindow, error) {
	c, ok := ctx.(driver.X11WindowContext)
	if !ok || c.WindowHandle == 0 {
		return nil, errNoNativeWindow
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return &x11Window{xu: xu, win: xwindow.New(xu, xproto.Window(c.WindowHandle))}, nil
}

func (w *x11Window) Raise() error {
	return ewmh.WmStateReq(w.xu, w.win.Id, ewmh.StateAdd, "_NET_WM_STATE_ABOVE")
}

func (w *x11Window) Position() (int, int, error) {
	g, err := w.win.DecorGeometry()
	if err != nil {
		return 0, 0, err
	}
	return g.X(), g.Y(), nil
}

func (w *x11Window) Pointer() (int, int, error) {
	reply, err := xproto.QueryPointer(w.xu.Conn(), w.xu.RootWin()).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}

func (w *x11Window) MoveTo(x, y int) error { return w.win.WMMove(x, y) }

func (w *x11Window) Close() error {
	w.xu.Conn().Close()
	return nil
}
