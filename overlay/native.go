package overlay

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/widget"
)

var errNoNativeWindow = errors.New("no native window handle")

// platformWindow is the windowing system's view of the overlay. Coordinates
// are screen pixels.
type platformWindow interface {
	// Raise keeps the window above all others.
	Raise() error
	Position() (x, y int, err error)
	Pointer() (x, y int, err error)
	MoveTo(x, y int) error
	Close() error
}

// openNative is replaced in tests.
var openNative = openPlatformWindow

// Pin keeps the window on top and lets it be dragged. It must run on the GUI
// thread after the window was shown.
func (o *Overlay) Pin() {
	nw, ok := o.win.(driver.NativeWindow)
	if !ok {
		o.logger.Debug("Window has no native handle")
		return
	}
	nw.RunNative(func(ctx any) {
		w, err := openNative(ctx)
		if err != nil {
			o.logger.Warn("Overlay cannot stay on top", "error", err)
			return
		}
		if err := w.Raise(); err != nil {
			o.logger.Warn("Overlay cannot stay on top", "error", err)
		}
		o.native = w
	})
}

// Close releases the native window connection.
func (o *Overlay) Close() {
	if o.native != nil {
		_ = o.native.Close()
		o.native = nil
	}
}

type dragStart struct {
	pointerX, pointerY int
	windowX, windowY   int
}

// dragged follows the pointer in screen coordinates; the window moves under
// the pointer, so fyne's window relative deltas cannot be used.
func (o *Overlay) dragged() {
	if o.native == nil {
		return
	}
	px, py, err := o.native.Pointer()
	if err != nil {
		o.logger.Debug("Pointer query failed", "error", err)
		return
	}
	if o.drag == nil {
		wx, wy, err := o.native.Position()
		if err != nil {
			o.logger.Debug("Window position query failed", "error", err)
			return
		}
		o.drag = &dragStart{pointerX: px, pointerY: py, windowX: wx, windowY: wy}
		return
	}
	x := o.drag.windowX + px - o.drag.pointerX
	y := o.drag.windowY + py - o.drag.pointerY
	if err := o.native.MoveTo(x, y); err != nil {
		o.logger.Debug("Window move failed", "error", err)
	}
}

func (o *Overlay) dragEnded() { o.drag = nil }

// dragArea covers the overlay and turns drags into window moves.
type dragArea struct {
	widget.BaseWidget
	onDrag func()
	onEnd  func()
}

var _ fyne.Draggable = (*dragArea)(nil)

func newDragArea(onDrag, onEnd func()) *dragArea {
	d := &dragArea{onDrag: onDrag, onEnd: onEnd}
	d.ExtendBaseWidget(d)
	return d
}

func (d *dragArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (d *dragArea) Dragged(*fyne.DragEvent) { d.onDrag() }
func (d *dragArea) DragEnd()                { d.onEnd() }
