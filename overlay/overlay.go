// Package overlay draws the switch states in a borderless window kept above
// all others.
package overlay

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/label"
)

const title = "KmCaster"

type Options struct {
	Background    color.Color
	GapHorizontal float32
	GapVertical   float32
	Font          []byte
	Images        *assets.Images
	Policy        *label.Policy
	Logger        *slog.Logger
}

// Overlay is a switchstate.Listener that mirrors every record on screen.
type Overlay struct {
	app    fyne.App
	win    fyne.Window
	logger *slog.Logger
	keys   map[hardware.Switch]*keyView
	mouse  *mouseView

	native platformWindow
	drag   *dragStart
}

// New builds the window. It must be called before the app runs.
func New(a fyne.App, opts Options) *Overlay {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a.Settings().SetTheme(newCastTheme(opts.Font))

	o := &Overlay{
		app:    a,
		logger: logger,
		keys:   make(map[hardware.Switch]*keyView),
		mouse:  newMouseView(opts.Images, opts.Policy, logger),
	}

	row := container.New(layout.NewCustomPaddedHBoxLayout(opts.GapHorizontal))
	for _, sw := range hardware.KeyboardSwitches() {
		k := newKeyView(sw, opts.Images, opts.Policy, logger)
		o.keys[sw] = k
		row.Add(k.obj)
	}
	row.Add(o.mouse.obj)

	background := canvas.NewRectangle(opts.Background)
	padded := container.New(layout.NewCustomPaddedLayout(
		opts.GapVertical, opts.GapVertical, opts.GapHorizontal, opts.GapHorizontal), row)

	if drv, ok := a.Driver().(desktop.Driver); ok {
		o.win = drv.CreateSplashWindow()
		o.win.SetTitle(title)
	} else {
		o.win = a.NewWindow(title)
	}
	o.win.SetPadded(false)
	o.win.SetContent(container.NewStack(background, padded, newDragArea(o.dragged, o.dragEnded)))

	if desk, ok := a.(desktop.App); ok {
		quit := fyne.NewMenuItem("Quit", a.Quit)
		quit.IsQuit = true
		desk.SetSystemTrayMenu(fyne.NewMenu(title, quit))
	}
	return o
}

func (o *Overlay) Window() fyne.Window { return o.win }

// Show displays the window in its current state.
func (o *Overlay) Show(records []hardware.Record) {
	for _, rec := range records {
		o.apply(rec)
	}
	o.win.Show()
}

// SwitchChanged hands rec over to the GUI thread.
func (o *Overlay) SwitchChanged(_, rec hardware.Record) {
	fyne.Do(func() { o.apply(rec) })
}

func (o *Overlay) apply(rec hardware.Record) {
	if k, ok := o.keys[rec.Switch]; ok {
		k.set(rec)
		return
	}
	if rec.Switch.IsMouse() {
		o.mouse.set(rec)
		return
	}
	o.logger.Debug("no view for switch", "switch", rec.Switch)
}
