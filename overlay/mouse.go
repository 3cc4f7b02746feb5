package overlay

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/label"
)

// mouseView draws the mouse. Buttons and scroll directions select the image;
// extra buttons are written on the body.
type mouseView struct {
	images  *assets.Images
	layout  *capLayout
	obj     *fyne.Container
	pressed map[hardware.Switch]bool
}

func newMouseView(images *assets.Images, policy *label.Policy, logger *slog.Logger) *mouseView {
	m := &mouseView{images: images, pressed: make(map[hardware.Switch]bool)}
	m.layout = newCapLayout(policy, logger, func() assets.Insets { return images.Insets(hardware.MouseExtra) })
	m.obj = container.New(m.layout, m.layout.objects()...)
	m.refresh()
	return m
}

func (m *mouseView) set(rec hardware.Record) {
	m.pressed[rec.Switch] = rec.Pressed()
	if rec.Switch == hardware.MouseExtra {
		m.layout.value = ""
		if rec.Pressed() {
			m.layout.value = rec.Value
		}
	}
	m.refresh()
}

func (m *mouseView) held() []hardware.Switch {
	var out []hardware.Switch
	for _, sw := range hardware.MouseSwitches() {
		if m.pressed[sw] {
			out = append(out, sw)
		}
	}
	return out
}

func (m *mouseView) refresh() {
	if img := m.images.Mouse(m.held()...); img != nil {
		m.layout.image.Image = img
		b := img.Bounds()
		m.layout.min = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	m.obj.Refresh()
}
