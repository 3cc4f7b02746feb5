package overlay

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/label"
)

var (
	releasedText = color.NRGBA{R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff}
	pressedText  = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)

var roles = []label.Role{label.Superscript, label.Counter, label.Main}

// capLayout sizes the labels of a cap whenever fyne lays the cap out, which
// includes every window resize.
type capLayout struct {
	policy *label.Policy
	logger *slog.Logger
	insets func() assets.Insets
	min    fyne.Size

	image *canvas.Image
	texts map[label.Role]*canvas.Text
	value string
	tally string
}

func (l *capLayout) MinSize([]fyne.CanvasObject) fyne.Size { return l.min }

func (l *capLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	l.image.Move(fyne.NewPos(0, 0))
	l.image.Resize(size)

	for _, t := range l.texts {
		t.Hide()
	}

	// Insets are in image pixels; scale them to the laid out size.
	in := l.insets()
	f := 1.0
	if l.min.Height > 0 {
		f = float64(size.Height / l.min.Height)
	}
	box := label.Rect{
		X: in.Left * f,
		Y: in.Top * f,
		W: float64(size.Width) - (in.Left+in.Right)*f,
		H: float64(size.Height) - (in.Top+in.Bottom)*f,
	}
	if box.W <= 0 || box.H <= 0 {
		return
	}

	placements, err := l.policy.Layout(l.value, l.tally, box)
	if err != nil {
		l.logger.Debug("label layout failed", "value", l.value, "error", err)
		return
	}
	for _, p := range placements {
		t := l.texts[p.Role]
		t.Text = p.Text
		t.TextSize = float32(p.Size)
		t.Move(fyne.NewPos(float32(p.Bounds.X), float32(p.Bounds.Y)))
		t.Resize(fyne.NewSize(float32(p.Bounds.W), float32(p.Bounds.H)))
		t.Show()
	}
}

func newCapLayout(policy *label.Policy, logger *slog.Logger, insets func() assets.Insets) *capLayout {
	l := &capLayout{
		policy: policy,
		logger: logger,
		insets: insets,
		image:  canvas.NewImageFromImage(nil),
		texts:  make(map[label.Role]*canvas.Text, len(roles)),
	}
	l.image.FillMode = canvas.ImageFillStretch
	for _, r := range roles {
		t := canvas.NewText("", releasedText)
		t.Hide()
		l.texts[r] = t
	}
	return l
}

func (l *capLayout) objects() []fyne.CanvasObject {
	out := []fyne.CanvasObject{l.image}
	for _, r := range roles {
		out = append(out, l.texts[r])
	}
	return out
}

func (l *capLayout) setColour(c color.Color) {
	for _, t := range l.texts {
		t.Color = c
	}
}

// keyView draws one keyboard switch.
type keyView struct {
	sw     hardware.Switch
	images *assets.Images
	layout *capLayout
	obj    *fyne.Container
	rec    hardware.Record
}

func newKeyView(sw hardware.Switch, images *assets.Images, policy *label.Policy, logger *slog.Logger) *keyView {
	k := &keyView{sw: sw, images: images}
	k.layout = newCapLayout(policy, logger, func() assets.Insets { return images.Insets(sw) })
	k.obj = container.New(k.layout, k.layout.objects()...)
	k.set(hardware.NewRecord(sw, hardware.Released, ""))
	return k
}

// set shows rec. It must run on the GUI thread.
func (k *keyView) set(rec hardware.Record) {
	k.rec = rec
	if img := k.images.Key(k.sw, rec.State); img != nil {
		k.layout.image.Image = img
		b := img.Bounds()
		k.layout.min = fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
	}
	k.layout.value, k.layout.tally = rec.Value, rec.Tally
	if rec.Pressed() {
		k.layout.setColour(pressedText)
	} else {
		k.layout.setColour(releasedText)
	}
	k.obj.Refresh()
}

func (k *keyView) text(r label.Role) *canvas.Text { return k.layout.texts[r] }
