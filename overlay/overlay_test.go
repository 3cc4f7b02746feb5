package overlay

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/autofit"
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/label"
)

func newTestOverlay(t *testing.T) (*Overlay, *assets.Images) {
	t.Helper()
	a := test.NewTempApp(t)

	images, err := assets.Load(40)
	require.NoError(t, err)
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	o := New(a, Options{
		Background:    color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0x77},
		GapHorizontal: 5,
		GapVertical:   5,
		Font:          gobold.TTF,
		Images:        images,
		Policy:        label.NewPolicy(autofit.NewSizer(m)),
	})
	return o, images
}

func TestRegularKeyLabels(t *testing.T) {
	o, images := newTestOverlay(t)
	k := o.keys[hardware.KeyRegular]
	require.NotNil(t, k)

	o.apply(hardware.Record{Switch: hardware.KeyRegular, State: hardware.Pressed, Value: "Num 5", Tally: "×3"})
	size := fyne.NewSize(36, 40)
	k.layout.Layout(nil, size)

	assert.Same(t, images.Key(hardware.KeyRegular, hardware.Pressed), k.layout.image.Image)

	main := k.text(label.Main)
	assert.True(t, main.Visible())
	assert.Equal(t, "5", main.Text)
	assert.Equal(t, pressedText, main.Color)
	assert.Positive(t, main.TextSize)

	assert.Equal(t, "Num", k.text(label.Superscript).Text)
	assert.Equal(t, "×3", k.text(label.Counter).Text)

	for _, r := range roles {
		txt := k.text(r)
		assert.GreaterOrEqual(t, txt.Position().X, float32(0), r.String())
		assert.LessOrEqual(t, txt.Position().X+txt.Size().Width, size.Width, r.String())
		assert.LessOrEqual(t, txt.Position().Y+txt.Size().Height, size.Height, r.String())
	}

	o.apply(hardware.NewRecord(hardware.KeyRegular, hardware.Released, ""))
	k.layout.Layout(nil, size)
	for _, r := range roles {
		assert.False(t, k.text(r).Visible(), r.String())
	}
}

func TestModifierKeyColours(t *testing.T) {
	o, images := newTestOverlay(t)
	k := o.keys[hardware.KeyCtrl]

	k.layout.Layout(nil, k.layout.MinSize(nil))
	assert.Equal(t, "Ctrl", k.text(label.Main).Text)
	assert.Equal(t, releasedText, k.text(label.Main).Color)

	o.apply(hardware.NewRecord(hardware.KeyCtrl, hardware.Pressed, ""))
	assert.Equal(t, pressedText, k.text(label.Main).Color)
	assert.Same(t, images.Key(hardware.KeyCtrl, hardware.Pressed), k.layout.image.Image)
}

func TestMouseView(t *testing.T) {
	o, images := newTestOverlay(t)
	m := o.mouse

	o.apply(hardware.NewRecord(hardware.MouseLeft, hardware.Pressed, ""))
	o.apply(hardware.NewRecord(hardware.MouseRight, hardware.Pressed, ""))
	assert.Same(t, images.Mouse(hardware.MouseLeft, hardware.MouseRight), m.layout.image.Image)

	o.apply(hardware.NewRecord(hardware.ScrollUp, hardware.Pressed, ""))
	assert.Same(t, images.Mouse(hardware.ScrollUp), m.layout.image.Image)

	o.apply(hardware.NewRecord(hardware.ScrollUp, hardware.Released, ""))
	o.apply(hardware.NewRecord(hardware.MouseLeft, hardware.Released, ""))
	assert.Same(t, images.Mouse(hardware.MouseRight), m.layout.image.Image)

	o.apply(hardware.NewRecord(hardware.MouseExtra, hardware.Pressed, "4"))
	assert.Equal(t, "4", m.layout.value)
	o.apply(hardware.NewRecord(hardware.MouseExtra, hardware.Released, "4"))
	assert.Empty(t, m.layout.value)
}
