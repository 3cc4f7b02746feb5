// Package assets embeds the key cap and mouse images and the fonts used to
// label them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"math"
	"path"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/yukinoda/KmCaster/hardware"
)

//go:embed images
var embedded embed.FS

// Insets is the margin around the area of an image that labels may use.
type Insets struct {
	Top, Left, Bottom, Right float64
}

func (in Insets) scale(f float64) Insets {
	return Insets{Top: in.Top * f, Left: in.Left * f, Bottom: in.Bottom * f, Right: in.Right * f}
}

// Label margins in image units (images are 100 units tall).
var switchInsets = map[hardware.Switch]Insets{
	hardware.KeyShift:   {Top: 10, Left: 50, Bottom: 12, Right: 11},
	hardware.KeyCtrl:    {Top: 10, Left: 11, Bottom: 12, Right: 11},
	hardware.KeyAlt:     {Top: 10, Left: 11, Bottom: 12, Right: 11},
	hardware.KeyRegular: {Top: 3, Left: 7, Bottom: 6, Right: 7},
	hardware.MouseExtra: {Top: 46, Left: 12, Bottom: 14, Right: 12},
}

func keyShape(sw hardware.Switch) string {
	switch sw {
	case hardware.KeyShift:
		return "long"
	case hardware.KeyCtrl, hardware.KeyAlt:
		return "medium"
	default:
		return "short"
	}
}

// KeyImage names the image of a keyboard switch in the given state.
func KeyImage(sw hardware.Switch, st hardware.State) string {
	dir := "up"
	if st == hardware.Pressed {
		dir = "dn"
	}
	return path.Join("images", "key", dir, keyShape(sw)+".svg")
}

// MouseImage names the mouse image for the set of pressed mouse switches.
// Scroll directions win over buttons; left and right together form a chord.
func MouseImage(pressed ...hardware.Switch) string {
	set := make(map[hardware.Switch]bool, len(pressed))
	for _, sw := range pressed {
		set[sw] = true
	}
	name := "0"
	switch {
	case set[hardware.ScrollUp], set[hardware.ScrollDown], set[hardware.ScrollLeft], set[hardware.ScrollRight]:
		for _, sw := range hardware.ScrollSwitches() {
			if set[sw] {
				name = sw.Name()
				break
			}
		}
	case set[hardware.MouseLeft] && set[hardware.MouseRight]:
		name = "1-3"
	case set[hardware.MouseLeft]:
		name = hardware.MouseLeft.Name()
	case set[hardware.MouseMiddle]:
		name = hardware.MouseMiddle.Name()
	case set[hardware.MouseRight]:
		name = hardware.MouseRight.Name()
	}
	return path.Join("images", "mouse", name+".svg")
}

// ImagePaths lists every image Load rasterises.
func ImagePaths() []string {
	var out []string
	for _, st := range []hardware.State{hardware.Released, hardware.Pressed} {
		for _, sw := range []hardware.Switch{hardware.KeyRegular, hardware.KeyCtrl, hardware.KeyShift} {
			out = append(out, KeyImage(sw, st))
		}
	}
	for _, name := range []string{"0", "1", "2", "3", "1-3", "u", "d", "l", "r"} {
		out = append(out, path.Join("images", "mouse", name+".svg"))
	}
	return out
}

// Images holds every image rasterised at one height.
type Images struct {
	height int
	images map[string]*image.RGBA
}

// Load rasterises the embedded images at height pixels.
func Load(height int) (*Images, error) {
	return LoadFS(embedded, height)
}

// LoadFS rasterises the images from fsys. Any missing or unreadable image is
// an error.
func LoadFS(fsys fs.FS, height int) (*Images, error) {
	if height <= 0 {
		return nil, fmt.Errorf("invalid image height %d", height)
	}
	im := &Images{
		height: height,
		images: make(map[string]*image.RGBA),
	}
	for _, p := range ImagePaths() {
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("missing image %s: %w", p, err)
		}
		img, _, err := Rasterize(f, height)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p, err)
		}
		im.images[p] = img
	}
	return im, nil
}

// Rasterize renders an SVG at height pixels, keeping its aspect ratio. The
// returned scale converts SVG units into pixels.
func Rasterize(r io.Reader, height int) (*image.RGBA, float64, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.StrictErrorMode)
	if err != nil {
		return nil, 0, err
	}
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, 0, errors.New("svg has no view box")
	}
	scale := float64(height) / vb.H
	width := int(math.Ceil(vb.W * scale))

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, scale, nil
}

func (im *Images) Height() int { return im.height }

// Image returns a rasterised image by path.
func (im *Images) Image(p string) (*image.RGBA, bool) {
	img, ok := im.images[p]
	return img, ok
}

// Key returns the image of a keyboard switch.
func (im *Images) Key(sw hardware.Switch, st hardware.State) *image.RGBA {
	return im.images[KeyImage(sw, st)]
}

// Mouse returns the mouse image for the pressed switches.
func (im *Images) Mouse(pressed ...hardware.Switch) *image.RGBA {
	return im.images[MouseImage(pressed...)]
}

// Insets returns the label margins of sw in pixels.
func (im *Images) Insets(sw hardware.Switch) Insets {
	scale := float64(im.height) / 100
	return switchInsets[sw].scale(scale)
}
