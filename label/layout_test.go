package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/yukinoda/KmCaster/autofit"
	"github.com/yukinoda/KmCaster/label"
)

type linear struct{}

func (linear) Measure(text string, size float64) (autofit.Extent, error) {
	return autofit.Extent{Width: 0.6 * size * float64(len([]rune(text))), Height: 1.2 * size}, nil
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in        string
		wantMain  string
		wantSuper string
	}{
		{in: "Num 5", wantMain: "5", wantSuper: "Num"},
		{in: "Enter ⏎", wantMain: "⏎", wantSuper: "Enter"},
		{in: "Num Del", wantMain: "Del", wantSuper: "Num"},
		{in: "a", wantMain: "a"},
		{in: "Space", wantMain: "Space"},
		{in: "Num ", wantMain: "Num"},
		{in: " x", wantMain: "x"},
		{in: "", wantMain: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			main, super := label.Split(tt.in)
			assert.Equal(t, tt.wantMain, main)
			assert.Equal(t, tt.wantSuper, super)
		})
	}
}

func byRole(ps []label.Placement) map[label.Role]label.Placement {
	out := map[label.Role]label.Placement{}
	for _, p := range ps {
		out[p.Role] = p
	}
	return out
}

func TestLayoutSingleLabelIsCentred(t *testing.T) {
	p := label.NewPolicy(autofit.NewSizer(linear{}))
	box := label.Rect{X: 10, Y: 20, W: 100, H: 60}

	ps, err := p.Layout("a", "", box)
	require.NoError(t, err)
	require.Len(t, ps, 1)

	m := ps[0]
	assert.Equal(t, label.Main, m.Role)
	assert.Equal(t, 50.0, m.Size)
	assert.InDelta(t, box.X+box.W/2, m.Bounds.X+m.Bounds.W/2, 1e-9)
	assert.InDelta(t, box.Y+box.H/2, m.Bounds.Y+m.Bounds.H/2, 1e-9)
}

func TestLayoutSuperscriptAndCounter(t *testing.T) {
	p := label.NewPolicy(autofit.NewSizer(linear{}))
	box := label.Rect{W: 120, H: 90}

	ps, err := p.Layout("Num 5", "×3", box)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	roles := byRole(ps)

	sup := roles[label.Superscript]
	assert.Equal(t, "Num", sup.Text)
	assert.Equal(t, 0.0, sup.Bounds.X)
	assert.Equal(t, 0.0, sup.Bounds.Y)
	assert.LessOrEqual(t, sup.Bounds.W, box.W/2)
	assert.LessOrEqual(t, sup.Bounds.H, box.H/3+1e-9)

	cnt := roles[label.Counter]
	assert.Equal(t, "×3", cnt.Text)
	assert.InDelta(t, box.W, cnt.Bounds.X+cnt.Bounds.W, 1e-9)
	assert.Equal(t, 0.0, cnt.Bounds.Y)

	main := roles[label.Main]
	assert.Equal(t, "5", main.Text)
	assert.Greater(t, main.Size, sup.Size, "main label is the larger one")
	top := max(sup.Bounds.H, cnt.Bounds.H) + sup.Bounds.H*0.3
	assert.InDelta(t, top+(box.H-top)/2, main.Bounds.Y+main.Bounds.H/2, 1e-9)
	assert.GreaterOrEqual(t, main.Bounds.Y, sup.Bounds.Y+sup.Bounds.H)

	for _, pl := range ps {
		assert.True(t, box.Contains(pl.Bounds), "%s escapes the box", pl.Role)
	}
}

func TestLayoutEmptyValue(t *testing.T) {
	p := label.NewPolicy(autofit.NewSizer(linear{}))
	ps, err := p.Layout("", "", label.Rect{W: 50, H: 50})
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestLayoutWithRealFontStaysInside(t *testing.T) {
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)
	p := label.NewPolicy(autofit.NewSizer(m))

	box := label.Rect{X: 3, Y: 7, W: 90, H: 87}
	for _, v := range []string{"a", "Num 7", "Enter ⏎", "Back ⌫", "PgDn", "F12"} {
		ps, err := p.Layout(v, "9+", box)
		require.NoError(t, err)
		for _, pl := range ps {
			assert.True(t, box.Contains(pl.Bounds), "%q %s escapes the box: %+v", v, pl.Role, pl.Bounds)
		}
	}
}

func TestLayoutCounterOnlyKeepsMainBelowIt(t *testing.T) {
	p := label.NewPolicy(autofit.NewSizer(linear{}))
	box := label.Rect{W: 120, H: 90}

	ps, err := p.Layout("a", "×3", box)
	require.NoError(t, err)
	roles := byRole(ps)
	require.Len(t, roles, 2)

	cnt, main := roles[label.Counter], roles[label.Main]
	assert.False(t, main.Bounds.Intersects(cnt.Bounds))
	assert.InDelta(t, cnt.Bounds.H+(box.H-cnt.Bounds.H)/2, main.Bounds.Y+main.Bounds.H/2, 1e-9)
}

func TestLayoutMainNeverOverlapsTopRow(t *testing.T) {
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)
	p := label.NewPolicy(autofit.NewSizer(m))

	boxes := []label.Rect{
		{W: 80, H: 60},
		{X: 4, Y: 2, W: 40, H: 90},
		{W: 200, H: 30},
	}
	values := []string{"Num 5", "Tab ↹", "Enter ⏎", "Num Home", "Back ⌫", "a"}
	for _, box := range boxes {
		for _, v := range values {
			ps, err := p.Layout(v, "×3", box)
			require.NoError(t, err)
			roles := byRole(ps)
			main, ok := roles[label.Main]
			require.True(t, ok, "%q in %+v has no main label", v, box)
			for _, role := range []label.Role{label.Superscript, label.Counter} {
				other, ok := roles[role]
				if !ok {
					continue
				}
				assert.False(t, main.Bounds.Intersects(other.Bounds),
					"%q in %+v: main %+v overlaps %s %+v", v, box, main.Bounds, role, other.Bounds)
			}
			for _, pl := range ps {
				assert.True(t, box.Contains(pl.Bounds), "%q %s escapes %+v: %+v", v, pl.Role, box, pl.Bounds)
			}
		}
	}
}

func TestLayoutTinyBoxDropsWhatDoesNotFit(t *testing.T) {
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)
	p := label.NewPolicy(autofit.NewSizer(m))

	for _, box := range []label.Rect{{W: 0.5, H: 0.5}, {X: 10, Y: 10, W: 1, H: 3}} {
		ps, err := p.Layout("Enter", "×9", box)
		require.NoError(t, err)
		for _, pl := range ps {
			assert.True(t, box.Contains(pl.Bounds), "%s escapes %+v: %+v", pl.Role, box, pl.Bounds)
		}
	}

	ps, err := p.Layout("Enter", "", label.Rect{W: 0.5, H: 0.5})
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestRectIntersects(t *testing.T) {
	a := label.Rect{W: 10, H: 10}
	assert.True(t, a.Intersects(label.Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Intersects(label.Rect{X: 10, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, a.Intersects(label.Rect{Y: 12, W: 5, H: 5}))
}
