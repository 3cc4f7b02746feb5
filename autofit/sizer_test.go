package autofit_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/yukinoda/KmCaster/autofit"
)

// linear measures each rune as 0.6em wide and lines as 1.2em tall.
type linear struct{ calls int }

func (l *linear) Measure(text string, size float64) (autofit.Extent, error) {
	l.calls++
	return autofit.Extent{Width: 0.6 * size * float64(len([]rune(text))), Height: 1.2 * size}, nil
}

type failing struct{}

func (failing) Measure(string, float64) (autofit.Extent, error) {
	return autofit.Extent{}, errors.New("no glyphs")
}

func TestFitLinear(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  float64
		height float64
		want   float64
	}{
		{name: "height bound", text: "a", width: 1000, height: 60, want: 50},
		{name: "width bound", text: "abcd", width: 60, height: 1000, want: 25},
		{name: "floor not round", text: "a", width: 1000, height: 59, want: 49},
		{name: "upper bound", text: "a", width: 1e6, height: 1e6, want: 200},
		{name: "min fits", text: "a", width: 0.6, height: 1.2, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := autofit.NewSizer(&linear{})
			got, err := s.Fit(tt.text, tt.width, tt.height)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitReportsOverflowAtMin(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		width, height float64
	}{
		{name: "too narrow", text: "abcdef", width: 1, height: 100},
		{name: "too low", text: "a", width: 100, height: 1},
		{name: "tiny box", text: "Enter", width: 0.5, height: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := autofit.NewSizer(&linear{}).Fit(tt.text, tt.width, tt.height)
			assert.ErrorIs(t, err, autofit.ErrNoFit)
			assert.Zero(t, size)
		})
	}
}

func TestFitEmptyTextSkipsMeasuring(t *testing.T) {
	m := &linear{}
	s := autofit.NewSizer(m)
	s.Default = 17

	got, err := s.Fit("", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 17.0, got)
	assert.Equal(t, 0, m.calls)
}

func TestFitPropagatesMeasureError(t *testing.T) {
	_, err := autofit.NewSizer(failing{}).Fit("x", 10, 10)
	assert.Error(t, err)
}

func TestFitIsMaximal(t *testing.T) {
	m := &linear{}
	s := autofit.NewSizer(m)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		w := 5 + rng.Float64()*400
		h := 5 + rng.Float64()*300
		text := []string{"a", "Num", "Enter", "×9", "Back ⌫"}[i%5]

		size, err := s.Fit(text, w, h)
		require.NoError(t, err)
		e, _ := m.Measure(text, size)
		assert.LessOrEqual(t, e.Width, w)
		assert.LessOrEqual(t, e.Height, h)
		if size < s.Max {
			next, _ := m.Measure(text, size+1)
			assert.True(t, next.Width > w || next.Height > h, "size %v+1 should overflow %vx%v", size, w, h)
		}
	}
}

func TestFitFaceNeverOverflows(t *testing.T) {
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)
	defer m.Close()

	s := autofit.NewSizer(m)
	rng := rand.New(rand.NewSource(42))
	texts := []string{"a", "W", "Shift", "Num", "PgDn", "Enter", "9+", "×3", "Back"}
	for i := 0; i < 60; i++ {
		w := 20 + rng.Float64()*300
		h := 20 + rng.Float64()*200
		text := texts[i%len(texts)]

		size, err := s.Fit(text, w, h)
		require.NoError(t, err)
		e, err := m.Measure(text, size)
		require.NoError(t, err)
		assert.LessOrEqual(t, e.Width, w, "%q at %vpt", text, size)
		assert.LessOrEqual(t, e.Height, h, "%q at %vpt", text, size)
	}
}

func TestFaceMeasurerGrowsWithSize(t *testing.T) {
	m, err := autofit.NewFaceMeasurer(gobold.TTF)
	require.NoError(t, err)

	small, err := m.Measure("Ctrl", 10)
	require.NoError(t, err)
	large, err := m.Measure("Ctrl", 40)
	require.NoError(t, err)
	assert.Greater(t, large.Width, small.Width)
	assert.Greater(t, large.Height, small.Height)

	asc, err := m.Ascent(40)
	require.NoError(t, err)
	assert.Greater(t, asc, 0.0)
	assert.Less(t, asc, large.Height)
}

func TestNewFaceMeasurerRejectsGarbage(t *testing.T) {
	_, err := autofit.NewFaceMeasurer([]byte("not a font"))
	assert.Error(t, err)
}
