package autofit

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FaceMeasurer measures text with an OpenType font at 72 DPI, so one point
// equals one pixel.
type FaceMeasurer struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer parses TTF or OTF data.
func NewFaceMeasurer(data []byte) (*FaceMeasurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

func (m *FaceMeasurer) Measure(text string, size float64) (Extent, error) {
	face, err := m.face(size)
	if err != nil {
		return Extent{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	adv := font.MeasureString(face, text)
	metrics := face.Metrics()
	return Extent{
		Width:  float64(adv) / 64,
		Height: float64(metrics.Ascent+metrics.Descent) / 64,
	}, nil
}

// Ascent returns the distance from the top of the line to the baseline.
func (m *FaceMeasurer) Ascent(size float64) (float64, error) {
	face, err := m.face(size)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(face.Metrics().Ascent) / 64, nil
}

func (m *FaceMeasurer) face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face at %.0fpt: %w", size, err)
	}
	m.faces[size] = f
	return f, nil
}

// Close releases cached faces.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, f := range m.faces {
		_ = f.Close()
		delete(m.faces, size)
	}
	return nil
}
