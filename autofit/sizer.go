// Package autofit finds the largest font size at which a string fits a box.
package autofit

import (
	"errors"
	"math"
)

// ErrNoFit is returned when the text overflows the box even at Min.
var ErrNoFit = errors.New("text does not fit")

// Extent is the rendered size of a string.
type Extent struct {
	Width  float64
	Height float64
}

// Measurer renders text at a point size and reports its extent.
type Measurer interface {
	Measure(text string, size float64) (Extent, error)
}

const (
	DefaultMin = 1
	DefaultMax = 200
)

// Sizer searches integer point sizes in [Min, Max].
type Sizer struct {
	Measurer Measurer
	Min      float64
	Max      float64
	// Default is returned for empty text.
	Default float64
}

func NewSizer(m Measurer) *Sizer {
	return &Sizer{Measurer: m, Min: DefaultMin, Max: DefaultMax, Default: 12}
}

// Fit returns the largest size whose extent fits width × height. The search
// stops once the interval narrows to one point and never rounds up, so the
// result never overflows the box. ErrNoFit is returned when Min overflows.
func (s *Sizer) Fit(text string, width, height float64) (float64, error) {
	if text == "" {
		return s.Default, nil
	}

	lo, hi := math.Floor(s.Min), math.Floor(s.Max)
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}

	ok, err := s.fits(text, hi, width, height)
	if err != nil {
		return 0, err
	}
	if ok {
		return hi, nil
	}

	ok, err = s.fits(text, lo, width, height)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoFit
	}

	// lo is always measured to fit; hi never fits.
	for hi-lo > 1 {
		mid := math.Floor((lo + hi) / 2)
		ok, err := s.fits(text, mid, width, height)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

func (s *Sizer) fits(text string, size, width, height float64) (bool, error) {
	e, err := s.Measurer.Measure(text, size)
	if err != nil {
		return false, err
	}
	return e.Width <= width && e.Height <= height, nil
}
