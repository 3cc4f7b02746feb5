// Package label decides where the texts of a key cap go and how large they
// are drawn.
package label

import (
	"errors"
	"strings"

	"github.com/yukinoda/KmCaster/autofit"
)

// Rect is an axis aligned box in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether r lies entirely inside b.
func (b Rect) Contains(r Rect) bool {
	const eps = 1e-9
	return r.X >= b.X-eps && r.Y >= b.Y-eps &&
		r.X+r.W <= b.X+b.W+eps && r.Y+r.H <= b.Y+b.H+eps
}

// Intersects reports whether r and b share any area.
func (b Rect) Intersects(r Rect) bool {
	return r.X < b.X+b.W && b.X < r.X+r.W && r.Y < b.Y+b.H && b.Y < r.Y+r.H
}

// Role tells which label a placement is for.
type Role uint8

const (
	Main Role = iota
	Superscript
	Counter
)

func (r Role) String() string {
	switch r {
	case Superscript:
		return "superscript"
	case Counter:
		return "counter"
	default:
		return "main"
	}
}

// Placement is one positioned, sized text.
type Placement struct {
	Role   Role
	Text   string
	Size   float64
	Bounds Rect
}

// Split separates "Num 5" into the main label "5" and the superscript "Num".
// Values without a space, or with nothing on one side of it, are returned
// whole as the main label.
func Split(value string) (main, super string) {
	before, after, found := strings.Cut(value, " ")
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	if !found || before == "" || after == "" {
		return strings.TrimSpace(value), ""
	}
	return after, before
}

// Policy lays out the labels of one key cap.
type Policy struct {
	Sizer *autofit.Sizer
	// SuperscriptScale is the share of the box height given to the
	// superscript and counter rows.
	SuperscriptScale float64
	// Offset shifts the main label down by this multiple of the rendered
	// superscript height.
	Offset float64
}

func NewPolicy(s *autofit.Sizer) *Policy {
	return &Policy{Sizer: s, SuperscriptScale: 1.0 / 3, Offset: 0.3}
}

// Layout places value (split into main and superscript) and tally inside box.
// The superscript and tally share the top row; the main label is fitted
// below it, so no two placements overlap. Empty texts, and texts that do not
// fit at the smallest size, produce no placement.
func (p *Policy) Layout(value, tally string, box Rect) ([]Placement, error) {
	main, super := Split(value)
	var out []Placement

	corner := Rect{W: box.W / 2, H: box.H * p.SuperscriptScale}
	row, offset := 0.0, 0.0

	if super != "" {
		pl, ok, err := p.place(Superscript, super, corner.W, corner.H)
		if err != nil {
			return nil, err
		}
		if ok {
			pl.Bounds.X, pl.Bounds.Y = box.X, box.Y
			row = max(row, pl.Bounds.H)
			offset = pl.Bounds.H * p.Offset
			out = append(out, pl)
		}
	}

	if tally != "" {
		pl, ok, err := p.place(Counter, tally, corner.W, corner.H)
		if err != nil {
			return nil, err
		}
		if ok {
			pl.Bounds.X, pl.Bounds.Y = box.X+box.W-pl.Bounds.W, box.Y
			row = max(row, pl.Bounds.H)
			out = append(out, pl)
		}
	}

	if main != "" {
		top := row + offset
		area := Rect{X: box.X, Y: box.Y + top, W: box.W, H: box.H - top}
		pl, ok, err := p.place(Main, main, area.W, area.H)
		if err != nil {
			return nil, err
		}
		if ok {
			pl.Bounds.X = area.X + (area.W-pl.Bounds.W)/2
			pl.Bounds.Y = area.Y + (area.H-pl.Bounds.H)/2
			out = append(out, pl)
		}
	}
	return out, nil
}

func (p *Policy) place(role Role, text string, w, h float64) (Placement, bool, error) {
	if w <= 0 || h <= 0 {
		return Placement{}, false, nil
	}
	size, err := p.Sizer.Fit(text, w, h)
	if errors.Is(err, autofit.ErrNoFit) {
		return Placement{}, false, nil
	}
	if err != nil {
		return Placement{}, false, err
	}
	e, err := p.Sizer.Measurer.Measure(text, size)
	if err != nil {
		return Placement{}, false, err
	}
	return Placement{Role: role, Text: text, Size: size, Bounds: Rect{W: e.Width, H: e.Height}}, true, nil
}
