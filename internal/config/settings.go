// Package config holds the command line and config file settings.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/hold"
	"github.com/yukinoda/KmCaster/internal/log"
)

const (
	MinProportion = 20
	MinKeyCounter = 2
)

// Log configures the slog handlers and the raw event trace.
type Log struct {
	Level     string `help:"Log level (${enum})" enum:"${log_levels}" default:"info" env:"KMCASTER_LOG_LEVEL"`
	File      string `help:"Also write logs to this file" type:"path" env:"KMCASTER_LOG_FILE"`
	TraceFile string `help:"Write every raw input event to this file" type:"path" env:"KMCASTER_LOG_TRACE_FILE"`
}

// Settings are the overlay options.
type Settings struct {
	Proportion    int           `short:"p" help:"Height of the overlay in pixels (min 20)" default:"100"`
	DelayAlphanum time.Duration `short:"a" help:"How long a released regular key stays on screen" default:"250ms"`
	DelayModifier time.Duration `short:"m" help:"How long a released modifier stays on screen" default:"150ms"`
	DelayButton   time.Duration `short:"b" help:"How long a released mouse button stays on screen" default:"100ms"`
	DelayScroll   time.Duration `short:"s" help:"How long a scroll direction stays on screen" default:"300ms"`
	KeyCounter    int           `short:"k" help:"Repeat count after which the tally shows N+ (min 2)" default:"9"`
	Colour        string        `short:"c" help:"Background colour as RGBA hex" default:"30303077"`
	FontName      string        `short:"f" help:"Bundled font family (${fonts})" default:"go"`
	FontStyle     string        `help:"Font style (${enum})" enum:"${font_styles}" default:"bold"`
	FontFile      string        `help:"TTF or OTF file to use instead of a bundled font" type:"path"`
	GapHorizontal int           `help:"Space between keys in pixels" default:"5"`
	GapVertical   int           `help:"Space above and below the keys in pixels" default:"5"`
	Debug         bool          `short:"d" help:"Trace every input event"`
	Hook          string        `help:"Input backend (${enum})" enum:"${hooks}" default:"uiohook"`
}

// Vars returns the interpolation variables referenced by the struct tags.
func Vars() kong.Vars {
	return kong.Vars{
		"log_levels":  log.Levels,
		"font_styles": assets.FontStyles,
		"fonts":       strings.Join(assets.FontNames(), ", "),
		"hooks":       "uiohook,evdev",
	}
}

// Validate is called by kong after parsing.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := ParseColour(s.Colour); err != nil {
		errs = append(errs, err)
	}
	if s.FontFile == "" {
		if _, err := assets.Font(s.FontName, s.FontStyle); err != nil {
			errs = append(errs, err)
		}
	}
	for name, d := range map[string]time.Duration{
		"delay-alphanum": s.DelayAlphanum,
		"delay-modifier": s.DelayModifier,
		"delay-button":   s.DelayButton,
		"delay-scroll":   s.DelayScroll,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("--%s must not be negative", name))
		}
	}
	if s.GapHorizontal < 0 || s.GapVertical < 0 {
		errs = append(errs, errors.New("gaps must not be negative"))
	}
	return errors.Join(errs...)
}

// Height returns the overlay height, raised to MinProportion.
func (s *Settings) Height() int {
	return max(s.Proportion, MinProportion)
}

// KeyCount returns the tally limit, raised to MinKeyCounter.
func (s *Settings) KeyCount() int {
	return max(s.KeyCounter, MinKeyCounter)
}

func (s *Settings) Delays() hold.Delays {
	return hold.Delays{
		Modifier: s.DelayModifier,
		Regular:  s.DelayAlphanum,
		Button:   s.DelayButton,
		Scroll:   s.DelayScroll,
	}
}

// Background parses Colour. Validate has already rejected bad values.
func (s *Settings) Background() color.NRGBA {
	c, _ := ParseColour(s.Colour)
	return c
}

// Font returns the TTF data selected by FontFile or FontName and FontStyle.
func (s *Settings) Font() ([]byte, error) {
	if s.FontFile != "" {
		return assets.LoadFontFile(s.FontFile)
	}
	return assets.Font(s.FontName, s.FontStyle)
}

// ParseColour reads RRGGBBAA or RRGGBB hex, with an optional leading '#'.
func ParseColour(v string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: want RRGGBBAA", v)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", v, err)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}
