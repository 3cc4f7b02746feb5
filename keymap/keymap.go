// Package keymap translates raw key codes reported by the global input hook
// into short on-screen labels.
package keymap

import (
	"fmt"
	"runtime"

	"github.com/yukinoda/KmCaster/hardware"
)

// Platform selects the raw code space of the hook backend.
type Platform uint8

const (
	// Linux is the X11 keysym space reported by the native hook.
	Linux Platform = iota
	// Windows is the virtual-key space.
	Windows
	// Darwin is the macOS virtual keycode space.
	Darwin
	// Evdev is the Linux kernel input code space.
	Evdev
)

func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	case Evdev:
		return "evdev"
	default:
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
}

// Native returns the platform of the native hook on the running OS.
func Native() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Linux
	}
}

// Display labels shared by several platforms.
const (
	LabelSpace     = "Space"
	LabelBackspace = "Back ⌫"
	LabelTab       = "Tab ↹"
	LabelEnter     = "Enter ⏎"
	LabelEscape    = "Esc"
)

// Keymap holds the immutable tables of one platform.
type Keymap struct {
	platform  Platform
	labels    map[int]string
	modifiers map[int]Handed
}

// For returns the keymap of the given platform.
func For(p Platform) *Keymap {
	km, ok := keymaps[p]
	if !ok {
		return &Keymap{platform: p}
	}
	return km
}

var keymaps = map[Platform]*Keymap{
	Linux:   {platform: Linux, labels: linuxLabels, modifiers: linuxModifiers},
	Windows: {platform: Windows, labels: windowsLabels, modifiers: windowsModifiers},
	Darwin:  {platform: Darwin, labels: darwinLabels, modifiers: darwinModifiers},
	Evdev:   {platform: Evdev, labels: evdevLabels, modifiers: evdevModifiers},
}

func (k *Keymap) Platform() Platform { return k.platform }

// Translate returns the label for raw, or fallback unmodified when the table
// has no entry.
func (k *Keymap) Translate(raw int, fallback string) string {
	if label, ok := k.labels[raw]; ok {
		return label
	}
	return fallback
}

// Modifier reports which physical modifier raw belongs to, if any.
func (k *Keymap) Modifier(raw int) (Handed, bool) {
	h, ok := k.modifiers[raw]
	return h, ok
}

// IsModifier is shorthand for the second result of Modifier.
func (k *Keymap) IsModifier(raw int) bool {
	_, ok := k.modifiers[raw]
	return ok
}

// Handed names one physical modifier key.
type Handed uint8

const (
	ShiftLeft Handed = iota
	ShiftRight
	CtrlLeft
	CtrlRight
	AltLeft
	AltRight
)

// Switch returns the logical modifier switch the key drives.
func (h Handed) Switch() hardware.Switch {
	switch h {
	case ShiftLeft, ShiftRight:
		return hardware.KeyShift
	case CtrlLeft, CtrlRight:
		return hardware.KeyCtrl
	default:
		return hardware.KeyAlt
	}
}

func (h Handed) String() string {
	side := "left"
	if h%2 == 1 {
		side = "right"
	}
	return h.Switch().Name() + "-" + side
}

var charLabels = map[rune]string{
	'\b':     LabelBackspace,
	'\t':     LabelTab,
	'\r':     LabelEnter,
	'\u001b': LabelEscape,
	' ':      LabelSpace,
}

// TranslateChar maps control characters delivered by typed-key events to
// their labels.
func TranslateChar(r rune) (string, bool) {
	s, ok := charLabels[r]
	return s, ok
}

var shortNames = map[string]string{
	"Caps Lock":    "Caps",
	"Num Lock":     "Num",
	"Scroll Lock":  "Scrl",
	"Print Screen": "Print",
	"Up":           "↑",
	"Down":         "↓",
	"Left":         "←",
	"Right":        "→",
}

// Shorten maps verbose platform key names onto labels that fit a key cap.
func Shorten(name string) string {
	if s, ok := shortNames[name]; ok {
		return s
	}
	return name
}
