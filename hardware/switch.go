// Package hardware enumerates the keyboard and mouse switches KmCaster
// visualises and the immutable state records published for them.
package hardware

import (
	"fmt"
	"strings"
)

// Switch identifies one logical on-screen switch.
type Switch uint8

const (
	MouseLeft Switch = iota
	MouseMiddle
	MouseRight
	MouseExtra
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
	KeyShift
	KeyCtrl
	KeyAlt
	KeyRegular

	switchCount
)

type switchInfo struct {
	name     string
	modifier bool
	keyboard bool
	mouse    bool
	scroll   bool
}

var switchTable = [switchCount]switchInfo{
	MouseLeft:   {name: "1", mouse: true},
	MouseMiddle: {name: "2", mouse: true},
	MouseRight:  {name: "3", mouse: true},
	MouseExtra:  {name: "extra", mouse: true},
	ScrollUp:    {name: "u", mouse: true, scroll: true},
	ScrollDown:  {name: "d", mouse: true, scroll: true},
	ScrollLeft:  {name: "l", mouse: true, scroll: true},
	ScrollRight: {name: "r", mouse: true, scroll: true},
	KeyShift:    {name: "shift", keyboard: true, modifier: true},
	KeyCtrl:     {name: "ctrl", keyboard: true, modifier: true},
	KeyAlt:      {name: "alt", keyboard: true, modifier: true},
	KeyRegular:  {name: "regular", keyboard: true},
}

// Name is the lowercase identifier used in image keys and configuration.
func (s Switch) Name() string {
	if s >= switchCount {
		return ""
	}
	return switchTable[s].name
}

func (s Switch) String() string {
	if n := s.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("switch(%d)", uint8(s))
}

// TitleCase returns the name with its first letter upper-cased ("Shift").
func (s Switch) TitleCase() string {
	n := s.Name()
	if n == "" {
		return ""
	}
	return strings.ToUpper(n[:1]) + n[1:]
}

func (s Switch) IsModifier() bool { return s < switchCount && switchTable[s].modifier }
func (s Switch) IsKeyboard() bool { return s < switchCount && switchTable[s].keyboard }
func (s Switch) IsMouse() bool    { return s < switchCount && switchTable[s].mouse }
func (s Switch) IsScroll() bool   { return s < switchCount && switchTable[s].scroll }

// Switches returns every switch in declaration order.
func Switches() []Switch {
	out := make([]Switch, 0, switchCount)
	for s := Switch(0); s < switchCount; s++ {
		out = append(out, s)
	}
	return out
}

// KeyboardSwitches returns the keyboard switches in on-screen order.
func KeyboardSwitches() []Switch {
	return []Switch{KeyShift, KeyCtrl, KeyAlt, KeyRegular}
}

// ModifierSwitches returns Shift, Ctrl and Alt.
func ModifierSwitches() []Switch {
	return filter(Switch.IsModifier)
}

func MouseSwitches() []Switch {
	return filter(Switch.IsMouse)
}

func ScrollSwitches() []Switch {
	return filter(Switch.IsScroll)
}

func filter(pred func(Switch) bool) []Switch {
	var out []Switch
	for s := Switch(0); s < switchCount; s++ {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// ParseSwitch finds a switch by name, ignoring case.
func ParseSwitch(name string) (Switch, error) {
	for s := Switch(0); s < switchCount; s++ {
		if strings.EqualFold(switchTable[s].name, name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown switch %q", name)
}
