package caster

import (
	"strconv"

	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/input"
)

func buttonSwitch(b input.Button) hardware.Switch {
	switch b {
	case input.ButtonLeft:
		return hardware.MouseLeft
	case input.ButtonMiddle:
		return hardware.MouseMiddle
	case input.ButtonRight:
		return hardware.MouseRight
	default:
		return hardware.MouseExtra
	}
}

func scrollSwitch(axis input.Axis, rotation int) (hardware.Switch, bool) {
	switch {
	case rotation == 0:
		return 0, false
	case axis == input.Vertical && rotation < 0:
		return hardware.ScrollUp, true
	case axis == input.Vertical:
		return hardware.ScrollDown, true
	case rotation < 0:
		return hardware.ScrollLeft, true
	default:
		return hardware.ScrollRight, true
	}
}

func (c *Caster) mousePressed(ev input.Event) {
	sw := buttonSwitch(ev.Button)
	value := sw.Name()
	if sw == hardware.MouseExtra {
		value = strconv.Itoa(int(ev.Button))
		c.extraShown = value
	}
	c.hold.Cancel(sw)
	c.dispatch(hardware.NewRecord(sw, hardware.Pressed, value))
}

func (c *Caster) mouseReleased(ev input.Event) {
	sw := buttonSwitch(ev.Button)
	if sw == hardware.MouseExtra {
		if c.extraShown != strconv.Itoa(int(ev.Button)) {
			return
		}
		c.extraShown = ""
	}
	c.release(sw, c.cfg.Delays.Button)
}

// mouseWheel shows one scroll direction at a time; a new direction clears
// the previous one at once.
func (c *Caster) mouseWheel(ev input.Event) {
	sw, ok := scrollSwitch(ev.Axis, ev.Rotation)
	if !ok {
		return
	}
	for _, other := range hardware.ScrollSwitches() {
		if other == sw || !c.store.State(other).Pressed() {
			continue
		}
		c.hold.Cancel(other)
		c.dispatch(hardware.NewRecord(other, hardware.Released, ""))
	}
	c.hold.Cancel(sw)
	c.dispatch(hardware.NewRecord(sw, hardware.Pressed, sw.Name()))
	c.release(sw, c.cfg.Delays.Scroll)
}
