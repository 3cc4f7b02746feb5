package caster

import (
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/input"
)

func (c *Caster) keyPressed(ev input.Event) {
	if h, ok := c.keymap.Modifier(ev.Rawcode); ok {
		tr, changed := c.modifiers.Press(h)
		if !changed {
			return
		}
		c.hold.Cancel(tr.Switch)
		c.counter.Reset()
		c.dispatch(hardware.NewRecord(tr.Switch, hardware.Pressed, ""))
		return
	}

	text := c.keymap.Translate(ev.Rawcode, ev.Text)
	if text == "" {
		c.logger.Debug("no label for key", "raw", ev.Rawcode)
		return
	}

	// Last key wins: the new key replaces whatever the switch shows.
	c.hold.Cancel(hardware.KeyRegular)
	c.shown, c.showing = ev.Rawcode, true
	c.counter.Apply(text)
	c.dispatch(hardware.Record{
		Switch: hardware.KeyRegular,
		State:  hardware.Pressed,
		Value:  text,
		Tally:  c.counter.String(),
	})
}

func (c *Caster) keyReleased(ev input.Event) {
	if h, ok := c.keymap.Modifier(ev.Rawcode); ok {
		if tr, changed := c.modifiers.Release(h); changed {
			c.release(tr.Switch, c.cfg.Delays.Modifier)
		}
		return
	}

	// Releasing a key that was already superseded does not clear the newer one.
	if !c.showing || c.shown != ev.Rawcode {
		return
	}
	c.showing = false
	c.release(hardware.KeyRegular, c.cfg.Delays.Regular)
}
