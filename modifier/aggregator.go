// Package modifier folds left and right physical modifier keys into the
// logical Shift, Ctrl and Alt switches.
package modifier

import (
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/keymap"
)

// Transition is a change of the logical held state of one modifier.
type Transition struct {
	Switch hardware.Switch
	Old    bool
	New    bool
}

// Aggregator tracks which physical variants of each modifier are held.
// It is not safe for concurrent use.
type Aggregator struct {
	held map[hardware.Switch]map[keymap.Handed]struct{}
}

func New() *Aggregator {
	return &Aggregator{held: make(map[hardware.Switch]map[keymap.Handed]struct{})}
}

// Press marks h as held. A transition is returned only when it is the first
// held variant of its modifier.
func (a *Aggregator) Press(h keymap.Handed) (Transition, bool) {
	sw := h.Switch()
	set := a.held[sw]
	if set == nil {
		set = make(map[keymap.Handed]struct{}, 2)
		a.held[sw] = set
	}
	was := len(set) > 0
	set[h] = struct{}{}
	if was {
		return Transition{}, false
	}
	return Transition{Switch: sw, Old: false, New: true}, true
}

// Release marks h as no longer held. A transition is returned only when no
// variant of the modifier remains held.
func (a *Aggregator) Release(h keymap.Handed) (Transition, bool) {
	sw := h.Switch()
	set := a.held[sw]
	if _, ok := set[h]; !ok {
		return Transition{}, false
	}
	delete(set, h)
	if len(set) > 0 {
		return Transition{}, false
	}
	return Transition{Switch: sw, Old: true, New: false}, true
}

// Held reports the logical state of a modifier switch.
func (a *Aggregator) Held(sw hardware.Switch) bool {
	return len(a.held[sw]) > 0
}
