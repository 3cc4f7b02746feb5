package hardware

// State is the binary state of a switch.
type State uint8

const (
	Released State = iota
	Pressed
)

func (st State) String() string {
	if st == Pressed {
		return "pressed"
	}
	return "released"
}

// Record is the published state of one switch. Records are values; a new
// record replaces the old one instead of being mutated.
type Record struct {
	Switch Switch
	State  State
	// Value is the display text: the translated key for KeyRegular, the button
	// number for MouseExtra, the switch title for modifiers.
	Value string
	// Tally is the formatted repeat counter ("×3"), empty when not repeating.
	Tally string
}

// NewRecord builds a record without a tally. Modifiers always carry their
// title as value regardless of the one supplied.
func NewRecord(sw Switch, st State, value string) Record {
	if sw.IsModifier() {
		value = sw.TitleCase()
	}
	return Record{Switch: sw, State: st, Value: value}
}

func (r Record) Pressed() bool {
	return r.State == Pressed
}
