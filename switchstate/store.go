// Package switchstate keeps the published record of every switch and tells
// listeners when one changes.
package switchstate

import "github.com/yukinoda/KmCaster/hardware"

// Listener receives every accepted change, old record first.
type Listener interface {
	SwitchChanged(old, new hardware.Record)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(old, new hardware.Record)

func (f ListenerFunc) SwitchChanged(old, new hardware.Record) { f(old, new) }

// Store is owned by the dispatch goroutine and must not be shared.
type Store struct {
	records   map[hardware.Switch]hardware.Record
	listeners []Listener
}

// New returns a store with every switch released.
func New(listeners ...Listener) *Store {
	s := &Store{
		records:   make(map[hardware.Switch]hardware.Record),
		listeners: listeners,
	}
	for _, sw := range hardware.Switches() {
		s.records[sw] = hardware.NewRecord(sw, hardware.Released, "")
	}
	return s
}

func (s *Store) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Dispatch stores rec and notifies listeners. A record equal to the stored
// one is dropped and Dispatch returns false.
func (s *Store) Dispatch(rec hardware.Record) bool {
	old := s.records[rec.Switch]
	if old == rec {
		return false
	}
	s.records[rec.Switch] = rec
	for _, l := range s.listeners {
		l.SwitchChanged(old, rec)
	}
	return true
}

func (s *Store) State(sw hardware.Switch) hardware.Record {
	return s.records[sw]
}

// Snapshot returns all records in switch declaration order.
func (s *Store) Snapshot() []hardware.Record {
	out := make([]hardware.Record, 0, len(s.records))
	for _, sw := range hardware.Switches() {
		out = append(out, s.records[sw])
	}
	return out
}
