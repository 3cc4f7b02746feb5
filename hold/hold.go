// Package hold keeps released switches on screen for a short delay.
package hold

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yukinoda/KmCaster/hardware"
)

// Delays are the hold times per switch category.
type Delays struct {
	Modifier time.Duration
	Regular  time.Duration
	Button   time.Duration
	Scroll   time.Duration
}

// DefaultDelays match the command line defaults.
var DefaultDelays = Delays{
	Modifier: 150 * time.Millisecond,
	Regular:  250 * time.Millisecond,
	Button:   100 * time.Millisecond,
	Scroll:   300 * time.Millisecond,
}

// For returns the delay that applies to sw.
func (d Delays) For(sw hardware.Switch) time.Duration {
	switch {
	case sw.IsModifier():
		return d.Modifier
	case sw.IsScroll():
		return d.Scroll
	case sw.IsMouse():
		return d.Button
	default:
		return d.Regular
	}
}

type pending struct {
	timer clockwork.Timer
	gen   uint64
}

// Scheduler runs at most one delayed release per switch. Timer callbacks are
// handed to post, which must run them on the goroutine that owns the
// scheduler; all other methods must be called from that goroutine too.
type Scheduler struct {
	clock   clockwork.Clock
	post    func(func())
	pending map[hardware.Switch]*pending
	gen     uint64
}

func New(clock clockwork.Clock, post func(func())) *Scheduler {
	return &Scheduler{
		clock:   clock,
		post:    post,
		pending: make(map[hardware.Switch]*pending),
	}
}

// Schedule replaces any pending release of sw with fire after delay.
// A non-positive delay fires immediately.
func (s *Scheduler) Schedule(sw hardware.Switch, delay time.Duration, fire func()) {
	s.Cancel(sw)
	if delay <= 0 {
		fire()
		return
	}

	s.gen++
	p := &pending{gen: s.gen}
	s.pending[sw] = p
	gen := p.gen
	p.timer = s.clock.AfterFunc(delay, func() {
		s.post(func() {
			// A newer schedule or a cancel may have raced the timer.
			cur, ok := s.pending[sw]
			if !ok || cur.gen != gen {
				return
			}
			delete(s.pending, sw)
			fire()
		})
	})
}

// Cancel stops the pending release of sw and reports whether one existed.
func (s *Scheduler) Cancel(sw hardware.Switch) bool {
	p, ok := s.pending[sw]
	if !ok {
		return false
	}
	delete(s.pending, sw)
	p.timer.Stop()
	return true
}

func (s *Scheduler) Pending(sw hardware.Switch) bool {
	_, ok := s.pending[sw]
	return ok
}

// CancelAll drops every pending release.
func (s *Scheduler) CancelAll() {
	for sw := range s.pending {
		s.Cancel(sw)
	}
}
