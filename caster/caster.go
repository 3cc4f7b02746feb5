// Package caster turns raw hook events into switch state records.
//
// All state lives on one dispatch goroutine (Run). Hook events arrive on a
// channel and delayed releases are posted back onto the same goroutine, so
// the store, the modifier aggregator and the counter are never shared.
package caster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yukinoda/KmCaster/counter"
	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/hold"
	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/internal/log"
	"github.com/yukinoda/KmCaster/keymap"
	"github.com/yukinoda/KmCaster/modifier"
	"github.com/yukinoda/KmCaster/switchstate"
)

// ErrHookClosed is returned by Run when the event channel closes.
var ErrHookClosed = errors.New("input hook closed")

// Config tunes the dispatch behaviour.
type Config struct {
	Delays   hold.Delays
	KeyCount int
}

// DefaultConfig mirrors the command line defaults.
var DefaultConfig = Config{Delays: hold.DefaultDelays, KeyCount: 9}

type Caster struct {
	cfg    Config
	keymap *keymap.Keymap
	store  *switchstate.Store
	logger *slog.Logger
	tracer log.Tracer

	hold      *hold.Scheduler
	modifiers *modifier.Aggregator
	counter   *counter.Counter

	// shown is the raw code of the key on the regular switch while it is
	// physically held.
	shown      int
	showing    bool
	extraShown string

	queue chan func()
	done  chan struct{}
}

// New wires a caster. A nil tracer disables tracing.
func New(cfg Config, km *keymap.Keymap, store *switchstate.Store, clock clockwork.Clock, logger *slog.Logger, tracer log.Tracer) (*Caster, error) {
	cnt, err := counter.New(cfg.KeyCount)
	if err != nil {
		return nil, fmt.Errorf("key counter: %w", err)
	}
	if tracer == nil {
		tracer = log.NewTracer(nil)
	}
	c := &Caster{
		cfg:       cfg,
		keymap:    km,
		store:     store,
		logger:    logger,
		tracer:    tracer,
		modifiers: modifier.New(),
		counter:   cnt,
		queue:     make(chan func(), 64),
		done:      make(chan struct{}),
	}
	c.hold = hold.New(clock, c.post)
	return c, nil
}

// post hands f to the dispatch goroutine. It never blocks once Run returned.
func (c *Caster) post(f func()) {
	select {
	case c.queue <- f:
	case <-c.done:
	}
}

// Run dispatches until ctx is cancelled or events closes.
func (c *Caster) Run(ctx context.Context, events <-chan input.Event) error {
	defer close(c.done)
	defer c.hold.CancelAll()

	c.logger.Debug("dispatch loop started", "platform", c.keymap.Platform())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return ErrHookClosed
			}
			c.Handle(ev)
		case f := <-c.queue:
			f()
		}
	}
}

// Handle processes one event. It must be called from the dispatch goroutine.
func (c *Caster) Handle(ev input.Event) {
	c.tracer.Trace(ev.Kind.String(), ev.String())
	switch ev.Kind {
	case input.KeyPressed:
		c.keyPressed(ev)
	case input.KeyReleased:
		c.keyReleased(ev)
	case input.MousePressed:
		c.mousePressed(ev)
	case input.MouseReleased:
		c.mouseReleased(ev)
	case input.MouseWheel:
		c.mouseWheel(ev)
	default:
		c.logger.Debug("ignoring input event", "kind", ev.Kind)
	}
}

func (c *Caster) dispatch(rec hardware.Record) {
	if c.store.Dispatch(rec) {
		c.logger.Log(context.Background(), log.LevelTrace, "switch changed",
			"switch", rec.Switch, "state", rec.State, "value", rec.Value, "tally", rec.Tally)
	}
}

// release schedules the released record of sw after its category delay.
func (c *Caster) release(sw hardware.Switch, delay time.Duration) {
	c.hold.Schedule(sw, delay, func() {
		c.dispatch(hardware.NewRecord(sw, hardware.Released, ""))
	})
}
