package hold_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/hold"
)

// queue collects posted callbacks so the test goroutine can run them the
// way the dispatch loop would.
type queue chan func()

func (q queue) post(f func()) { q <- f }

// drain runs callbacks posted within wait and returns how many ran.
func (q queue) drain(wait time.Duration) int {
	n := 0
	timeout := time.After(wait)
	for {
		select {
		case f := <-q:
			f()
			n++
		case <-timeout:
			return n
		}
	}
}

func TestDelaysFor(t *testing.T) {
	d := hold.DefaultDelays
	assert.Equal(t, 150*time.Millisecond, d.For(hardware.KeyShift))
	assert.Equal(t, 250*time.Millisecond, d.For(hardware.KeyRegular))
	assert.Equal(t, 100*time.Millisecond, d.For(hardware.MouseLeft))
	assert.Equal(t, 100*time.Millisecond, d.For(hardware.MouseExtra))
	assert.Equal(t, 300*time.Millisecond, d.For(hardware.ScrollDown))
}

func TestScheduleFiresAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	fired := 0
	s.Schedule(hardware.KeyRegular, 250*time.Millisecond, func() { fired++ })
	assert.True(t, s.Pending(hardware.KeyRegular))

	clock.Advance(249 * time.Millisecond)
	q.drain(20 * time.Millisecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	q.drain(50 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, s.Pending(hardware.KeyRegular))
}

func TestRescheduleReplacesPending(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	var got []string
	s.Schedule(hardware.KeyRegular, 100*time.Millisecond, func() { got = append(got, "first") })
	s.Schedule(hardware.KeyRegular, 100*time.Millisecond, func() { got = append(got, "second") })

	clock.Advance(time.Second)
	q.drain(50 * time.Millisecond)
	assert.Equal(t, []string{"second"}, got)
}

func TestCancelPreventsFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	fired := false
	s.Schedule(hardware.KeyShift, 150*time.Millisecond, func() { fired = true })
	require.True(t, s.Cancel(hardware.KeyShift))
	assert.False(t, s.Cancel(hardware.KeyShift))

	clock.Advance(time.Second)
	q.drain(20 * time.Millisecond)
	assert.False(t, fired)
}

func TestCancelAfterTimerElapsedDropsPostedFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	fired := false
	s.Schedule(hardware.MouseLeft, 100*time.Millisecond, func() { fired = true })
	clock.Advance(100 * time.Millisecond)

	// The callback is queued but has not run on the owning goroutine yet.
	var posted func()
	select {
	case posted = <-q:
	case <-time.After(time.Second):
		t.Fatal("timer did not post its callback")
	}
	s.Cancel(hardware.MouseLeft)
	posted()
	assert.False(t, fired)
}

func TestSwitchesAreIndependent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	fired := map[hardware.Switch]bool{}
	s.Schedule(hardware.KeyShift, 100*time.Millisecond, func() { fired[hardware.KeyShift] = true })
	s.Schedule(hardware.KeyCtrl, 100*time.Millisecond, func() { fired[hardware.KeyCtrl] = true })
	s.Cancel(hardware.KeyShift)

	clock.Advance(100 * time.Millisecond)
	q.drain(50 * time.Millisecond)
	assert.False(t, fired[hardware.KeyShift])
	assert.True(t, fired[hardware.KeyCtrl])
}

func TestZeroDelayFiresImmediately(t *testing.T) {
	s := hold.New(clockwork.NewFakeClock(), func(func()) { t.Fatal("nothing should be posted") })
	fired := false
	s.Schedule(hardware.ScrollUp, 0, func() { fired = true })
	assert.True(t, fired)
	assert.False(t, s.Pending(hardware.ScrollUp))
}

func TestCancelAll(t *testing.T) {
	clock := clockwork.NewFakeClock()
	q := make(queue, 8)
	s := hold.New(clock, q.post)

	count := 0
	for _, sw := range hardware.ScrollSwitches() {
		s.Schedule(sw, time.Second, func() { count++ })
	}
	s.CancelAll()
	clock.Advance(2 * time.Second)
	q.drain(20 * time.Millisecond)
	assert.Equal(t, 0, count)
}
