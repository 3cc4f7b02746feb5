package switchstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukinoda/KmCaster/hardware"
	"github.com/yukinoda/KmCaster/switchstate"
)

type recorder struct {
	changes [][2]hardware.Record
}

func (r *recorder) SwitchChanged(old, new hardware.Record) {
	r.changes = append(r.changes, [2]hardware.Record{old, new})
}

func TestInitialState(t *testing.T) {
	s := switchstate.New()
	snap := s.Snapshot()
	require.Len(t, snap, len(hardware.Switches()))
	for i, rec := range snap {
		assert.Equal(t, hardware.Switches()[i], rec.Switch)
		assert.Equal(t, hardware.Released, rec.State)
	}
	assert.Equal(t, "Shift", s.State(hardware.KeyShift).Value)
	assert.Equal(t, "", s.State(hardware.KeyRegular).Value)
}

func TestDispatchIsIdempotent(t *testing.T) {
	r := &recorder{}
	s := switchstate.New(r)

	pressed := hardware.Record{Switch: hardware.KeyRegular, State: hardware.Pressed, Value: "a"}
	assert.True(t, s.Dispatch(pressed))
	assert.False(t, s.Dispatch(pressed))
	require.Len(t, r.changes, 1)
	assert.Equal(t, hardware.Released, r.changes[0][0].State)
	assert.Equal(t, pressed, r.changes[0][1])

	released := hardware.NewRecord(hardware.KeyRegular, hardware.Released, "")
	assert.True(t, s.Dispatch(released))
	assert.False(t, s.Dispatch(released))
	assert.Len(t, r.changes, 2)
}

func TestDispatchDetectsValueAndTallyChanges(t *testing.T) {
	r := &recorder{}
	s := switchstate.New(r)

	s.Dispatch(hardware.Record{Switch: hardware.KeyRegular, State: hardware.Pressed, Value: "a"})
	s.Dispatch(hardware.Record{Switch: hardware.KeyRegular, State: hardware.Pressed, Value: "b"})
	s.Dispatch(hardware.Record{Switch: hardware.KeyRegular, State: hardware.Pressed, Value: "b", Tally: "×2"})

	require.Len(t, r.changes, 3)
	assert.Equal(t, "a", r.changes[1][0].Value)
	assert.Equal(t, "×2", r.changes[2][1].Tally)
	assert.Equal(t, "×2", s.State(hardware.KeyRegular).Tally)
}

func TestReleasingReleasedSwitchIsNoop(t *testing.T) {
	called := 0
	s := switchstate.New()
	s.AddListener(switchstate.ListenerFunc(func(old, new hardware.Record) { called++ }))

	assert.False(t, s.Dispatch(hardware.NewRecord(hardware.KeyShift, hardware.Released, "")))
	assert.False(t, s.Dispatch(hardware.NewRecord(hardware.MouseLeft, hardware.Released, "")))
	assert.Equal(t, 0, called)
}

func TestListenersNotifiedInOrder(t *testing.T) {
	var order []string
	s := switchstate.New(
		switchstate.ListenerFunc(func(old, new hardware.Record) { order = append(order, "first") }),
		switchstate.ListenerFunc(func(old, new hardware.Record) { order = append(order, "second") }),
	)
	s.Dispatch(hardware.NewRecord(hardware.KeyCtrl, hardware.Pressed, ""))
	assert.Equal(t, []string{"first", "second"}, order)
}
