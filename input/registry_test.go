package input_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukinoda/KmCaster/input"
	kmtesting "github.com/yukinoda/KmCaster/internal/testing"
	"github.com/yukinoda/KmCaster/keymap"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name         string
		registerName string
		lookupName   string
		shouldFind   bool
	}{
		{name: "exact match", registerName: "stub-a", lookupName: "stub-a", shouldFind: true},
		{name: "case insensitive", registerName: "Stub-B", lookupName: "stub-b", shouldFind: true},
		{name: "case insensitive uppercase", registerName: "stub-c", lookupName: "STUB-C", shouldFind: true},
		{name: "missing", registerName: "stub-d", lookupName: "stub-e", shouldFind: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := kmtesting.CreateMockHook(t, keymap.Evdev)
			input.Register(tt.registerName, kmtesting.MockOpener(mock))

			h, err := input.Open(tt.lookupName, slog.Default())
			if !tt.shouldFind {
				assert.ErrorIs(t, err, input.ErrUnknownBackend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, keymap.Evdev, h.Platform())
			require.NoError(t, h.Close())
			assert.True(t, mock.Closed())
			_, open := <-h.Events()
			assert.False(t, open)
		})
	}
	assert.Contains(t, input.Backends(), "stub-b")
}

func TestOpenWrapsBackendError(t *testing.T) {
	boom := errors.New("no display")
	input.Register("broken", func(*slog.Logger) (input.Hook, error) { return nil, boom })

	_, err := input.Open("broken", slog.Default())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestEventString(t *testing.T) {
	assert.Equal(t, `key-pressed raw=97 text="a"`, input.Event{Kind: input.KeyPressed, Rawcode: 97, Text: "a"}.String())
	assert.Equal(t, "mouse-released button=2", input.Event{Kind: input.MouseReleased, Button: input.ButtonRight}.String())
	assert.Equal(t, "mouse-wheel axis=horizontal rotation=-1", input.Event{Kind: input.MouseWheel, Axis: input.Horizontal, Rotation: -1}.String())
}
