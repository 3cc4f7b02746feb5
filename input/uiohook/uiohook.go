// Package uiohook captures global keyboard and mouse input through the
// native libuiohook bindings of github.com/robotn/gohook (X11, Windows and
// macOS).
package uiohook

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/keymap"
)

// Name is the backend name used with input.Open.
const Name = "uiohook"

// RegisterTimeout bounds the wait for the hook-enabled notification.
var RegisterTimeout = 2 * time.Second

// libuiohook wheel directions.
const (
	wheelVertical   = 3
	wheelHorizontal = 4
)

func init() {
	input.Register(Name, Open)
}

type uiohook struct {
	logger *slog.Logger
	src    chan hook.Event
	events chan input.Event
	done   chan struct{}
	once   sync.Once
}

// Open registers the native hook. Only one hook can be active per process.
func Open(logger *slog.Logger) (input.Hook, error) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" {
		return nil, errors.New("no X11 display; set DISPLAY or use the evdev hook")
	}

	h := &uiohook{
		logger: logger,
		src:    hook.Start(),
		events: make(chan input.Event, 256),
		done:   make(chan struct{}),
	}

	select {
	case ev, ok := <-h.src:
		if !ok {
			return nil, errors.New("native hook stopped during registration")
		}
		if ev.Kind == hook.HookEnabled {
			logger.Debug("native hook registered")
		} else {
			h.forward(ev)
		}
	case <-time.After(RegisterTimeout):
		logger.Warn("native hook did not confirm registration", "timeout", RegisterTimeout)
	}

	go h.run()
	return h, nil
}

func (h *uiohook) Events() <-chan input.Event { return h.events }

func (h *uiohook) Platform() keymap.Platform { return keymap.Native() }

func (h *uiohook) Close() error {
	h.once.Do(func() {
		close(h.done)
		hook.End()
	})
	return nil
}

func (h *uiohook) run() {
	defer close(h.events)
	for {
		select {
		case <-h.done:
			return
		case ev, ok := <-h.src:
			if !ok {
				return
			}
			if ev.Kind == hook.HookDisabled {
				h.logger.Info("native hook disabled")
				return
			}
			if !h.forward(ev) {
				return
			}
		}
	}
}

// forward converts and delivers ev; it reports false once the hook closes.
func (h *uiohook) forward(ev hook.Event) bool {
	out, ok := convert(ev)
	if !ok {
		return true
	}
	select {
	case h.events <- out:
		return true
	case <-h.done:
		return false
	}
}

// convert maps a gohook event. gohook names the libuiohook kinds after the
// typed/pressed/released triple: KeyDown is "typed", KeyHold "pressed" and
// KeyUp "released"; MouseHold is "pressed" and MouseDown "released". Typed
// and clicked events are synthesised and dropped.
func convert(ev hook.Event) (input.Event, bool) {
	out := input.Event{When: ev.When, Mask: ev.Mask}
	switch ev.Kind {
	case hook.KeyHold:
		out.Kind = input.KeyPressed
	case hook.KeyUp:
		out.Kind = input.KeyReleased
	case hook.MouseHold:
		out.Kind = input.MousePressed
	case hook.MouseDown:
		out.Kind = input.MouseReleased
	case hook.MouseWheel:
		out.Kind = input.MouseWheel
	default:
		return input.Event{}, false
	}

	switch out.Kind {
	case input.KeyPressed, input.KeyReleased:
		out.Rawcode = int(ev.Rawcode)
		out.Text = keyText(ev)
	case input.MousePressed, input.MouseReleased:
		out.Button = input.Button(ev.Button)
	case input.MouseWheel:
		switch ev.Direction {
		case wheelVertical:
			out.Axis = input.Vertical
		case wheelHorizontal:
			out.Axis = input.Horizontal
		default:
			return input.Event{}, false
		}
		out.Rotation = int(ev.Rotation)
	}
	return out, true
}

func keyText(ev hook.Event) string {
	var s string
	if ev.Keychar != hook.CharUndefined && ev.Keychar > 0 {
		s = string(ev.Keychar)
	} else {
		s = hook.RawcodetoKeychar(ev.Rawcode)
	}
	if r := []rune(s); len(r) == 1 {
		if label, ok := keymap.TranslateChar(r[0]); ok {
			return label
		}
	}
	if s == "" {
		return fmt.Sprintf("0x%X", ev.Rawcode)
	}
	return keymap.Shorten(s)
}
