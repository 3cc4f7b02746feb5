//go:build linux

package evdev

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	goevdev "github.com/holoplot/go-evdev"

	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/keymap"
)

func init() {
	input.Register(Name, Open)
}

type kind uint8

const (
	kindKeyboard kind = 1 << iota
	kindMouse
)

type hook struct {
	logger  *slog.Logger
	devices []*goevdev.InputDevice
	events  chan input.Event
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Open opens every readable keyboard and mouse. It fails when none can be
// opened.
func Open(logger *slog.Logger) (input.Hook, error) {
	paths, err := goevdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	h := &hook{logger: logger, events: make(chan input.Event, 256), done: make(chan struct{})}
	var denied bool
	for _, p := range paths {
		dev, err := goevdev.OpenWithFlags(p.Path, os.O_RDONLY)
		if err != nil {
			if errors.Is(err, os.ErrPermission) {
				denied = true
			}
			logger.Debug("skipping input device", "path", p.Path, "error", err)
			continue
		}
		k := classify(dev)
		if k == 0 {
			_ = dev.Close()
			continue
		}
		logger.Info("Capturing input device", "path", p.Path, "name", p.Name,
			"keyboard", k&kindKeyboard != 0, "mouse", k&kindMouse != 0)
		h.devices = append(h.devices, dev)
	}

	if len(h.devices) == 0 {
		if denied {
			return nil, errors.New("permission denied on /dev/input; add the user to the input group")
		}
		return nil, errors.New("no keyboard or mouse found under /dev/input")
	}

	for _, dev := range h.devices {
		h.wg.Add(1)
		go h.read(dev)
	}
	go func() {
		h.wg.Wait()
		close(h.events)
	}()
	return h, nil
}

func (h *hook) Events() <-chan input.Event { return h.events }

func (h *hook) Platform() keymap.Platform { return keymap.Evdev }

// Close closes the devices; pending reads fail and the event channel closes.
func (h *hook) Close() error {
	var errs []error
	h.once.Do(func() {
		close(h.done)
		for _, dev := range h.devices {
			if err := dev.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

func (h *hook) read(dev *goevdev.InputDevice) {
	defer h.wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			h.logger.Debug("input device closed", "path", dev.Path(), "error", err)
			return
		}
		out, ok := convert(ev.Type, ev.Code, ev.Value)
		if !ok {
			continue
		}
		out.When = time.Now()
		select {
		case h.events <- out:
		case <-h.done:
			return
		}
	}
}

func classify(dev *goevdev.InputDevice) kind {
	var k kind
	types := dev.CapableTypes()
	has := func(t goevdev.EvType) bool {
		for _, ct := range types {
			if ct == t {
				return true
			}
		}
		return false
	}
	if !has(goevdev.EV_KEY) {
		return 0
	}
	codes := make(map[goevdev.EvCode]bool)
	for _, c := range dev.CapableEvents(goevdev.EV_KEY) {
		codes[c] = true
	}
	if codes[goevdev.KEY_A] {
		k |= kindKeyboard
	}
	if codes[goevdev.BTN_LEFT] && has(goevdev.EV_REL) {
		k |= kindMouse
	}
	return k
}

// convert maps one kernel event onto an input event. Key auto-repeat
// (value 2) is reported as another press, matching the native hook.
func convert(typ goevdev.EvType, code goevdev.EvCode, value int32) (input.Event, bool) {
	switch typ {
	case goevdev.EV_KEY:
		pressed := value != 0
		if b, ok := button(code); ok {
			ev := input.Event{Kind: input.MouseReleased, Button: b}
			if pressed {
				ev.Kind = input.MousePressed
			}
			return ev, true
		}
		if isButton(code) {
			return input.Event{}, false
		}
		ev := input.Event{Kind: input.KeyReleased, Rawcode: int(code), Text: keyText(code)}
		if pressed {
			ev.Kind = input.KeyPressed
		}
		return ev, true

	case goevdev.EV_REL:
		switch code {
		case goevdev.REL_WHEEL:
			// Positive values scroll up.
			return input.Event{Kind: input.MouseWheel, Axis: input.Vertical, Rotation: -int(value)}, value != 0
		case goevdev.REL_HWHEEL:
			return input.Event{Kind: input.MouseWheel, Axis: input.Horizontal, Rotation: int(value)}, value != 0
		}
	}
	return input.Event{}, false
}

func button(code goevdev.EvCode) (input.Button, bool) {
	switch code {
	case goevdev.BTN_LEFT:
		return input.ButtonLeft, true
	case goevdev.BTN_RIGHT:
		return input.ButtonRight, true
	case goevdev.BTN_MIDDLE:
		return input.ButtonMiddle, true
	}
	if code > goevdev.BTN_MIDDLE && code < goevdev.BTN_MIDDLE+8 {
		// BTN_SIDE, BTN_EXTRA, BTN_FORWARD, ... become 4, 5, 6, ...
		return input.Button(4 + code - goevdev.BTN_SIDE), true
	}
	return 0, false
}

// isButton reports the BTN_* ranges: touch, tool, joystick and gamepad
// buttons that are not keys and not handled by button.
func isButton(code goevdev.EvCode) bool {
	switch {
	case code >= goevdev.BTN_MISC && code < goevdev.KEY_OK:
		return true
	case code >= goevdev.BTN_DPAD_UP && code <= goevdev.BTN_DPAD_RIGHT:
		return true
	}
	return code >= goevdev.BTN_TRIGGER_HAPPY
}

// keyText turns KEY_A into "a" and KEY_VOLUMEUP into "Volumeup".
func keyText(code goevdev.EvCode) string {
	name := goevdev.CodeName(goevdev.EV_KEY, code)
	name = strings.TrimPrefix(name, "KEY_")
	switch {
	case name == "" || name == "unknown":
		return fmt.Sprintf("0x%X", uint16(code))
	case len(name) == 1:
		return strings.ToLower(name)
	default:
		return name[:1] + strings.ToLower(name[1:])
	}
}
