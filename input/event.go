// Package input defines the events delivered by global keyboard and mouse
// hooks and the registry of hook backends.
package input

import (
	"fmt"
	"time"
)

// Kind classifies an Event.
type Kind uint8

const (
	KeyPressed Kind = iota + 1
	KeyReleased
	MousePressed
	MouseReleased
	MouseWheel
)

func (k Kind) String() string {
	switch k {
	case KeyPressed:
		return "key-pressed"
	case KeyReleased:
		return "key-released"
	case MousePressed:
		return "mouse-pressed"
	case MouseReleased:
		return "mouse-released"
	case MouseWheel:
		return "mouse-wheel"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Button numbers follow the native hook: 1 left, 2 right, 3 middle.
// Further buttons keep their backend number.
type Button uint16

const (
	ButtonLeft   Button = 1
	ButtonRight  Button = 2
	ButtonMiddle Button = 3
)

// Axis of a wheel rotation.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Event is one physical input event.
type Event struct {
	Kind Kind
	When time.Time

	// Rawcode is the platform key code of key events.
	Rawcode int
	// Text is the backend's own name for the key, used when the keymap has
	// no label for Rawcode.
	Text string

	Button Button

	Axis Axis
	// Rotation is negative for up/left and positive for down/right.
	Rotation int

	// Mask is the backend's modifier mask, kept for tracing only.
	Mask uint16
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPressed, KeyReleased:
		return fmt.Sprintf("%s raw=%d text=%q", e.Kind, e.Rawcode, e.Text)
	case MousePressed, MouseReleased:
		return fmt.Sprintf("%s button=%d", e.Kind, e.Button)
	case MouseWheel:
		return fmt.Sprintf("%s axis=%s rotation=%d", e.Kind, e.Axis, e.Rotation)
	default:
		return e.Kind.String()
	}
}
