// Package evdev reads keyboards and mice straight from /dev/input. It works
// without an X server (Wayland, consoles) but needs read access to the
// device nodes, usually through the "input" group. On other systems the
// backend is not registered.
package evdev

// Name is the backend name used with input.Open.
const Name = "evdev"
