// Package registry links every input hook backend into the binary.
package registry

import (
	_ "github.com/yukinoda/KmCaster/input/evdev"   // Register the /dev/input backend (linux only)
	_ "github.com/yukinoda/KmCaster/input/uiohook" // Register the native hook backend
)
