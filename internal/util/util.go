//go:build !windows

package util

// IsRunFromGUI reports whether the process was started by a file manager
// rather than a terminal. Only Windows can tell.
func IsRunFromGUI() bool {
	return false
}

func HideConsoleWindow() {}
