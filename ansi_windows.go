//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableANSI turns on virtual terminal processing so the console
// encoder's colored level output renders on Windows terminals.
func EnableANSI() {
	stdout := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(stdout, mode)
}
