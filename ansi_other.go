//go:build !windows

package main

// EnableANSI is a no-op outside Windows; ANSI escapes work as-is.
func EnableANSI() {}
