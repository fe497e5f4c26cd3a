//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"github.com/sqweek/dialog"
)

// OpenImageFile shows the native file picker filtered to the supported
// source image formats and returns the chosen path.
func OpenImageFile(title string) (string, error) {
	return dialog.File().
		Title(title).
		Filter("Images", "png", "jpg", "jpeg", "bmp").
		Load()
}

// Cancelled reports whether err is the user dismissing the picker.
func Cancelled(err error) bool {
	return err == dialog.ErrCancelled
}
