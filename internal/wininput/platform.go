// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

import "errors"

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Handle is an opaque top-level window handle. Zero is the null handle.
type Handle uintptr

// Point is a screen or client coordinate.
type Point struct {
	X int
	Y int
}

// Window messages posted to the target window.
const (
	WMKeyDown     uint32 = 0x0100
	WMKeyUp       uint32 = 0x0101
	WMLButtonDown uint32 = 0x0201
	WMLButtonUp   uint32 = 0x0202
	WMRButtonDown uint32 = 0x0204
	WMRButtonUp   uint32 = 0x0205
)

// MKLButton is the wParam modifier flag reporting the left button as held.
const MKLButton uintptr = 0x0001

// Mouse input flags for global synthetic input.
const (
	MouseLeftDown  uint32 = 0x0002
	MouseLeftUp    uint32 = 0x0004
	MouseRightDown uint32 = 0x0008
	MouseRightUp   uint32 = 0x0010
)

// Platform is the OS window/process layer consumed by the locator and dispatcher.
type Platform interface {
	// FindMainWindow returns the primary window of the first process named
	// processName, or 0 with a nil error when none is running or it has no window.
	FindMainWindow(processName string) (Handle, error)
	PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error
	// SendMouse injects a global mouse event at the current cursor position.
	SendMouse(flags uint32) error
	CursorPos() (Point, error)
	// ClientOrigin returns the screen position of the window's client area origin.
	ClientOrigin(h Handle) (Point, error)
}

// MakeLParam packs two 16-bit words into a message parameter.
func MakeLParam(lo, hi int) uintptr {
	return uintptr(uint32(hi<<16) | uint32(lo&0xFFFF))
}
