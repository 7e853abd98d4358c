//go:build windows

// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// WinPlatform implements Platform using WinAPI.
type WinPlatform struct{}

// NewPlatform returns the Windows platform.
func NewPlatform() (Platform, error) {
	return &WinPlatform{}, nil
}

// PostMessage queues a message on the window's thread without waiting for it.
func (w *WinPlatform) PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error {
	if h == 0 {
		return fmt.Errorf("PostMessage: null window")
	}
	if win.PostMessage(win.HWND(h), msg, wParam, lParam) == 0 {
		return fmt.Errorf("PostMessage 0x%04X: %w", msg, windows.GetLastError())
	}
	return nil
}

// SendMouse dispatches a single mouse event at the current cursor position.
func (w *WinPlatform) SendMouse(flags uint32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			DwFlags: flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput: %w", windows.GetLastError())
	}
	return nil
}

// CursorPos returns the cursor position in screen coordinates.
func (w *WinPlatform) CursorPos() (Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return Point{}, fmt.Errorf("GetCursorPos: %w", windows.GetLastError())
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// ClientOrigin maps the client-area origin of h to screen coordinates.
func (w *WinPlatform) ClientOrigin(h Handle) (Point, error) {
	var pt win.POINT
	if !win.ClientToScreen(win.HWND(h), &pt) {
		return Point{}, fmt.Errorf("ClientToScreen: %w", windows.GetLastError())
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}
