//go:build !windows

// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

// NoopPlatform is a placeholder platform for non-Windows builds.
type NoopPlatform struct{}

// NewPlatform returns a non-functional platform on non-Windows systems.
func NewPlatform() (Platform, error) {
	return &NoopPlatform{}, ErrUnsupported
}

// FindMainWindow never finds a window.
func (n *NoopPlatform) FindMainWindow(processName string) (Handle, error) {
	_ = processName
	return 0, ErrUnsupported
}

// PostMessage returns ErrUnsupported.
func (n *NoopPlatform) PostMessage(h Handle, msg uint32, wParam, lParam uintptr) error {
	_, _, _, _ = h, msg, wParam, lParam
	return ErrUnsupported
}

// SendMouse returns ErrUnsupported.
func (n *NoopPlatform) SendMouse(flags uint32) error {
	_ = flags
	return ErrUnsupported
}

// CursorPos returns ErrUnsupported.
func (n *NoopPlatform) CursorPos() (Point, error) {
	return Point{}, ErrUnsupported
}

// ClientOrigin returns ErrUnsupported.
func (n *NoopPlatform) ClientOrigin(h Handle) (Point, error) {
	_ = h
	return Point{}, ErrUnsupported
}
