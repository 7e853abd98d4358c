// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

import (
	"fmt"
	"strings"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	// MouseLeft is the primary button.
	MouseLeft MouseButton = iota
	// MouseRight is the secondary button.
	MouseRight
)

// String returns the lowercase button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// ParseMouseButton parses "left" or "right".
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return MouseLeft, nil
	case "right", "r":
		return MouseRight, nil
	default:
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
}

// ButtonFlags returns the global down/up input flags for a button.
func ButtonFlags(b MouseButton) (down, up uint32) {
	if b == MouseRight {
		return MouseRightDown, MouseRightUp
	}
	return MouseLeftDown, MouseLeftUp
}
