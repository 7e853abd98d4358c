// Package movement turns directional intents into held-key transitions.
package movement

import (
	"fmt"
	"strings"
)

// Direction is a movement directive.
type Direction int

const (
	// Forward holds the forward key and releases backward.
	Forward Direction = iota
	// Backward holds the backward key and releases forward.
	Backward
	// Left holds the left key and releases right.
	Left
	// Right holds the right key and releases left.
	Right
	// StopX releases whichever of left/right is held.
	StopX
	// StopY releases whichever of forward/backward is held.
	StopY
)

var directionNames = [...]string{"forward", "backward", "left", "right", "stopx", "stopy"}

// String returns the lowercase directive name.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection parses a directive name such as "forward" or "stopX".
func ParseDirection(name string) (Direction, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range directionNames {
		if n == lower {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
