// Package movement turns directional intents into held-key transitions.
package movement

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frudas24/padlink/internal/keybind"
	"github.com/frudas24/padlink/internal/wininput"
)

// ErrUnknownDirection is returned for directives outside the Direction enum.
var ErrUnknownDirection = errors.New("unknown direction")

// KeySender delivers key transitions to the target.
type KeySender interface {
	SendKeyDown(key wininput.Key)
	SendKeyUp(key wininput.Key)
}

// Bindings holds the resolved movement keys.
type Bindings struct {
	Forward  wininput.Key
	Backward wininput.Key
	Left     wininput.Key
	Right    wininput.Key
}

// ResolveBindings looks up the four movement names in src.
func ResolveBindings(src keybind.Source) (Bindings, error) {
	if err := keybind.Require(src, keybind.MovementNames...); err != nil {
		return Bindings{}, fmt.Errorf("movement bindings: %w", err)
	}
	var b Bindings
	b.Forward, _ = src.Resolve(keybind.MoveUp)
	b.Backward, _ = src.Resolve(keybind.MoveDown)
	b.Left, _ = src.Resolve(keybind.MoveLeft)
	b.Right, _ = src.Resolve(keybind.MoveRight)
	return b, nil
}

// Controller emits the key transitions for each directive and tracks held keys.
type Controller struct {
	mu       sync.Mutex
	keys     KeySender
	bindings Bindings
	state    KeyState
}

// NewController returns a controller with no keys held.
func NewController(keys KeySender, bindings Bindings) *Controller {
	return &Controller{keys: keys, bindings: bindings}
}

// Bindings returns the keys the controller sends.
func (c *Controller) Bindings() Bindings {
	return c.bindings
}

// State returns a copy of the held-key state.
func (c *Controller) State() KeyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Move applies a directive. Holding a direction presses its key before
// releasing the opposite one; stops release only keys that are held.
func (c *Controller) Move(dir Direction) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.bindings
	switch dir {
	case Forward:
		c.keys.SendKeyDown(b.Forward)
		c.keys.SendKeyUp(b.Backward)
		c.state.holdForward()
	case Backward:
		c.keys.SendKeyDown(b.Backward)
		c.keys.SendKeyUp(b.Forward)
		c.state.holdBackward()
	case Left:
		c.keys.SendKeyDown(b.Left)
		c.keys.SendKeyUp(b.Right)
		c.state.holdLeft()
	case Right:
		c.keys.SendKeyDown(b.Right)
		c.keys.SendKeyUp(b.Left)
		c.state.holdRight()
	case StopX:
		if c.state.left {
			c.keys.SendKeyUp(b.Left)
		}
		if c.state.right {
			c.keys.SendKeyUp(b.Right)
		}
		c.state.releaseX()
	case StopY:
		if c.state.forward {
			c.keys.SendKeyUp(b.Forward)
		}
		if c.state.backward {
			c.keys.SendKeyUp(b.Backward)
		}
		c.state.releaseY()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}
	return nil
}

// ReleaseAll stops both axes.
func (c *Controller) ReleaseAll() {
	_ = c.Move(StopX)
	_ = c.Move(StopY)
}
