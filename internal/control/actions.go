// Package control handles the controller command protocol.
package control

import (
	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/wininput"
)

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActKeyDown holds a key.
	ActKeyDown ActionType = "key_down"
	// ActKeyUp releases a key.
	ActKeyUp ActionType = "key_up"
	// ActKeyPress taps a key.
	ActKeyPress ActionType = "key_press"
	// ActClick clicks a mouse button at the cursor.
	ActClick ActionType = "click"
	// ActMove applies a movement directive.
	ActMove ActionType = "move"
	// ActBind taps the key bound to a logical action name.
	ActBind ActionType = "bind"
)

// Action describes a normalized input operation to apply.
type Action struct {
	Type   ActionType
	Key    wininput.Key
	Button wininput.MouseButton
	Dir    movement.Direction
	Name   string
}
