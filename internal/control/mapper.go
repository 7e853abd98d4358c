// Package control handles the controller command protocol.
package control

import (
	"errors"
	"fmt"

	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/wininput"
)

// errNotInput marks messages that do not map to input actions.
var errNotInput = errors.New("not an input message")

// ActionsFor converts an input message into actions. Disabled input yields no actions.
func ActionsFor(msg Message, inputEnabled bool) ([]Action, error) {
	action, err := actionFor(msg)
	if err != nil {
		return nil, err
	}
	if !inputEnabled {
		return nil, nil
	}
	return []Action{action}, nil
}

// IsInputMessage reports whether msg carries an input command.
func IsInputMessage(msg Message) bool {
	switch msg.T {
	case MsgMove, MsgKeyDown, MsgKeyUp, MsgKeyPress, MsgClick, MsgBind:
		return true
	default:
		return false
	}
}

// actionFor parses a single message.
func actionFor(msg Message) (Action, error) {
	switch msg.T {
	case MsgMove:
		dir, err := movement.ParseDirection(msg.Dir)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActMove, Dir: dir}, nil
	case MsgKeyDown, MsgKeyUp, MsgKeyPress:
		key, err := wininput.ParseKey(msg.Key)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: keyActionTypes[msg.T], Key: key}, nil
	case MsgClick:
		button, err := wininput.ParseMouseButton(msg.Button)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActClick, Button: button}, nil
	case MsgBind:
		if msg.Name == "" {
			return Action{}, fmt.Errorf("bind: missing name")
		}
		return Action{Type: ActBind, Name: msg.Name}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", errNotInput, msg.T)
	}
}

var keyActionTypes = map[string]ActionType{
	MsgKeyDown:  ActKeyDown,
	MsgKeyUp:    ActKeyUp,
	MsgKeyPress: ActKeyPress,
}
