// Package keybind resolves logical action names to virtual-key codes.
package keybind

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/frudas24/padlink/internal/wininput"
)

// Logical names used for character movement.
const (
	MoveUp    = "LStickUp"
	MoveDown  = "LStickDown"
	MoveLeft  = "LStickLeft"
	MoveRight = "LStickRight"
)

// MovementNames lists every name the movement controller resolves.
var MovementNames = []string{MoveUp, MoveDown, MoveLeft, MoveRight}

// ErrUnbound indicates a logical name has no configured key.
var ErrUnbound = errors.New("binding not configured")

// Source resolves logical action names.
type Source interface {
	Resolve(name string) (wininput.Key, error)
}

// Set is an immutable name-to-key table.
type Set struct {
	keys map[string]wininput.Key
}

// NewSet copies keys into a new set.
func NewSet(keys map[string]wininput.Key) *Set {
	out := make(map[string]wininput.Key, len(keys))
	for name, k := range keys {
		out[name] = k
	}
	return &Set{keys: out}
}

// Default returns the built-in bindings written on first run.
func Default() *Set {
	return NewSet(map[string]wininput.Key{
		MoveUp:           'W',
		MoveDown:         'S',
		MoveLeft:         'A',
		MoveRight:        'D',
		"CrossButton":    wininput.KeySpace,
		"CircleButton":   '2',
		"SquareButton":   '1',
		"TriangleButton": '3',
		"Options":        wininput.KeyEscape,
		"TrackpadPress":  'M',
		"CP_L_UP":        wininput.KeyF1 + 4,
		"CP_L_DOWN":      wininput.KeyF1 + 5,
		"CP_TR1":         wininput.KeyTab,
	})
}

// Resolve returns the key bound to name.
func (s *Set) Resolve(name string) (wininput.Key, error) {
	if s != nil {
		if k, ok := s.keys[name]; ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnbound, name)
}

// Names returns the bound names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.keys))
	for name := range s.keys {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of bindings.
func (s *Set) Len() int {
	return len(s.keys)
}

// Require resolves every name and reports all missing ones together.
func Require(src Source, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := src.Resolve(name); err != nil {
			if !errors.Is(err, ErrUnbound) {
				return err
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnbound, strings.Join(missing, ", "))
	}
	return nil
}
