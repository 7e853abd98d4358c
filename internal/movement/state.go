// Package movement turns directional intents into held-key transitions.
package movement

// KeyState records which movement keys are held.
// The axis mutators keep at most one key held per axis.
type KeyState struct {
	forward  bool
	backward bool
	left     bool
	right    bool
}

// Forward reports whether the forward key is held.
func (s KeyState) Forward() bool { return s.forward }

// Backward reports whether the backward key is held.
func (s KeyState) Backward() bool { return s.backward }

// Left reports whether the left key is held.
func (s KeyState) Left() bool { return s.left }

// Right reports whether the right key is held.
func (s KeyState) Right() bool { return s.right }

func (s *KeyState) holdForward() {
	s.forward, s.backward = true, false
}

func (s *KeyState) holdBackward() {
	s.forward, s.backward = false, true
}

func (s *KeyState) holdLeft() {
	s.left, s.right = true, false
}

func (s *KeyState) holdRight() {
	s.left, s.right = false, true
}

func (s *KeyState) releaseX() {
	s.left, s.right = false, false
}

func (s *KeyState) releaseY() {
	s.forward, s.backward = false, false
}
