package testutil

import (
	"fmt"
	"sync"

	"github.com/frudas24/padlink/internal/keybind"
	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/wininput"
)

// Command records a single applied command.
type Command struct {
	Name   string
	Key    wininput.Key
	Button wininput.MouseButton
	Dir    movement.Direction
	Bind   string
}

// FakeCommander records commands instead of delivering them.
// Bindings lists the names PressBinding accepts.
type FakeCommander struct {
	mu       sync.Mutex
	commands []Command
	post     bool
	Attached bool
	Bindings map[string]bool
	State    movement.KeyState
}

// SendKeyDown records a key-down.
func (f *FakeCommander) SendKeyDown(key wininput.Key) {
	f.record(Command{Name: "KeyDown", Key: key})
}

// SendKeyUp records a key-up.
func (f *FakeCommander) SendKeyUp(key wininput.Key) {
	f.record(Command{Name: "KeyUp", Key: key})
}

// SendKeyPress records a key press.
func (f *FakeCommander) SendKeyPress(key wininput.Key) {
	f.record(Command{Name: "KeyPress", Key: key})
}

// SendClick records a click.
func (f *FakeCommander) SendClick(button wininput.MouseButton) {
	f.record(Command{Name: "Click", Button: button})
}

// Move records a movement directive.
func (f *FakeCommander) Move(dir movement.Direction) error {
	f.record(Command{Name: "Move", Dir: dir})
	return nil
}

// PressBinding records a binding press, failing for names not in Bindings.
func (f *FakeCommander) PressBinding(name string) error {
	f.mu.Lock()
	known := f.Bindings[name]
	f.mu.Unlock()
	if !known {
		return fmt.Errorf("%w: %q", keybind.ErrUnbound, name)
	}
	f.record(Command{Name: "Bind", Bind: name})
	return nil
}

// SetUsePostMessage stores the delivery mode.
func (f *FakeCommander) SetUsePostMessage(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.post = enabled
}

// UsePostMessage returns the stored delivery mode.
func (f *FakeCommander) UsePostMessage() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.post
}

// IsAttached returns the Attached field.
func (f *FakeCommander) IsAttached() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Attached
}

// MoveState returns the State field.
func (f *FakeCommander) MoveState() movement.KeyState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.State
}

// Commands returns a copy of the recorded commands.
func (f *FakeCommander) Commands() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.commands))
	copy(out, f.commands)
	return out
}

func (f *FakeCommander) record(c Command) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, c)
}

// ProcessName returns a fixed test process name.
func (f *FakeCommander) ProcessName() string {
	return "game"
}

// Close records teardown.
func (f *FakeCommander) Close() error {
	f.record(Command{Name: "Close"})
	return nil
}
