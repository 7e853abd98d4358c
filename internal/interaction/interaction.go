// Package interaction attaches to the target window and exposes the input commands.
package interaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/frudas24/padlink/internal/dispatch"
	"github.com/frudas24/padlink/internal/keybind"
	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/window"
	"github.com/frudas24/padlink/internal/wininput"
)

// Options configures Attach. Zero values take the defaults.
type Options struct {
	ProcessName    string
	PollInterval   time.Duration
	UsePostMessage bool
}

// Interaction is a live attachment to the target application.
type Interaction struct {
	bindings   keybind.Source
	locator    *window.Locator
	dispatcher *dispatch.Dispatcher
	movement   *movement.Controller
}

// Attach validates the movement bindings and starts watching for the target window.
func Attach(bindings keybind.Source, platform wininput.Platform, opts Options) (*Interaction, error) {
	if bindings == nil {
		return nil, errors.New("bindings are required")
	}
	if platform == nil {
		return nil, errors.New("platform is required")
	}
	moveKeys, err := movement.ResolveBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}

	locator := window.NewLocator(platform, opts.ProcessName, opts.PollInterval)
	dispatcher := dispatch.New(platform, locator)
	dispatcher.SetUsePostMessage(opts.UsePostMessage)

	i := &Interaction{
		bindings:   bindings,
		locator:    locator,
		dispatcher: dispatcher,
		movement:   movement.NewController(dispatcher, moveKeys),
	}
	locator.Start()
	return i, nil
}

// IsAttached reports whether the target window is known.
func (i *Interaction) IsAttached() bool {
	return i.locator.IsAttached()
}

// Attachment returns the current attachment snapshot.
func (i *Interaction) Attachment() window.Attachment {
	return i.locator.Snapshot()
}

// ProcessName returns the target process name.
func (i *Interaction) ProcessName() string {
	return i.locator.ProcessName()
}

// UsePostMessage reports whether clicks are posted to the window.
func (i *Interaction) UsePostMessage() bool {
	return i.dispatcher.UsePostMessage()
}

// SetUsePostMessage selects the click delivery mode.
func (i *Interaction) SetUsePostMessage(enabled bool) {
	i.dispatcher.SetUsePostMessage(enabled)
}

// MoveState returns the held movement keys.
func (i *Interaction) MoveState() movement.KeyState {
	return i.movement.State()
}

// SendKeyDown posts a key-down to the target.
func (i *Interaction) SendKeyDown(key wininput.Key) {
	i.dispatcher.SendKeyDown(key)
}

// SendKeyUp posts a key-up to the target.
func (i *Interaction) SendKeyUp(key wininput.Key) {
	i.dispatcher.SendKeyUp(key)
}

// SendKeyPress posts a key-down and key-up to the target.
func (i *Interaction) SendKeyPress(key wininput.Key) {
	i.dispatcher.SendKeyPress(key)
}

// SendClick clicks at the current cursor position.
func (i *Interaction) SendClick(button wininput.MouseButton) {
	i.dispatcher.SendClick(button)
}

// Move applies a movement directive.
func (i *Interaction) Move(dir movement.Direction) error {
	return i.movement.Move(dir)
}

// PressBinding resolves a logical action name and presses its key.
func (i *Interaction) PressBinding(name string) error {
	key, err := i.bindings.Resolve(name)
	if err != nil {
		return err
	}
	i.dispatcher.SendKeyPress(key)
	return nil
}

// Close releases held movement keys and stops the window locator.
func (i *Interaction) Close() error {
	i.movement.ReleaseAll()
	return i.locator.Close()
}
