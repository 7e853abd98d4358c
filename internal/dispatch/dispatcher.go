// Package dispatch delivers discrete key and mouse events to the target window.
package dispatch

import (
	"log"
	"sync/atomic"

	"github.com/frudas24/padlink/internal/window"
	"github.com/frudas24/padlink/internal/wininput"
)

// AttachmentSource reports the latest known target window.
type AttachmentSource interface {
	Snapshot() window.Attachment
}

// Dispatcher posts key messages to the target window and delivers clicks
// either globally or as posted messages, depending on the delivery mode.
// Every call is a no-op while the target is not attached.
type Dispatcher struct {
	platform       wininput.Platform
	attachments    AttachmentSource
	usePostMessage atomic.Bool
}

// New returns a dispatcher using global synthetic input for clicks.
func New(platform wininput.Platform, attachments AttachmentSource) *Dispatcher {
	return &Dispatcher{platform: platform, attachments: attachments}
}

// UsePostMessage reports whether clicks are posted to the window.
func (d *Dispatcher) UsePostMessage() bool {
	return d.usePostMessage.Load()
}

// SetUsePostMessage selects posted-message click delivery.
func (d *Dispatcher) SetUsePostMessage(enabled bool) {
	d.usePostMessage.Store(enabled)
}

// SendKeyDown posts a key-down message.
func (d *Dispatcher) SendKeyDown(key wininput.Key) {
	target, ok := d.target()
	if !ok {
		return
	}
	d.post(target, wininput.WMKeyDown, uintptr(key), 0)
}

// SendKeyUp posts a key-up message.
func (d *Dispatcher) SendKeyUp(key wininput.Key) {
	target, ok := d.target()
	if !ok {
		return
	}
	d.post(target, wininput.WMKeyUp, uintptr(key), 0)
}

// SendKeyPress posts a key-down immediately followed by a key-up.
func (d *Dispatcher) SendKeyPress(key wininput.Key) {
	target, ok := d.target()
	if !ok {
		return
	}
	d.post(target, wininput.WMKeyDown, uintptr(key), 0)
	d.post(target, wininput.WMKeyUp, uintptr(key), 0)
}

// SendClick clicks button at the current cursor position.
//
// Global delivery affects whichever window has focus. Posted delivery only
// supports the left button; a posted right click is dropped.
func (d *Dispatcher) SendClick(button wininput.MouseButton) {
	target, ok := d.target()
	if !ok {
		return
	}
	if !d.UsePostMessage() {
		down, up := wininput.ButtonFlags(button)
		d.sendMouse(down)
		d.sendMouse(up)
		return
	}
	if button != wininput.MouseLeft {
		// TODO: enable WM_RBUTTONDOWN/WM_RBUTTONUP once the target is confirmed to accept posted right clicks.
		return
	}

	cursor, err := d.platform.CursorPos()
	if err != nil {
		d.logFailure("cursor", err)
		return
	}
	origin, err := d.platform.ClientOrigin(target)
	if err != nil {
		d.logFailure("client origin", err)
		return
	}
	lParam := wininput.MakeLParam(cursor.X-origin.X, cursor.Y-origin.Y)
	d.post(target, wininput.WMLButtonDown, wininput.MKLButton, lParam)
	d.post(target, wininput.WMLButtonUp, 0, lParam)
}

// target returns the attached window handle.
func (d *Dispatcher) target() (wininput.Handle, bool) {
	a := d.attachments.Snapshot()
	return a.Handle, a.Attached
}

// post delivers one message and swallows failures.
func (d *Dispatcher) post(target wininput.Handle, msg uint32, wParam, lParam uintptr) {
	if err := d.platform.PostMessage(target, msg, wParam, lParam); err != nil {
		d.logFailure("post", err)
	}
}

// sendMouse delivers one global mouse event and swallows failures.
func (d *Dispatcher) sendMouse(flags uint32) {
	if err := d.platform.SendMouse(flags); err != nil {
		d.logFailure("mouse", err)
	}
}

// logFailure reports a dropped delivery when debug logging is on.
func (d *Dispatcher) logFailure(what string, err error) {
	if debugEnabled() {
		log.Printf("dispatch: %s failed: %v", what, err)
	}
}
