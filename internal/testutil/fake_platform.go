package testutil

import (
	"sync"

	"github.com/frudas24/padlink/internal/wininput"
)

// Call records a single platform call.
type Call struct {
	Name   string
	Handle wininput.Handle
	Msg    uint32
	WParam uintptr
	LParam uintptr
	Flags  uint32
}

// FakePlatform implements wininput.Platform and records calls for tests.
// FindMainWindow lookups are counted but not recorded in Calls.
type FakePlatform struct {
	mu      sync.Mutex
	calls   []Call
	window  wininput.Handle
	findErr error
	postErr error
	finds   int
	cursor  wininput.Point
	origin  wininput.Point
}

// Ensure FakePlatform implements the interface.
var _ wininput.Platform = (*FakePlatform)(nil)

// SetWindow sets the handle returned by FindMainWindow.
func (f *FakePlatform) SetWindow(h wininput.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.window = h
}

// SetFindError makes FindMainWindow fail.
func (f *FakePlatform) SetFindError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findErr = err
}

// SetPostError makes PostMessage and SendMouse fail after recording the call.
func (f *FakePlatform) SetPostError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postErr = err
}

// SetCursor sets the cursor position and client origin reported to callers.
func (f *FakePlatform) SetCursor(cursor, origin wininput.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = cursor
	f.origin = origin
}

// FindMainWindow returns the configured handle.
func (f *FakePlatform) FindMainWindow(processName string) (wininput.Handle, error) {
	_ = processName
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.findErr != nil {
		return 0, f.findErr
	}
	return f.window, nil
}

// PostMessage records a posted message.
func (f *FakePlatform) PostMessage(h wininput.Handle, msg uint32, wParam, lParam uintptr) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Name: "PostMessage", Handle: h, Msg: msg, WParam: wParam, LParam: lParam})
	return f.postErr
}

// SendMouse records a global mouse event.
func (f *FakePlatform) SendMouse(flags uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Name: "SendMouse", Flags: flags})
	return f.postErr
}

// CursorPos records and returns the configured cursor position.
func (f *FakePlatform) CursorPos() (wininput.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Name: "CursorPos"})
	return f.cursor, nil
}

// ClientOrigin records and returns the configured client origin.
func (f *FakePlatform) ClientOrigin(h wininput.Handle) (wininput.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Name: "ClientOrigin", Handle: h})
	return f.origin, nil
}

// Calls returns a copy of the recorded calls.
func (f *FakePlatform) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Posted returns only the PostMessage calls.
func (f *FakePlatform) Posted() []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Name == "PostMessage" {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears recorded calls.
func (f *FakePlatform) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// Finds reports how many times FindMainWindow was called.
func (f *FakePlatform) Finds() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finds
}
