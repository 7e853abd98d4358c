// Package window tracks the target application's top-level window.
package window

import "github.com/frudas24/padlink/internal/wininput"

// Attachment is an immutable view of the locator's belief about the target window.
type Attachment struct {
	Handle   wininput.Handle
	Attached bool
}

// NewAttachment returns an attachment for h. A null handle is never attached.
func NewAttachment(h wininput.Handle) Attachment {
	return Attachment{Handle: h, Attached: h != 0}
}

// Detached is the attachment used when no target window is known.
var Detached = Attachment{}
