// Package dispatch delivers discrete key and mouse events to the target window.
package dispatch

import "sync/atomic"

// debugDelivery controls whether swallowed delivery failures are logged.
var debugDelivery atomic.Bool

// SetDebugLogging enables/disables logging of failed OS delivery calls.
func SetDebugLogging(enabled bool) {
	debugDelivery.Store(enabled)
}

// debugEnabled reports whether delivery failures are logged.
func debugEnabled() bool {
	return debugDelivery.Load()
}
