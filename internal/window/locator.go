// Package window tracks the target application's top-level window.
package window

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/frudas24/padlink/internal/wininput"
)

const (
	// DefaultProcessName is the executable searched for when none is configured.
	DefaultProcessName = "WoW-64"
	// DefaultPollInterval is the delay between process scans.
	DefaultPollInterval = time.Second
	// DefaultStopTimeout bounds how long Close waits for the poll loop.
	DefaultStopTimeout = 2 * time.Second
)

// ErrStopTimeout is returned by Close when the poll loop did not exit in time.
var ErrStopTimeout = errors.New("window locator did not stop in time")

// Locator polls for the target process and publishes its window handle.
type Locator struct {
	platform    wininput.Platform
	processName string
	interval    time.Duration
	stopTimeout time.Duration

	current atomic.Pointer[Attachment]

	// pubMu orders late scan results against Close's final Detached publish.
	pubMu  sync.Mutex
	closed bool

	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
	stop      chan struct{}
	done      chan struct{}
}

// NewLocator returns a locator that is not yet polling.
func NewLocator(platform wininput.Platform, processName string, interval time.Duration) *Locator {
	if processName == "" {
		processName = DefaultProcessName
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	l := &Locator{
		platform:    platform,
		processName: processName,
		interval:    interval,
		stopTimeout: DefaultStopTimeout,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	l.current.Store(&Detached)
	return l
}

// ProcessName returns the process the locator searches for.
func (l *Locator) ProcessName() string {
	return l.processName
}

// Start launches the poll loop. The first scan happens immediately.
func (l *Locator) Start() {
	l.startOnce.Do(func() {
		l.started.Store(true)
		go l.run()
	})
}

// Snapshot returns the most recently published attachment.
func (l *Locator) Snapshot() Attachment {
	return *l.current.Load()
}

// IsAttached reports whether a target window is currently known.
func (l *Locator) IsAttached() bool {
	return l.current.Load().Attached
}

// Handle returns the current window handle, or 0 when detached.
func (l *Locator) Handle() wininput.Handle {
	return l.current.Load().Handle
}

// Close stops the poll loop and waits for it to exit.
func (l *Locator) Close() error {
	var err error
	l.stopOnce.Do(func() {
		close(l.stop)
		if l.started.Load() {
			select {
			case <-l.done:
			case <-time.After(l.stopTimeout):
				err = ErrStopTimeout
			}
		}
		l.pubMu.Lock()
		l.closed = true
		l.publish(Detached)
		l.pubMu.Unlock()
	})
	return err
}

// run scans until stopped.
func (l *Locator) run() {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		l.poll()

		select {
		case <-l.stop:
			return
		case <-ticker.C:
		}
	}
}

// poll performs one scan and replaces the published attachment.
// A scan that finishes after Close is discarded.
func (l *Locator) poll() {
	h, err := l.platform.FindMainWindow(l.processName)
	if err != nil {
		h = 0
	}
	l.pubMu.Lock()
	defer l.pubMu.Unlock()
	if l.closed {
		return
	}
	l.publish(NewAttachment(h))
}

// publish stores next and logs transitions.
func (l *Locator) publish(next Attachment) {
	prev := l.current.Swap(&next)
	if prev == nil || *prev == next {
		return
	}
	switch {
	case next.Attached && !prev.Attached:
		log.Printf("window: attached to %s (hwnd 0x%X)", l.processName, uintptr(next.Handle))
	case next.Attached:
		log.Printf("window: %s handle changed (hwnd 0x%X)", l.processName, uintptr(next.Handle))
	default:
		log.Printf("window: detached from %s", l.processName)
	}
}
