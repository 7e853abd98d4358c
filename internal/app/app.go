// Package app wires HTTP, control transports, and the target attachment together.
package app

import (
	"errors"

	"github.com/frudas24/padlink/internal/config"
	"github.com/frudas24/padlink/internal/control"
	"github.com/frudas24/padlink/internal/session"
	"github.com/frudas24/padlink/internal/signaling"
)

// Target is the attached application as seen by the HTTP layer.
type Target interface {
	control.Commander
	ProcessName() string
	Close() error
}

// App coordinates the HTTP API and websocket servers around one target.
type App struct {
	cfg       config.Config
	session   *session.Session
	target    Target
	control   *control.Server
	signaling *signaling.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, target Target, peers *signaling.PeerFactory, policy signaling.ViewerPolicy) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if target == nil {
		return nil, errors.New("target is required")
	}
	if peers == nil {
		return nil, errors.New("peer factory is required")
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		target:  target,
	}
	app.control = control.NewServer(sess, target)
	app.signaling = signaling.NewServer(peers, policy, sess.IsAuthenticated, app.control.HandleMessage, app.control.ReleaseAll)
	return app, nil
}

// Stop releases held keys and detaches from the target.
func (a *App) Stop() error {
	return a.target.Close()
}

// Signaling returns the signaling websocket handler.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
