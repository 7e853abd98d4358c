// Package app wires HTTP, control transports, and the target attachment together.
package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frudas24/padlink/internal/control"
)

// RegisterRoutes wires API and websocket handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/control", a.Control())
	mux.Handle("/ws/signal", a.Signaling())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Process       string            `json:"process"`
	Attached      bool              `json:"attached"`
	Post          bool              `json:"post"`
	Move          control.MoveState `json:"move"`
	InputEnabled  bool              `json:"inputEnabled"`
	Commands      uint64            `json:"commands"`
	LastCommand   *time.Time        `json:"lastCommand,omitempty"`
	Authenticated bool              `json:"authenticated"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns attachment, delivery mode, movement, and session state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	ks := a.target.MoveState()
	resp := stateResponse{
		Process:  a.target.ProcessName(),
		Attached: a.target.IsAttached(),
		Post:     a.target.UsePostMessage(),
		Move: control.MoveState{
			Forward:  ks.Forward(),
			Backward: ks.Backward(),
			Left:     ks.Left(),
			Right:    ks.Right(),
		},
		InputEnabled:  snap.InputEnabled,
		Commands:      snap.Commands,
		Authenticated: snap.Authenticated,
	}
	if !snap.LastCommand.IsZero() {
		last := snap.LastCommand
		resp.LastCommand = &last
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
