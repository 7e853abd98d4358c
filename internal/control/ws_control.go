// Package control handles the controller command protocol.
package control

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"sync"

	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/session"
	"github.com/frudas24/padlink/internal/wininput"
	"github.com/gorilla/websocket"
)

// Commander applies input to the attached target.
type Commander interface {
	SendKeyDown(key wininput.Key)
	SendKeyUp(key wininput.Key)
	SendKeyPress(key wininput.Key)
	SendClick(button wininput.MouseButton)
	Move(dir movement.Direction) error
	PressBinding(name string) error
	SetUsePostMessage(enabled bool)
	UsePostMessage() bool
	IsAttached() bool
	MoveState() movement.KeyState
}

// Server handles websocket controller input.
type Server struct {
	mu        sync.Mutex
	writeMu   sync.Mutex
	upgrader  websocket.Upgrader
	session   *session.Session
	commander Commander
	conn      *websocket.Conn

	heldMu sync.Mutex
	held   map[wininput.Key]struct{}
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, commander Commander) *Server {
	return &Server{
		session:   sess,
		commander: commander,
		held:      make(map[wininput.Key]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		reply := s.HandleMessage(msg)
		if reply == nil {
			continue
		}
		if err := s.write(conn, reply); err != nil {
			return
		}
	}
}

// HandleMessage applies a single controller message and returns an optional reply.
func (s *Server) HandleMessage(msg Message) *Reply {
	switch msg.T {
	case MsgState:
		return s.stateReply()
	case MsgDelivery:
		if msg.Post != nil {
			s.commander.SetUsePostMessage(*msg.Post)
		}
		return nil
	case MsgInputEnabled:
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
			if !*msg.Enabled {
				s.ReleaseAll()
			}
		}
		return nil
	}
	if !IsInputMessage(msg) {
		return nil
	}

	actions, err := ActionsFor(msg, s.session.InputEnabled())
	if err == nil {
		err = s.applyActions(actions)
	}
	if err != nil {
		return s.errorReply(err)
	}
	return nil
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection and releases every held key.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	active := s.conn == conn
	if active {
		s.conn = nil
	}
	s.mu.Unlock()
	if active {
		s.ReleaseAll()
	}
	_ = conn.Close()
}

// write sends a reply on conn.
func (s *Server) write(conn *websocket.Conn, reply *Reply) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(reply)
}

// applyActions executes actions using the commander.
func (s *Server) applyActions(actions []Action) error {
	for _, action := range actions {
		if err := s.applyAction(action); err != nil {
			return err
		}
		s.session.RecordCommand()
	}
	return nil
}

// applyAction executes a single action.
func (s *Server) applyAction(action Action) error {
	switch action.Type {
	case ActKeyDown:
		s.commander.SendKeyDown(action.Key)
		s.heldMu.Lock()
		s.held[action.Key] = struct{}{}
		s.heldMu.Unlock()
	case ActKeyUp:
		s.commander.SendKeyUp(action.Key)
		s.heldMu.Lock()
		delete(s.held, action.Key)
		s.heldMu.Unlock()
	case ActKeyPress:
		s.commander.SendKeyPress(action.Key)
	case ActClick:
		s.commander.SendClick(action.Button)
	case ActMove:
		return s.commander.Move(action.Dir)
	case ActBind:
		return s.commander.PressBinding(action.Name)
	}
	return nil
}

// ReleaseAll stops movement and lifts keys left down by keyDown messages.
func (s *Server) ReleaseAll() {
	s.ReleaseMovement()
	s.releaseHeldKeys()
}

// releaseHeldKeys sends a key-up for every key pressed without a matching release.
func (s *Server) releaseHeldKeys() {
	s.heldMu.Lock()
	keys := make([]wininput.Key, 0, len(s.held))
	for key := range s.held {
		keys = append(keys, key)
	}
	clear(s.held)
	s.heldMu.Unlock()

	slices.Sort(keys)
	for _, key := range keys {
		s.commander.SendKeyUp(key)
	}
}

// ReleaseMovement stops both movement axes so no key stays held.
func (s *Server) ReleaseMovement() {
	for _, dir := range []movement.Direction{movement.StopX, movement.StopY} {
		if err := s.commander.Move(dir); err != nil {
			log.Printf("control: release %s: %v", dir, err)
		}
	}
}

// stateReply reports attachment, delivery mode, and held keys.
func (s *Server) stateReply() *Reply {
	ks := s.commander.MoveState()
	return &Reply{
		T:            MsgState,
		Attached:     s.commander.IsAttached(),
		Post:         s.commander.UsePostMessage(),
		InputEnabled: s.session.InputEnabled(),
		Move: &MoveState{
			Forward:  ks.Forward(),
			Backward: ks.Backward(),
			Left:     ks.Left(),
			Right:    ks.Right(),
		},
	}
}

// errorReply reports a rejected command.
func (s *Server) errorReply(err error) *Reply {
	reply := s.stateReply()
	reply.T = "error"
	reply.Move = nil
	reply.Error = err.Error()
	return reply
}
