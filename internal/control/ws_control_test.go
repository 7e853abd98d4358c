package control

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frudas24/padlink/internal/movement"
	"github.com/frudas24/padlink/internal/session"
	"github.com/frudas24/padlink/internal/testutil"
	"github.com/frudas24/padlink/internal/wininput"
	"github.com/gorilla/websocket"
)

func newTestServer() (*Server, *testutil.FakeCommander, *session.Session) {
	sess := session.New("pw", true)
	sess.Authenticate("pw")
	cmd := &testutil.FakeCommander{Attached: true, Bindings: map[string]bool{"CrossButton": true}}
	return NewServer(sess, cmd), cmd, sess
}

// TestHandleMessage_AppliesInput verifies input messages reach the commander in order.
func TestHandleMessage_AppliesInput(t *testing.T) {
	s, cmd, sess := newTestServer()
	msgs := []Message{
		{T: MsgMove, Dir: "forward"},
		{T: MsgKeyPress, Key: "Space"},
		{T: MsgClick, Button: "left"},
		{T: MsgBind, Name: "CrossButton"},
	}
	for _, msg := range msgs {
		if reply := s.HandleMessage(msg); reply != nil {
			t.Fatalf("unexpected reply %+v", reply)
		}
	}

	got := cmd.Commands()
	if len(got) != 4 {
		t.Fatalf("expected 4 commands, got %#v", got)
	}
	if got[0].Name != "Move" || got[0].Dir != movement.Forward ||
		got[1].Name != "KeyPress" || got[1].Key != wininput.KeySpace ||
		got[2].Name != "Click" || got[2].Button != wininput.MouseLeft ||
		got[3].Name != "Bind" || got[3].Bind != "CrossButton" {
		t.Fatalf("unexpected commands %#v", got)
	}
	if sess.Snapshot().Commands != 4 {
		t.Fatalf("expected 4 recorded commands, got %d", sess.Snapshot().Commands)
	}
}

// TestHandleMessage_UnboundReportsError verifies binding failures are replied, not fatal.
func TestHandleMessage_UnboundReportsError(t *testing.T) {
	s, cmd, _ := newTestServer()
	reply := s.HandleMessage(Message{T: MsgBind, Name: "Missing"})
	if reply == nil || reply.T != "error" || !strings.Contains(reply.Error, "Missing") {
		t.Fatalf("expected error reply, got %+v", reply)
	}
	if len(cmd.Commands()) != 0 {
		t.Fatalf("expected no commands, got %#v", cmd.Commands())
	}
}

// TestHandleMessage_DisableInputReleasesMovement verifies the kill switch stops movement.
func TestHandleMessage_DisableInputReleasesMovement(t *testing.T) {
	s, cmd, sess := newTestServer()
	off := false
	s.HandleMessage(Message{T: MsgInputEnabled, Enabled: &off})
	if sess.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
	got := cmd.Commands()
	if len(got) != 2 || got[0].Dir != movement.StopX || got[1].Dir != movement.StopY {
		t.Fatalf("expected StopX/StopY, got %#v", got)
	}

	s.HandleMessage(Message{T: MsgKeyPress, Key: "W"})
	if len(cmd.Commands()) != 2 {
		t.Fatalf("expected input to be dropped, got %#v", cmd.Commands())
	}
}

// TestHandleMessage_DeliveryAndState verifies delivery toggling and the state reply.
func TestHandleMessage_DeliveryAndState(t *testing.T) {
	s, _, _ := newTestServer()
	on := true
	s.HandleMessage(Message{T: MsgDelivery, Post: &on})

	reply := s.HandleMessage(Message{T: MsgState})
	if reply == nil || reply.T != MsgState || !reply.Attached || !reply.Post || !reply.InputEnabled || reply.Move == nil {
		t.Fatalf("unexpected state reply %+v", reply)
	}
}

// TestServeHTTP_Unauthorized verifies unauthenticated upgrades are rejected.
func TestServeHTTP_Unauthorized(t *testing.T) {
	s := NewServer(session.New("pw", true), &testutil.FakeCommander{})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/control", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestServeHTTP_RoundTrip verifies commands and state replies over a real websocket.
func TestServeHTTP_RoundTrip(t *testing.T) {
	s, cmd, _ := newTestServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	if err := conn.WriteJSON(Message{T: MsgMove, Dir: "left"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(Message{T: MsgState}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if reply.T != MsgState || !reply.Attached {
		t.Fatalf("unexpected reply %+v", reply)
	}
	got := cmd.Commands()
	if len(got) != 1 || got[0].Dir != movement.Left {
		t.Fatalf("expected move left, got %#v", got)
	}

	_ = conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(cmd.Commands()) < 3 {
		time.Sleep(5 * time.Millisecond)
	}
	got = cmd.Commands()
	if len(got) != 3 || got[1].Dir != movement.StopX || got[2].Dir != movement.StopY {
		t.Fatalf("expected movement released on disconnect, got %#v", got)
	}
}

// TestReleaseAll_LiftsUnmatchedKeyDowns verifies keys still down are released after movement stops.
func TestReleaseAll_LiftsUnmatchedKeyDowns(t *testing.T) {
	s, cmd, _ := newTestServer()
	s.HandleMessage(Message{T: MsgKeyDown, Key: "W"})
	s.HandleMessage(Message{T: MsgKeyDown, Key: "Space"})
	s.HandleMessage(Message{T: MsgKeyUp, Key: "W"})

	s.ReleaseAll()
	got := cmd.Commands()[3:]
	if len(got) != 3 || got[0].Dir != movement.StopX || got[1].Dir != movement.StopY ||
		got[2].Name != "KeyUp" || got[2].Key != wininput.KeySpace {
		t.Fatalf("expected StopX/StopY then Space up, got %#v", got)
	}

	s.ReleaseAll()
	if n := len(cmd.Commands()); n != 8 {
		t.Fatalf("expected released keys to be forgotten, got %#v", cmd.Commands())
	}
}

// TestServeHTTP_DisconnectReleasesKeyDown verifies a dropped connection lifts raw held keys.
func TestServeHTTP_DisconnectReleasesKeyDown(t *testing.T) {
	s, cmd, _ := newTestServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	if err := conn.WriteJSON(Message{T: MsgKeyDown, Key: "Space"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(Message{T: MsgState}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}

	_ = conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(cmd.Commands()) < 4 {
		time.Sleep(5 * time.Millisecond)
	}
	got := cmd.Commands()
	if len(got) != 4 || got[3].Name != "KeyUp" || got[3].Key != wininput.KeySpace {
		t.Fatalf("expected Space released on disconnect, got %#v", got)
	}
}
