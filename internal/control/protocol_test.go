package control

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestProtocol_Move verifies decoding a move message.
func TestProtocol_Move(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"move","dir":"forward"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgMove || msg.Dir != "forward" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Key verifies decoding a key message.
func TestProtocol_Key(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"keyPress","key":"Space"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgKeyPress || msg.Key != "Space" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Delivery verifies the optional post flag.
func TestProtocol_Delivery(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"delivery","post":false}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Post == nil || *msg.Post {
		t.Fatalf("expected explicit false post flag, got %+v", msg)
	}
}

// TestProtocol_ReplyOmitsEmptyError verifies state replies carry no error field.
func TestProtocol_ReplyOmitsEmptyError(t *testing.T) {
	data, err := json.Marshal(Reply{T: MsgState, Attached: true, Move: &MoveState{Left: true}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)
	if strings.Contains(out, `"error"`) || !strings.Contains(out, `"left":true`) {
		t.Fatalf("unexpected reply json %s", out)
	}
}
