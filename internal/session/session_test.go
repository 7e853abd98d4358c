package session

import (
	"testing"
	"time"

	"github.com/frudas24/padlink/internal/config"
)

// TestAuthenticate_Success verifies successful authentication.
func TestAuthenticate_Success(t *testing.T) {
	s := New("secret", true)
	if !s.Authenticate("secret") {
		t.Fatalf("expected authentication to succeed")
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
}

// TestAuthenticate_Fail verifies failed authentication clears a previous login.
func TestAuthenticate_Fail(t *testing.T) {
	s := New("secret", true)
	s.Authenticate("secret")
	if s.Authenticate("nope") {
		t.Fatalf("expected authentication to fail")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected unauthenticated state")
	}
}

// TestLogout verifies logout clears auth state.
func TestLogout(t *testing.T) {
	s := New("secret", true)
	s.Authenticate("secret")
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatalf("expected unauthenticated state")
	}
}

// TestNoPassword_AlwaysAuthenticated verifies dev mode skips authentication.
func TestNoPassword_AlwaysAuthenticated(t *testing.T) {
	s := New("", true)
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated without password")
	}
	s.Logout()
	if !s.IsAuthenticated() {
		t.Fatalf("expected logout to be ignored without password")
	}
}

// TestInputEnabled_Toggle verifies the input kill switch.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret", true)
	if !s.InputEnabled() {
		t.Fatalf("expected input enabled by default")
	}
	s.SetInputEnabled(false)
	if s.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
}

// TestRecordCommand verifies command accounting in the snapshot.
func TestRecordCommand(t *testing.T) {
	s := New("secret", true)
	at := time.Unix(100, 0)
	s.now = func() time.Time { return at }
	s.RecordCommand()
	s.RecordCommand()

	snap := s.Snapshot()
	if snap.Commands != 2 || !snap.LastCommand.Equal(at) || snap.Authenticated {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

// TestPasswordModeOff_IgnoresPassword verifies a configured password is not enforced when password mode is off.
func TestPasswordModeOff_IgnoresPassword(t *testing.T) {
	s := New("secret", false)
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated with password mode off")
	}
	if !s.Authenticate("") {
		t.Fatalf("expected any password to be accepted")
	}
	if !s.Snapshot().Authenticated {
		t.Fatalf("expected snapshot to report authenticated")
	}
}

// TestSessionFromConfig_PasswordModeOff verifies PASSWORD_MODE=0 opens the session even with UI_PASSWORD set.
func TestSessionFromConfig_PasswordModeOff(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "DATA_DIR", "BINDINGS_PATH", "TARGET_PROCESS",
		"USE_POST_MESSAGE", "POLL_INTERVAL_MS"} {
		t.Setenv(key, "")
	}
	t.Setenv("PASSWORD_MODE", "0")
	t.Setenv("UI_PASSWORD", "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if cfg.PasswordMode {
		t.Fatalf("expected password mode off")
	}
	if !New(cfg.UIPassword, cfg.PasswordMode).IsAuthenticated() {
		t.Fatalf("expected session to be open with password mode off")
	}

	t.Setenv("PASSWORD_MODE", "1")
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if New(cfg.UIPassword, cfg.PasswordMode).IsAuthenticated() {
		t.Fatalf("expected session to require login with password mode on")
	}
}
