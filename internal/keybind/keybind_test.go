package keybind

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frudas24/padlink/internal/wininput"
)

// TestDefault_CoversMovement verifies the default set resolves every movement name.
func TestDefault_CoversMovement(t *testing.T) {
	if err := Require(Default(), MovementNames...); err != nil {
		t.Fatalf("default bindings incomplete: %v", err)
	}
	k, _ := Default().Resolve(MoveUp)
	if k != 'W' {
		t.Fatalf("expected W for %s, got %v", MoveUp, k)
	}
}

// TestResolve_Unbound verifies missing names fail with ErrUnbound.
func TestResolve_Unbound(t *testing.T) {
	_, err := NewSet(nil).Resolve(MoveUp)
	if !errors.Is(err, ErrUnbound) {
		t.Fatalf("expected ErrUnbound, got %v", err)
	}
	var nilSet *Set
	if _, err := nilSet.Resolve(MoveUp); !errors.Is(err, ErrUnbound) {
		t.Fatalf("expected ErrUnbound from nil set, got %v", err)
	}
}

// TestRequire_ReportsAllMissing verifies every missing name is listed.
func TestRequire_ReportsAllMissing(t *testing.T) {
	s := NewSet(map[string]wininput.Key{MoveUp: 'W', MoveDown: 'S'})
	err := Require(s, MovementNames...)
	if !errors.Is(err, ErrUnbound) {
		t.Fatalf("expected ErrUnbound, got %v", err)
	}
	if !strings.Contains(err.Error(), MoveLeft) || !strings.Contains(err.Error(), MoveRight) {
		t.Fatalf("expected both missing names in %q", err.Error())
	}
}

// TestParse_ValidFile verifies YAML decoding into key codes.
func TestParse_ValidFile(t *testing.T) {
	s, err := Parse([]byte("bindings:\n  LStickUp: Up\n  Jump: space\n  Cast: 0x70\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if k, _ := s.Resolve(MoveUp); k != wininput.KeyUp {
		t.Fatalf("expected Up, got %v", k)
	}
	if k, _ := s.Resolve("Jump"); k != wininput.KeySpace {
		t.Fatalf("expected Space, got %v", k)
	}
	if k, _ := s.Resolve("Cast"); k != wininput.KeyF1 {
		t.Fatalf("expected F1, got %v", k)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 bindings, got %d", s.Len())
	}
}

// TestParse_UnknownKey verifies invalid key names are rejected with the binding name.
func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("bindings:\n  LStickUp: NotAKey\n"))
	if err == nil || !strings.Contains(err.Error(), MoveUp) {
		t.Fatalf("expected error naming %s, got %v", MoveUp, err)
	}
}

// TestParse_InvalidYAML verifies malformed files are rejected.
func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("bindings: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestLoad_MissingFile_ReturnsDefault verifies missing files fall back to defaults.
func TestLoad_MissingFile_ReturnsDefault(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Len() != Default().Len() {
		t.Fatalf("expected default bindings, got %v", s.Names())
	}
}

// TestSaveLoad_RoundTrip verifies saved bindings load back unchanged.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bindings.yaml")
	in := Default()
	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, name := range in.Names() {
		want, _ := in.Resolve(name)
		got, err := out.Resolve(name)
		if err != nil || got != want {
			t.Fatalf("%s: expected %v, got %v err=%v", name, want, got, err)
		}
	}
}

// TestSaveLoad_WideKeyCode verifies codes above one byte survive a save and load.
func TestSaveLoad_WideKeyCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := Save(path, NewSet(map[string]wininput.Key{"Extra": 0x1FF})); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, err := out.Resolve("Extra"); err != nil || got != 0x1FF {
		t.Fatalf("expected 0x1FF, got %v err=%v", got, err)
	}
}
