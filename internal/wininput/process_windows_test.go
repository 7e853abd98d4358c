//go:build windows

package wininput

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnumWindowsProc_NoActiveSearch verifies a stray callback stops enumeration.
func TestEnumWindowsProc_NoActiveSearch(t *testing.T) {
	if got := enumWindowsProc(0, 0); got != 0 {
		t.Fatalf("expected enumeration to stop, got %d", got)
	}
}

// TestMainWindowOf_UnknownPID verifies a search with no match leaves the slot clear.
func TestMainWindowOf_UnknownPID(t *testing.T) {
	h, err := mainWindowOf(0xFFFFFFF0)
	if err != nil || h != 0 {
		t.Fatalf("expected no window, got 0x%X err=%v", uintptr(h), err)
	}
	if activeSearch != nil {
		t.Fatalf("expected active search to be cleared")
	}
}

// TestFindProcessID_Self verifies the running test binary is found by name.
func TestFindProcessID_Self(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("executable path unavailable: %v", err)
	}
	pid, ok, err := findProcessID(filepath.Base(exe))
	if err != nil || !ok || pid == 0 {
		t.Fatalf("expected own process, got pid=%d ok=%v err=%v", pid, ok, err)
	}
}
