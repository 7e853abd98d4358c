//go:build windows

// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// FindMainWindow locates the first process named processName and returns its main window.
func (w *WinPlatform) FindMainWindow(processName string) (Handle, error) {
	pid, ok, err := findProcessID(processName)
	if err != nil || !ok {
		return 0, err
	}
	return mainWindowOf(pid)
}

// findProcessID walks a Toolhelp32 snapshot for the first matching executable.
func findProcessID(processName string) (uint32, bool, error) {
	want := normalizeProcessName(processName)
	if want == "" {
		return 0, false, errors.New("empty process name")
	}

	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, false, fmt.Errorf("CreateToolhelp32Snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snap, &entry); err == nil; err = windows.Process32Next(snap, &entry) {
		if normalizeProcessName(windows.UTF16ToString(entry.ExeFile[:])) == want {
			return entry.ProcessID, true, nil
		}
	}
	if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("Process32Next: %w", err)
}

// normalizeProcessName lowercases a process name and drops a trailing .exe.
func normalizeProcessName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

type windowSearch struct {
	pid   uint32
	found windows.HWND
}

var (
	// searchMu serializes EnumWindows calls and guards activeSearch.
	searchMu sync.Mutex
	// activeSearch is the search the callback fills; lparam is unused.
	activeSearch *windowSearch
	// enumWindowsCallback is created once; callbacks are never released by the runtime.
	enumWindowsCallback = windows.NewCallback(enumWindowsProc)
)

// mainWindowOf returns the first visible, unowned top-level window of pid.
func mainWindowOf(pid uint32) (Handle, error) {
	searchMu.Lock()
	defer searchMu.Unlock()

	search := &windowSearch{pid: pid}
	activeSearch = search
	defer func() { activeSearch = nil }()
	err := windows.EnumWindows(enumWindowsCallback, nil)
	if search.found != 0 {
		return Handle(search.found), nil
	}
	if err != nil {
		return 0, fmt.Errorf("EnumWindows: %w", err)
	}
	return 0, nil
}

// enumWindowsProc runs on the EnumWindows caller's thread while searchMu is held.
func enumWindowsProc(hwnd windows.HWND, _ uintptr) uintptr {
	search := activeSearch
	if search == nil {
		return 0
	}
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || pid != search.pid {
		return 1
	}
	if !windows.IsWindowVisible(hwnd) {
		return 1
	}
	if win.GetWindow(win.HWND(hwnd), win.GW_OWNER) != 0 {
		return 1
	}
	search.found = hwnd
	return 0
}
