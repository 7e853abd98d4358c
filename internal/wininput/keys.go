// Package wininput defines the Windows window, process, and input capabilities used by padlink.
package wininput

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a Windows virtual-key code.
type Key uint16

// Commonly bound virtual-key codes.
const (
	KeyBack     Key = 0x08
	KeyTab      Key = 0x09
	KeyReturn   Key = 0x0D
	KeyShift    Key = 0x10
	KeyControl  Key = 0x11
	KeyMenu     Key = 0x12
	KeyEscape   Key = 0x1B
	KeySpace    Key = 0x20
	KeyPrior    Key = 0x21
	KeyNext     Key = 0x22
	KeyEnd      Key = 0x23
	KeyHome     Key = 0x24
	KeyLeft     Key = 0x25
	KeyUp       Key = 0x26
	KeyRight    Key = 0x27
	KeyDown     Key = 0x28
	KeyInsert   Key = 0x2D
	KeyDelete   Key = 0x2E
	KeyNumpad0  Key = 0x60
	KeyMultiply Key = 0x6A
	KeyAdd      Key = 0x6B
	KeySubtract Key = 0x6D
	KeyDecimal  Key = 0x6E
	KeyDivide   Key = 0x6F
	KeyF1       Key = 0x70
	KeyLShift   Key = 0xA0
	KeyRShift   Key = 0xA1
	KeyLControl Key = 0xA2
	KeyRControl Key = 0xA3
	KeyLMenu    Key = 0xA4
	KeyRMenu    Key = 0xA5
)

var namedKeys = map[string]Key{
	"backspace": KeyBack,
	"tab":       KeyTab,
	"enter":     KeyReturn,
	"return":    KeyReturn,
	"shift":     KeyShift,
	"ctrl":      KeyControl,
	"control":   KeyControl,
	"alt":       KeyMenu,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"space":     KeySpace,
	"pageup":    KeyPrior,
	"pagedown":  KeyNext,
	"end":       KeyEnd,
	"home":      KeyHome,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
	"insert":    KeyInsert,
	"delete":    KeyDelete,
	"multiply":  KeyMultiply,
	"add":       KeyAdd,
	"subtract":  KeySubtract,
	"decimal":   KeyDecimal,
	"divide":    KeyDivide,
	"lshift":    KeyLShift,
	"rshift":    KeyRShift,
	"lctrl":     KeyLControl,
	"rctrl":     KeyRControl,
	"lalt":      KeyLMenu,
	"ralt":      KeyRMenu,
}

var keyNames = func() map[Key]string {
	out := map[Key]string{
		KeyBack:     "Backspace",
		KeyTab:      "Tab",
		KeyReturn:   "Enter",
		KeyShift:    "Shift",
		KeyControl:  "Ctrl",
		KeyMenu:     "Alt",
		KeyEscape:   "Escape",
		KeySpace:    "Space",
		KeyPrior:    "PageUp",
		KeyNext:     "PageDown",
		KeyEnd:      "End",
		KeyHome:     "Home",
		KeyLeft:     "Left",
		KeyUp:       "Up",
		KeyRight:    "Right",
		KeyDown:     "Down",
		KeyInsert:   "Insert",
		KeyDelete:   "Delete",
		KeyMultiply: "Multiply",
		KeyAdd:      "Add",
		KeySubtract: "Subtract",
		KeyDecimal:  "Decimal",
		KeyDivide:   "Divide",
		KeyLShift:   "LShift",
		KeyRShift:   "RShift",
		KeyLControl: "LCtrl",
		KeyRControl: "RCtrl",
		KeyLMenu:    "LAlt",
		KeyRMenu:    "RAlt",
	}
	for i := 0; i < 10; i++ {
		out[KeyNumpad0+Key(i)] = "Num" + strconv.Itoa(i)
	}
	for i := 0; i < 24; i++ {
		out[KeyF1+Key(i)] = "F" + strconv.Itoa(i+1)
	}
	return out
}()

// ParseKey converts a key name into a virtual-key code.
// Accepted forms: single letters or digits ("W", "7"), named keys ("Space",
// "PageUp"), function keys ("F1".."F24"), numpad digits ("Num0".."Num9"),
// and raw hex codes ("0x57").
func ParseKey(name string) (Key, error) {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return 0, fmt.Errorf("empty key name")
	}
	if len(raw) == 1 {
		c := strings.ToUpper(raw)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Key(c), nil
		}
		return 0, fmt.Errorf("unknown key %q", name)
	}

	lower := strings.ToLower(raw)
	if k, ok := namedKeys[lower]; ok {
		return k, nil
	}
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseUint(lower[2:], 16, 16)
		if err != nil || v == 0 {
			return 0, fmt.Errorf("invalid key code %q", name)
		}
		return Key(v), nil
	}
	if strings.HasPrefix(lower, "num") {
		if n, err := strconv.Atoi(lower[3:]); err == nil && n >= 0 && n <= 9 {
			return KeyNumpad0 + Key(n), nil
		}
	}
	if strings.HasPrefix(lower, "f") {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 24 {
			return KeyF1 + Key(n-1), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// String returns the canonical key name accepted by ParseKey.
func (k Key) String() string {
	if (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9') {
		return string(rune(k))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(k))
}

// MarshalText renders the key name.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a key name.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
