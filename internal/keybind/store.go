// Package keybind resolves logical action names to virtual-key codes.
package keybind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frudas24/padlink/internal/wininput"
	"gopkg.in/yaml.v3"
)

// file is the on-disk binding layout.
type file struct {
	Bindings map[string]string `yaml:"bindings"`
}

// Load reads bindings from a YAML file. Missing files return Default().
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML binding data.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	keys := make(map[string]wininput.Key, len(f.Bindings))
	for name, raw := range f.Bindings {
		if name == "" {
			return nil, errors.New("parse bindings: empty binding name")
		}
		k, err := wininput.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		keys[name] = k
	}
	return &Set{keys: keys}, nil
}

// Save writes bindings to disk, creating parent directories as needed.
func Save(path string, s *Set) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f := file{Bindings: make(map[string]string, len(s.keys))}
	for name, k := range s.keys {
		f.Bindings[name] = k.String()
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
