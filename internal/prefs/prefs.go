// Package prefs persists small UI preferences between sessions.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const prefsFile = "prefs.json"

// DarkModeKey is the fixed key the dark-mode preference is stored under.
const DarkModeKey = "darkMode"

// Store reads and writes preferences in the user config directory.
type Store struct {
	path string
}

// NewStore creates a store rooted at the user config directory.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "pulse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, prefsFile)}, nil
}

// NewStoreAt creates a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// DarkMode reads the persisted dark-mode flag. A missing or unreadable
// file yields the default (dark mode on).
func (s *Store) DarkMode() bool {
	values, err := s.load()
	if err != nil {
		return true
	}
	v, ok := values[DarkModeKey]
	if !ok {
		return true
	}
	var dark bool
	if err := json.Unmarshal(v, &dark); err != nil {
		return true
	}
	return dark
}

// SetDarkMode persists the dark-mode flag. Written on every toggle.
func (s *Store) SetDarkMode(dark bool) error {
	values, err := s.load()
	if err != nil {
		values = map[string]json.RawMessage{}
	}
	encoded, err := json.Marshal(dark)
	if err != nil {
		return err
	}
	values[DarkModeKey] = encoded
	return s.save(values)
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Store) save(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
