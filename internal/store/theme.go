package store

import (
	"os"
	"path/filepath"
	"strings"

	"crmdesk/internal/crm"
)

// ThemeStore persists the theme preference between sessions, the
// counterpart of the browser's local storage.
type ThemeStore interface {
	Load() crm.Theme
	Save(theme crm.Theme) error
}

// FileThemeStore keeps the preference in a single file.
type FileThemeStore struct {
	path string
}

// NewFileThemeStore creates a file-backed theme store at path.
func NewFileThemeStore(path string) *FileThemeStore {
	return &FileThemeStore{path: path}
}

// Load reads the persisted preference. Anything other than "dark"
// (including a missing file) yields the light theme.
func (f *FileThemeStore) Load() crm.Theme {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return crm.ThemeLight
	}
	if crm.Theme(strings.TrimSpace(string(raw))) == crm.ThemeDark {
		return crm.ThemeDark
	}
	return crm.ThemeLight
}

// Save writes the preference, creating parent directories as needed.
func (f *FileThemeStore) Save(theme crm.Theme) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, []byte(theme), 0o644)
}

// NoopThemeStore discards the preference; used when persistence is not
// configured.
type NoopThemeStore struct{}

func (NoopThemeStore) Load() crm.Theme      { return crm.ThemeLight }
func (NoopThemeStore) Save(crm.Theme) error { return nil }
