// Package prefs handles per-user preferences persistence.
// Preferences are stored in ~/.config/biblioteca/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// VoiceCommand is the transcriber command line for voice book entry.
	// Empty means the capability is absent, which is a normal condition.
	VoiceCommand string `toml:"voice_command"`
	LogDir       string `toml:"log_dir"`
}

const (
	defaultPrefsPath = "~/.config/biblioteca/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultLogDir    = "~/.local/state/biblioteca"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. Preferences are never a reason to refuse startup.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme, LogDir: defaultLogDir}

	resolved, err := resolvePath(path)
	if err != nil {
		prefs.LogDir = mustExpand(prefs.LogDir)
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		prefs.LogDir = mustExpand(prefs.LogDir)
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err == nil {
		if err := toml.Unmarshal(bytes, &prefs); err != nil {
			prefs = Prefs{Theme: defaultTheme, LogDir: defaultLogDir}
		}
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	prefs.VoiceCommand = strings.TrimSpace(prefs.VoiceCommand)
	if strings.TrimSpace(prefs.LogDir) == "" {
		prefs.LogDir = defaultLogDir
	}
	prefs.LogDir = mustExpand(prefs.LogDir)

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
