package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the database and log live: $XDG_DATA_HOME/app or
// ~/.local/share/app.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", "."+app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported workout reports are written.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app+"-reports")
}

// DocumentsDir resolves the user's documents folder, honouring
// XDG_DOCUMENTS_DIR and ~/.config/user-dirs.dirs.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// EnsureDir creates dir with user-only permissions if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		value, ok := strings.CutPrefix(line, key+"=")
		if !ok {
			continue
		}
		return strings.Trim(value, "\"")
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
