package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

const appDirName = "goaltrack"

// DefaultDataDir returns the OS-appropriate directory for the application's
// data and settings files.
//
//   - macOS:   ~/Library/Application Support/goaltrack
//   - Linux:   $XDG_DATA_HOME/goaltrack (fallback ~/.local/share/goaltrack)
//   - Windows: %LOCALAPPDATA%\goaltrack (fallback %APPDATA%\goaltrack)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDirName)
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appDirName)
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, appDirName)
		}
		return filepath.Join(home, appDirName)
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, appDirName)
		}
		return filepath.Join(home, ".local", "share", appDirName)
	}
}

// CreateDirectoryIfNotExists creates the directory (and parents) if it does
// not already exist.
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
