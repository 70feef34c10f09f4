package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataDirForOS(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() failed: %v", err)
	}

	t.Setenv("XDG_DATA_HOME", "")
	linuxDir := defaultDataDirForOS("linux")
	expected := filepath.Join(home, ".local", "share", appDirName)
	if linuxDir != expected {
		t.Errorf("linux data dir = %s, expected %s", linuxDir, expected)
	}

	t.Setenv("XDG_DATA_HOME", "/custom/data")
	linuxDir = defaultDataDirForOS("linux")
	expected = filepath.Join("/custom/data", appDirName)
	if linuxDir != expected {
		t.Errorf("linux data dir with XDG_DATA_HOME = %s, expected %s", linuxDir, expected)
	}

	darwinDir := defaultDataDirForOS("darwin")
	expected = filepath.Join(home, "Library", "Application Support", appDirName)
	if darwinDir != expected {
		t.Errorf("darwin data dir = %s, expected %s", darwinDir, expected)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "dir")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists() failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("created path is not a directory")
	}

	// Second call on an existing directory must be a no-op.
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("CreateDirectoryIfNotExists() on existing dir failed: %v", err)
	}
}
