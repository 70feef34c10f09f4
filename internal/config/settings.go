// Package config manages the application's persisted preferences. The only
// preference today is the display font size, stored as a small JSON object
// so the file stays hand-editable.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goaltrack/goaltrack/internal/fsutil"
	"github.com/goaltrack/goaltrack/internal/platform"
)

// SettingsFileName is the settings file kept inside the data directory.
const SettingsFileName = "settings.json"

// Font size bounds. Valid sizes run from MinFontSize to MaxFontSize in
// FontSizeIncrement steps.
const (
	DefaultFontSize   = 16
	MinFontSize       = 12
	MaxFontSize       = 24
	FontSizeIncrement = 2
)

// fileSettings is the on-disk shape of the settings file.
type fileSettings struct {
	FontSize int `json:"font_size"`
}

// Settings manages application configuration backed by a JSON file.
type Settings struct {
	path     string
	fontSize int
}

// NewSettings creates a settings manager storing its file under dir. The
// file is not read until Load is called.
func NewSettings(dir string) *Settings {
	return &Settings{
		path:     filepath.Join(dir, SettingsFileName),
		fontSize: DefaultFontSize,
	}
}

// Load reads the settings file. A missing file, unreadable JSON, or an
// out-of-range font size all resolve to the default, and the corrected value
// is written back so the file is valid afterwards. The returned error is a
// non-fatal warning describing what was corrected; callers may display it
// and continue.
func (s *Settings) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.fontSize = DefaultFontSize
			return s.save()
		}
		s.fontSize = DefaultFontSize
		if saveErr := s.save(); saveErr != nil {
			return saveErr
		}
		return fmt.Errorf("read settings: %w", err)
	}

	var fs fileSettings
	if err := json.Unmarshal(data, &fs); err != nil {
		s.fontSize = DefaultFontSize
		if saveErr := s.save(); saveErr != nil {
			return saveErr
		}
		return fmt.Errorf("parse settings: %w", err)
	}

	if !ValidFontSize(fs.FontSize) {
		s.fontSize = DefaultFontSize
		return s.save()
	}

	s.fontSize = fs.FontSize
	return nil
}

// FontSize returns the effective font size.
func (s *Settings) FontSize() int {
	return s.fontSize
}

// SetFontSize updates the font size and persists it. Values outside the
// valid set are rejected and the current size is kept.
func (s *Settings) SetFontSize(size int) error {
	if !ValidFontSize(size) {
		return fmt.Errorf("font size %d out of range [%d, %d] step %d",
			size, MinFontSize, MaxFontSize, FontSizeIncrement)
	}
	s.fontSize = size
	return s.save()
}

// FontSizeOptions returns the selectable font sizes in ascending order.
func FontSizeOptions() []int {
	var sizes []int
	for size := MinFontSize; size <= MaxFontSize; size += FontSizeIncrement {
		sizes = append(sizes, size)
	}
	return sizes
}

// ValidFontSize reports whether size is within bounds and on the increment.
func ValidFontSize(size int) bool {
	return size >= MinFontSize && size <= MaxFontSize &&
		(size-MinFontSize)%FontSizeIncrement == 0
}

// Path returns the location of the settings file.
func (s *Settings) Path() string {
	return s.path
}

func (s *Settings) save() error {
	data, err := json.MarshalIndent(fileSettings{FontSize: s.fontSize}, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
