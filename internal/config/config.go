// Package config locates and prepares the on-disk home of the gnomefavs preset file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wethinkt/gnomefavs/internal/debuglog"
)

const (
	// DirName is the directory created under ~/.config.
	DirName = "gnomefavs"
	// FileName is the preset collection file inside DirName.
	FileName = "gnomefavs.json"
)

// ErrLocationNotFound is returned when the home or config directory is missing.
var ErrLocationNotFound = errors.New("location not found")

// Paths holds every filesystem location gnomefavs touches.
// Build it once at startup and pass it down.
type Paths struct {
	Home        string // User home directory ($HOME)
	ConfigDir   string // <home>/.config
	PresetsDir  string // <home>/.config/gnomefavs
	PresetsFile string // <home>/.config/gnomefavs/gnomefavs.json
}

// NewPaths derives all locations from a home directory.
func NewPaths(home string) Paths {
	configDir := filepath.Join(home, ".config")
	presetsDir := filepath.Join(configDir, DirName)
	return Paths{
		Home:        home,
		ConfigDir:   configDir,
		PresetsDir:  presetsDir,
		PresetsFile: filepath.Join(presetsDir, FileName),
	}
}

// FromEnv builds Paths from the HOME environment variable.
func FromEnv() (Paths, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return Paths{}, fmt.Errorf("%w: HOME is not set", ErrLocationNotFound)
	}
	return NewPaths(home), nil
}

// Validate checks that the home and config directories exist, then creates
// the gnomefavs directory and an empty preset file if they are missing.
func (p Paths) Validate() error {
	if !isDir(p.Home) {
		return fmt.Errorf("%w: could not find home directory at %s", ErrLocationNotFound, p.Home)
	}
	if !isDir(p.ConfigDir) {
		return fmt.Errorf("%w: could not find config directory at %s", ErrLocationNotFound, p.ConfigDir)
	}

	if !exists(p.PresetsDir) {
		debuglog.Log.Info("creating presets directory", "path", p.PresetsDir)
		if err := os.Mkdir(p.PresetsDir, 0755); err != nil {
			return fmt.Errorf("create presets directory: %w", err)
		}
	}

	if !exists(p.PresetsFile) {
		debuglog.Log.Info("creating presets file", "path", p.PresetsFile)
		if err := os.WriteFile(p.PresetsFile, []byte("{}"), 0644); err != nil {
			return fmt.Errorf("create presets file: %w", err)
		}
	}

	return nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// exists reports whether anything lives at path.
// A directory where the file should be is left for the store to reject.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
