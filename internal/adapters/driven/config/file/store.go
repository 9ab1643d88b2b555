// Package file is the TOML-backed config store at ~/.fincal/config.toml.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds all user-tunable configuration. Zero values are filled
// from the defaults, so a partial or missing config file is fine.
type Settings struct {
	// BaseURL is the root of the static data tree.
	BaseURL string `toml:"base_url"`
	// ExportRevertMS is how long the export button shows "copied".
	ExportRevertMS int `toml:"export_revert_ms"`
	// RequestRate and RequestBurst bound outgoing data requests.
	RequestRate  float64 `toml:"request_rate"`
	RequestBurst int     `toml:"request_burst"`
	// DataDir and OutputDir are the generator's collected-data input and
	// static-tree output directories.
	DataDir   string `toml:"data_dir"`
	OutputDir string `toml:"output_dir"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:        "https://data.fincal.dev/web/data",
		ExportRevertMS: 2000,
		RequestRate:    5.0,
		RequestBurst:   10,
		DataDir:        "./data",
		OutputDir:      "./web/data",
	}
}

// ConfigStore loads settings from a TOML file.
type ConfigStore struct {
	path string
}

// NewConfigStore creates a store rooted at dir; empty dir means ~/.fincal.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".fincal")
	}
	return &ConfigStore{path: filepath.Join(dir, "config.toml")}, nil
}

// Get reads the settings. A missing file yields the defaults; a malformed
// file is an error.
func (s *ConfigStore) Get() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config: %w", err)
	}

	var loaded Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("parse config: %w", err)
	}
	return merge(settings, loaded), nil
}

func merge(base, loaded Settings) Settings {
	if loaded.BaseURL != "" {
		base.BaseURL = loaded.BaseURL
	}
	if loaded.ExportRevertMS > 0 {
		base.ExportRevertMS = loaded.ExportRevertMS
	}
	if loaded.RequestRate > 0 {
		base.RequestRate = loaded.RequestRate
	}
	if loaded.RequestBurst > 0 {
		base.RequestBurst = loaded.RequestBurst
	}
	if loaded.DataDir != "" {
		base.DataDir = loaded.DataDir
	}
	if loaded.OutputDir != "" {
		base.OutputDir = loaded.OutputDir
	}
	return base
}
