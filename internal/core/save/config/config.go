// Package config holds the save-system settings.
package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/scenekit/scenekit/internal/core/save/format"
)

// Config is the save-system configuration. The format is read at startup and
// must not be switched while a serialize or deserialize is in flight.
type Config struct {
	// SaveDirectory is where slot files and manifests live.
	SaveDirectory string `yaml:"save_directory"`

	// Format is the tag of the active encoding: XML, Json or Binary.
	Format string `yaml:"format"`

	// MaxSlots caps how many save slots a profile may hold. Zero means
	// unlimited.
	MaxSlots int `yaml:"max_slots"`

	// ActiveProfile selects which profile's options and slots are in use.
	ActiveProfile int `yaml:"active_profile"`
}

func Default() Config {
	return Config{
		SaveDirectory: "saves",
		Format:        format.TagXML,
		MaxSlots:      0,
		ActiveProfile: 0,
	}
}

// Load reads a yaml config file, overlaying it on the defaults. A missing
// file yields the defaults without error.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	ok, err := afero.Exists(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if !ok {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the save system cannot run with.
func (c Config) Validate() error {
	if c.SaveDirectory == "" {
		return fmt.Errorf("save_directory must not be empty")
	}
	if !format.IsValidTag(c.Format) {
		return fmt.Errorf("format %q is not one of XML, Json, Binary", c.Format)
	}
	if c.MaxSlots < 0 {
		return fmt.Errorf("max_slots must not be negative")
	}
	if c.ActiveProfile < 0 {
		return fmt.Errorf("active_profile must not be negative")
	}
	return nil
}
