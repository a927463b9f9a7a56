package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenekit/internal/core/save/format"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := Default()

	require.Equal(t, "saves", cfg.SaveDirectory)
	require.Equal(t, format.TagXML, cfg.Format)
	require.Zero(t, cfg.MaxSlots)
	require.Zero(t, cfg.ActiveProfile)
	require.NoError(t, cfg.Validate())
}

func TestConfig_LoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "absent.yaml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestConfig_LoadOverlaysDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "format: Json\nmax_slots: 12\n"
	require.NoError(t, afero.WriteFile(fs, "save.yaml", []byte(content), 0o644))

	cfg, err := Load(fs, "save.yaml")
	require.NoError(t, err)
	require.Equal(t, format.TagJSON, cfg.Format)
	require.Equal(t, 12, cfg.MaxSlots)
	require.Equal(t, "saves", cfg.SaveDirectory)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	cfg.Format = "Msgpack"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SaveDirectory = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxSlots = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.ActiveProfile = -1
	require.Error(t, cfg.Validate())
}

func TestConfig_LoadRejectsInvalidSettings(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "save.yaml", []byte("format: Msgpack\n"), 0o644))

	_, err := Load(fs, "save.yaml")
	require.Error(t, err)
}
