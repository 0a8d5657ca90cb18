package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilngas/thermo"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.Equal(t, thermo.DefaultGasConstant, cfg.Thermo.GasConstant)
	assert.Empty(t, cfg.Thermo.SpeciesFile)
	assert.Equal(t, 50, cfg.Sweep.Points)
	assert.Equal(t, 0, cfg.Sweep.Workers)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, thermo.DefaultConstants(), cfg.Constants())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRepositoryConfig(t *testing.T) {
	cfg, err := Load("../conf/config.ini")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 8.31446, cfg.Thermo.GasConstant)
}

func writeIni(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeIni(t, `
[server]
addr = 127.0.0.1:8080
mode = debug

[log]
level = debug
dir = /tmp/kilngas

[thermo]
gas_constant = 8.314
species_file = conf/species.toml

[sweep]
points = 200
workers = 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/kilngas", cfg.Log.Dir)
	assert.Equal(t, 8.314, cfg.Thermo.GasConstant)
	assert.Equal(t, "conf/species.toml", cfg.Thermo.SpeciesFile)
	assert.Equal(t, 200, cfg.Sweep.Points)
	assert.Equal(t, 4, cfg.Sweep.Workers)
}

func TestLoadFallbacks(t *testing.T) {
	// 非法值退回默认值
	path := writeIni(t, `
[server]
mode = verbose

[sweep]
points = many
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 50, cfg.Sweep.Points)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeIni(t, "[thermo]\ngas_constant = -1\n"))
	assert.Error(t, err)

	_, err = Load(writeIni(t, "[sweep]\npoints = 0\n"))
	assert.Error(t, err)

	_, err = Load(writeIni(t, "[sweep]\nworkers = -2\n"))
	assert.Error(t, err)
}
