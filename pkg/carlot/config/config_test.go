package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, Config{DataPath: "cars.csv", Address: ":8080", LogMode: "development"}, cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CARLOT_DATA", "/tmp/listings.csv")
	t.Setenv("CARLOT_LOG_MODE", "prod")
	t.Setenv("SERVER_ADDRESS", ":9090")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/listings.csv", cfg.DataPath)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, ":9090", cfg.Address)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carlot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: inventory.csv\naddress: \":7000\"\n"), 0o600))

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "inventory.csv", cfg.DataPath)
	assert.Equal(t, ":7000", cfg.Address)
}

func TestLoad_MissingFile(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	_, err := Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
