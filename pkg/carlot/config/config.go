package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyData    = "data"
	KeyAddress = "address"
	KeyLogMode = "log-mode"

	EnvPrefix = "CARLOT"
)

// Config holds the settings shared by every command.
type Config struct {
	DataPath string
	Address  string
	LogMode  string
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyData, "cars.csv")
	v.SetDefault(KeyAddress, ":8080")
	v.SetDefault(KeyLogMode, "development")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// SERVER_ADDRESS predates the CARLOT_ prefix.
	_ = v.BindEnv(KeyAddress, EnvPrefix+"_ADDRESS", "SERVER_ADDRESS")
}

// Load reads an optional config file and returns the resolved settings.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		DataPath: v.GetString(KeyData),
		Address:  v.GetString(KeyAddress),
		LogMode:  v.GetString(KeyLogMode),
	}
	if cfg.DataPath == "" {
		return Config{}, errors.New("data path must not be empty")
	}
	return cfg, nil
}
