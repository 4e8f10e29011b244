package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read once at startup and never changed afterwards. Both players
// must run with the same KDF settings or their tokens will not open.
type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	KDF      KDF    `yaml:"kdf"`
}

type KDF struct {
	Salt       string `yaml:"salt" env:"TTT_KDF_SALT" env-default:"tictactoe_game_salt"`
	Iterations int    `yaml:"iterations" env:"TTT_KDF_ITERATIONS" env-default:"100000"`
}

// Load - reads the config file at path, falling back to environment variables when the file is absent.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
