package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from config.yml. Booleans have no defaults: cleanenv would
// apply a "true" default over an explicit false, so the file must set them.
type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
	Color    bool   `yaml:"color" env:"COLOR"`
}

type Match struct {
	PlayerX    string `yaml:"player-x" env:"PLAYER_X" env-default:"human"`
	PlayerO    string `yaml:"player-o" env:"PLAYER_O" env-default:"minimax"`
	Autoplay   bool   `yaml:"autoplay" env:"AUTOPLAY"`
	RandomSeed uint64 `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
	Games      int    `yaml:"games" env:"GAMES" env-default:"1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, letting the environment override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
