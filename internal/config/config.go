package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var validate = validator.New()

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	BoardSize int      `yaml:"board-size" env:"BOARD_SIZE" env-default:"3" validate:"min=1,max=32"`
	NoColor   Presence `yaml:"no-color" env:"NO_COLOR"`
	Players   []Player `yaml:"players" validate:"min=2,unique=Name,dive"`
}

// Presence - a bool in yaml. In the environment any non-empty value means true.
type Presence bool

func (that *Presence) SetValue(value string) error {
	*that = value != ""

	return nil
}

type Player struct {
	Name string `yaml:"name" validate:"required"`
	Mark string `yaml:"mark" validate:"required,oneof=X O"`
}

// DefaultPlayers - used when the config lists no players.
func DefaultPlayers() []Player {
	return []Player{
		{Name: "Player 1", Mark: entity.SymbolX},
		{Name: "Player 2", Mark: entity.SymbolO},
	}
}

// MustLoad - load all configurations in config.yml file, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := read(path, config); err != nil {
		return nil, err
	}

	if len(config.Players) == 0 {
		config.Players = DefaultPlayers()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

func read(path string, config *Config) error {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return fmt.Errorf("failed to read config from env: %w", err)
		}
	default:
		return fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	return nil
}
