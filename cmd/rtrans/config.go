package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the rtrans configuration file.
//
// Example:
//
//	store:
//	  path: ./examples.db
//	log:
//	  level: debug
//	  file: rtrans.log
//	generate:
//	  max_states: 2
//	  limit: 10000
//	  bits: 5
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
}

// StoreConfig locates the example database.
type StoreConfig struct {
	Path     string `yaml:"path" validate:"required_unless=InMemory true"`
	InMemory bool   `yaml:"in_memory"`
}

// LogConfig selects the log level and an optional JSON log file.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// GenerateConfig bounds enumeration.
type GenerateConfig struct {
	MaxStates int `yaml:"max_states" validate:"min=1,max=4"`
	Limit     int `yaml:"limit" validate:"min=0"`
	Bits      int `yaml:"bits" validate:"min=0,max=16"`
	Workers   int `yaml:"workers" validate:"min=1"`
}

var configValidate = validator.New()

// defaultConfig stores examples under ./examples.db and enumerates up to two
// states with a cap of 10000 machines.
func defaultConfig() Config {
	return Config{
		Store: StoreConfig{Path: "examples.db"},
		Log:   LogConfig{Level: "info"},
		Generate: GenerateConfig{
			MaxStates: 2,
			Limit:     10000,
			Bits:      5,
			Workers:   runtime.GOMAXPROCS(0),
		},
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks cfg against its struct tags.
func (c Config) validate() error {
	return checkTags(c)
}

// validate checks an enumeration setup after flags have been merged in.
func (c GenerateConfig) validate() error {
	return checkTags(c)
}

func checkTags(v any) error {
	if err := configValidate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// slogLevel maps the validated level name.
func (c LogConfig) slogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
