package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"

	FileName = "chorely.yaml"
)

type Config struct {
	DataDir   string
	Store     string
	DBPath    string
	StateDir  string
	TimerPath string
	Location  *time.Location
	LogLevel  slog.Level
	LogFormat string
}

// Settings is the user-tunable part of Config, read from chorely.yaml and then
// overridden by environment variables.
type Settings struct {
	Store     string `yaml:"store" env:"CHORELY_STORE"`
	Timezone  string `yaml:"timezone" env:"CHORELY_TZ"`
	LogLevel  string `yaml:"log_level" env:"CHORELY_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"CHORELY_LOG_FORMAT"`
}

func DefaultSettings() Settings {
	return Settings{Store: StoreSQLite, LogLevel: "warn", LogFormat: "text"}
}

func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	settings := DefaultSettings()
	if err := loadFile(filepath.Join(dataDir, FileName), &settings); err != nil {
		return Config{}, err
	}
	if err := ParseEnv(&settings); err != nil {
		return Config{}, err
	}
	return FromSettings(dataDir, settings)
}

// ParseEnv loads overrides from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func FromSettings(dataDir string, s Settings) (Config, error) {
	store := strings.ToLower(strings.TrimSpace(s.Store))
	switch store {
	case "":
		store = StoreSQLite
	case StoreSQLite, StoreFile:
	default:
		return Config{}, fmt.Errorf("unsupported store %q (want %s or %s)", s.Store, StoreSQLite, StoreFile)
	}

	loc := time.Local
	if tz := strings.TrimSpace(s.Timezone); tz != "" {
		loaded, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("load timezone %q: %w", tz, err)
		}
		loc = loaded
	}

	var level slog.Level
	if raw := strings.TrimSpace(s.LogLevel); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("parse log level: %w", err)
		}
	}

	format := strings.ToLower(strings.TrimSpace(s.LogFormat))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("unsupported log format %q", s.LogFormat)
	}

	return Config{
		DataDir:   dataDir,
		Store:     store,
		DBPath:    filepath.Join(dataDir, ".chorely", "chorely.db"),
		StateDir:  filepath.Join(dataDir, ".chorely", "state"),
		TimerPath: filepath.Join(dataDir, ".chorely", "active-timer.json"),
		Location:  loc,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

func loadFile(path string, target *Settings) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, target); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}
