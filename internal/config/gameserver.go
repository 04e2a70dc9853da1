package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that yaml can decode. yaml.v3 has no
// native duration support; values are "50ms" style strings or bare
// integer nanoseconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// AutosaveConfig controls periodic entity persistence.
type AutosaveConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Interval Duration `yaml:"interval"`
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	// Simulation
	TickRate  Duration `yaml:"tick_rate"` // step interval (default: 50ms)
	Workers   int      `yaml:"workers"`   // parallel entity ticks per step
	Dimension string   `yaml:"dimension"` // overworld, nether or end

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Persistence
	Autosave AutosaveConfig `yaml:"autosave"`
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		TickRate:  Duration(50 * time.Millisecond),
		Workers:   8,
		Dimension: "overworld",
		LogLevel:  "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "mc2go",
			Password: "mc2go",
			DBName:   "mc2go",
			SSLMode:  "disable",
		},
		Autosave: AutosaveConfig{
			Enabled:  true,
			Interval: Duration(5 * time.Minute),
		},
	}
}

// LoadGameServer loads game server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
