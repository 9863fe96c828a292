// Package config provides YAML-based configuration loading for the
// snooker scoreboard.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the scoreboard and its SSH server.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// PlayersConfig holds the default player names shown on the scoreboard.
type PlayersConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
}

// StorageConfig configures the saved-frames database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Auto-generated under ~/.snooker when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Names returns the configured player names indexed like snooker.Player.
func (c Config) Names() [2]string {
	return [2]string{c.Players.Player1, c.Players.Player2}
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// LogLevel parses the configured log level.
func (c LogConfig) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(c.Level))
}

// fillDefaults replaces zero fields with values from Default.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Players.Player1 == "" {
		c.Players.Player1 = d.Players.Player1
	}
	if c.Players.Player2 == "" {
		c.Players.Player2 = d.Players.Player2
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = d.Storage.DBPath
	}
	if c.Server.Address == "" {
		c.Server.Address = d.Server.Address
	}
	if c.Server.IdleTimeoutMinutes == 0 {
		c.Server.IdleTimeoutMinutes = d.Server.IdleTimeoutMinutes
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Players.Player1) == "" || strings.TrimSpace(c.Players.Player2) == "" {
		errs = append(errs, errors.New("player names must not be blank"))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}
	if _, err := c.Log.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.Log.Level, err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
