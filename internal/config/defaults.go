package config

import (
	_ "embed"
)

//go:embed defaults/snooker.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			Player1: "Player 1",
			Player2: "Player 2",
		},
		Storage: StorageConfig{
			DBPath: "~/.snooker/frames.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
