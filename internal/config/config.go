// Package config defines the matchserver process's typed configuration
// surface: listen address, per-turn/idle timer durations, catalog path,
// and logging knobs. The values themselves are plain data; cmd/matchserver
// is where they get bound to cobra flags and viper (flags + env), via a
// cobra root command with viper-bound local flags (only --config is a
// persistent flag) rather than bare flag.Parse().
package config

import "time"

// Config is the full set of values the matchserver binary needs at
// start-up.
type Config struct {
	ListenAddr   string
	TurnDuration time.Duration
	IdleDuration time.Duration
	CatalogPath  string
	LogLevel     string
	LogFormat    string
}

// Default returns the configuration a locally-run server uses absent any
// flag, env var, or config file override.
func Default() Config {
	return Config{
		ListenAddr:   ":8080",
		TurnDuration: 90 * time.Second,
		IdleDuration: 5 * time.Minute,
		CatalogPath:  "",
		LogLevel:     "info",
		LogFormat:    "console",
	}
}
