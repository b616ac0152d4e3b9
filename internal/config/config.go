// Package config holds the settings of the cfmeta command and the rules
// used to recognise coordinate variables in a file.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "CFMETA_"

// Settings are read from CFMETA_* environment variables; command-line flags
// override them.
type Settings struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Output    string `env:"OUTPUT" envDefault:"text"`
	RulesFile string `env:"RULES"`
}

// LoadSettings parses the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: envPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, s.Validate()
}

// Validate checks the enumerated settings.
func (s Settings) Validate() error {
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", s.LogFormat)
	}
	switch s.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format %q", s.Output)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return fmt.Errorf("unsupported log level %q", s.LogLevel)
	}
	return nil
}

// Logger builds the logger described by s, writing to w.
func (s Settings) Logger(w io.Writer) (*slog.Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
