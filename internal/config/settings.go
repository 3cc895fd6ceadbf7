package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Settings tune the program around the game. The rules themselves are fixed.
type Settings struct {
	Log     LogSettings     `mapstructure:"log"`
	Results ResultsSettings `mapstructure:"results"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ResultsSettings struct {
	QR bool `mapstructure:"qr"`
}

// LoadSettings reads an optional YAML settings file; SAKURA_* environment
// variables override it (SAKURA_LOG_LEVEL, SAKURA_RESULTS_QR, ...).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("results.qr", false)

	v.SetEnvPrefix("SAKURA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

// NewLogger builds the program logger. Unknown levels fall back to warn.
func (l LogSettings) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
