// Package config loads the mmd command line configuration
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/riverfjs/mmd-go/internal/types"
)

// Config holds the complete CLI configuration
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Open   OpenConfig   `mapstructure:"open"`
	Log    LogConfig    `mapstructure:"log"`
}

// RenderConfig holds HTML rendering settings
type RenderConfig struct {
	Stylesheet string `mapstructure:"stylesheet"`
	Title      string `mapstructure:"title"`
	Highlight  bool   `mapstructure:"highlight"`
	Style      string `mapstructure:"style"`
	Strict     bool   `mapstructure:"strict"`
}

// OpenConfig holds the command used by `html --open`
type OpenConfig struct {
	Command string `mapstructure:"command"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// DefaultConfig returns a new configuration with default values
func DefaultConfig() *Config {
	render := types.DefaultRenderConfig()
	return &Config{
		Render: RenderConfig{
			Stylesheet: render.Stylesheet,
			Title:      render.PageTitle,
			Highlight:  render.Highlight,
			Style:      render.HighlightStyle,
			Strict:     render.Strict,
		},
		Open: OpenConfig{
			Command: defaultOpener(),
		},
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// Load loads configuration from file and environment variables.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mmd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mmd")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Render.Stylesheet == "" {
		return fmt.Errorf("render.stylesheet is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// RenderOptions converts the render section into the renderer configuration.
func (c *Config) RenderOptions() *types.RenderConfig {
	return &types.RenderConfig{
		Stylesheet:     c.Render.Stylesheet,
		PageTitle:      c.Render.Title,
		Highlight:      c.Render.Highlight,
		HighlightStyle: c.Render.Style,
		Strict:         c.Render.Strict,
	}
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("render.stylesheet", defaults.Render.Stylesheet)
	v.SetDefault("render.title", defaults.Render.Title)
	v.SetDefault("render.highlight", defaults.Render.Highlight)
	v.SetDefault("render.style", defaults.Render.Style)
	v.SetDefault("render.strict", defaults.Render.Strict)
	v.SetDefault("open.command", defaults.Open.Command)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.pretty", defaults.Log.Pretty)
}
