package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds labelpicker configuration.
type Config struct {
	Table  TableConfig  `mapstructure:"table"`
	Picker PickerConfig `mapstructure:"picker"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// TableConfig says where the color table comes from.
type TableConfig struct {
	Source  string        `mapstructure:"source"` // file path, or http(s) URL
	Timeout time.Duration `mapstructure:"timeout"`
}

// PickerConfig holds the widget flags.
type PickerConfig struct {
	Title        string `mapstructure:"title"`
	Frontend     string `mapstructure:"frontend"` // "sdl" or "tui"
	NoneEnabled  bool   `mapstructure:"none_enabled"`
	NamesVisible bool   `mapstructure:"names_visible"`
	MaxColors    int    `mapstructure:"max_colors"`
	Initial      int    `mapstructure:"initial"` // logical index selected on start, -1 for none
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FontPath     string `mapstructure:"font_path"`
	AccentColor  string `mapstructure:"accent_color"`
	Language     string `mapstructure:"language"`
	HardwareKeys string `mapstructure:"hardware_keys"`
	Background   bool   `mapstructure:"background"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

const (
	frontendSDL = "sdl"
	frontendTUI = "tui"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"table":      "table.source",
	"frontend":   "picker.frontend",
	"title":      "picker.title",
	"none":       "picker.none_enabled",
	"names":      "picker.names_visible",
	"max-colors": "picker.max_colors",
	"initial":    "picker.initial",
	"language":   "ui.language",
	"log-level":  "log.level",
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("labelpicker", pflag.ContinueOnError)
	flags.String("config", "", "config file (default $HOME/.config/labelpicker/config.toml)")
	flags.String("table", "", "color table file (.ctbl, .txt, .toml) or http(s) URL")
	flags.String("frontend", frontendTUI, "picker front-end: sdl or tui")
	flags.String("title", "", "picker title")
	flags.Bool("none", false, "offer a \"None\" row")
	flags.Bool("names", true, "show color names next to swatches")
	flags.Int("max-colors", 0, "list at most this many colors (0 for all)")
	flags.Int("initial", -1, "logical index selected on start")
	flags.String("language", "", "language for fixed labels, e.g. de")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	return flags
}

// Load reads configuration from defaults, file, env and flags, later ones
// winning. Env var overrides use prefix LABELPICKER_.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("table.source", "")
	v.SetDefault("table.timeout", "10s")
	v.SetDefault("picker.title", "Labels")
	v.SetDefault("picker.frontend", frontendTUI)
	v.SetDefault("picker.none_enabled", false)
	v.SetDefault("picker.names_visible", true)
	v.SetDefault("picker.max_colors", 0)
	v.SetDefault("picker.initial", -1)
	v.SetDefault("ui.font_path", "")
	v.SetDefault("ui.accent_color", "")
	v.SetDefault("ui.language", "")
	v.SetDefault("ui.hardware_keys", "")
	v.SetDefault("ui.background", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LABELPICKER_CONFIG")
	if flags != nil {
		if p, _ := flags.GetString("config"); p != "" {
			cfgPath = p
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "labelpicker"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LABELPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	c.Picker.Frontend = strings.ToLower(strings.TrimSpace(c.Picker.Frontend))
	switch c.Picker.Frontend {
	case frontendSDL, frontendTUI:
	default:
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Picker.Frontend, frontendSDL, frontendTUI)
	}
	if c.Picker.MaxColors < 0 {
		return fmt.Errorf("max_colors must not be negative, got %d", c.Picker.MaxColors)
	}
	if c.Picker.Initial < -1 {
		return fmt.Errorf("initial must be -1 or a color index, got %d", c.Picker.Initial)
	}
	if _, err := c.UI.Accent(); err != nil {
		return err
	}
	return nil
}

// Accent parses accent_color ("#rrggbb"). Empty gives 0, the theme default.
func (u UIConfig) Accent() (uint32, error) {
	s := strings.TrimPrefix(strings.TrimSpace(u.AccentColor), "#")
	if s == "" {
		return 0, nil
	}
	if len(s) != 6 {
		return 0, fmt.Errorf("accent_color %q: want #rrggbb", u.AccentColor)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("accent_color %q: %w", u.AccentColor, err)
	}
	return uint32(n), nil
}
