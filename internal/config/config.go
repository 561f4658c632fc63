package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// CellWidthPx is the assumed pixel width of one terminal column. It
	// converts the terminal width for the 768px mobile breakpoint.
	CellWidthPx int `mapstructure:"cell_width_px"`
	// DateLayout is the Go time layout used for the date-range filter.
	DateLayout string `mapstructure:"date_layout"`
	// LogFile receives structured logs (the TUI owns stdout).
	LogFile string `mapstructure:"log_file"`
	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug"`
	// Mouse enables mouse click and wheel handling.
	Mouse bool `mapstructure:"mouse"`
	// WatchConfig hot-reloads this file while the dashboard runs.
	WatchConfig bool `mapstructure:"watch_config"`

	// File is the config file that was read, empty if defaults were used.
	File string `mapstructure:"-"`
}

// Load reads configuration from path if non-empty, otherwise from
// ~/.config/posdash/config.yaml or ./config.yaml. A missing file is fine.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Directory())
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("POSDASH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.CellWidthPx <= 0 {
		cfg.CellWidthPx = DefaultCellWidthPx
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = DefaultDateLayout
	}
	return cfg, nil
}

// Directory returns the per-user config directory.
func Directory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "posdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "posdash")
}
