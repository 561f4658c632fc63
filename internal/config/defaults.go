package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults applied when neither the file nor the environment sets a key.
const (
	DefaultCellWidthPx = 8
	DefaultDateLayout  = "2006-01-02"
)

// DefaultLogFile is the log path used when log_file is unset.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "posdash.log")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cell_width_px", DefaultCellWidthPx)
	v.SetDefault("date_layout", DefaultDateLayout)
	v.SetDefault("log_file", DefaultLogFile())
	v.SetDefault("debug", false)
	v.SetDefault("mouse", true)
	v.SetDefault("watch_config", true)
}
