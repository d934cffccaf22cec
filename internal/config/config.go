// Package config resolves runtime settings from defaults, an optional
// config.yaml in the data directory, TERMNOTES_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Setting keys, also the config file keys
const (
	KeyDataDir   = "data_dir"
	KeyExportDir = "export_dir"
	KeyOnCorrupt = "on_corrupt"
	KeyLogLevel  = "log_level"
	KeyCatalog   = "catalog"
)

const (
	DefaultDataDir   = "~/.terminal_notes"
	DefaultExportDir = "~"
	EnvPrefix        = "TERMNOTES"
	// ConfigPathEnv names an extra directory searched for config.yaml
	ConfigPathEnv = "TERMNOTES_CONFIG_PATH"
)

// CorruptPolicy decides what happens when the data file cannot be decoded
type CorruptPolicy string

const (
	// CorruptAbort refuses to start
	CorruptAbort CorruptPolicy = "abort"
	// CorruptEmpty sets the file aside and starts with no data
	CorruptEmpty CorruptPolicy = "empty"
)

// Config holds resolved settings with home directories expanded
type Config struct {
	DataDir   string
	ExportDir string
	OnCorrupt CorruptPolicy
	LogLevel  slog.Level
	Catalog   bool

	// File is the config file that was read, empty if none
	File string
}

// New returns a viper instance with defaults and environment binding.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataDir, DefaultDataDir)
	v.SetDefault(KeyExportDir, DefaultExportDir)
	v.SetDefault(KeyOnCorrupt, string(CorruptAbort))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCatalog, true)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and validates the settings
func Load(v *viper.Viper) (*Config, error) {
	dataDir, err := homedir.Expand(v.GetString(KeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyDataDir, err)
	}

	v.SetConfigName("config") // .yaml is implicit
	v.SetConfigType("yaml")
	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// The file may relocate the data directory
	dataDir, err = homedir.Expand(v.GetString(KeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyDataDir, err)
	}
	exportDir, err := homedir.Expand(v.GetString(KeyExportDir))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", KeyExportDir, err)
	}

	policy := CorruptPolicy(strings.ToLower(v.GetString(KeyOnCorrupt)))
	if policy != CorruptAbort && policy != CorruptEmpty {
		return nil, fmt.Errorf("invalid %s %q: expected %q or %q", KeyOnCorrupt, policy, CorruptAbort, CorruptEmpty)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	return &Config{
		DataDir:   dataDir,
		ExportDir: exportDir,
		OnCorrupt: policy,
		LogLevel:  level,
		Catalog:   v.GetBool(KeyCatalog),
		File:      v.ConfigFileUsed(),
	}, nil
}
