// ABOUTME: fitlog configuration loaded through viper from file and environment.
// ABOUTME: Resolves the data directory and opens the SQLite store.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/viper"
)

const (
	cfgKeyDataDir  = "data_dir"
	cfgKeyLogLevel = "log_level"
	cfgKeyLogFile  = "log_file"
	cfgKeyLogJSON  = "log_json"

	envPrefix       = "FITLOG"
	defaultLogLevel = "warn"
)

// Config stores fitlog configuration.
type Config struct {
	// DataDir is the directory holding fitlog.db. Supports ~ expansion.
	// Defaults to $XDG_DATA_HOME/fitlog.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	LogLevel string `json:"log_level,omitempty" mapstructure:"log_level"`
	// LogFile enables rotated file logging when set.
	LogFile string `json:"log_file,omitempty" mapstructure:"log_file"`
	LogJSON bool   `json:"log_json,omitempty" mapstructure:"log_json"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogFile returns the log file path with ~ expanded, or "" when disabled.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the SQLite store under the data directory.
func (c *Config) OpenStore(opts ...storage.Option) (*storage.DB, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "fitlog.db"), opts...)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads the config file, then applies FITLOG_* environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigFile(GetConfigPath())
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, key := range []string{cfgKeyDataDir, cfgKeyLogLevel, cfgKeyLogFile, cfgKeyLogJSON} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
