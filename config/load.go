package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/sigil/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the sigil configuration using Viper. The result is cached
// for the life of the process; Reset clears it for tests.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration from a provided Viper instance.
// Used by tests to load against an isolated instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path, ignoring
// the merged system/user/project scopes.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("SIGIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// UserConfigDir returns the user-scope config directory
// (~/.config/sigil), or "" if the home directory is unknown.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sigil")
}

// findProjectConfig searches for sigil.toml by walking up the directory
// tree from the working directory. Returns "" if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "sigil.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order
// (lowest to highest): system < user < project. Environment variables
// override all files.
func mergeConfigFiles(v *viper.Viper) {
	configPaths := []string{
		"/etc/sigil/sigil.toml",
	}
	if userDir := UserConfigDir(); userDir != "" {
		os.MkdirAll(userDir, DefaultDirPermissions)
		configPaths = append(configPaths, filepath.Join(userDir, "sigil.toml"))
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		scoped := viper.New()
		scoped.SetConfigFile(configPath)
		scoped.SetConfigType("toml")
		if err := scoped.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range scoped.AllSettings() {
			v.Set(key, value)
		}
	}
}

// Get returns a configuration value using dot notation.
func Get(key string) interface{} {
	return initViper().Get(key)
}

// GetString returns a configuration value as string using dot notation.
func GetString(key string) string {
	return initViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation.
func GetBool(key string) bool {
	return initViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation.
func GetInt(key string) int {
	return initViper().GetInt(key)
}

// GetFloat64 returns a configuration value as float64 using dot notation.
func GetFloat64(key string) float64 {
	return initViper().GetFloat64(key)
}
