package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/sigil/errors"
	"github.com/teranos/sigil/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file.
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // no file to back up
	}

	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete oldest backup",
			logger.FieldFile, back3,
			logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// userConfigPath returns the path of the user-scope config file.
func userConfigPath() (string, error) {
	dir := UserConfigDir()
	if dir == "" {
		return "", errors.New("could not determine home directory")
	}
	return filepath.Join(dir, "sigil.toml"), nil
}

// loadOrInitializeUserConfig loads the user config file, or starts an
// empty document if it does not exist yet.
func loadOrInitializeUserConfig() (map[string]interface{}, string, error) {
	configPath, err := userConfigPath()
	if err != nil {
		return nil, "", err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return nil, "", errors.Wrap(err, "failed to create config directory")
	}

	var config map[string]interface{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, "", errors.Wrap(err, "failed to parse user config")
		}
	} else {
		config = make(map[string]interface{})
	}

	return config, configPath, nil
}

// saveUserConfig writes the config to the user config file with backup.
func saveUserConfig(config map[string]interface{}, configPath string) error {
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write user config")
	}

	return nil
}

// Set writes a dotted key (e.g. "convert.workers") into the user-scope
// config file, creating intermediate sections as needed. The cached
// config is reset so the next Load sees the change.
func Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 || key == "" {
		return errors.NewInvalidRequestError("empty config key")
	}

	config, configPath, err := loadOrInitializeUserConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load user config")
	}

	section := config
	for _, part := range parts[:len(parts)-1] {
		child, ok := section[part].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			section[part] = child
		}
		section = child
	}
	section[parts[len(parts)-1]] = value

	if err := saveUserConfig(config, configPath); err != nil {
		return err
	}

	Reset()
	return nil
}
