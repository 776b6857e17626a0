package am

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
)

// backupCount is how many rotating backups (.back1 ... .back3) are kept.
const backupCount = 3

// createBackup creates rotating backups (.back1, .back2, .back3) before
// overwriting a config file
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	oldest := backupPath(configPath, backupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old backup", logger.FieldConfigFile, oldest, logger.FieldError, err)
	}

	// .back2 -> .back3, .back1 -> .back2
	for i := backupCount - 1; i >= 1; i-- {
		from := backupPath(configPath, i)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, backupPath(configPath, i+1)); err != nil {
				return errors.Wrapf(err, "failed to rotate %s", filepath.Base(from))
			}
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(backupPath(configPath, 1), content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

func backupPath(configPath string, n int) string {
	return configPath + ".back" + string(rune('0'+n))
}

// WriteConfig marshals cfg as TOML to path, backing up any existing file.
// The running watcher, if any, is told to ignore the write.
func WriteConfig(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	globalWatcherMu.Lock()
	if globalWatcher != nil {
		globalWatcher.MarkOwnWrite()
	}
	globalWatcherMu.Unlock()

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Infow("Wrote config", logger.FieldConfigFile, path)
	return nil
}

// InitProjectConfig writes the built-in defaults to rnokpp.toml in dir.
// An existing file is left alone unless force is set.
func InitProjectConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, ProjectConfigName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, errors.WithHint(
			errors.NewInvalidRequestError("%s already exists", path),
			"use --force to overwrite it (a backup is kept)")
	}
	return path, WriteConfig(path, Defaults())
}
