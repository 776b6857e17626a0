package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/rnokpp/errors"
)

var (
	mu             sync.Mutex
	globalConfig   *Config
	viperInstance  *viper.Viper
	explicitConfig string

	// ConfigSources records, per dotted key, the source that last set it
	// during the most recent load. Keys absent here come from defaults.
	ConfigSources = map[string]SourceInfo{}
)

// SetConfigFile selects an explicit config file (the --config flag). It is
// merged above user and project files and below environment variables.
// A missing explicit file is a load error.
func SetConfigFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	explicitConfig = path
	globalConfig = nil
	viperInstance = nil
}

// Load reads the rnokpp configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() (*viper.Viper, error) {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path over the
// defaults, ignoring other files and the environment.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration and explicit file (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	explicitConfig = ""
	ConfigSources = map[string]SourceInfo{}
}

// ConfigFiles returns the files that contributed to the current
// configuration, lowest precedence first.
func ConfigFiles() []string {
	mu.Lock()
	defer mu.Unlock()
	var files []string
	for _, c := range candidateFiles() {
		if _, err := os.Stat(c.Path); err == nil {
			files = append(files, c.Path)
		}
	}
	return files
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	ConfigSources = map[string]SourceInfo{}
	if err := mergeConfigFiles(v); err != nil {
		return nil, err
	}

	viperInstance = v
	return v, nil
}

// findProjectConfig searches for rnokpp.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}

// userConfigPath returns ~/.rnokpp/am.toml, or "" when there is no home.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigName)
}

// candidateFiles lists config locations in precedence order (lowest first).
func candidateFiles() []SourceInfo {
	var files []SourceInfo
	if p := userConfigPath(); p != "" {
		files = append(files, SourceInfo{Source: SourceUser, Path: p})
	}
	if p := findProjectConfig(); p != "" {
		files = append(files, SourceInfo{Source: SourceProject, Path: p})
	}
	if explicitConfig != "" {
		files = append(files, SourceInfo{Source: SourceExplicit, Path: explicitConfig})
	}
	return files
}

// mergeConfigFiles merges configuration files in precedence order
// (lowest to highest): user < project < explicit. Environment variables
// stay above all of them because files land in Viper's config layer.
func mergeConfigFiles(v *viper.Viper) error {
	for _, candidate := range candidateFiles() {
		if _, err := os.Stat(candidate.Path); err != nil {
			if candidate.Source == SourceExplicit {
				return errors.WithHint(
					errors.Wrapf(err, "config file %s", candidate.Path),
					"check the --config path")
			}
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(candidate.Path)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			return errors.WithHint(
				errors.Wrapf(err, "failed to read config file %s", candidate.Path),
				"run 'rnokpp am validate' to locate the problem")
		}

		settings := tempViper.AllSettings()
		if err := v.MergeConfigMap(settings); err != nil {
			return errors.Wrapf(err, "failed to merge config file %s", candidate.Path)
		}
		for _, key := range flattenKeys(settings, "") {
			ConfigSources[key] = candidate
		}
	}
	return nil
}

// flattenKeys returns dotted leaf keys of a nested settings map.
func flattenKeys(settings map[string]interface{}, prefix string) []string {
	var keys []string
	for k, value := range settings {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nested, full)...)
			continue
		}
		keys = append(keys, full)
	}
	return keys
}

// Get returns a configuration value using dot notation
func Get(key string) (interface{}, error) {
	v, err := GetViper()
	if err != nil {
		return nil, err
	}
	if !v.IsSet(key) {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("unknown config key %q", key),
			"run 'rnokpp am show' to list keys")
	}
	return v.Get(key), nil
}
