package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.min_age", 14)
	v.SetDefault("generate.max_age", 95)
	v.SetDefault("generate.seed", 0)

	v.SetDefault("output.format", FormatText)

	v.SetDefault("log.json", false)
}

// Defaults returns a Config holding only the built-in defaults.
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode into Config
		panic(err)
	}
	return cfg
}

// JSONOutput reports whether output.format selects JSON.
func (c *Config) JSONOutput() bool {
	return c.Output.Format == FormatJSON
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generate: {MinAge: %d, MaxAge: %d, Seed: %d}, Output: {Format: %s}, Log: {JSON: %t}}",
		c.Generate.MinAge, c.Generate.MaxAge, c.Generate.Seed, c.Output.Format, c.Log.JSON)
}
