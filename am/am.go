// Package am loads rnokpp configuration from defaults, TOML files and
// RNOKPP_* environment variables.
package am

// Config represents the rnokpp configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log"`
}

// GenerateConfig configures identifier generation
type GenerateConfig struct {
	MinAge int    `mapstructure:"min_age" toml:"min_age" json:"min_age"` // Youngest random date of birth, in 365-day years (default: 14)
	MaxAge int    `mapstructure:"max_age" toml:"max_age" json:"max_age"` // Oldest random date of birth, in 365-day years (default: 95)
	Seed   uint64 `mapstructure:"seed" toml:"seed" json:"seed"`          // PRNG seed; 0 = seed from runtime entropy
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format"` // text or json
}

// LogConfig configures the logger
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json"` // Emit structured JSON logs
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MaxAgeLimit bounds generate.max_age.
const MaxAgeLimit = 120

// File names and locations
const (
	EnvPrefix         = "RNOKPP"
	ProjectConfigName = "rnokpp.toml" // Searched upward from the working directory
	UserConfigDir     = ".rnokpp"     // Under the home directory
	UserConfigName    = "am.toml"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
