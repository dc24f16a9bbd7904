// Package config provides configuration management for the Lazo suite
// binaries. All three processes read the same lazo.yaml.
package config

// Config holds the options shared by the launcher and the satellites.
type Config struct {
	// BinDir is where the launcher looks for lazo-node and lazo-model.
	BinDir string `koanf:"bin_dir"`
	// DefaultVersion is written into new project descriptors.
	DefaultVersion string `koanf:"default_version"`
	Verbose        bool   `koanf:"verbose"`
	LogFormat      string `koanf:"log_format"`
	OutputFormat   string `koanf:"output"`

	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultBinDir         = "bin"
	DefaultVersion        = "0.1.0"
	DefaultLogFormat      = "text"
	DefaultOutput         = "table"
	EnvPrefix             = "LAZO_"
	DefaultConfigBaseName = "lazo"
)

// Defaults returns a Config with default values.
func Defaults() *Config {
	return &Config{
		BinDir:         DefaultBinDir,
		DefaultVersion: DefaultVersion,
		LogFormat:      DefaultLogFormat,
		OutputFormat:   DefaultOutput,
	}
}
