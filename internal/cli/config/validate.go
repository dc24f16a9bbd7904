package config

import (
	"fmt"
	"slices"
)

var (
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"table", "json", "yaml"}
)

// Validate checks enumerated options.
func (c *Config) Validate() error {
	if c.BinDir == "" {
		return fmt.Errorf("bin_dir is required")
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q (want one of %v)", c.LogFormat, logFormats)
	}
	if !slices.Contains(outputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output %q (want one of %v)", c.OutputFormat, outputFormats)
	}
	return nil
}
