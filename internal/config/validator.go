package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is returned when an environment value is not accepted
var ErrInvalidConfig = errors.New("invalid configuration")

// Accepted values
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	ValidLogFormats = []string{"text", "json"}
)

// Validate checks that every setting holds an accepted value
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("%s=%q (want one of %s)", EnvLogLevel, c.LogLevel, strings.Join(ValidLogLevels, ", ")))
	}
	if !slices.Contains(ValidLogFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("%s=%q (want one of %s)", EnvLogFormat, c.LogFormat, strings.Join(ValidLogFormats, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal notes about the configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if !c.IsDevelopment() && c.LogLevel == "debug" {
		warnings = append(warnings, fmt.Sprintf("%s is debug outside development (%s=%s)", EnvLogLevel, EnvEnvironment, c.Environment))
	}

	return warnings
}
