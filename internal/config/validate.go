package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"
)

const (
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// Snowflake IDs are decimal strings of 17 to 20 digits
	minSnowflakeLength = 17
	maxSnowflakeLength = 20
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks every configuration field and returns all failures at once.
//
//   - Token: at least 50 characters
//   - GuildID: required unless commands are deployed globally
//   - ApplicationID, GuildID: snowflakes when set
//   - MetricsAddr: host:port, empty disables the metrics server
//   - LogLevel, LogFormat: one of the supported values
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateIDs(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateMetricsAddr(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogging(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validateIDs() error {
	var errs []error

	if c.GuildID == "" && !c.DeployGlobally {
		errs = append(errs, fmt.Errorf("DISCORD_GUILD_ID is required unless DEPLOY_GLOBALLY is set"))
	}

	if err := validateSnowflake("DISCORD_GUILD_ID", c.GuildID); err != nil {
		errs = append(errs, err)
	}

	if err := validateSnowflake("DISCORD_APPLICATION_ID", c.ApplicationID); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// validateSnowflake accepts an empty value.
func validateSnowflake(fieldName, id string) error {
	if id == "" {
		return nil
	}

	if len(id) < minSnowflakeLength || len(id) > maxSnowflakeLength {
		return fmt.Errorf(
			"%s must be %d to %d digits, got %d",
			fieldName, minSnowflakeLength, maxSnowflakeLength, len(id),
		)
	}

	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return fmt.Errorf("%s must be numeric, got %q", fieldName, id)
	}

	return nil
}

func (c *Config) validateMetricsAddr() error {
	if c.MetricsAddr == "" {
		return nil
	}

	_, port, err := net.SplitHostPort(c.MetricsAddr)
	if err != nil {
		return fmt.Errorf("METRICS_ADDR must be host:port, got %q", c.MetricsAddr)
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("METRICS_ADDR port must be between 1 and 65535, got %q", port)
	}

	return nil
}

func (c *Config) validateLogging() error {
	var errs []error

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of %v, got %q", validLogLevels, c.LogLevel))
	}

	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of %v, got %q", validLogFormats, c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
