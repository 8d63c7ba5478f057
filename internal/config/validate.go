package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.BackupsDir == "" {
		return errors.New("paths.backups_dir must be set")
	}
	if c.Paths.ExportsDir == "" {
		return errors.New("paths.exports_dir must be set")
	}
	return nil
}

func (c *Config) validateInput() error {
	switch c.Input.Encoding {
	case "utf-8", "utf8", "latin-1", "latin1", "iso-8859-1", "windows-1252", "cp1252":
	default:
		return fmt.Errorf("input.encoding: unsupported value %q", c.Input.Encoding)
	}
	if utf8.RuneCountInString(c.Input.Separator) != 1 {
		return fmt.Errorf("input.separator must be a single character, got %q", c.Input.Separator)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
