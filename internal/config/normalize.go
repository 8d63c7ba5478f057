package config

import (
	"fmt"
	"strings"
)

// normalize expands every path field and canonicalizes string enums so the
// rest of the program never re-trims or re-cases configuration values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.BackupsDir, err = expandPath(c.Paths.BackupsDir); err != nil {
		return fmt.Errorf("backups_dir: %w", err)
	}
	if c.Paths.ExportsDir, err = expandPath(c.Paths.ExportsDir); err != nil {
		return fmt.Errorf("exports_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}

	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
	c.Input.Separator = strings.TrimSpace(c.Input.Separator)
	if c.Input.Separator == "" {
		c.Input.Separator = defaultSeparator
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}
