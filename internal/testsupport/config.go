// Package testsupport provides builders shared by the package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/ybdn/DoublonsIDPP/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.BackupsDir = filepath.Join(base, "backups")
	cfg.Paths.ExportsDir = filepath.Join(base, "exports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithEncoding overrides the input encoding on the test config.
func WithEncoding(encoding string) ConfigOption {
	return func(c *config.Config) {
		c.Input.Encoding = encoding
	}
}
