package testsupport

import (
	"path/filepath"
	"testing"

	"hashmill/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The catalog is enabled so store-backed tests work without extra setup.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Enabled = true
	cfg.Catalog.Directory = filepath.Join(base, "catalog")
	cfg.Logging.Directory = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAlgorithm overrides the hash algorithm on the test config.
func WithAlgorithm(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Hash.Algorithm = name
	}
}

// WithThreads overrides the requested worker count on the test config.
func WithThreads(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Hash.Threads = n
	}
}

// WithCatalogDisabled turns off run recording on the test config.
func WithCatalogDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Catalog.Directory)
}
