package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateHash(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateHash() error {
	if c.Hash.Algorithm == "" {
		return errors.New("hash.algorithm must be set")
	}
	if c.Hash.Threads < 1 {
		return errors.New("hash.threads must be positive")
	}
	if c.Hash.ChunkKiB < 1 {
		return errors.New("hash.chunk_kib must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Enabled && c.Catalog.Directory == "" {
		return errors.New("catalog.directory must be set when catalog.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
