package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeHash()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeHash() {
	c.Hash.Algorithm = strings.ToLower(strings.TrimSpace(c.Hash.Algorithm))
	if c.Hash.Algorithm == "" {
		c.Hash.Algorithm = defaultAlgorithm
	}
	if c.Hash.Threads == 0 {
		c.Hash.Threads = defaultThreads
	}
	if c.Hash.ChunkKiB == 0 {
		c.Hash.ChunkKiB = defaultChunkKiB
	}
}

func (c *Config) normalizeCatalog() error {
	var err error
	if strings.TrimSpace(c.Catalog.Directory) == "" {
		c.Catalog.Directory = defaultCatalogDir()
	}
	if c.Catalog.Directory, err = expandPath(c.Catalog.Directory); err != nil {
		return fmt.Errorf("catalog.directory: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Directory) != "" {
		expanded, err := expandPath(c.Logging.Directory)
		if err != nil {
			return fmt.Errorf("logging.directory: %w", err)
		}
		c.Logging.Directory = expanded
	} else {
		c.Logging.Directory = ""
	}
	return nil
}
