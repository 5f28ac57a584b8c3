package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"hashmill/internal/catalog"
	"hashmill/internal/config"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce     sync.Once
	config         *config.Config
	configPath     string
	configFromFile bool
	configErr      error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		if level := c.logLevel(); level != "" {
			cfg.Logging.Level = level
		}
		c.config = cfg
		c.configPath = resolved
		c.configFromFile = exists
	})
	return c.config, c.configErr
}

// configSource reports where the active configuration came from and whether a
// file actually existed there.
func (c *commandContext) configSource() (string, bool) {
	_, _ = c.ensureConfig()
	return c.configPath, c.configFromFile
}

func (c *commandContext) logLevel() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.logLevelFlag)
}

// withCatalog opens the catalog store for the duration of fn.
func (c *commandContext) withCatalog(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
