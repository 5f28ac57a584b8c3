package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultAlgorithm = "md5"
	defaultThreads   = 8
	defaultChunkKiB  = 1024
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

func defaultCatalogDir() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "hashmill")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/hashmill"
	}
	return filepath.Join(home, ".local", "share", "hashmill")
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Hash: Hash{
			Algorithm: defaultAlgorithm,
			Threads:   defaultThreads,
			ChunkKiB:  defaultChunkKiB,
		},
		Catalog: Catalog{
			Directory: defaultCatalogDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
