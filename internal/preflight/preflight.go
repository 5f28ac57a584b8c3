package preflight

import (
	"hashmill/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckAlgorithm(cfg.Hash.Algorithm),
		CheckWorkers(cfg.Hash.Threads),
	}

	if cfg.Catalog.Enabled {
		results = append(results, CheckDirectoryAccess("Catalog directory", cfg.Catalog.Directory))
		results = append(results, CheckCatalog(cfg))
	}

	if cfg.Logging.Directory != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.Directory))
	}

	return results
}

// Healthy reports whether every check in results passed.
func Healthy(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
