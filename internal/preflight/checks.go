package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"hashmill/internal/catalog"
	"hashmill/internal/config"
	"hashmill/internal/digest"
	"hashmill/internal/runner"
)

// CheckAlgorithm verifies the configured hash algorithm is registered.
func CheckAlgorithm(name string) Result {
	const checkName = "Hash algorithm"

	if _, err := digest.New(name, 0); err != nil {
		return Result{Name: checkName, Detail: err.Error()}
	}
	return Result{Name: checkName, Passed: true, Detail: fmt.Sprintf("%s available", name)}
}

// CheckWorkers reports the effective worker count for the configured request.
// The pool never runs below its floor, so this check always passes; the
// detail surfaces when a low request was raised.
func CheckWorkers(requested int) Result {
	const checkName = "Worker pool"

	effective := runner.EffectiveWorkers(requested)
	detail := fmt.Sprintf("%d workers", effective)
	if effective != requested {
		detail = fmt.Sprintf("%d requested, raised to %d", requested, effective)
	}
	return Result{Name: checkName, Passed: true, Detail: detail}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCatalog verifies the catalog database can be opened with a compatible
// schema. The writer lock is released immediately afterwards.
func CheckCatalog(cfg *config.Config) Result {
	const checkName = "Catalog database"

	store, err := catalog.Open(cfg)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrLocked):
			return Result{Name: checkName, Detail: "locked by another process"}
		case errors.Is(err, catalog.ErrSchemaMismatch):
			return Result{Name: checkName, Detail: err.Error()}
		default:
			return Result{Name: checkName, Detail: fmt.Sprintf("open failed: %v", err)}
		}
	}
	path := store.Path()
	if err := store.Close(); err != nil {
		return Result{Name: checkName, Detail: fmt.Sprintf("close failed: %v", err)}
	}
	return Result{Name: checkName, Passed: true, Detail: fmt.Sprintf("%s (schema ok)", path)}
}
