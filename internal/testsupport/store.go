package testsupport

import (
	"context"
	"testing"
	"time"

	"hashmill/internal/catalog"
	"hashmill/internal/config"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedRun records a synthetic completed run with the given identifier and
// start time, returning the stored run for assertions.
func SeedRun(t testing.TB, store *catalog.Store, id string, started time.Time) catalog.Run {
	t.Helper()

	run := catalog.Run{
		ID:         id,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Algorithm:  "md5",
		Workers:    8,
		FileCount:  2,
		Succeeded:  1,
		Failed:     1,
		TotalBytes: 4096,
	}
	files := []catalog.FileRecord{
		{RunID: id, Index: 0, Path: "/data/alpha.bin", Digest: "D41D8CD98F00B204E9800998ECF8427E"},
		{RunID: id, Index: 1, Path: "/data/beta.bin", Error: "open /data/beta.bin: permission denied"},
	}
	if err := store.RecordRun(context.Background(), run, files); err != nil {
		t.Fatalf("store.RecordRun: %v", err)
	}
	return run
}
