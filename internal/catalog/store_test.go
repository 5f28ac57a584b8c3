package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"hashmill/internal/catalog"
	"hashmill/internal/testsupport"
)

func TestRecordRunRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	started := time.Date(2026, time.March, 14, 9, 30, 0, 123456789, time.UTC)
	run := catalog.Run{
		ID:         "0d9f1c2e",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Algorithm:  "sha256",
		Workers:    8,
		FileCount:  3,
		Succeeded:  2,
		Failed:     1,
		TotalBytes: 1 << 20,
	}
	files := []catalog.FileRecord{
		{RunID: run.ID, Index: 0, Path: "/data/a.iso", Digest: "2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824"},
		{RunID: run.ID, Index: 1, Path: "/data/b.iso", Error: "open /data/b.iso: permission denied"},
		{RunID: run.ID, Index: 2, Path: "/data/c.iso", Digest: "D41D8CD98F00B204E9800998ECF8427E"},
	}

	if err := store.RecordRun(ctx, run, files); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	got, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected run, got nil")
	}
	if got.Algorithm != run.Algorithm || got.Workers != run.Workers || got.FileCount != run.FileCount {
		t.Fatalf("run fields mismatch: %+v", got)
	}
	if got.Succeeded != 2 || got.Failed != 1 || got.TotalBytes != 1<<20 {
		t.Fatalf("run counters mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(run.StartedAt) {
		t.Fatalf("started at mismatch: got %v want %v", got.StartedAt, run.StartedAt)
	}
	if got.Duration() != 3*time.Second {
		t.Fatalf("duration mismatch: %v", got.Duration())
	}

	stored, err := store.RunFiles(ctx, run.ID)
	if err != nil {
		t.Fatalf("RunFiles failed: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 file records, got %d", len(stored))
	}
	for i, rec := range stored {
		if rec.Index != i {
			t.Fatalf("record %d out of order: idx %d", i, rec.Index)
		}
	}
	if !stored[0].OK() || stored[1].OK() || !stored[2].OK() {
		t.Fatalf("OK flags mismatch: %+v", stored)
	}
	if stored[1].Error != "open /data/b.iso: permission denied" {
		t.Fatalf("error text mismatch: %q", stored[1].Error)
	}
}

func TestGetRunMissingReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	got, err := store.GetRun(context.Background(), "no-such-run")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing run, got %+v", got)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)
	testsupport.SeedRun(t, store, "run-old", base)
	testsupport.SeedRun(t, store, "run-mid", base.Add(time.Hour))
	testsupport.SeedRun(t, store, "run-new", base.Add(2*time.Hour))

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	wantOrder := []string{"run-new", "run-mid", "run-old"}
	for i, want := range wantOrder {
		if runs[i].ID != want {
			t.Fatalf("run %d: got %s want %s", i, runs[i].ID, want)
		}
	}

	limited, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns with limit failed: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "run-new" || limited[1].ID != "run-mid" {
		t.Fatalf("limited list mismatch: %+v", limited)
	}
}

func TestFindRunByPrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)
	testsupport.SeedRun(t, store, "aaa111", base)
	testsupport.SeedRun(t, store, "aab222", base.Add(time.Minute))

	found, err := store.FindRunByPrefix(ctx, "aaa")
	if err != nil {
		t.Fatalf("FindRunByPrefix failed: %v", err)
	}
	if found == nil || found.ID != "aaa111" {
		t.Fatalf("expected aaa111, got %+v", found)
	}

	if _, err := store.FindRunByPrefix(ctx, "aa"); err == nil {
		t.Fatal("expected ambiguity error for shared prefix")
	}

	missing, err := store.FindRunByPrefix(ctx, "zzz")
	if err != nil {
		t.Fatalf("FindRunByPrefix for missing prefix failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unmatched prefix, got %+v", missing)
	}
}

func TestPruneKeepsMostRecent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	ids := []string{"first", "second", "third", "fourth"}
	for i, id := range ids {
		testsupport.SeedRun(t, store, id, base.Add(time.Duration(i)*time.Hour))
	}

	removed, err := store.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 pruned runs, got %d", removed)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "fourth" || runs[1].ID != "third" {
		t.Fatalf("unexpected survivors: %+v", runs)
	}

	// Cascade should have removed the pruned runs' file records too.
	files, err := store.RunFiles(ctx, "first")
	if err != nil {
		t.Fatalf("RunFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no file records for pruned run, got %d", len(files))
	}
}

func TestClearRemovesEverything(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, time.May, 5, 5, 0, 0, 0, time.UTC)
	testsupport.SeedRun(t, store, "one", base)
	testsupport.SeedRun(t, store, "two", base.Add(time.Minute))

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 cleared runs, got %d", removed)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty catalog, got %d runs", len(runs))
	}
}

func TestOpenSecondWriterFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.MustOpenCatalog(t, cfg)

	second, err := catalog.Open(cfg)
	if second != nil {
		second.Close()
	}
	if !errors.Is(err, catalog.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("raw open failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("raw close failed: %v", err)
	}

	reopened, err := catalog.Open(cfg)
	if reopened != nil {
		reopened.Close()
	}
	if !errors.Is(err, catalog.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
