package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hashmill/internal/scan"
	"hashmill/internal/testsupport"
)

func TestCLIFingerprintsDirectory(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	dataDir := filepath.Join(env.baseDir, "data")
	testsupport.SeedTree(t, dataDir, map[string]string{
		"alpha.txt":  "hello",
		"beta/b.txt": "",
		"zeta.txt":   "The quick brown fox jumps over the lazy dog",
	})

	out, _, err := runCLI(t, []string{dataDir}, env.configPath)
	if err != nil {
		t.Fatalf("hashmill run failed: %v", err)
	}

	want := strings.Join([]string{
		"alpha.txt\t5D41402ABC4B2A76B9719D911017C592",
		"b.txt\tD41D8CD98F00B204E9800998ECF8427E",
		"zeta.txt\t9E107D9D372BB6826BD81D3542A419D6",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
}

func TestCLIOrdersByFullPathAcrossArgs(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	dirA := filepath.Join(env.baseDir, "a_dir")
	testsupport.SeedTree(t, dirA, map[string]string{
		"one.bin": "hello",
		"two.bin": "hello",
	})
	late := filepath.Join(env.baseDir, "z.txt")
	testsupport.WriteFile(t, late, "hello")

	// The later-sorting file is passed first; output order must still follow
	// the sorted full paths.
	out, _, err := runCLI(t, []string{late, dirA}, env.configPath)
	if err != nil {
		t.Fatalf("hashmill run failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 result lines, got %d: %q", len(lines), out)
	}
	wantOrder := []string{"one.bin", "two.bin", "z.txt"}
	for i, prefix := range wantOrder {
		if !strings.HasPrefix(lines[i], prefix+"\t") {
			t.Fatalf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestCLIErrorLineKeepsExitZero(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission failures are not observable as root")
	}

	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	dataDir := filepath.Join(env.baseDir, "data")
	testsupport.SeedTree(t, dataDir, map[string]string{
		"locked.txt": "secret",
		"open.txt":   "hello",
	})
	if err := os.Chmod(filepath.Join(dataDir, "locked.txt"), 0o000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}

	out, _, err := runCLI(t, []string{dataDir}, env.configPath)
	if err != nil {
		t.Fatalf("per-file failures must not fail the command: %v", err)
	}
	requireContains(t, out, "locked.txt\tERROR:")
	requireContains(t, out, "open.txt\t5D41402ABC4B2A76B9719D911017C592")
}

func TestCLINoInputPaths(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())

	_, _, err := runCLI(t, nil, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "no input paths provided") {
		t.Fatalf("expected missing-paths error, got %v", err)
	}
}

func TestCLINoFilesFound(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	emptyDir := filepath.Join(env.baseDir, "empty")
	if err := os.MkdirAll(emptyDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	out, _, err := runCLI(t, []string{emptyDir}, env.configPath)
	if !errors.Is(err, scan.ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no result lines, got %q", out)
	}

	out, _, err = runCLI(t, []string{filepath.Join(env.baseDir, "nowhere")}, env.configPath)
	if !errors.Is(err, scan.ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles for missing path, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no result lines, got %q", out)
	}
}

func TestCLIMissingArgStillHashesRest(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	file := filepath.Join(env.baseDir, "real.txt")
	testsupport.WriteFile(t, file, "hello")

	out, _, err := runCLI(t, []string{filepath.Join(env.baseDir, "ghost.txt"), file}, env.configPath)
	if err != nil {
		t.Fatalf("missing argument must only warn: %v", err)
	}
	requireContains(t, out, "real.txt\t5D41402ABC4B2A76B9719D911017C592")
	if strings.Contains(out, "ghost") {
		t.Fatalf("missing path leaked into results: %q", out)
	}
}

func TestCLIAlgorithmFlag(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	file := filepath.Join(env.baseDir, "greeting.txt")
	testsupport.WriteFile(t, file, "hello")

	out, _, err := runCLI(t, []string{"-a", "sha256", file}, env.configPath)
	if err != nil {
		t.Fatalf("sha256 run failed: %v", err)
	}
	requireContains(t, out, "greeting.txt\t2CF24DBA5FB0A30E26E83B2AC5B9E29E1B161E5C1FA7425E73043362938B9824")
}

func TestCLIUnknownAlgorithm(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	file := filepath.Join(env.baseDir, "x.txt")
	testsupport.WriteFile(t, file, "x")

	_, _, err := runCLI(t, []string{"-a", "crc32", file}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown digest algorithm") {
		t.Fatalf("expected unknown-algorithm error, got %v", err)
	}
}

func TestCLIRepeatedArgHashedTwice(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCatalogDisabled())
	file := filepath.Join(env.baseDir, "dup.txt")
	testsupport.WriteFile(t, file, "hello")

	out, _, err := runCLI(t, []string{file, file}, env.configPath)
	if err != nil {
		t.Fatalf("hashmill run failed: %v", err)
	}
	if got := strings.Count(out, "dup.txt\t5D41402ABC4B2A76B9719D911017C592"); got != 2 {
		t.Fatalf("expected the repeated argument to produce 2 lines, got %d: %q", got, out)
	}
}
