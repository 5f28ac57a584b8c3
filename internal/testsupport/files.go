package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile creates path with the given content, making parent directories as
// needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SeedTree creates every file in layout under root. Keys are slash-separated
// relative paths. It returns the absolute paths in sorted order, matching how
// discovery emits them.
func SeedTree(t testing.TB, root string, layout map[string]string) []string {
	t.Helper()

	paths := make([]string, 0, len(layout))
	for rel, content := range layout {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		WriteFile(t, abs, content)
		paths = append(paths, abs)
	}
	sort.Strings(paths)
	return paths
}
