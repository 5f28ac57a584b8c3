package scan

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"hashmill/internal/logging"
)

// ErrNoFiles reports that discovery produced nothing to hash.
var ErrNoFiles = errors.New("no files found")

// Result describes one discovery pass over the input arguments.
type Result struct {
	// Files holds every regular file found, sorted by full path. Paths stay
	// exactly as derived from the arguments; they are never absolutized.
	Files []string
	// TotalBytes sums the sizes of Files at discovery time.
	TotalBytes int64
	// Missing counts arguments that did not resolve to an existing path.
	Missing int
	// Skipped counts top-level arguments rejected as non-regular.
	Skipped int
}

// Discover expands args into the sorted file list for a run. Problems with
// individual arguments are logged as warnings, never returned as errors.
func Discover(args []string, logger *slog.Logger) Result {
	s := scanner{logger: logging.NewComponentLogger(logger, "scan")}
	for _, arg := range args {
		s.collectArg(arg)
	}
	sort.Strings(s.result.Files)
	return s.result
}

type scanner struct {
	logger *slog.Logger
	result Result
}

func (s *scanner) collectArg(arg string) {
	info, err := os.Stat(arg)
	if err != nil {
		s.logger.Warn("path not found", logging.String(logging.FieldPath, arg))
		s.result.Missing++
		return
	}

	switch {
	case info.Mode().IsRegular():
		s.result.Files = append(s.result.Files, arg)
		s.result.TotalBytes += info.Size()
	case info.IsDir():
		s.walkDirectory(arg)
	default:
		s.logger.Warn("skipping non-regular path", logging.String(logging.FieldPath, arg))
		s.result.Skipped++
	}
}

// walkDirectory recurses through dir collecting regular files. Unreadable
// directories are skipped without noise, matching permission-denied semantics
// users expect from bulk tools. Directory symlinks below the top level are not
// followed; a symlink to a file counts as that file.
func (s *scanner) walkDirectory(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			s.walkDirectory(path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			s.result.Files = append(s.result.Files, path)
			s.result.TotalBytes += info.Size()
		}
	}
}
