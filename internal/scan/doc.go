// Package scan expands user-supplied paths into the flat, sorted list of
// regular files a run will hash.
//
// Discovery rules:
//   - a missing argument logs a warning and is skipped
//   - a regular-file argument is kept exactly as given
//   - a directory argument is walked recursively; nested entries are
//     classified by stat, so symlinks to regular files are included while
//     symlinked directories are not descended
//   - non-regular arguments (devices, sockets, fifos) log a warning; nested
//     non-regular entries and unreadable subtrees are skipped silently
//
// Repeated arguments are not deduplicated: the caller asked for the work
// twice. The final list is sorted lexicographically by full path, which fixes
// the output order for the entire run.
package scan
