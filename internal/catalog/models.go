package catalog

import "time"

// Run is one recorded hashing pass.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Algorithm  string
	Workers    int
	FileCount  int
	Succeeded  int
	Failed     int
	TotalBytes int64
}

// Duration is the wall time the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// FileRecord is one file outcome within a run, at its emitted position.
// Digest is set on success, Error on failure; never both.
type FileRecord struct {
	RunID  string
	Index  int
	Path   string
	Digest string
	Error  string
}

// OK reports whether the record is a successful hash.
func (f FileRecord) OK() bool {
	return f.Error == ""
}
