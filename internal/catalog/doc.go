// Package catalog persists completed hashing runs in a local SQLite database.
//
// Recording is strictly write-after-the-fact: a run is inserted in one
// transaction once its output has been emitted, and nothing in the hashing
// path ever reads the catalog to skip or reuse work. The catalog exists so
// `hashmill runs` can answer "what did I hash, when, and what came out".
//
// A file lock next to the database enforces a single writer; a second
// concurrent hashmill invocation with recording enabled fails fast with
// ErrLocked instead of queueing behind SQLite busy timeouts.
//
// The schema carries a version stamp. On mismatch Open refuses the database
// and tells the user to clear it; there are no migrations.
package catalog
