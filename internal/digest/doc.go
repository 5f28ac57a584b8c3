// Package digest streams files through a selectable hash primitive.
//
// This package has no hashmill-specific dependencies and could be extracted
// as a standalone library.
//
// Supported algorithms: md5 (default), sha1, sha256, sha512, and blake2b
// (256-bit). Files are read in fixed-size chunks so memory stays bounded by
// the chunk size regardless of file size. Digests are rendered as uppercase
// hex.
//
// Primary entry points:
//   - New: resolves an algorithm name into a Hasher
//   - Hasher.Sum: hashes one file from disk
//   - Algorithms: lists registered algorithm names
package digest
