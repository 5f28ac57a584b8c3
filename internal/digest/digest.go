package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ErrUnknownAlgorithm reports an algorithm name missing from the registry.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 1 << 20

var registry = map[string]func() hash.Hash{
	"md5":     md5.New,
	"sha1":    sha1.New,
	"sha256":  sha256.New,
	"sha512":  sha512.New,
	"blake2b": newBlake2b,
}

func newBlake2b() hash.Hash {
	// New256 only fails when given a key longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hasher computes file digests with a fixed algorithm and chunk size. It is
// safe for concurrent use: each Sum call builds its own hash state and buffer.
type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
	chunkSize int
}

// New resolves algorithm (case-insensitive) against the registry. A
// non-positive chunkSize falls back to DefaultChunkSize.
func New(algorithm string, chunkSize int) (*Hasher, error) {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownAlgorithm, algorithm, strings.Join(Algorithms(), ", "))
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Hasher{algorithm: name, newHash: ctor, chunkSize: chunkSize}, nil
}

// Algorithm returns the normalized algorithm name.
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// Sum streams the file at path through the hash in chunk-sized reads and
// returns the uppercase hex digest.
func (h *Hasher) Sum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := h.newHash()
	buf := make([]byte, h.chunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// hash.Hash writes never fail.
			_, _ = hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	return fmt.Sprintf("%X", hasher.Sum(nil)), nil
}
