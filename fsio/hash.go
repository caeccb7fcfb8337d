package fsio

import (
	"crypto/md5"  //nolint:gosec // Caller-selected, non-cryptographic use
	"crypto/sha1" //nolint:gosec // Caller-selected, non-cryptographic use
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// HashBufferSize is the chunk size used when hashing file contents.
const HashBufferSize = 64 * 1024

// hashAlgorithms maps supported algorithm names to constructors.
//
//nolint:gochecknoglobals // Algorithm registry
var hashAlgorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// FileHash computes the hex digest of the file at path using the named
// algorithm (md5, sha1, sha256 or sha512), reading in fixed-size
// buffered chunks. Unknown algorithm names fail with
// ErrUnsupportedAlgorithm.
func FileHash(path, algorithm string) (string, error) {
	if _, err := statFile(path); err != nil {
		return "", err
	}

	constructor, ok := hashAlgorithms[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("%q: %w", algorithm, ErrUnsupportedAlgorithm)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	h := constructor()

	buf := make([]byte, HashBufferSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hashing %q: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
