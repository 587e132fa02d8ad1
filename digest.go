package reprozip

import (
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

// Digest returns the canonical digest of the bytes read from r. Two
// builds of the same inputs are reproducible exactly when their
// archives digest identically.
func Digest(r io.Reader) (digest.Digest, error) {
	return digest.Canonical.FromReader(r)
}

// DigestFile returns the canonical digest of the archive at path.
func DigestFile(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Digest(f)
}
