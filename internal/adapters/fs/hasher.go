package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash fingerprints of trees and argument vectors.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, domain.Fault(domain.ErrFileHashFailed, zerr.With(err, "path", path))
	}

	return hasher.Sum64(), nil
}

// HashTree fingerprints every file under dir: its path relative to dir, its permission bits and
// its content. Symlinks contribute their target instead of the content they point to, so the
// fingerprint is independent of where the tree lives.
func (h *Hasher) HashTree(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat tree"), "path", dir)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.New("not a directory"), "path", dir)
	}

	digest := xxhash.New()
	for path, err := range h.walker.WalkFiles(dir, nil) {
		if err != nil {
			return "", err
		}
		if err := h.hashEntry(dir, path, digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashEntry(root, path string, digest *xxhash.Digest) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
	}
	info, err := os.Lstat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	_, _ = digest.WriteString(filepath.ToSlash(rel))
	_, _ = digest.Write([]byte{0})
	_ = binary.Write(digest, binary.LittleEndian, uint32(info.Mode()))

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read symlink"), "path", path)
		}
		_, _ = digest.WriteString(target)
		_, _ = digest.Write([]byte{0})
		return nil
	}

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}
	if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

// HashStrings fingerprints an ordered list of strings.
func (h *Hasher) HashStrings(values ...string) string {
	digest := xxhash.New()
	for _, v := range values {
		_, _ = digest.WriteString(v)
		_, _ = digest.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
