package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local file system.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Reset deletes and recreates each directory.
func (w *Workspace) Reset(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return domain.Fault(domain.ErrResetFailed, zerr.With(err, "path", dir))
		}
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return domain.Fault(domain.ErrResetFailed, zerr.With(err, "path", dir))
		}
	}
	return nil
}

// Remove deletes each path recursively.
func (w *Workspace) Remove(paths ...string) error {
	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", p)
		}
	}
	return nil
}

// Exists reports whether path exists.
func (w *Workspace) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsPopulated reports whether dir exists and has at least one entry.
func (w *Workspace) IsPopulated(dir string) bool {
	f, err := os.Open(dir) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // read-only handle

	names, err := f.Readdirnames(1)
	return err == nil && len(names) > 0
}

// Overlay copies src over dst. The returned func writes back the original content and mode of dst,
// or removes dst if it did not exist before.
func (w *Workspace) Overlay(src, dst string) (ports.RestoreFunc, error) {
	srcInfo, err := os.Stat(src)
	if err != nil || !srcInfo.Mode().IsRegular() {
		return nil, domain.Missing(zerr.With(domain.ErrOverlayMissing, "path", src))
	}

	var original []byte
	var originalMode os.FileMode
	existed := false
	if info, statErr := os.Stat(dst); statErr == nil {
		original, err = os.ReadFile(dst) //nolint:gosec // Path is controlled by caller
		if err != nil {
			return nil, domain.Fault(domain.ErrOverlayFailed, zerr.With(err, "path", dst))
		}
		originalMode = info.Mode().Perm()
		existed = true
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, domain.Fault(domain.ErrOverlayFailed, zerr.With(statErr, "path", dst))
	}

	if err := copyFile(src, dst, srcInfo.Mode().Perm()); err != nil {
		return nil, domain.Fault(domain.ErrOverlayFailed, zerr.With(err, "path", dst))
	}

	restore := func() error {
		if !existed {
			if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
				return zerr.With(zerr.Wrap(err, "failed to remove overlay"), "path", dst)
			}
			return nil
		}
		if err := os.WriteFile(dst, original, originalMode); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to restore overlaid file"), "path", dst)
		}
		return os.Chmod(dst, originalMode)
	}
	return restore, nil
}

// CopyGlob copies every file matching pattern into dstDir. No match is not an error.
func (w *Workspace) CopyGlob(pattern, dstDir string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}
	sort.Strings(matches)

	var copied []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := w.CopyFile(match, dstDir); err != nil {
			return copied, err
		}
		copied = append(copied, filepath.Join(dstDir, filepath.Base(match)))
	}
	return copied, nil
}

// CopyFile copies src into dstDir, keeping its base name and permission bits.
func (w *Workspace) CopyFile(src, dstDir string) error {
	info, err := os.Stat(src)
	if err != nil {
		return domain.Fault(domain.ErrCopyFailed, zerr.With(err, "path", src))
	}
	if err := os.MkdirAll(dstDir, domain.DirPerm); err != nil {
		return domain.Fault(domain.ErrCopyFailed, zerr.With(err, "path", dstDir))
	}
	dst := filepath.Join(dstDir, filepath.Base(src))
	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return domain.Fault(domain.ErrCopyFailed, zerr.With(err, "path", src))
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) (err error) {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only handle

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return os.Chmod(dst, perm)
}
