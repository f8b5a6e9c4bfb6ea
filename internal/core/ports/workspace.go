package ports

// RestoreFunc undoes an overlay.
type RestoreFunc func() error

// Workspace defines the filesystem operations of a build.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Reset deletes and recreates each directory.
	Reset(dirs ...string) error

	// Remove deletes each path recursively. Missing paths are ignored.
	Remove(paths ...string) error

	// Exists reports whether path exists.
	Exists(path string) bool

	// IsPopulated reports whether dir exists and has at least one entry.
	IsPopulated(dir string) bool

	// Overlay copies src over dst and returns a func restoring the previous state of dst.
	Overlay(src, dst string) (RestoreFunc, error)

	// CopyGlob copies every regular file matching pattern into dstDir and returns the copied
	// destination paths.
	CopyGlob(pattern, dstDir string) ([]string, error)

	// CopyFile copies src into dstDir, keeping its base name and mode.
	CopyFile(src, dstDir string) error
}
