package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// StateDirName is the name of the internal state directory under the script root.
	StateDirName = ".vcbuild"

	// StoreDirName is the name of the install record store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the optional settings file under the script root.
	ConfigFileName = "vcbuild.yaml"

	// LogTimeFormat is the timestamp layout used in transcript file names.
	LogTimeFormat = "20060102_150405"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout derives every directory the tooling writes to from the script root.
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// TargetDir returns <root>/<target>.
func (l Layout) TargetDir(t Target) string {
	return filepath.Join(l.Root, t.String())
}

// BuildDir returns <root>/<target>/obj[_suffix].
func (l Layout) BuildDir(t Target, p Platform) string {
	return filepath.Join(l.TargetDir(t), "obj"+p.Suffix())
}

// InstallDir returns <root>/<target>/install[_suffix].
func (l Layout) InstallDir(t Target, p Platform) string {
	return filepath.Join(l.TargetDir(t), "install"+p.Suffix())
}

// LogPath returns the transcript path for a run of t started at ts.
func (l Layout) LogPath(t Target, p Platform, ts time.Time) string {
	return filepath.Join(l.BuildDir(t, p), fmt.Sprintf("build_%s_%s.log", t, ts.Format(LogTimeFormat)))
}

// StoreDir returns the install record store directory.
func (l Layout) StoreDir() string {
	return filepath.Join(l.Root, StateDirName, StoreDirName)
}

// ConfigPath returns the settings file path.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.Root, ConfigFileName)
}

// Resolve makes a settings-relative path absolute against the root.
func (l Layout) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// DepsLogPath returns the transcript path of a standalone dependency setup started at ts. It lives
// next to, not inside, the freetype build directory because a rebuild wipes that directory.
func (l Layout) DepsLogPath(p Platform, ts time.Time) string {
	return filepath.Join(l.TargetDir(TargetFreetype), fmt.Sprintf("setup%s_%s.log", p.Suffix(), ts.Format(LogTimeFormat)))
}
