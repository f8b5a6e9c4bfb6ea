package domain

import (
	"maps"
	"runtime"
	"slices"
)

// Default values of Settings.
const (
	DefaultWindowsTriple    = "x86_64-w64-mingw32"
	DefaultDeploymentTarget = "13.0"
	DefaultOverlayDir       = "overlays/video_compare"
	DefaultStageDir         = "../app/src/external"
)

// VendoredDep is a third-party subtree expected under <source>/external.
type VendoredDep struct {
	Name string
	Repo string
	Ref  string
}

// Settings is the configuration shared by every component. A Settings value is built once by
// DefaultSettings and the config loader, then passed by value.
type Settings struct {
	Jobs             int
	Branches         map[Target]string
	WindowsTriple    string
	DeploymentTarget string
	Vendored         []VendoredDep
	OverlayDir       string
	StageDir         string
	Sources          map[Target]string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Jobs: runtime.NumCPU(),
		Branches: map[Target]string{
			TargetSDL2:    "release-2.32.x",
			TargetSDL3:    "release-3.2.x",
			TargetSDL2TTF: "release-2.24.x",
			TargetSDL3TTF: "release-3.2.x",
		},
		WindowsTriple:    DefaultWindowsTriple,
		DeploymentTarget: DefaultDeploymentTarget,
		Vendored: []VendoredDep{
			{Name: "freetype", Repo: "https://github.com/libsdl-org/freetype.git", Ref: "VER-2-13-3-SDL"},
			{Name: "harfbuzz", Repo: "https://github.com/libsdl-org/harfbuzz.git", Ref: "10.1.0-SDL"},
		},
		OverlayDir: DefaultOverlayDir,
		StageDir:   DefaultStageDir,
		Sources: map[Target]string{
			TargetSDL2:         "../sdl",
			TargetSDL2TTF:      "../sdl_ttf",
			TargetFFmpeg:       "../ffmpeg",
			TargetVideoCompare: "../video-compare",
		},
	}
}

// Branch returns the release branch checked out before building t, or "" if t has none.
func (s Settings) Branch(t Target) string {
	return s.Branches[t]
}

// Source returns the source tree the driver uses for t, or "" if none is configured.
func (s Settings) Source(t Target) string {
	return s.Sources[t]
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	c := s
	c.Branches = maps.Clone(s.Branches)
	c.Sources = maps.Clone(s.Sources)
	c.Vendored = slices.Clone(s.Vendored)
	return c
}
