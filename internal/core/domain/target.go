package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Target names one external project that can be configured and built.
type Target string

// Supported targets.
const (
	TargetFFmpeg       Target = "ffmpeg"
	TargetSDL2         Target = "sdl2"
	TargetSDL3         Target = "sdl3"
	TargetSDL2TTF      Target = "sdl2_ttf"
	TargetSDL3TTF      Target = "sdl3_ttf"
	TargetVideoCompare Target = "video_compare"

	// TargetFreetype is the prerequisite built by dependency setup. It is not selectable on the
	// command line.
	TargetFreetype Target = "freetype"
)

// Targets lists every selectable target in a stable order.
func Targets() []Target {
	return []Target{
		TargetFFmpeg,
		TargetSDL2,
		TargetSDL3,
		TargetSDL2TTF,
		TargetSDL3TTF,
		TargetVideoCompare,
	}
}

// ParseTarget converts a command line value into a Target.
// The legacy name "sdl" is accepted as sdl2.
func ParseTarget(name string) (Target, error) {
	name = strings.TrimSpace(name)
	if name == "sdl" {
		return TargetSDL2, nil
	}
	for _, t := range Targets() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", Invalid(zerr.With(ErrUnknownTarget, "target", name))
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return string(t)
}

// DependsOn returns the targets whose install directories t consumes.
func (t Target) DependsOn() []Target {
	switch t {
	case TargetSDL2TTF:
		return []Target{TargetSDL2}
	case TargetSDL3TTF:
		return []Target{TargetSDL3}
	case TargetVideoCompare:
		return []Target{TargetSDL2, TargetSDL2TTF, TargetFFmpeg}
	default:
		return nil
	}
}

// LinkMode selects shared libraries, static libraries or both.
type LinkMode string

// Link modes.
const (
	LinkShared LinkMode = "shared"
	LinkStatic LinkMode = "static"
	LinkBoth   LinkMode = "both"
)

// ParseLinkMode converts a command line value into a LinkMode. Empty means shared.
func ParseLinkMode(name string) (LinkMode, error) {
	switch LinkMode(strings.TrimSpace(name)) {
	case "", LinkShared:
		return LinkShared, nil
	case LinkStatic:
		return LinkStatic, nil
	case LinkBoth:
		return LinkBoth, nil
	default:
		return "", Invalid(zerr.With(ErrUnknownLinkMode, "mode", name))
	}
}

// Shared reports whether shared artifacts are requested.
func (m LinkMode) Shared() bool {
	return m == LinkShared || m == LinkBoth
}

// Static reports whether static artifacts are requested.
func (m LinkMode) Static() bool {
	return m == LinkStatic || m == LinkBoth
}

// Platform is the platform the artifacts are produced for.
type Platform string

// Platforms.
const (
	PlatformHost    Platform = "host"
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "macos"
)

// ParsePlatform converts a command line value into a Platform. Empty and "linux" mean host.
func ParsePlatform(name string) (Platform, error) {
	switch strings.TrimSpace(name) {
	case "", "host", "linux":
		return PlatformHost, nil
	case "windows":
		return PlatformWindows, nil
	case "macos":
		return PlatformMacOS, nil
	default:
		return "", Invalid(zerr.With(ErrUnknownPlatform, "platform", name))
	}
}

// Suffix is appended to obj/install directory names to keep cross builds apart from native ones.
func (p Platform) Suffix() string {
	if p == PlatformWindows {
		return "_win"
	}
	return ""
}

// OS resolves the platform to an operating system name (linux, windows, darwin) given the host.
func (p Platform) OS(hostOS string) string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "darwin"
	default:
		return hostOS
	}
}

// CrossCompiles reports whether building for p on hostOS needs a cross toolchain.
func (p Platform) CrossCompiles(hostOS string) bool {
	return p.OS(hostOS) != hostOS
}

// HostOS returns the operating system this binary runs on.
func HostOS() string {
	return runtime.GOOS
}
