// Package buildsys turns build-system settings into the configure, build and install commands of
// a plan. Nothing in here runs a process.
package buildsys

import (
	"maps"
	"slices"
	"strconv"

	"go.trai.ch/vcbuild/internal/core/domain"
)

// BuildType is the configuration every CMake project is built with.
const BuildType = "Release"

// Host describes the machine the commands run on.
type Host struct {
	// OS is a GOOS value.
	OS string
	// Jobs is the parallelism hint handed to the native tool.
	Jobs int
}

// Windows reports whether the host runs Windows.
func (h Host) Windows() bool {
	return h.OS == "windows"
}

// Generator returns the CMake generator forced on this host, or "" for the CMake default. A
// Windows host would otherwise pick Visual Studio, which cannot drive the MinGW toolchain.
func (h Host) Generator() string {
	if h.Windows() {
		return "MinGW Makefiles"
	}
	return ""
}

func (h Host) jobs() string {
	if h.Jobs < 1 {
		return "1"
	}
	return strconv.Itoa(h.Jobs)
}

// BuildSystem produces the ordered steps of one project build.
type BuildSystem interface {
	Steps() []domain.Step
}

// MinGWToolchain returns the CMake cache entries for a MinGW cross build with the given triple.
// Library lookup is restricted to static archives.
func MinGWToolchain(triple string) map[string]string {
	return map[string]string{
		"CMAKE_SYSTEM_NAME":           "Windows",
		"CMAKE_C_COMPILER":            triple + "-gcc",
		"CMAKE_CXX_COMPILER":          triple + "-g++",
		"CMAKE_RC_COMPILER":           triple + "-windres",
		"CMAKE_FIND_LIBRARY_SUFFIXES": ".a",
	}
}

// OnOff renders b as a CMake boolean.
func OnOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func step(name, dir string, env map[string]string, args ...string) domain.Step {
	return domain.Step{
		Name: name,
		Command: domain.Command{
			Args: args,
			Dir:  dir,
			Env:  maps.Clone(env),
		},
	}
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
