package buildsys

import "go.trai.ch/vcbuild/internal/core/domain"

// PlatformDefines returns the CMake cache entries every project needs to target p:
// the MinGW toolchain for windows and the deployment target for macos.
func PlatformDefines(p domain.Platform, s domain.Settings) map[string]string {
	switch p {
	case domain.PlatformWindows:
		return MinGWToolchain(s.WindowsTriple)
	case domain.PlatformMacOS:
		return map[string]string{"CMAKE_OSX_DEPLOYMENT_TARGET": s.DeploymentTarget}
	default:
		return map[string]string{}
	}
}

// PlatformEnv returns the environment every build step for p runs with.
func PlatformEnv(p domain.Platform, s domain.Settings) map[string]string {
	if p == domain.PlatformMacOS {
		return map[string]string{"MACOSX_DEPLOYMENT_TARGET": s.DeploymentTarget}
	}
	return nil
}
