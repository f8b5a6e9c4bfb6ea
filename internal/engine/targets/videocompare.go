package targets

import (
	"context"
	"path/filepath"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	projectFile    = "CMakeLists.txt"
	displayAdapter = "display_adapter.cpp"
)

func planVideoCompare(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	p := req.Platform()
	targetOS := p.OS(env.HostOS)
	layout := req.Layout()

	overlays, err := videoCompareOverlays(req, env, targetOS)
	if err != nil {
		return nil, err
	}

	ffmpeg := layout.InstallDir(domain.TargetFFmpeg, p)
	sdl := layout.InstallDir(domain.TargetSDL2, p)
	ttf := layout.InstallDir(domain.TargetSDL2TTF, p)

	cm := newCMake(req, env).
		Define("FFMPEG_INSTALL_DIR", ffmpeg).
		Define("SDL_INSTALL_DIR", sdl).
		Define("SDL_TTF_INSTALL_DIR", ttf).
		Define("CMAKE_PREFIX_PATH", prefixPath(sdl, ttf, ffmpeg)).
		DefineBool("BUILD_SHARED_LIBS", req.Mode().Shared())

	switch p {
	case domain.PlatformMacOS:
		sdk, err := env.SDK.SDKPath(ctx)
		if err != nil {
			return nil, err
		}
		cm.Define("CMAKE_OSX_SYSROOT", sdk)
	case domain.PlatformWindows:
		if req.Mode().Static() {
			cm.Define("CMAKE_EXE_LINKER_FLAGS", "-static -static-libgcc -static-libstdc++")
		}
	}

	pl := plan(req, cm)
	pl.Overlays = overlays
	pl.Artifacts = runtimeLibraries(targetOS, filepath.Join(req.InstallDir(), "bin"), sdl, ttf, ffmpeg)
	return pl, nil
}

func videoCompareOverlays(req domain.Request, env Env, targetOS string) ([]domain.Overlay, error) {
	dir := req.Layout().Resolve(env.Settings.OverlayDir)
	overlays := []domain.Overlay{
		{Source: filepath.Join(dir, projectFile), Dest: filepath.Join(req.SourceDir(), projectFile)},
		{Source: filepath.Join(dir, displaySource(targetOS)), Dest: filepath.Join(req.SourceDir(), displayAdapter)},
	}
	for _, o := range overlays {
		if !env.Workspace.Exists(o.Source) {
			return nil, domain.Missing(zerr.With(domain.ErrOverlayMissing, "path", o.Source))
		}
	}
	return overlays, nil
}

func displaySource(targetOS string) string {
	if targetOS == "darwin" {
		return "display_macos.cpp"
	}
	return "display_" + targetOS + ".cpp"
}

// runtimeLibraries copies the shared libraries of every dependency next to the executable.
func runtimeLibraries(targetOS, dest string, installs ...string) []domain.Artifact {
	dir, pattern := "lib", "*.so*"
	switch targetOS {
	case "windows":
		dir, pattern = "bin", "*.dll"
	case "darwin":
		pattern = "*.dylib"
	}

	artifacts := make([]domain.Artifact, 0, len(installs))
	for _, install := range installs {
		artifacts = append(artifacts, domain.Artifact{
			Pattern: filepath.Join(install, dir, pattern),
			DestDir: dest,
		})
	}
	return artifacts
}
