package targets

import (
	"context"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/engine/buildsys"
)

// ffmpegWindowsDisabled are the subsystems that would link against system libraries a MinGW
// cross toolchain does not ship.
var ffmpegWindowsDisabled = []string{
	"--disable-mediafoundation",
	"--disable-schannel",
	"--disable-gnutls",
	"--disable-openssl",
	"--disable-d3d11va",
	"--disable-dxva2",
	"--disable-indev=vfwcap",
	"--disable-indev=dshow",
}

func planFFmpeg(_ context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	p := req.Platform()
	at := &buildsys.Autotools{
		Host:    env.host(),
		Source:  req.SourceDir(),
		Build:   req.BuildDir(),
		Install: req.InstallDir(),
		Env:     buildsys.PlatformEnv(p, env.Settings),
	}
	at.Flag(ffmpegModeFlags(req.Mode(), p.OS(env.HostOS))...)

	if p == domain.PlatformWindows {
		at.Flag(
			"--enable-cross-compile",
			"--target-os=mingw32",
			"--arch=x86_64",
			"--cross-prefix="+env.Settings.WindowsTriple+"-",
		)
		at.Flag(ffmpegWindowsDisabled...)
	}
	return plan(req, at), nil
}

func ffmpegModeFlags(m domain.LinkMode, targetOS string) []string {
	switch m {
	case domain.LinkStatic:
		flags := []string{"--disable-shared", "--enable-static", "--pkg-config-flags=--static"}
		// Apple's linker has no fully static mode.
		if targetOS != "darwin" {
			flags = append(flags, "--extra-ldflags=-static")
		}
		return flags
	case domain.LinkBoth:
		return []string{"--enable-shared", "--enable-static"}
	default:
		return []string{"--enable-shared", "--disable-static"}
	}
}
