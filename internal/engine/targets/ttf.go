package targets

import (
	"context"
	"strings"

	"go.trai.ch/vcbuild/internal/core/domain"
)

func planTTF(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	sdl := domain.TargetSDL3
	if req.Target() == domain.TargetSDL2TTF {
		sdl = domain.TargetSDL2
	}
	prefix := []string{req.Layout().InstallDir(sdl, req.Platform())}

	// sdl2_ttf links the prebuilt freetype; sdl3_ttf builds its vendored copy in-tree.
	if req.Target() == domain.TargetSDL2TTF {
		freetype, err := env.Deps.Ensure(ctx, env.depsInput(req))
		if err != nil {
			return nil, err
		}
		prefix = append(prefix, freetype)
	} else if err := env.Deps.Acquire(ctx, env.depsInput(req)); err != nil {
		return nil, err
	}

	opt := strings.ToUpper(strings.ReplaceAll(req.Target().String(), "_", ""))
	cm := newCMake(req, env).
		DefineBool(opt+"_SAMPLES", false).
		DefineBool(opt+"_INSTALL", true).
		DefineBool(opt+"_VENDORED", true).
		DefineBool(opt+"_HARFBUZZ", req.Platform() != domain.PlatformWindows).
		// both is built shared: the ttf projects build one library kind per configuration.
		DefineBool("BUILD_SHARED_LIBS", req.Mode().Shared()).
		Define("CMAKE_PREFIX_PATH", prefixPath(prefix...))
	return plan(req, cm), nil
}
