package targets

import (
	"context"

	"go.trai.ch/vcbuild/internal/core/domain"
)

func planSDL(_ context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	m := req.Mode()
	cm := newCMake(req, env).
		DefineBool("SDL_SHARED", m.Shared()).
		DefineBool("SDL_STATIC", m.Static()).
		DefineBool("BUILD_SHARED_LIBS", m.Shared())
	return plan(req, cm), nil
}
