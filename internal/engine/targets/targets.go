// Package targets maps a build request to the plan of one external project.
package targets

import (
	"context"
	"strings"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/buildsys"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.trai.ch/zerr"
)

// Dependencies provides the vendored dependencies of the ttf targets.
type Dependencies interface {
	Acquire(ctx context.Context, in deps.Input) error
	Ensure(ctx context.Context, in deps.Input) (string, error)
}

// SDKResolver locates the macOS SDK.
type SDKResolver interface {
	SDKPath(ctx context.Context) (string, error)
}

// Env is everything a builder may consult besides the request.
type Env struct {
	Settings  domain.Settings
	HostOS    string
	LogPath   string
	Deps      Dependencies
	SDK       SDKResolver
	Workspace ports.Workspace
}

func (e Env) host() buildsys.Host {
	return buildsys.Host{OS: e.HostOS, Jobs: e.Settings.Jobs}
}

func (e Env) depsInput(req domain.Request) deps.Input {
	return deps.Input{Request: req, Settings: e.Settings, LogPath: e.LogPath}
}

// Builder turns a request into a plan.
type Builder interface {
	Plan(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error)

// Plan calls f.
func (f BuilderFunc) Plan(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	return f(ctx, req, env)
}

// Registry holds the builder of every target.
type Registry struct {
	builders map[domain.Target]Builder
}

// NewRegistry returns a Registry with the builders of all supported targets.
func NewRegistry() *Registry {
	r := &Registry{builders: map[domain.Target]Builder{}}
	r.Register(domain.TargetFFmpeg, BuilderFunc(planFFmpeg))
	r.Register(domain.TargetSDL2, BuilderFunc(planSDL))
	r.Register(domain.TargetSDL3, BuilderFunc(planSDL))
	r.Register(domain.TargetSDL2TTF, BuilderFunc(planTTF))
	r.Register(domain.TargetSDL3TTF, BuilderFunc(planTTF))
	r.Register(domain.TargetVideoCompare, BuilderFunc(planVideoCompare))
	return r
}

// Register sets the builder for t, replacing any previous one.
func (r *Registry) Register(t domain.Target, b Builder) {
	r.builders[t] = b
}

// Lookup returns the builder for t.
func (r *Registry) Lookup(t domain.Target) (Builder, error) {
	b, ok := r.builders[t]
	if !ok {
		return nil, domain.Invalid(zerr.With(domain.ErrNoBuilder, "target", t.String()))
	}
	return b, nil
}

// Validate reports whether req can be built on hostOS. It only inspects the request, so callers
// run it before touching the filesystem or spawning anything.
func (r *Registry) Validate(req domain.Request, hostOS string) error {
	if req.Platform() == domain.PlatformMacOS && hostOS != "darwin" {
		return domain.Invalid(zerr.With(zerr.New("macos builds require a macOS host"), "host", hostOS))
	}
	_, err := r.Lookup(req.Target())
	return err
}

// Plan validates req against env.HostOS and returns the plan of its target.
func (r *Registry) Plan(ctx context.Context, req domain.Request, env Env) (*domain.Plan, error) {
	if err := r.Validate(req, env.HostOS); err != nil {
		return nil, err
	}
	b, err := r.Lookup(req.Target())
	if err != nil {
		return nil, err
	}
	return b.Plan(ctx, req, env)
}

func newCMake(req domain.Request, env Env) *buildsys.CMake {
	p := req.Platform()
	cm := &buildsys.CMake{
		Host:    env.host(),
		Source:  req.SourceDir(),
		Build:   req.BuildDir(),
		Install: req.InstallDir(),
		Env:     buildsys.PlatformEnv(p, env.Settings),
	}
	return cm.DefineAll(buildsys.PlatformDefines(p, env.Settings))
}

func plan(req domain.Request, bs buildsys.BuildSystem) *domain.Plan {
	return &domain.Plan{Target: req.Target(), Steps: bs.Steps()}
}

// prefixPath joins CMake prefix entries. CMake lists are semicolon separated on every host.
func prefixPath(dirs ...string) string {
	return strings.Join(dirs, ";")
}
