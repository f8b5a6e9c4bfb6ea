// Package pipeline runs one build request from directory reset to artifact copy.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/targets"
	"go.trai.ch/zerr"
)

// Pipeline executes build requests.
type Pipeline struct {
	executor  ports.Executor
	workspace ports.Workspace
	vcs       ports.VCS
	telemetry ports.Telemetry
	logger    ports.Logger
	registry  *targets.Registry
	deps      targets.Dependencies
	sdk       targets.SDKResolver
	clock     clockwork.Clock
	hostOS    string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the clock used for transcript names and durations.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithHostOS overrides the detected host operating system.
func WithHostOS(goos string) Option {
	return func(p *Pipeline) { p.hostOS = goos }
}

// New creates a new Pipeline.
func New(
	executor ports.Executor,
	workspace ports.Workspace,
	vcs ports.VCS,
	telemetry ports.Telemetry,
	logger ports.Logger,
	deps targets.Dependencies,
	sdk targets.SDKResolver,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		executor:  executor,
		workspace: workspace,
		vcs:       vcs,
		telemetry: telemetry,
		logger:    logger,
		registry:  targets.NewRegistry(),
		deps:      deps,
		sdk:       sdk,
		clock:     clockwork.NewRealClock(),
		hostOS:    domain.HostOS(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate rejects a request this host cannot build.
func (p *Pipeline) Validate(req domain.Request) error {
	return p.registry.Validate(req, p.hostOS)
}

// Run builds req: validate it, reset the build and install directories, switch the source tree
// to the configured release branch, plan, apply overlays, run every step and copy artifacts.
// Overlays are restored whether or not the build succeeds. A failure is reported with a
// pointer to the transcript and returned joined with domain.ErrBuildExecutionFailed. A request
// rejected by Validate is returned as is and leaves the tree untouched.
func (p *Pipeline) Run(ctx context.Context, req domain.Request, settings domain.Settings) (*domain.Result, error) {
	if err := p.Validate(req); err != nil {
		return nil, err
	}

	start := p.clock.Now()
	logPath := req.Layout().LogPath(req.Target(), req.Platform(), start)

	if err := p.workspace.Reset(req.BuildDir(), req.InstallDir()); err != nil {
		return nil, errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	if err := p.run(ctx, req, settings, logPath); err != nil {
		p.logger.Warn("build of " + req.Target().String() + " failed, see transcript: " + logPath)
		return nil, errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	return &domain.Result{
		Target:     req.Target(),
		InstallDir: req.InstallDir(),
		LogPath:    logPath,
		Duration:   p.clock.Since(start),
	}, nil
}

func (p *Pipeline) run(ctx context.Context, req domain.Request, settings domain.Settings, logPath string) (err error) {
	if branch := settings.Branch(req.Target()); branch != "" {
		if err := p.vcs.Checkout(ctx, req.SourceDir(), branch); err != nil {
			return err
		}
		if head, err := p.vcs.Head(ctx, req.SourceDir()); err == nil {
			p.logger.Info(fmt.Sprintf("%s: %s at %s", req.Target(), branch, head))
		}
	}

	plan, err := p.registry.Plan(ctx, req, targets.Env{
		Settings:  settings,
		HostOS:    p.hostOS,
		LogPath:   logPath,
		Deps:      p.deps,
		SDK:       p.sdk,
		Workspace: p.workspace,
	})
	if err != nil {
		return err
	}

	var restores []ports.RestoreFunc
	defer func() {
		for i := len(restores) - 1; i >= 0; i-- {
			if rerr := restores[i](); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
	}()
	for _, o := range plan.Overlays {
		restore, err := p.workspace.Overlay(o.Source, o.Dest)
		if err != nil {
			return err
		}
		restores = append(restores, restore)
	}

	for _, step := range plan.Steps {
		if err := p.step(ctx, req, step, logPath); err != nil {
			return err
		}
	}

	for _, a := range plan.Artifacts {
		copied, err := p.workspace.CopyGlob(a.Pattern, a.DestDir)
		if err != nil {
			return err
		}
		for _, c := range copied {
			p.logger.Info("copied " + c)
		}
	}
	return nil
}

func (p *Pipeline) step(ctx context.Context, req domain.Request, step domain.Step, logPath string) error {
	_, vertex := p.telemetry.Record(ctx, req.Target().String()+" "+step.Name+" ("+string(req.Platform())+")")

	cmd := step.Command
	cmd.LogPath = logPath
	_, err := p.executor.Execute(ctx, &cmd, vertex.Stdout(), vertex.Stderr())
	if err != nil {
		err = zerr.With(zerr.Wrap(err, step.Name+" failed"), "target", req.Target().String())
	}
	vertex.Complete(err)
	return err
}
