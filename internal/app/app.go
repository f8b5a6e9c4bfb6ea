// Package app implements the application layer for vcbuild.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.trai.ch/vcbuild/internal/ui/output"
	"go.trai.ch/zerr"
)

// Runner builds one request.
type Runner interface {
	Validate(req domain.Request) error
	Run(ctx context.Context, req domain.Request, settings domain.Settings) (*domain.Result, error)
}

// DependencySetup provides the freetype prerequisite install.
type DependencySetup interface {
	Ensure(ctx context.Context, in deps.Input) (string, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       Runner
	deps         DependencySetup
	vcs          ports.VCS
	workspace    ports.Workspace
	store        ports.InstallRecordStore
	logger       ports.Logger
	console      *output.Console
	clock        clockwork.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner Runner,
	setup DependencySetup,
	vcs ports.VCS,
	workspace ports.Workspace,
	store ports.InstallRecordStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		deps:         setup,
		vcs:          vcs,
		workspace:    workspace,
		store:        store,
		logger:       logger,
		console:      output.NewConsole(nil),
		clock:        clockwork.NewRealClock(),
	}
}

// WithClock sets the clock used for elapsed times and transcript names.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithOutput redirects the console summaries to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.console = output.NewConsole(w)
	return a
}

// BuildOptions holds the raw flags of a single build.
type BuildOptions struct {
	Root      string
	Target    string
	Mode      string
	SourceDir string
	Platform  string
	Jobs      int
}

// Build validates the options and builds one target.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.Result, error) {
	req, err := domain.NewRequest(domain.RequestOptions{
		Root:      opts.Root,
		Target:    opts.Target,
		Mode:      opts.Mode,
		SourceDir: opts.SourceDir,
		Platform:  opts.Platform,
	})
	if err != nil {
		return nil, err
	}

	settings, err := a.settings(req.Root(), opts.Jobs)
	if err != nil {
		return nil, err
	}

	res, err := a.runner.Run(ctx, req, settings)
	if err != nil {
		return nil, err
	}
	a.console.Built(res.Target.String(), res.InstallDir, res.LogPath, res.Duration)
	return res, nil
}

// DepsOptions holds the raw flags of a standalone dependency setup.
type DepsOptions struct {
	Root      string
	SourceDir string
	Platform  string
	Jobs      int
}

// Deps switches the sdl2_ttf tree at SourceDir to its release branch, acquires its vendored
// dependencies and makes sure the freetype install is current. It returns the install directory.
func (a *App) Deps(ctx context.Context, opts DepsOptions) (string, error) {
	req, err := domain.NewRequest(domain.RequestOptions{
		Root:      opts.Root,
		Target:    domain.TargetSDL2TTF.String(),
		SourceDir: opts.SourceDir,
		Platform:  opts.Platform,
	})
	if err != nil {
		return "", err
	}

	settings, err := a.settings(req.Root(), opts.Jobs)
	if err != nil {
		return "", err
	}

	if branch := settings.Branch(req.Target()); branch != "" {
		if err := a.vcs.Checkout(ctx, req.SourceDir(), branch); err != nil {
			return "", errors.Join(domain.ErrBuildExecutionFailed, err)
		}
	}

	start := a.clock.Now()
	logPath := req.Layout().DepsLogPath(req.Platform(), start)
	install, err := a.deps.Ensure(ctx, deps.Input{Request: req, Settings: settings, LogPath: logPath})
	if err != nil {
		a.logger.Warn("dependency setup failed, see transcript: " + logPath)
		return "", errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	a.console.Built(domain.TargetFreetype.String(), install, logPath, a.clock.Since(start))
	return install, nil
}

// CleanOptions holds the raw flags of a clean.
type CleanOptions struct {
	Root     string
	Targets  []string
	Platform string
}

// Clean removes the build and install directories of the given targets for one platform. With
// no targets it cleans every target, the freetype prerequisite and its install record.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	p, err := domain.ParsePlatform(opts.Platform)
	if err != nil {
		return err
	}

	var list []domain.Target
	for _, name := range opts.Targets {
		t, err := domain.ParseTarget(name)
		if err != nil {
			return err
		}
		list = append(list, t)
	}
	all := len(list) == 0
	if all {
		list = append(domain.Targets(), domain.TargetFreetype)
	}

	layout := domain.NewLayout(rootOrDot(opts.Root))
	for _, t := range list {
		build, install := layout.BuildDir(t, p), layout.InstallDir(t, p)
		if err := a.workspace.Remove(build, install); err != nil {
			return err
		}
		a.logger.Info("removed " + build + " and " + install)
	}

	if all {
		if err := a.store.Delete(layout.Root, deps.RecordName(p)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) settings(root string, jobs int) (domain.Settings, error) {
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}
	if jobs < 0 {
		return domain.Settings{}, domain.Invalid(zerr.With(zerr.New("jobs must not be negative"), "jobs", jobs))
	}
	if jobs > 0 {
		settings.Jobs = jobs
	}
	return settings, nil
}

func rootOrDot(root string) string {
	if root == "" {
		return "."
	}
	return root
}
