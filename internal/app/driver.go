package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// AllOptions holds the raw flags of a full chain build.
type AllOptions struct {
	Root      string
	Platform  string
	KeepGoing bool
	Jobs      int
}

// chain is the order in which the driver builds the release artifacts.
var chain = []domain.Target{
	domain.TargetSDL2,
	domain.TargetSDL2TTF,
	domain.TargetFFmpeg,
	domain.TargetVideoCompare,
}

// stagedFile is one artifact copied into the consumer tree.
type stagedFile struct {
	target domain.Target
	name   string
}

// All builds the chain in static mode for one platform and stages the final executables.
func (a *App) All(ctx context.Context, opts AllOptions) error {
	start := a.clock.Now()
	root := rootOrDot(opts.Root)

	settings, err := a.settings(root, opts.Jobs)
	if err != nil {
		return err
	}

	// Every request is validated before the first subprocess runs.
	requests := make([]domain.Request, 0, len(chain))
	for _, t := range chain {
		req, err := domain.NewRequest(domain.RequestOptions{
			Root:      root,
			Target:    t.String(),
			Mode:      string(domain.LinkStatic),
			SourceDir: settings.Source(t),
			Platform:  opts.Platform,
		})
		if err != nil {
			return err
		}
		if err := a.runner.Validate(req); err != nil {
			return err
		}
		requests = append(requests, req)
	}

	failed := make(map[domain.Target]bool)
	var errs []error
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if dep, ok := failedDependency(req.Target(), failed); ok {
			failed[req.Target()] = true
			a.console.Skipped(req.Target().String(), dep.String()+" failed")
			errs = append(errs, zerr.With(zerr.With(domain.ErrDependencyFailed, "target", req.Target().String()), "dependency", dep.String()))
			continue
		}

		res, err := a.runner.Run(ctx, req, settings)
		if err != nil {
			failed[req.Target()] = true
			errs = append(errs, err)
			if !opts.KeepGoing {
				break
			}
			continue
		}
		a.console.Built(res.Target.String(), res.InstallDir, res.LogPath, res.Duration)
	}

	if len(errs) == 0 {
		if err := a.stage(requests[0], settings); err != nil {
			errs = append(errs, err)
		}
	}

	a.console.Finished(a.clock.Since(start), len(errs) > 0)
	return errors.Join(errs...)
}

func failedDependency(t domain.Target, failed map[domain.Target]bool) (domain.Target, bool) {
	for _, dep := range t.DependsOn() {
		if failed[dep] {
			return dep, true
		}
	}
	return "", false
}

// stage copies the platform executables into the consumer tree. Hosts other than windows and
// macos stage nothing.
func (a *App) stage(req domain.Request, settings domain.Settings) error {
	var (
		subdir string
		files  []stagedFile
	)
	switch req.Platform() {
	case domain.PlatformWindows:
		subdir = "win-inner"
		files = []stagedFile{
			{target: domain.TargetVideoCompare, name: "video-compare.exe"},
			{target: domain.TargetFFmpeg, name: "ffprobe.exe"},
		}
	case domain.PlatformMacOS:
		subdir = "mac-inner"
		files = []stagedFile{
			{target: domain.TargetVideoCompare, name: "video-compare"},
			{target: domain.TargetFFmpeg, name: "ffprobe"},
		}
	default:
		return nil
	}

	layout := req.Layout()
	dst := filepath.Join(layout.Resolve(settings.StageDir), subdir)
	for _, f := range files {
		src := filepath.Join(layout.InstallDir(f.target, req.Platform()), "bin", f.name)
		if !a.workspace.Exists(src) {
			a.logger.Warn("artifact not found, not staged: " + src)
			continue
		}
		if err := a.workspace.CopyFile(src, dst); err != nil {
			return domain.Fault(domain.ErrStageFailed, zerr.With(err, "path", src))
		}
		a.console.Staged(src, dst)
	}
	return nil
}
