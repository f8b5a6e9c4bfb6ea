// Package vcs provides the git adapter used on upstream source trees.
package vcs

import (
	"context"
	"strings"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VCS = (*Git)(nil)

// Git implements ports.VCS by running git through the executor.
type Git struct {
	executor ports.Executor
	git      string
}

// GitOption configures Git.
type GitOption func(*Git)

// WithGitPath sets a custom git executable path.
func WithGitPath(path string) GitOption {
	return func(g *Git) {
		g.git = path
	}
}

// NewGit creates a new Git adapter.
func NewGit(executor ports.Executor, opts ...GitOption) *Git {
	g := &Git{executor: executor, git: "git"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Checkout switches the working tree at dir to ref.
func (g *Git) Checkout(ctx context.Context, dir, ref string) error {
	if _, err := g.run(ctx, dir, false, "checkout", ref); err != nil {
		return zerr.With(zerr.Wrap(err, "checkout failed"), "ref", ref)
	}
	return nil
}

// Clone performs a shallow single-branch clone of ref from remote into dir.
func (g *Git) Clone(ctx context.Context, remote, ref, dir string) error {
	if _, err := g.run(ctx, "", false, "clone", "--depth", "1", "--branch", ref, remote, dir); err != nil {
		return zerr.With(zerr.Wrap(err, "clone failed"), "remote", remote)
	}
	return nil
}

// Head returns the commit checked out at dir.
func (g *Git) Head(ctx context.Context, dir string) (string, error) {
	out, err := g.run(ctx, dir, true, "rev-parse", "HEAD")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "rev-parse failed"), "path", dir)
	}
	head := strings.TrimSpace(out)
	if head == "" {
		return "", zerr.With(zerr.New("no HEAD found"), "path", dir)
	}
	return head, nil
}

func (g *Git) run(ctx context.Context, dir string, capture bool, args ...string) (string, error) {
	cmd := &domain.Command{
		Args:    append([]string{g.git}, args...),
		Dir:     dir,
		Capture: capture,
	}
	out, err := g.executor.Execute(ctx, cmd, nil, nil)
	if err != nil {
		return "", err
	}
	return out.Stdout, nil
}
