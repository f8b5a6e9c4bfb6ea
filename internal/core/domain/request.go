package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Request is one validated build invocation. It is constructed once by NewRequest and never mutated.
type Request struct {
	root      string
	target    Target
	mode      LinkMode
	sourceDir string
	platform  Platform
}

// RequestOptions carries the raw, unvalidated values of a build invocation.
type RequestOptions struct {
	Root      string
	Target    string
	Mode      string
	SourceDir string
	Platform  string
}

// NewRequest validates opts and returns an immutable Request with absolute paths.
func NewRequest(opts RequestOptions) (Request, error) {
	target, err := ParseTarget(opts.Target)
	if err != nil {
		return Request{}, err
	}
	mode, err := ParseLinkMode(opts.Mode)
	if err != nil {
		return Request{}, err
	}
	platform, err := ParsePlatform(opts.Platform)
	if err != nil {
		return Request{}, err
	}
	if opts.SourceDir == "" {
		return Request{}, Invalid(zerr.With(ErrMissingSource, "target", target.String()))
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return Request{}, Invalid(zerr.Wrap(err, "failed to resolve root directory"))
	}
	src := opts.SourceDir
	if !filepath.IsAbs(src) {
		src = filepath.Join(root, src)
	}
	src = filepath.Clean(src)

	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return Request{}, Invalid(zerr.With(ErrSourceNotFound, "path", src))
	}

	return Request{
		root:      root,
		target:    target,
		mode:      mode,
		sourceDir: src,
		platform:  platform,
	}, nil
}

// Root returns the absolute script root.
func (r Request) Root() string { return r.root }

// Target returns the requested target.
func (r Request) Target() Target { return r.target }

// Mode returns the requested link mode.
func (r Request) Mode() LinkMode { return r.mode }

// SourceDir returns the absolute upstream source tree.
func (r Request) SourceDir() string { return r.sourceDir }

// Platform returns the requested platform.
func (r Request) Platform() Platform { return r.platform }

// Layout returns the directory layout rooted at the request root.
func (r Request) Layout() Layout { return NewLayout(r.root) }

// BuildDir returns the build directory of the requested target.
func (r Request) BuildDir() string { return r.Layout().BuildDir(r.target, r.platform) }

// InstallDir returns the install directory of the requested target.
func (r Request) InstallDir() string { return r.Layout().InstallDir(r.target, r.platform) }

// WithTarget returns a copy of r addressing another target of the same root and platform.
// It is used to derive dependency install locations.
func (r Request) WithTarget(t Target) Request {
	r.target = t
	return r
}
