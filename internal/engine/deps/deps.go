// Package deps acquires the vendored font dependencies of the ttf targets and builds freetype as
// a prerequisite install.
package deps

import (
	"context"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/buildsys"
	"go.trai.ch/zerr"
)

const (
	externalDir    = "external"
	downloadScript = "download.sh"
)

// Input is what a dependency setup needs to know about the invocation that triggered it.
type Input struct {
	Request  domain.Request
	Settings domain.Settings
	// LogPath is the transcript of the triggering invocation.
	LogPath string
}

// Setup implements dependency acquisition and the freetype prerequisite build.
type Setup struct {
	executor  ports.Executor
	workspace ports.Workspace
	vcs       ports.VCS
	hasher    ports.Hasher
	store     ports.InstallRecordStore
	telemetry ports.Telemetry
	logger    ports.Logger
	clock     clockwork.Clock
	hostOS    string
}

// Option configures a Setup.
type Option func(*Setup)

// WithClock sets the clock used for install record timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Setup) { s.clock = c }
}

// WithHostOS overrides the detected host operating system.
func WithHostOS(goos string) Option {
	return func(s *Setup) { s.hostOS = goos }
}

// New creates a new Setup.
func New(
	executor ports.Executor,
	workspace ports.Workspace,
	vcs ports.VCS,
	hasher ports.Hasher,
	store ports.InstallRecordStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	opts ...Option,
) *Setup {
	s := &Setup{
		executor:  executor,
		workspace: workspace,
		vcs:       vcs,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
		hostOS:    domain.HostOS(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordName returns the install record name of the freetype build for p. Platforms sharing an
// install directory share the record.
func RecordName(p domain.Platform) string {
	return domain.TargetFreetype.String() + p.Suffix()
}

// Acquire makes sure every vendored dependency exists and is non-empty under
// <source>/external. Unix-like hosts run the vendored download script once for all missing
// subtrees; a Windows host clones each missing subtree.
func (s *Setup) Acquire(ctx context.Context, in Input) error {
	ext := filepath.Join(in.Request.SourceDir(), externalDir)

	var missing []domain.VendoredDep
	for _, dep := range in.Settings.Vendored {
		if !s.workspace.IsPopulated(filepath.Join(ext, dep.Name)) {
			s.logger.Warn(dep.Name + " is missing or empty, downloading")
			missing = append(missing, dep)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if s.hostOS == "windows" {
		for _, dep := range missing {
			if err := s.vcs.Clone(ctx, dep.Repo, dep.Ref, filepath.Join(ext, dep.Name)); err != nil {
				return err
			}
		}
		return nil
	}

	script := filepath.Join(ext, downloadScript)
	if !s.workspace.Exists(script) {
		return domain.Missing(zerr.With(domain.ErrDownloadScriptMissing, "path", script))
	}
	_, err := s.executor.Execute(ctx, &domain.Command{
		Args:    []string{"sh", script},
		Dir:     in.Request.SourceDir(),
		LogPath: in.LogPath,
	}, nil, nil)
	return err
}

// Ensure acquires the vendored dependencies and returns the freetype install directory,
// building it unless its install record still matches both the inputs and the installed tree.
func (s *Setup) Ensure(ctx context.Context, in Input) (string, error) {
	if err := s.Acquire(ctx, in); err != nil {
		return "", err
	}

	p := in.Request.Platform()
	layout := in.Request.Layout()
	build := layout.BuildDir(domain.TargetFreetype, p)
	install := layout.InstallDir(domain.TargetFreetype, p)
	cm := s.freetype(in, build, install)

	srcHash, err := s.hasher.HashTree(cm.Source)
	if err != nil {
		return "", err
	}
	inputHash := s.hasher.HashStrings(append(cm.ConfigureArgs(), srcHash)...)

	_, vertex := s.telemetry.Record(ctx, domain.TargetFreetype.String()+" ("+string(p)+")")

	if s.upToDate(in.Request.Root(), RecordName(p), inputHash, install) {
		s.logger.Info("freetype is up to date: " + install)
		vertex.Cached()
		vertex.Complete(nil)
		return install, nil
	}

	err = s.build(ctx, in, cm, vertex)
	if err == nil {
		err = s.record(in.Request.Root(), RecordName(p), inputHash, install)
	}
	vertex.Complete(err)
	if err != nil {
		return "", err
	}
	return install, nil
}

func (s *Setup) freetype(in Input, build, install string) *buildsys.CMake {
	p := in.Request.Platform()
	cm := &buildsys.CMake{
		Host:    buildsys.Host{OS: s.hostOS, Jobs: in.Settings.Jobs},
		Source:  filepath.Join(in.Request.SourceDir(), externalDir, domain.TargetFreetype.String()),
		Build:   build,
		Install: install,
		Env:     buildsys.PlatformEnv(p, in.Settings),
	}
	cm.DefineAll(buildsys.PlatformDefines(p, in.Settings)).
		DefineBool("BUILD_SHARED_LIBS", false).
		DefineBool("CMAKE_POSITION_INDEPENDENT_CODE", true).
		DefineBool("FT_DISABLE_BROTLI", true).
		DefineBool("FT_DISABLE_BZIP2", true).
		DefineBool("FT_DISABLE_HARFBUZZ", true).
		DefineBool("FT_DISABLE_PNG", true).
		DefineBool("FT_DISABLE_ZLIB", true)
	return cm
}

func (s *Setup) upToDate(root, name, inputHash, install string) bool {
	rec, err := s.store.Get(root, name)
	if err != nil {
		s.logger.Warn("ignoring unreadable install record for " + name + ": " + err.Error())
		return false
	}
	if rec == nil || !s.workspace.IsPopulated(install) {
		return false
	}
	outputHash, err := s.hasher.HashTree(install)
	if err != nil {
		return false
	}
	return rec.Matches(inputHash, outputHash)
}

func (s *Setup) build(ctx context.Context, in Input, cm *buildsys.CMake, vertex ports.Vertex) error {
	s.logger.Info("building freetype into " + cm.Install)
	if err := s.workspace.Reset(cm.Build, cm.Install); err != nil {
		return err
	}
	for _, st := range cm.Steps() {
		cmd := st.Command
		cmd.LogPath = in.LogPath
		if _, err := s.executor.Execute(ctx, &cmd, vertex.Stdout(), vertex.Stderr()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Setup) record(root, name, inputHash, install string) error {
	outputHash, err := s.hasher.HashTree(install)
	if err != nil {
		return err
	}
	return s.store.Put(root, domain.InstallRecord{
		Name:       name,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  s.clock.Now(),
	})
}
