package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcbuild/cmd/vcbuild/commands"
	"go.trai.ch/vcbuild/internal/adapters/cas"
	"go.trai.ch/vcbuild/internal/adapters/fs"
	"go.trai.ch/vcbuild/internal/app"
	"go.trai.ch/vcbuild/internal/build"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports/mocks"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.uber.org/mock/gomock"
)

type recordingRunner struct {
	requests []domain.Request
	jobs     []int
}

func (r *recordingRunner) Run(_ context.Context, req domain.Request, s domain.Settings) (*domain.Result, error) {
	r.requests = append(r.requests, req)
	r.jobs = append(r.jobs, s.Jobs)
	return &domain.Result{Target: req.Target(), InstallDir: req.InstallDir()}, nil
}

func (r *recordingRunner) Validate(domain.Request) error { return nil }

type noSetup struct{}

func (noSetup) Ensure(context.Context, deps.Input) (string, error) { return "", nil }

func newCLI(t *testing.T) (*commands.CLI, *recordingRunner, *mocks.MockConfigLoader, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	runner := &recordingRunner{}
	out := &bytes.Buffer{}

	a := app.New(loader, runner, noSetup{}, mocks.NewMockVCS(ctrl), fs.NewWorkspace(), cas.NewStore(), logger).WithOutput(out)
	cli := commands.New(a)
	cli.SetOutput(out)
	return cli, runner, loader, out
}

func TestBuild_PassesFlags(t *testing.T) {
	cli, runner, loader, _ := newCLI(t)
	root := t.TempDir()
	src := filepath.Join(root, "sdl")
	require.NoError(t, os.Mkdir(src, 0o750))
	loader.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)

	cli.SetArgs([]string{"build", "--root", root, "--target", "sdl2", "-s", src, "-m", "static", "-p", "windows", "-j", "3"})
	require.NoError(t, cli.Execute(context.Background()))

	require.Len(t, runner.requests, 1)
	req := runner.requests[0]
	assert.Equal(t, domain.TargetSDL2, req.Target())
	assert.Equal(t, domain.LinkStatic, req.Mode())
	assert.Equal(t, domain.PlatformWindows, req.Platform())
	assert.Equal(t, src, req.SourceDir())
	assert.Equal(t, []int{3}, runner.jobs)
}

func TestBuild_RequiresTarget(t *testing.T) {
	cli, runner, _, _ := newCLI(t)

	cli.SetArgs([]string{"build", "-s", "."})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
	assert.Empty(t, runner.requests)
}

func TestBuild_UnknownTarget(t *testing.T) {
	cli, runner, _, _ := newCLI(t)

	cli.SetArgs([]string{"build", "--target", "foo", "-s", t.TempDir()})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Empty(t, runner.requests)
}

func TestAll_RequiresPlatform(t *testing.T) {
	cli, runner, _, _ := newCLI(t)

	cli.SetArgs([]string{"all"})
	require.Error(t, cli.Execute(context.Background()))
	assert.Empty(t, runner.requests)
}

func TestAll_LinuxBuildsChain(t *testing.T) {
	cli, runner, loader, out := newCLI(t)
	root := t.TempDir()
	settings := domain.DefaultSettings()
	for target := range settings.Sources {
		dir := filepath.Join(root, target.String())
		require.NoError(t, os.Mkdir(dir, 0o750))
		settings.Sources[target] = dir
	}
	loader.EXPECT().Load(root).Return(settings, nil)

	cli.SetArgs([]string{"all", "-p", "linux", "--root", root})
	require.NoError(t, cli.Execute(context.Background()))

	require.Len(t, runner.requests, 4)
	for _, req := range runner.requests {
		assert.Equal(t, domain.LinkStatic, req.Mode())
		assert.Equal(t, domain.PlatformHost, req.Platform())
	}
	assert.Contains(t, out.String(), "all targets done")
}

func TestClean_RemovesTarget(t *testing.T) {
	cli, _, _, _ := newCLI(t)
	root := t.TempDir()
	obj := domain.NewLayout(root).BuildDir(domain.TargetFFmpeg, domain.PlatformWindows)
	require.NoError(t, os.MkdirAll(obj, 0o750))

	cli.SetArgs([]string{"clean", "--root", root, "-t", "ffmpeg", "-p", "windows"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.NoDirExists(t, obj)
}

func TestVersion(t *testing.T) {
	cli, _, _, out := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "vcbuild "+build.Version+" (commit "+build.Commit+", built "+build.Date+")\n", out.String())
}

func TestRoot_Help(t *testing.T) {
	cli, _, _, out := newCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "build")
	assert.Contains(t, out.String(), "clean")
	assert.Contains(t, out.String(), "--root")
}
