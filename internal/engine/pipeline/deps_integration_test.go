package pipeline_test

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcbuild/internal/adapters/cas"
	"go.trai.ch/vcbuild/internal/adapters/fs"
	"go.trai.ch/vcbuild/internal/adapters/telemetry"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.trai.ch/vcbuild/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

// toolchain stands in for the native tools: the download script populates the vendored subtrees
// and make install writes a library into freetype's prefix.
type toolchain struct {
	t       *testing.T
	src     string
	ftBuild string
	ftDest  string
	calls   [][]string
}

func (tc *toolchain) execute(_ context.Context, cmd *domain.Command, _, _ io.Writer) (*domain.Output, error) {
	tc.calls = append(tc.calls, slices.Clone(cmd.Args))
	switch {
	case cmd.Args[0] == "sh" && filepath.Base(cmd.Args[1]) == "download.sh":
		for _, name := range []string{"freetype", "harfbuzz"} {
			writeFile(tc.t, filepath.Join(tc.src, "external", name, "CMakeLists.txt"), name)
		}
	case slices.Equal(cmd.Args, []string{"make", "install"}) && cmd.Dir == tc.ftBuild:
		writeFile(tc.t, filepath.Join(tc.ftDest, "lib", "libfreetype.a"), "archive")
	}
	return &domain.Output{}, nil
}

func (tc *toolchain) index(match func([]string) bool) int {
	return slices.IndexFunc(tc.calls, match)
}

func (tc *toolchain) count(match func([]string) bool) int {
	n := 0
	for _, c := range tc.calls {
		if match(c) {
			n++
		}
	}
	return n
}

func TestRun_SDL2TTFBuildsFreetypeFirst(t *testing.T) {
	e := newEnv(t)
	e.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	e.vcs.EXPECT().Checkout(gomock.Any(), gomock.Any(), "release-2.24.x").Return(nil).Times(2)
	e.vcs.EXPECT().Head(gomock.Any(), gomock.Any()).Return("9e1c0d2", nil).Times(2)

	req := e.request(t, domain.TargetSDL2TTF, domain.PlatformHost)
	script := filepath.Join(req.SourceDir(), "external", "download.sh")
	writeFile(t, script, "#!/bin/sh\n")

	layout := req.Layout()
	tc := &toolchain{
		t:       t,
		src:     req.SourceDir(),
		ftBuild: layout.BuildDir(domain.TargetFreetype, domain.PlatformHost),
		ftDest:  layout.InstallDir(domain.TargetFreetype, domain.PlatformHost),
	}
	e.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(tc.execute).AnyTimes()

	setup := deps.New(
		e.executor,
		fs.NewWorkspace(),
		e.vcs,
		fs.NewHasher(fs.NewWalker()),
		cas.NewStore(),
		telemetry.NewNoOp(),
		e.logger,
		deps.WithClock(e.clock),
		deps.WithHostOS("linux"),
	)
	p := pipeline.New(
		e.executor,
		fs.NewWorkspace(),
		e.vcs,
		telemetry.NewNoOp(),
		e.logger,
		setup,
		nil,
		pipeline.WithClock(e.clock),
		pipeline.WithHostOS("linux"),
	)

	download := func(args []string) bool { return slices.Equal(args, []string{"sh", script}) }
	configureFreetype := func(args []string) bool {
		return args[0] == "cmake" && slices.Contains(args, filepath.Join(req.SourceDir(), "external", "freetype"))
	}
	configureTTF := func(args []string) bool {
		return args[0] == "cmake" && slices.Contains(args, req.SourceDir())
	}

	_, err := p.Run(context.Background(), req, domain.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 1, tc.count(download))
	assert.Equal(t, 0, tc.index(download))
	assert.Equal(t, 1, tc.count(configureFreetype))
	assert.Less(t, tc.index(download), tc.index(configureFreetype))

	ttf := tc.index(configureTTF)
	require.GreaterOrEqual(t, ttf, 0)
	assert.Less(t, tc.index(configureFreetype), ttf)
	assert.Equal(t, 1, tc.count(configureTTF))
	assert.Contains(t, tc.calls[ttf], "-DBUILD_SHARED_LIBS=OFF")
	assert.Contains(t, tc.calls[ttf], "-DCMAKE_PREFIX_PATH="+
		layout.InstallDir(domain.TargetSDL2, domain.PlatformHost)+";"+tc.ftDest)
	assert.Contains(t, tc.calls[tc.index(configureFreetype)], "-DBUILD_SHARED_LIBS=OFF")
	assert.FileExists(t, filepath.Join(tc.ftDest, "lib", "libfreetype.a"))

	// A second build reuses the vendored subtrees and the recorded freetype install.
	tc.calls = nil
	_, err = p.Run(context.Background(), req, domain.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, 0, tc.count(download))
	assert.Equal(t, 0, tc.count(configureFreetype))
	assert.Equal(t, 1, tc.count(configureTTF))
	assert.FileExists(t, filepath.Join(tc.ftDest, "lib", "libfreetype.a"))
}
