package vcs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcbuild/internal/adapters/vcs"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGit_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Args: []string{"git", "checkout", "release-2.32.x"},
		Dir:  "/src/sdl",
	}, nil, nil).Return(&domain.Output{}, nil)

	require.NoError(t, vcs.NewGit(executor).Checkout(context.Background(), "/src/sdl", "release-2.32.x"))
}

func TestGit_Checkout_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	cmdErr := &domain.CommandError{Args: []string{"git", "checkout", "nope"}, ExitCode: 1,
		Stderr: "error: pathspec 'nope' did not match"}
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil, nil).Return(&domain.Output{ExitCode: 1}, cmdErr)

	err := vcs.NewGit(executor).Checkout(context.Background(), "/src/sdl", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolFailed))
	assert.ErrorContains(t, err, "pathspec 'nope' did not match")
}

func TestGit_Clone(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Args: []string{
			"/opt/git/bin/git", "clone", "--depth", "1", "--branch", "VER-2-13-3-SDL",
			"https://github.com/libsdl-org/freetype.git", "/src/sdl_ttf/external/freetype",
		},
	}, nil, nil).Return(&domain.Output{}, nil)

	g := vcs.NewGit(executor, vcs.WithGitPath("/opt/git/bin/git"))
	require.NoError(t, g.Clone(context.Background(),
		"https://github.com/libsdl-org/freetype.git", "VER-2-13-3-SDL", "/src/sdl_ttf/external/freetype"))
}

func TestGit_Head(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Args:    []string{"git", "rev-parse", "HEAD"},
		Dir:     "/src/ffmpeg",
		Capture: true,
	}, nil, nil).Return(&domain.Output{Stdout: "0123abcd\n"}, nil)

	head, err := vcs.NewGit(executor).Head(context.Background(), "/src/ffmpeg")
	require.NoError(t, err)
	assert.Equal(t, "0123abcd", head)
}

func TestGit_Head_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil, nil).Return(&domain.Output{}, nil)

	_, err := vcs.NewGit(executor).Head(context.Background(), "/src/ffmpeg")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no HEAD found")
}
