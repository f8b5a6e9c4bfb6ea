package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcbuild/internal/core/domain"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Target
	}{
		{"ffmpeg", domain.TargetFFmpeg},
		{"sdl2", domain.TargetSDL2},
		{"sdl", domain.TargetSDL2},
		{"sdl3", domain.TargetSDL3},
		{"sdl2_ttf", domain.TargetSDL2TTF},
		{"sdl3_ttf", domain.TargetSDL3TTF},
		{" video_compare ", domain.TargetVideoCompare},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTarget(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTarget_Unknown(t *testing.T) {
	for _, in := range []string{"", "freetype", "bogus", "SDL2"} {
		_, err := domain.ParseTarget(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		assert.ErrorContains(t, err, "unknown target")
	}
}

func TestTarget_DependsOn(t *testing.T) {
	assert.Empty(t, domain.TargetFFmpeg.DependsOn())
	assert.Empty(t, domain.TargetSDL2.DependsOn())
	assert.Equal(t, []domain.Target{domain.TargetSDL2}, domain.TargetSDL2TTF.DependsOn())
	assert.Equal(t, []domain.Target{domain.TargetSDL3}, domain.TargetSDL3TTF.DependsOn())
	assert.ElementsMatch(t,
		[]domain.Target{domain.TargetSDL2, domain.TargetSDL2TTF, domain.TargetFFmpeg},
		domain.TargetVideoCompare.DependsOn())
}

func TestParseLinkMode(t *testing.T) {
	mode, err := domain.ParseLinkMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.LinkShared, mode)
	assert.True(t, mode.Shared())
	assert.False(t, mode.Static())

	mode, err = domain.ParseLinkMode("static")
	require.NoError(t, err)
	assert.False(t, mode.Shared())
	assert.True(t, mode.Static())

	mode, err = domain.ParseLinkMode("both")
	require.NoError(t, err)
	assert.True(t, mode.Shared())
	assert.True(t, mode.Static())

	_, err = domain.ParseLinkMode("dynamic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.Platform
		suffix string
	}{
		{"", domain.PlatformHost, ""},
		{"host", domain.PlatformHost, ""},
		{"linux", domain.PlatformHost, ""},
		{"windows", domain.PlatformWindows, "_win"},
		{"macos", domain.PlatformMacOS, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.suffix, got.Suffix())
		})
	}

	_, err := domain.ParsePlatform("android")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestPlatform_CrossCompiles(t *testing.T) {
	assert.False(t, domain.PlatformHost.CrossCompiles("linux"))
	assert.True(t, domain.PlatformWindows.CrossCompiles("linux"))
	assert.False(t, domain.PlatformWindows.CrossCompiles("windows"))
	assert.False(t, domain.PlatformMacOS.CrossCompiles("darwin"))
	assert.Equal(t, "darwin", domain.PlatformMacOS.OS("linux"))
}
