package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/vcbuild/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	root := filepath.Join("/", "work", "tools")
	l := domain.NewLayout(root)
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "BuildDir",
			got:      l.BuildDir(domain.TargetFFmpeg, domain.PlatformHost),
			expected: filepath.Join(root, "ffmpeg", "obj"),
		},
		{
			name:     "BuildDirWindows",
			got:      l.BuildDir(domain.TargetSDL2, domain.PlatformWindows),
			expected: filepath.Join(root, "sdl2", "obj_win"),
		},
		{
			name:     "InstallDirWindows",
			got:      l.InstallDir(domain.TargetVideoCompare, domain.PlatformWindows),
			expected: filepath.Join(root, "video_compare", "install_win"),
		},
		{
			name:     "InstallDirMacOS",
			got:      l.InstallDir(domain.TargetSDL2TTF, domain.PlatformMacOS),
			expected: filepath.Join(root, "sdl2_ttf", "install"),
		},
		{
			name:     "LogPath",
			got:      l.LogPath(domain.TargetFFmpeg, domain.PlatformHost, ts),
			expected: filepath.Join(root, "ffmpeg", "obj", "build_ffmpeg_20240309_140507.log"),
		},
		{
			name:     "DepsLogPathWindows",
			got:      l.DepsLogPath(domain.PlatformWindows, ts),
			expected: filepath.Join(root, "freetype", "setup_win_20240309_140507.log"),
		},
		{
			name:     "StoreDir",
			got:      l.StoreDir(),
			expected: filepath.Join(root, ".vcbuild", "store"),
		},
		{
			name:     "ConfigPath",
			got:      l.ConfigPath(),
			expected: filepath.Join(root, "vcbuild.yaml"),
		},
		{
			name:     "ResolveRelative",
			got:      l.Resolve("../sdl"),
			expected: filepath.Join("/", "work", "sdl"),
		},
		{
			name:     "ResolveAbsolute",
			got:      l.Resolve("/opt/src"),
			expected: "/opt/src",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
