package domain_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vcbuild/internal/core/domain"
)

func mkdir(path string) error {
	return os.MkdirAll(path, domain.DirPerm)
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 2")
	err := &domain.CommandError{
		Args:     []string{"make", "-j", "4"},
		Dir:      "/tmp/obj",
		ExitCode: 2,
		Stderr:   "undefined reference to `main'\n",
		Err:      cause,
	}

	assert.True(t, errors.Is(err, domain.ErrToolFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, domain.ErrToolMissing))
	assert.Equal(t, "command failed: make -j 4 (cwd=/tmp/obj)\nundefined reference to `main'", err.Error())
}

func TestErrorClasses(t *testing.T) {
	assert.True(t, errors.Is(domain.Invalid(domain.ErrUnknownTarget), domain.ErrInvalidConfig))
	assert.True(t, errors.Is(domain.Missing(domain.ErrOverlayMissing), domain.ErrToolMissing))
	assert.False(t, errors.Is(domain.Missing(domain.ErrOverlayMissing), domain.ErrInvalidConfig))

	cause := errors.New("permission denied")
	reset := domain.Fault(domain.ErrResetFailed, cause)
	assert.True(t, errors.Is(reset, domain.ErrResetFailed))
	assert.True(t, errors.Is(reset, cause))
	for _, class := range []error{domain.ErrInvalidConfig, domain.ErrToolMissing, domain.ErrToolFailed} {
		assert.False(t, errors.Is(reset, class))
	}
}

func TestInstallRecord_Matches(t *testing.T) {
	rec := &domain.InstallRecord{Name: "freetype", InputHash: "in", OutputHash: "out", Timestamp: time.Now()}

	assert.True(t, rec.Matches("in", "out"))
	assert.False(t, rec.Matches("in", "tampered"))
	assert.False(t, rec.Matches("changed", "out"))

	var missing *domain.InstallRecord
	assert.False(t, missing.Matches("in", "out"))
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Positive(t, s.Jobs)
	assert.Equal(t, "release-2.32.x", s.Branch(domain.TargetSDL2))
	assert.Equal(t, "release-2.24.x", s.Branch(domain.TargetSDL2TTF))
	assert.Empty(t, s.Branch(domain.TargetFFmpeg))
	assert.Equal(t, "x86_64-w64-mingw32", s.WindowsTriple)
	assert.Equal(t, "13.0", s.DeploymentTarget)
	assert.Equal(t, "../video-compare", s.Source(domain.TargetVideoCompare))
	assert.Len(t, s.Vendored, 2)

	c := s.Clone()
	c.Branches[domain.TargetSDL2] = "main"
	assert.Equal(t, "release-2.32.x", s.Branch(domain.TargetSDL2))
}
