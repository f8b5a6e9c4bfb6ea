package linear_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/adapters/linear"
)

func TestWriter_PrintsFinishedVertices(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	rec := progrock.NewRecorder(linear.NewWriter(&out))

	configure := rec.Vertex(digest.FromString("configure"), "ffmpeg configure (host)")
	assert.Empty(t, out.String(), "running vertices print nothing")
	configure.Done(nil)

	install := rec.Vertex(digest.FromString("install"), "ffmpeg install (host)")
	install.Done(errors.New("exit status 2"))

	freetype := rec.Vertex(digest.FromString("freetype"), "freetype (windows)")
	freetype.Cached()
	freetype.Done(nil)

	require.NoError(t, rec.Close())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "[ffmpeg configure (host)] ✓ completed in")
	assert.Contains(t, lines[1], "[ffmpeg install (host)] ✗ failed after")
	assert.Contains(t, lines[1], "exit status 2")
	assert.Equal(t, "[freetype (windows)] ~ up to date", lines[2])
}

func TestWriter_IgnoresLogs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	rec := progrock.NewRecorder(linear.NewWriter(&out))

	v := rec.Vertex(digest.FromString("build"), "sdl2 build (host)")
	_, err := v.Stdout().Write([]byte("[ 42%] Building C object\n"))
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "Building C object")
}
