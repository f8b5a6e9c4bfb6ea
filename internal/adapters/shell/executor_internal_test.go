package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	got := resolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/home/dev", "MALFORMED"},
		map[string]string{"PATH": "/opt/mingw/bin", "CC": "clang"},
	)

	assert.ElementsMatch(t, []string{"PATH=/opt/mingw/bin", "HOME=/home/dev", "CC=clang"}, got)
	assert.Equal(t, "PATH=/opt/mingw/bin", got[0])
}

func TestTail(t *testing.T) {
	assert.Equal(t, "c\nd", tail("a\nb\nc\nd\n", 2))
	assert.Equal(t, "only", tail("only", 20))
}

func TestLineWriter(t *testing.T) {
	var lines []string
	w := &lineWriter{emit: func(s string) { lines = append(lines, s) }}

	_, _ = w.Write([]byte("one\r\ntw"))
	_, _ = w.Write([]byte("o\nthree"))
	w.Flush()

	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
