package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcbuild/internal/adapters/fs"
)

func TestHasher_HashTree(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	a := t.TempDir()
	b := t.TempDir()
	for _, root := range []string{a, b} {
		writeFile(t, filepath.Join(root, "lib", "libfreetype.a"), "archive")
		writeFile(t, filepath.Join(root, "include", "freetype2", "ft2build.h"), "#define FT2")
	}

	hashA, err := h.HashTree(a)
	require.NoError(t, err)
	hashB, err := h.HashTree(b)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB, "identical trees at different locations hash the same")
	assert.Len(t, hashA, 16)

	writeFile(t, filepath.Join(b, "lib", "libfreetype.a"), "tampered")
	hashB, err = h.HashTree(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB, "content change is detected")

	writeFile(t, filepath.Join(b, "lib", "libfreetype.a"), "archive")
	require.NoError(t, os.Remove(filepath.Join(b, "include", "freetype2", "ft2build.h")))
	hashB, err = h.HashTree(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB, "missing file is detected")
}

func TestHasher_HashTree_Symlink(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "libSDL2-2.0.so.0.3200.0"), "elf")
	require.NoError(t, os.Symlink("libSDL2-2.0.so.0.3200.0", filepath.Join(root, "libSDL2.so")))

	first, err := h.HashTree(root)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "libSDL2.so")))
	require.NoError(t, os.Symlink("elsewhere", filepath.Join(root, "libSDL2.so")))
	second, err := h.HashTree(root)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_HashTree_Missing(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	_, err := h.HashTree(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestHasher_HashTree_UnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	h := fs.NewHasher(fs.NewWalker())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "include", "ft2build.h"), "#define FT2")
	locked := filepath.Join(root, "lib")
	writeFile(t, filepath.Join(locked, "libfreetype.a"), "archive")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) }) //nolint:gosec // restore for TempDir cleanup

	_, err := h.HashTree(root)
	require.Error(t, err, "a partially readable install must not fingerprint as complete")
}

func TestHasher_HashStrings(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	assert.Equal(t, h.HashStrings("cmake", "-S", "src"), h.HashStrings("cmake", "-S", "src"))
	assert.NotEqual(t, h.HashStrings("ab", "c"), h.HashStrings("a", "bc"), "element boundaries matter")
	assert.NotEqual(t, h.HashStrings("a", "b"), h.HashStrings("b", "a"), "order matters")
}
