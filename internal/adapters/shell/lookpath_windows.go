//go:build windows

package shell

import (
	"os"
	"path/filepath"
	"strings"
)

const isWindows = true

func candidates(path string) []string {
	if filepath.Ext(path) != "" {
		return []string{path}
	}
	exts := strings.Split(os.Getenv("PATHEXT"), ";")
	if len(exts) == 1 && exts[0] == "" {
		exts = []string{".com", ".exe", ".bat", ".cmd"}
	}
	out := make([]string, 0, len(exts)+1)
	for _, ext := range exts {
		out = append(out, path+strings.ToLower(ext))
	}
	return append(out, path)
}
