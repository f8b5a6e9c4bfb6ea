//go:build !windows

package shell

const isWindows = false

func candidates(path string) []string {
	return []string{path}
}
