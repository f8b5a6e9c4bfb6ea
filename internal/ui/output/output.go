// Package output provides utilities for creating termenv.Output with consistent
// color profile handling, plus the console summaries printed after a build.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/vcbuild/internal/ui/style"
)

// ColorProfile returns the color profile for the console.
// It returns Ascii when NO_COLOR is set and detects the terminal's capabilities otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output with the profile logic above.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Console prints human-facing summaries.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewConsole returns a Console writing to w (stdout when nil).
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return &Console{w: w, renderer: r}
}

// CommandLine formats the echo of a command before it runs.
func CommandLine(args []string, dir string) string {
	line := style.Arrow + " " + strings.Join(args, " ")
	if dir != "" {
		line += "  (cwd=" + dir + ")"
	}
	return line
}

// Built prints the outcome of a successful target build.
func (c *Console) Built(target, installDir, logPath string, d time.Duration) {
	ok := style.Success.Renderer(c.renderer)
	label := style.Label.Renderer(c.renderer)
	_, _ = fmt.Fprintf(c.w, "%s %s built in %s\n", ok.Render(style.Check), target, d.Round(time.Millisecond))
	_, _ = fmt.Fprintf(c.w, "  %s%s\n", label.Render("install"), installDir)
	_, _ = fmt.Fprintf(c.w, "  %s%s\n", label.Render("log"), logPath)
}

// Skipped prints a target that was not built because a dependency failed.
func (c *Console) Skipped(target, reason string) {
	_, _ = fmt.Fprintf(c.w, "%s %s skipped: %s\n", style.Skip, target, reason)
}

// Staged prints an artifact copied into the consumer tree.
func (c *Console) Staged(src, dstDir string) {
	_, _ = fmt.Fprintf(c.w, "  %s -> %s\n", src, dstDir)
}

// Finished prints the total elapsed time of a run.
func (c *Console) Finished(d time.Duration, failed bool) {
	if failed {
		fail := style.Failure.Renderer(c.renderer)
		_, _ = fmt.Fprintf(c.w, "%s finished with failures in %s\n", fail.Render(style.Cross), d.Round(time.Millisecond))
		return
	}
	ok := style.Success.Renderer(c.renderer)
	_, _ = fmt.Fprintf(c.w, "%s all targets done in %s\n", ok.Render(style.Check), d.Round(time.Millisecond))
}
