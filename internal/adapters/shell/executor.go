// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/ui/output"
	"go.trai.ch/zerr"
)

// stderrTailLines is the number of trailing stderr lines kept on a CommandError.
const stderrTailLines = 20

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	clock  clockwork.Clock
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, clock clockwork.Clock) *Executor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Executor{
		logger: logger,
		clock:  clock,
	}
}

// Execute runs the command synchronously.
//
// The environment is os.Environ() overlaid by cmd.Env; the executable is resolved against the
// merged PATH before anything is spawned. Output is always buffered. Unless cmd.Capture is set
// it is also streamed line by line to the logger, and when cmd.LogPath is set the invocation is
// appended to that transcript.
func (e *Executor) Execute(
	ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer,
) (*domain.Output, error) {
	if cmd == nil || len(cmd.Args) == 0 {
		return nil, domain.Invalid(zerr.New("empty command"))
	}

	name := cmd.Args[0]
	cmdEnv := resolveEnvironment(os.Environ(), cmd.Env)

	executable, err := resolveExecutable(name, cmdEnv)
	if err != nil {
		return nil, domain.Missing(zerr.With(zerr.Wrap(err, "executable not found"), "command", name))
	}

	e.logger.Info(output.CommandLine(cmd.Args, cmd.Dir))

	var transcript *os.File
	if cmd.LogPath != "" {
		transcript, err = openTranscript(cmd.LogPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = transcript.Close() }()
		_, _ = fmt.Fprintf(transcript, "[%s] $ %s\n", e.clock.Now().Format("2006-01-02 15:04:05"),
			strings.TrimPrefix(output.CommandLine(cmd.Args, cmd.Dir), ">>> "))
	}

	var outBuf, errBuf bytes.Buffer
	var stdoutLines, stderrLines *lineWriter
	outWriters := []io.Writer{&outBuf}
	errWriters := []io.Writer{&errBuf}
	if transcript != nil {
		shared := &lockedWriter{w: transcript}
		outWriters = append(outWriters, shared)
		errWriters = append(errWriters, shared)
	}
	if !cmd.Capture {
		stdoutLines = &lineWriter{emit: e.logger.Info}
		stderrLines = &lineWriter{emit: e.logger.Info}
		outWriters = append(outWriters, stdoutLines)
		errWriters = append(errWriters, stderrLines)
	}
	if stdout != nil {
		outWriters = append(outWriters, stdout)
	}
	if stderr != nil {
		errWriters = append(errWriters, stderr)
	}

	proc := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // commands are built by the planners
	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	proc.Args[0] = name
	proc.Dir = cmd.Dir
	proc.Env = cmdEnv
	proc.Stdout = io.MultiWriter(outWriters...)
	proc.Stderr = io.MultiWriter(errWriters...)

	start := e.clock.Now()
	runErr := proc.Run()

	if stdoutLines != nil {
		stdoutLines.Flush()
		stderrLines.Flush()
	}

	out := &domain.Output{
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		ExitCode: exitCode(runErr),
	}

	if transcript != nil {
		_, _ = fmt.Fprintf(transcript, "[%s] exit code %d (%s)\n\n", e.clock.Now().Format("2006-01-02 15:04:05"),
			out.ExitCode, e.clock.Since(start).Round(time.Millisecond))
	}

	if runErr != nil {
		cause := runErr
		if ctxErr := ctx.Err(); ctxErr != nil {
			cause = errors.Join(ctxErr, runErr)
		}
		return out, &domain.CommandError{
			Args:     cmd.Args,
			Dir:      cmd.Dir,
			ExitCode: out.ExitCode,
			Stderr:   tail(out.Stderr, stderrTailLines),
			Err:      cause,
		}
	}

	return out, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func openTranscript(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, domain.Fault(domain.ErrTranscriptFailed, zerr.With(err, "path", path))
	}
	//nolint:gosec // transcript path is derived from the layout
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, domain.Fault(domain.ErrTranscriptFailed, zerr.With(err, "path", path))
	}
	return f, nil
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	emit func(string)
	buf  []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(strings.TrimSuffix(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *lineWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

// lockedWriter serializes writes from the stdout and stderr copiers into one file.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// resolveEnvironment overlays the command environment on the system environment.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	order := make([]string, 0, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	for k, v := range cmdEnv {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

func resolveExecutable(name string, env []string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	return lookPath(name, env)
}

// lookPath searches for an executable in the directories named by the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, candidate := range candidates(filepath.Join(dir, file)) {
			if err := findExecutable(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && (m&0o111 != 0 || isWindows) {
		return nil
	}
	return os.ErrPermission
}
