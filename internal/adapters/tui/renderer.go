package tui

import (
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Renderer)(nil)

// Renderer is a progrock.Writer driving the progress view. The Bubble Tea program starts with
// the first vertex update, so commands that record nothing never take over the terminal.
// Renderer is also an io.Writer: while the view is running, written lines are printed above it.
type Renderer struct {
	out   io.Writer
	opts  []tea.ProgramOption
	model *Model

	mu      sync.Mutex
	program *tea.Program
	done    chan error
	closed  bool
}

// NewRenderer creates a Renderer drawing to out.
func NewRenderer(out io.Writer, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{out: out, opts: opts, model: NewModel()}
}

// WriteStatus forwards the vertex part of update to the view.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	if len(update.GetVertexes()) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	if r.program == nil {
		r.start()
	}
	r.program.Send(MsgTapeUpdate{Update: update})
	return nil
}

// Write prints p above the view while it runs and straight to the output otherwise.
func (r *Renderer) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.program == nil || r.closed {
		return r.out.Write(p)
	}
	r.program.Send(MsgLog{Line: strings.TrimRight(string(p), "\n")})
	return len(p), nil
}

// Close ends the view and waits for its final frame.
func (r *Renderer) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	program, done := r.program, r.done
	r.mu.Unlock()

	if program == nil {
		return nil
	}
	program.Send(MsgTapeEnded{})
	return <-done
}

// Model returns the view model.
func (r *Renderer) Model() *Model {
	return r.model
}

func (r *Renderer) start() {
	opts := append([]tea.ProgramOption{
		tea.WithOutput(r.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	}, r.opts...)
	r.program = tea.NewProgram(r.model, opts...)
	r.done = make(chan error, 1)

	program, done := r.program, r.done
	go func() {
		_, err := program.Run()
		done <- err
	}()
}
