// Package linear prints build progress as plain lines for CI and other non-interactive output.
package linear

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/ui/output"
	"go.trai.ch/vcbuild/internal/ui/style"
)

var _ progrock.Writer = (*Writer)(nil)

// Writer is a progrock.Writer printing one line per finished vertex.
type Writer struct {
	w      io.Writer
	output *termenv.Output

	mu   sync.Mutex
	done map[string]bool
}

// NewWriter creates a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		output: output.New(w),
		done:   make(map[string]bool),
	}
}

// WriteStatus prints the vertices of update that finished or were found up to date. Each vertex
// is printed once.
func (w *Writer) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.GetVertexes() {
		if w.done[v.GetId()] {
			continue
		}
		line, ok := w.line(v)
		if !ok {
			continue
		}
		w.done[v.GetId()] = true
		if _, err := fmt.Fprintln(w.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) line(v *progrock.Vertex) (string, bool) {
	prefix := w.output.String("[" + v.GetName() + "]").Faint().String()
	switch {
	case v.GetCached():
		return fmt.Sprintf("%s %s up to date", prefix, style.Skip), true
	case v.GetCompleted() == nil:
		return "", false
	case v.GetError() != "":
		symbol := w.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		return fmt.Sprintf("%s %s failed after %v: %s", prefix, symbol, elapsed(v), v.GetError()), true
	case v.GetCanceled():
		symbol := w.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		return fmt.Sprintf("%s %s canceled", prefix, symbol), true
	default:
		symbol := w.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		return fmt.Sprintf("%s %s completed in %v", prefix, symbol, elapsed(v)), true
	}
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.GetStarted() == nil || v.GetCompleted() == nil {
		return 0
	}
	return v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
}

// Close does nothing; every line is written synchronously.
func (w *Writer) Close() error {
	return nil
}
