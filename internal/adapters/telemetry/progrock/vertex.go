package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex wraps a *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex done, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as reused.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
