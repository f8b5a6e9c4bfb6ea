// Package progrock records build progress with progrock and hands it to a progress renderer.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock.Writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named name. Every call gets its own digest, so the same target built
// twice in one session shows up as two vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	n := r.seq.Add(1)
	d := digest.FromString(name + "#" + strconv.FormatUint(n, 10))
	return ctx, &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	return r.w.Close()
}
