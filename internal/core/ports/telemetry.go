package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of build steps.
type Telemetry interface {
	// Record starts a vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer receiving the standard output of the work.
	Stdout() io.Writer
	// Stderr returns a writer receiving the error output of the work.
	Stderr() io.Writer
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as reused.
	Cached()
}
