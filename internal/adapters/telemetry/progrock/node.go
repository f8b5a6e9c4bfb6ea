package progrock

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"github.com/vito/progrock"
	"go.trai.ch/vcbuild/internal/adapters/detector"
	"go.trai.ch/vcbuild/internal/adapters/linear"
	"go.trai.ch/vcbuild/internal/adapters/logger"
	"go.trai.ch/vcbuild/internal/adapters/tui"
	"go.trai.ch/vcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			mode := detector.ResolveMode(detector.DetectEnvironment(), os.Getenv(detector.ModeEnv))
			return NewRecorder(rendererFor(mode, log, os.Stderr)), nil
		},
	})
}

// rendererFor returns the progress writer for mode. The interactive view takes over the log
// output so log lines are printed above it instead of through it.
func rendererFor(mode detector.OutputMode, log ports.Logger, w io.Writer) progrock.Writer {
	if mode != detector.ModeTUI {
		return linear.NewWriter(w)
	}
	r := tui.NewRenderer(w)
	if o, ok := log.(interface{ SetOutput(io.Writer) }); ok {
		o.SetOutput(r)
	}
	return r
}
