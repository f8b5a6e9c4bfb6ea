package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/vcs"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.trai.ch/vcbuild/internal/engine/targets"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.WorkspaceNodeID,
			vcs.NodeID,
			progrock.NodeID,
			logger.NodeID,
			deps.NodeID,
			targets.SDKNodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			git, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			setup, err := graft.Dep[*deps.Setup](ctx)
			if err != nil {
				return nil, err
			}

			sdk, err := graft.Dep[targets.SDKResolver](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, workspace, git, telemetry, log, setup, sdk), nil
		},
	})
}
