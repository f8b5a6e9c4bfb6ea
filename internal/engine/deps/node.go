package deps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/adapters/vcs"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the dependency setup Graft node.
const NodeID graft.ID = "engine.deps"

func init() {
	graft.Register(graft.Node[*Setup]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.WorkspaceNodeID,
			vcs.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Setup, error) {
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

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.InstallRecordStore](ctx)
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

			return New(executor, workspace, git, hasher, store, telemetry, log), nil
		},
	})
}
