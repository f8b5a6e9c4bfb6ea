package targets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/internal/adapters/shell" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vcbuild/internal/core/ports"
)

// SDKNodeID is the unique identifier for the macOS SDK resolver Graft node.
const SDKNodeID graft.ID = "engine.sdk"

func init() {
	graft.Register(graft.Node[SDKResolver]{
		ID:        SDKNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (SDKResolver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewXcrun(executor), nil
		},
	})
}
