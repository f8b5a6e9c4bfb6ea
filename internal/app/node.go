package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/internal/adapters/cas"
	"go.trai.ch/vcbuild/internal/adapters/config"
	"go.trai.ch/vcbuild/internal/adapters/fs"
	"go.trai.ch/vcbuild/internal/adapters/logger"
	telemetry "go.trai.ch/vcbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/vcbuild/internal/adapters/vcs"
	"go.trai.ch/vcbuild/internal/core/ports"
	"go.trai.ch/vcbuild/internal/engine/deps"
	"go.trai.ch/vcbuild/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			deps.NodeID,
			vcs.NodeID,
			fs.WorkspaceNodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	setup, err := graft.Dep[*deps.Setup](ctx)
	if err != nil {
		return nil, err
	}

	repo, err := graft.Dep[ports.VCS](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.InstallRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, runner, setup, repo, workspace, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log, Telemetry: tel}, nil
}
