// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vcbuild/internal/adapters/cas"
	_ "go.trai.ch/vcbuild/internal/adapters/config"
	_ "go.trai.ch/vcbuild/internal/adapters/fs"
	_ "go.trai.ch/vcbuild/internal/adapters/logger"
	_ "go.trai.ch/vcbuild/internal/adapters/shell"
	_ "go.trai.ch/vcbuild/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/vcbuild/internal/adapters/vcs"
	// Register app and engine nodes.
	_ "go.trai.ch/vcbuild/internal/app"
	_ "go.trai.ch/vcbuild/internal/engine/deps"
	_ "go.trai.ch/vcbuild/internal/engine/pipeline"
	_ "go.trai.ch/vcbuild/internal/engine/targets"
)
