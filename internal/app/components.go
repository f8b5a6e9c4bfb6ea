package app

import "go.trai.ch/vcbuild/internal/core/ports"

// Components holds the wired application and the collaborators main needs after a command returns.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
