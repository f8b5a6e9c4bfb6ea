// Package main is the entry point for the vcbuild tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcbuild/cmd/vcbuild/commands"
	"go.trai.ch/vcbuild/internal/app"
	_ "go.trai.ch/vcbuild/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	if j, ok := components.Logger.(interface{ SetJSON(bool) }); ok && os.Getenv("VCBUILD_LOG_FORMAT") == "json" {
		j.SetJSON(true)
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
