// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/vcbuild/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion.
	//
	// stdout and stderr, when non-nil, receive the raw output streams in addition to the
	// executor's own buffering and console streaming.
	//
	// A missing executable returns an error matching domain.ErrToolMissing without spawning a
	// process. A non-zero exit returns a *domain.CommandError.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) (*domain.Output, error)
}
