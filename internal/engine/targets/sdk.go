package targets

import (
	"context"
	"strings"

	"go.trai.ch/vcbuild/internal/core/domain"
	"go.trai.ch/vcbuild/internal/core/ports"
)

var _ SDKResolver = (*Xcrun)(nil)

// Xcrun resolves the macOS SDK with xcrun.
type Xcrun struct {
	executor ports.Executor
}

// NewXcrun creates a new Xcrun.
func NewXcrun(executor ports.Executor) *Xcrun {
	return &Xcrun{executor: executor}
}

// SDKPath returns the path printed by xcrun --sdk macosx --show-sdk-path.
func (x *Xcrun) SDKPath(ctx context.Context) (string, error) {
	out, err := x.executor.Execute(ctx, &domain.Command{
		Args:    []string{"xcrun", "--sdk", "macosx", "--show-sdk-path"},
		Capture: true,
	}, nil, nil)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(out.Stdout)
	if path == "" {
		return "", domain.Missing(domain.ErrSDKNotFound)
	}
	return path, nil
}
